package text

import (
	"regexp"
	"strings"
)

var lineBreaks = regexp.MustCompile(`\s*\n\s*`)

// Normalize cleans raw OCR output: Windows line endings become Unix, runs of
// blank lines collapse to one break, and spaces within a line collapse to one.
func Normalize(text string) string {
	text = strings.TrimSpace(text)

	text = strings.ReplaceAll(text, "\a", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	text = lineBreaks.ReplaceAllString(text, "\a")
	text = strings.Join(strings.Fields(text), " ")
	text = strings.ReplaceAll(text, "\a", "\n")

	return strings.TrimSpace(text)
}

// FirstLine returns the first non-empty line with internal whitespace
// collapsed, truncated to limit when limit is positive.
func FirstLine(text string, limit int) string {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return ""
	}

	candidate := trimmed

	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			candidate = line
			break
		}
	}

	candidate = strings.Join(strings.Fields(candidate), " ")

	if limit > 0 && len(candidate) > limit {
		candidate = candidate[:limit]
	}

	return candidate
}

// JoinLines flattens recognized text into one line, dropping empty lines.
func JoinLines(text string) string {
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, " ")
}
