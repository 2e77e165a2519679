package odometer

import (
	"regexp"
	"strings"
)

var (
	unitSuffix = regexp.MustCompile(`(?i)\s*(km|mi|miles?|kilometers?)\s*$`)

	readingWithUnit = regexp.MustCompile(`(?i)(\d{4,7})\s*(km|mi|miles?|kilometers?)`)
	readingWithODO  = regexp.MustCompile(`(?i)odo\s*[:\s]*(\d{4,7})`)
)

func digits(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// Normalize strips a trailing unit token (km, mi, miles, kilometers), commas
// and any other non-digit noise from an odometer reading. Empty input yields
// empty output.
func Normalize(raw string) string {
	s := unitSuffix.ReplaceAllString(strings.TrimSpace(raw), "")

	return digits(s)
}

// FromText extracts an odometer reading from free OCR text of a dashboard
// image ("ODO 34672 km", "53193 km", "40697"). A 4-7 digit run next to a unit
// or an ODO prefix wins; otherwise the text's digits, truncated to 7, are a
// best effort. The result contains digits only.
func FromText(text string) string {
	t := strings.TrimSpace(text)

	if t == "" {
		return ""
	}

	if m := readingWithUnit.FindStringSubmatch(t); m != nil {
		return m[1]
	}

	if m := readingWithODO.FindStringSubmatch(t); m != nil {
		return m[1]
	}

	d := digits(t)

	if len(d) > 7 {
		d = d[:7]
	}

	return d
}
