package intake

import (
	"regexp"
	"strings"

	"github.com/glidefleet/intake/pkg/text"
)

const maxUnitNumberLength = 20

var (
	vinCandidateRE   = regexp.MustCompile(`[A-Z0-9]{17}`)
	plateCandidateRE = regexp.MustCompile(`^[A-Z0-9]{5,10}$`)
)

// firstLine extracts a unit-number candidate from recognized text.
func firstLine(s string) string {
	return text.FirstLine(s, maxUnitNumberLength)
}

// joinLines flattens recognized text for label parsing.
func joinLines(s string) string {
	return text.JoinLines(text.Normalize(s))
}

// vinFromText scans recognizer output for an embedded 17-character VIN
// candidate. Vendors occasionally return the VIN inside surrounding label
// text instead of the bare number.
func vinFromText(s string) string {
	return vinCandidateRE.FindString(strings.ToUpper(s))
}

// plateFromText picks a plate candidate from noisy recognizer output: the
// first line that, with spaces and dashes removed, is 5 to 10 alphanumerics.
func plateFromText(s string) string {
	for _, line := range strings.Split(text.Normalize(s), "\n") {
		candidate := strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(line))

		if plateCandidateRE.MatchString(candidate) {
			return candidate
		}
	}

	return ""
}
