package carrier

import (
	"fmt"
	"regexp"
	"strings"
)

// IDType identifies the kind of carrier identifier printed on a vehicle.
type IDType string

const (
	// TypeDOT is a US Department of Transportation number, fixed 7 digits.
	TypeDOT IDType = "dot"

	// TypeMC is a Motor Carrier number, 5-7 digits.
	TypeMC IDType = "mc"

	// TypeCA is a California carrier number, no format constraint.
	TypeCA IDType = "ca"
)

const (
	dotLength   = 7
	mcMinLength = 5
	mcMaxLength = 7
)

var (
	// label followed by a digit run; the ranges allow one extra or missing
	// digit from OCR noise, normalization tightens them afterwards.
	dotLabelPattern = regexp.MustCompile(`(?i)(?:US\s*)?DOT\s*[#:]?\s*(\d{6,8})\b`)
	mcLabelPattern  = regexp.MustCompile(`(?i)\bMC\s*[#:]?\s*(\d{5,8})\b`)

	nonDigits = regexp.MustCompile(`\D`)
)

// Parsed is the result of extracting carrier identifiers from OCR text. When
// both a DOT and an MC number are discoverable, DOT is preferred as the
// primary identifier.
type Parsed struct {
	DOT string
	MC  string

	PreferredType IDType
	PreferredNum  string
}

func digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

func normalizeDOT(num string) string {
	d := digits(num)

	if len(d) == dotLength {
		return d
	}

	if len(d) > dotLength {
		return d[:dotLength]
	}

	// 6 digits is accepted as a near-match, anything shorter is unusable
	if len(d) >= dotLength-1 {
		return d
	}

	return ""
}

func normalizeMC(num string) string {
	d := digits(num)

	if len(d) >= mcMinLength && len(d) <= mcMaxLength {
		return d
	}

	if len(d) > mcMaxLength {
		return d[:mcMaxLength]
	}

	return ""
}

// Parse extracts DOT and MC numbers from raw OCR text. Label context
// ("US DOT 3916245", "MC 1447165") is the most reliable signal and wins when
// present; otherwise the digit-length heuristic of ParseDigits applies.
func Parse(raw string) Parsed {
	text := strings.TrimSpace(raw)

	if text == "" {
		return Parsed{PreferredType: TypeDOT}
	}

	var dot, mc string

	if m := dotLabelPattern.FindStringSubmatch(text); m != nil {
		dot = normalizeDOT(m[1])
	}

	if m := mcLabelPattern.FindStringSubmatch(text); m != nil {
		mc = normalizeMC(m[1])
	}

	if dot != "" {
		return Parsed{DOT: dot, MC: mc, PreferredType: TypeDOT, PreferredNum: dot}
	}

	if mc != "" {
		return Parsed{MC: mc, PreferredType: TypeMC, PreferredNum: mc}
	}

	return ParseDigits(text)
}

// ParseDigits classifies a raw value that may be a bare or concatenated digit
// run, e.g. "39162451447165" from a placard where DOT and MC sit side by side.
// The split assumes the 7-digit DOT comes first; carrier documents may print
// MC first, so this is a heuristic, not a guaranteed-correct parse.
func ParseDigits(raw string) Parsed {
	d := digits(raw)

	if d == "" {
		return Parsed{PreferredType: TypeDOT}
	}

	if len(d) == dotLength {
		return Parsed{DOT: d, PreferredType: TypeDOT, PreferredNum: d}
	}

	if len(d) >= mcMinLength && len(d) <= mcMaxLength {
		return Parsed{MC: d, PreferredType: TypeMC, PreferredNum: d}
	}

	if len(d) >= 12 && len(d) <= 15 {
		dot := d[:dotLength]
		mc := d[dotLength:]

		return Parsed{DOT: dot, MC: mc, PreferredType: TypeDOT, PreferredNum: dot}
	}

	if len(d) > dotLength {
		d = d[:dotLength]
	}

	return Parsed{PreferredType: TypeDOT, PreferredNum: d}
}

// ExtractDOT returns only the US DOT number found in raw text, or "".
func ExtractDOT(raw string) string {
	parsed := Parse(raw)

	if parsed.DOT != "" {
		return parsed.DOT
	}

	if parsed.PreferredType == TypeDOT {
		return parsed.PreferredNum
	}

	return ""
}

type NonDigitError struct{}

func (e *NonDigitError) Error() string {
	return "use only digits (no letters or spaces)"
}

type LengthError struct {
	Type IDType
	Got  int
}

func (e *LengthError) Error() string {
	if e.Type == TypeDOT {
		return fmt.Sprintf("dot number must be exactly %d digits (got %d)", dotLength, e.Got)
	}

	return fmt.Sprintf("mc number must be %d-%d digits (got %d)", mcMinLength, mcMaxLength, e.Got)
}

// Validate checks a finalized type/number pair before submission. An empty
// number is always valid, the field may be completed by the user later.
func Validate(typ IDType, num string) error {
	n := strings.TrimSpace(num)

	if n == "" {
		return nil
	}

	switch typ {
	case TypeDOT:
		if digits(n) != n {
			return &NonDigitError{}
		}

		if len(n) != dotLength {
			return &LengthError{Type: TypeDOT, Got: len(n)}
		}

	case TypeMC:
		if digits(n) != n {
			return &NonDigitError{}
		}

		if len(n) < mcMinLength || len(n) > mcMaxLength {
			return &LengthError{Type: TypeMC, Got: len(n)}
		}
	}

	// ca numbers carry no format constraint

	return nil
}
