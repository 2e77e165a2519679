package vin

import (
	"fmt"
	"strings"
)

// Length is the fixed length of a Vehicle Identification Number (ISO 3779).
const Length = 17

// checkPos is the 0-indexed position of the check digit.
const checkPos = 8

// values maps each valid VIN character to its transliteration value for the
// check-digit calculation. I, O and Q are not valid VIN characters.
var values = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// weights holds the position weights; the check-digit position carries weight 0
// so it never contributes to its own sum.
var weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

type LengthError struct {
	Got int
}

func (e *LengthError) Error() string {
	if e.Got == 0 {
		return "vin is required"
	}

	return fmt.Sprintf("vin must be %d characters (got %d)", Length, e.Got)
}

type ExcludedCharError struct {
	Char byte
}

func (e *ExcludedCharError) Error() string {
	return "vin cannot contain I, O, or Q"
}

type InvalidCharError struct {
	Char byte
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("vin can only contain letters A-H, J-N, P-R, S-Z and digits 0-9 (got %q)", string(e.Char))
}

type CheckDigitError struct {
	Expected byte
	Actual   byte
}

func (e *CheckDigitError) Error() string {
	return fmt.Sprintf("check digit invalid (expected %s, got %s)", string(e.Expected), string(e.Actual))
}

// Normalize trims, uppercases and removes all whitespace.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}

		return r
	}, strings.ToUpper(strings.TrimSpace(raw)))
}

// CheckDigit computes the expected check-digit character ('0'-'9' or 'X') for a
// 17-character VIN. The second return is false if the input has the wrong
// length or contains characters outside the transliteration table.
func CheckDigit(vin string) (byte, bool) {
	if len(vin) != Length {
		return 0, false
	}

	sum := 0

	for i := 0; i < Length; i++ {
		if i == checkPos {
			continue
		}

		v, ok := values[vin[i]]

		if !ok {
			return 0, false
		}

		sum += v * weights[i]
	}

	rem := sum % 11

	if rem == 10 {
		return 'X', true
	}

	return byte('0' + rem), true
}

// Validate checks a raw VIN string: length, excluded characters (I/O/Q),
// character set and the ISO 3779 check digit. It returns nil for a valid VIN
// and a typed error describing the first failed rule otherwise.
func Validate(raw string) error {
	s := Normalize(raw)

	if len(s) != Length {
		return &LengthError{Got: len(s)}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == 'I' || c == 'O' || c == 'Q' {
			return &ExcludedCharError{Char: c}
		}

		if _, ok := values[c]; !ok {
			return &InvalidCharError{Char: c}
		}
	}

	expected, ok := CheckDigit(s)

	if !ok {
		return &LengthError{Got: len(s)}
	}

	if actual := s[checkPos]; actual != expected {
		return &CheckDigitError{Expected: expected, Actual: actual}
	}

	return nil
}

// alternatives lists the common OCR confusions, letter to digit and back.
var alternatives = map[byte]byte{
	'I': '1', '1': 'I',
	'O': '0', '0': 'O',
	'Q': '0',
	'S': '5', '5': 'S',
	'B': '8', '8': 'B',
	'Z': '2', '2': 'Z',
	'G': '6', '6': 'G',
}

// checkDigitCandidates are tried at the check-digit position regardless of the
// confusion table, since any of them is a plausible OCR reading there.
var checkDigitCandidates = []byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'X'}

func correctAt(vin string, pos int) (string, bool) {
	alt, ok := alternatives[vin[pos]]

	if !ok {
		return "", false
	}

	candidate := vin[:pos] + string(alt) + vin[pos+1:]

	if Validate(candidate) == nil {
		return candidate, true
	}

	return "", false
}

// correctCheckDigit rewrites only the check-digit position. It always
// succeeds for an otherwise well-formed VIN, so it runs after every other
// substitution has been tried.
func correctCheckDigit(vin string) (string, bool) {
	for _, ch := range checkDigitCandidates {
		if ch == vin[checkPos] {
			continue
		}

		candidate := vin[:checkPos] + string(ch) + vin[checkPos+1:]

		if Validate(candidate) == nil {
			return candidate, true
		}
	}

	return "", false
}

// Correct applies rule-based OCR corrections to a scanned VIN: normalize, then
// replace all I/O/Q with their digit look-alikes, then try single-character
// substitutions from the confusion table, and finally the check digit itself.
// Inputs that are not 17 characters after normalization are returned as-is;
// the caller is expected to ask for a re-capture. Correct never guarantees a
// valid result; it returns the normalized original when no substitution helps.
func Correct(raw string) string {
	s := Normalize(raw)

	if len(s) != Length {
		return s
	}

	replacer := strings.NewReplacer("I", "1", "O", "0", "Q", "0")
	replaced := replacer.Replace(s)

	if Validate(replaced) == nil {
		return replaced
	}

	for i := 0; i < Length; i++ {
		if fixed, ok := correctAt(s, i); ok {
			return fixed
		}

		if fixed, ok := correctAt(replaced, i); ok {
			return fixed
		}
	}

	if fixed, ok := correctCheckDigit(replaced); ok {
		return fixed
	}

	return s
}
