package run

import "strings"

const (
	// MinBodyLength and MaxBodyLength bound the body length accepted at the
	// backend boundary (`\d{7,8}-[0-9K]`).
	MinBodyLength = 7
	MaxBodyLength = 8
)

// Clean strips every character except decimal digits and k/K, and uppercases
// the K. The result may be empty.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == 'K':
			return r
		case r == 'k':
			return 'K'
		default:
			return -1
		}
	}, raw)
}

// Split cleans raw and separates it into body and check character.
// ok is false when the cleaned value is shorter than two characters.
func Split(raw string) (body, check string, ok bool) {
	cleaned := Clean(raw)
	if len(cleaned) < 2 {
		return "", "", false
	}
	return cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1:], true
}

// IsStructurallyValid reports whether s, once cleaned, has at least two
// characters and an all-digit body. The last character is always in [0-9K]
// by construction of Clean.
func IsStructurallyValid(s string) bool {
	body, _, ok := Split(s)
	return ok && isDigits(body)
}

// ValidateChecksum reports whether the check character of s matches the
// modulo-11 digit of its body. Structurally invalid input yields false.
func ValidateChecksum(s string) bool {
	body, check, ok := Split(s)
	if !ok || !isDigits(body) {
		return false
	}

	expected, err := ComputeCheckDigit(body)
	if err != nil {
		return false
	}
	return check == expected
}

// IsValid reports whether raw is a real, checksum-correct RUN. It ignores
// separators, surrounding whitespace and the case of the check character.
func IsValid(raw string) bool {
	return IsStructurallyValid(raw) && ValidateChecksum(raw)
}

// Check classifies raw. It returns nil for a valid RUN, otherwise ErrEmpty,
// ErrInvalidFormat or ErrInvalidCheckDigit, in that order of precedence.
func Check(raw string) error {
	cleaned := Clean(raw)
	switch {
	case cleaned == "":
		return ErrEmpty
	case !IsStructurallyValid(cleaned):
		return ErrInvalidFormat
	case !ValidateChecksum(cleaned):
		return ErrInvalidCheckDigit
	}
	return nil
}

// HasCanonicalLength reports whether the cleaned body of raw, leading zeros
// included, is between MinBodyLength and MaxBodyLength digits long.
func HasCanonicalLength(raw string) bool {
	body, _, ok := Split(raw)
	if !ok || !isDigits(body) {
		return false
	}
	return len(body) >= MinBodyLength && len(body) <= MaxBodyLength
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// trimLeadingZeros collapses a digit string to its numeric magnitude, with a
// floor of "0".
func trimLeadingZeros(body string) string {
	trimmed := strings.TrimLeft(body, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
