package run

import "strconv"

// ComputeCheckDigit returns the modulo-11 check character for body.
//
// Digits are weighted right to left with the cycle 2,3,4,5,6,7,2,3,…; the
// result is 11 - sum%11, where 11 maps to "0" and 10 maps to "K".
// body must be a non-empty string of decimal digits, otherwise
// ErrInvalidBody is returned.
func ComputeCheckDigit(body string) (string, error) {
	if !isDigits(body) {
		return "", ErrInvalidBody
	}

	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	switch result := 11 - sum%11; result {
	case 11:
		return "0", nil
	case 10:
		return "K", nil
	default:
		return strconv.Itoa(result), nil
	}
}
