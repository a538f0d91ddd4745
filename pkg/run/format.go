package run

import "strings"

// FormatForDisplay renders raw as "12.345.678-9".
//
// It is meant to run on every keystroke, so it never fails: an empty or
// single-character value is returned as cleaned, and a value whose body is
// not numeric falls back to the cleaned, unsplit string. Leading zeros of the
// body are dropped.
func FormatForDisplay(raw string) string {
	body, check, ok := normalize(raw)
	if !ok {
		return body
	}
	return groupThousands(body) + "-" + check
}

// FormatForAPI renders raw in the canonical wire format "12345678-9", with
// the same fallbacks as FormatForDisplay.
func FormatForAPI(raw string) string {
	body, check, ok := normalize(raw)
	if !ok {
		return body
	}
	return body + "-" + check
}

// normalize returns the stripped body and check character. When the value
// cannot be split meaningfully, ok is false and body holds the cleaned value.
func normalize(raw string) (body, check string, ok bool) {
	cleaned := Clean(raw)
	if len(cleaned) < 2 {
		return cleaned, "", false
	}

	body, check = cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1:]
	if !isDigits(body) {
		return cleaned, "", false
	}
	return trimLeadingZeros(body), check, true
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
