package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveControlChars drops control characters, keeping tabs and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripBOM removes a leading UTF-8 byte order mark, as written by
// spreadsheet exports.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

// StripComment removes everything from the first '#' on.
func StripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// LimitLength truncates s to maxLength runes. It is meant for echoing input
// back to users, never for input that is still to be parsed.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

// MaxEchoLength bounds how much of an input line reports and messages repeat.
// A formatted RUN is twelve characters.
const MaxEchoLength = 64

// InputLine prepares one line of free-form input (a file row, a CLI argument)
// for RUN parsing. Length is left alone: RUN cleaning drops any noise around
// the identifier, so cutting the raw text could remove digits.
var InputLine = Compose(
	StripBOM,
	StripComment,
	RemoveControlChars,
	Trim,
)

// Echo shortens a line for display in reports and messages.
func Echo(s string) string {
	return LimitLength(s, MaxEchoLength)
}
