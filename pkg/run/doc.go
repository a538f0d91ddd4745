// Package run validates, normalises and formats Chilean national identity
// numbers (RUN, also written RUT for companies).
//
// A RUN is a numeric body followed by a single check character computed with
// the modulo-11 algorithm. The check character is a decimal digit or the
// letter K. The same logical value can be written in several ways:
//
//   - raw:     whatever the user typed, e.g. " 12.345.678-k "
//   - cleaned: only digits and an uppercase K, e.g. "12345678K"
//   - display: thousands-grouped body, e.g. "12.345.678-K"
//   - API:     canonical wire/storage form, e.g. "12345678-K"
//
// # Usage
//
//	if !run.IsValid(input) {
//	    // reject
//	}
//	field.Value = run.FormatForDisplay(input) // on every keystroke
//	payload.RUN = run.FormatForAPI(input)     // before calling the backend
//
// Callers that must tell a malformed value apart from a wrong check digit use
// Check, which returns one of the sentinel errors ErrEmpty, ErrInvalidFormat
// or ErrInvalidCheckDigit:
//
//	switch err := run.Check(input); {
//	case err == nil:
//	case errors.Is(err, run.ErrInvalidCheckDigit):
//	    // "check digit is incorrect"
//	default:
//	    // "RUN format is invalid, expected pattern like 12345678-9"
//	}
//
// For typed access, Parse returns a RUN value that marshals to and from the
// API format as text, so it can be embedded directly in JSON payloads.
//
// # Error Handling
//
// Predicates and formatters never panic and never return errors: malformed
// input yields false or a best-effort string. This keeps the helpers safe to
// call on every keystroke and on untrusted request bodies.
//
// # Concurrency
//
// The package holds no state. Every function is safe for concurrent use.
package run
