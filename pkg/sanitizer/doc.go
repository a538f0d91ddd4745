// Package sanitizer provides small, composable helpers that clean free-form
// input before it reaches the RUN parser, and that mask RUNs before they are
// logged.
//
// Helpers are plain func(string) string values, so they chain with Apply and
// Compose:
//
//	clean := sanitizer.Compose(sanitizer.StripBOM, sanitizer.Trim)
//	line := clean("\ufeff 12.345.678-5 ") // "12.345.678-5"
//
// InputLine is the pipeline used for file rows and command-line arguments. It
// never truncates; Echo shortens a line only when it is repeated back to the
// user.
//
// MaskRUN keeps the last three body digits and the check character visible:
//
//	sanitizer.MaskRUN("12345678-5") // "**.***.678-5"
//
// # Error handling
//
// None of the helpers returns an error; they always fall back to a safe
// result. There is no global state, so every helper is safe for concurrent
// use.
package sanitizer
