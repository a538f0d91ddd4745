package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors via errors.Is, and wraps
// misuse of the struct validator (e.g. passing a non-struct).
var ErrValidationFailed = errors.New("validation failed")
