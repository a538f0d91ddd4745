package run

import "errors"

var (
	// ErrEmpty is returned when the input contains no RUN characters at all.
	ErrEmpty = errors.New("run: empty value")

	// ErrInvalidFormat is returned when the cleaned value is too short or its
	// body contains something other than decimal digits.
	ErrInvalidFormat = errors.New("run: invalid format")

	// ErrInvalidCheckDigit is returned when the value is well formed but the
	// check character does not match the one computed from the body.
	ErrInvalidCheckDigit = errors.New("run: invalid check digit")

	// ErrInvalidBody is returned by ComputeCheckDigit for an empty or
	// non-numeric body.
	ErrInvalidBody = errors.New("run: body must be a non-empty string of digits")
)
