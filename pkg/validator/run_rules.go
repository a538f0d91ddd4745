package validator

import (
	"github.com/bomberos-cl/runkit/pkg/run"
)

// Translation keys for RUN failures. Callers render format and check-digit
// problems differently, so each has its own key.
const (
	KeyRUNRequired   = "validation.run_required"
	KeyRUNFormat     = "validation.run_format"
	KeyRUNCheckDigit = "validation.run_check_digit"
)

// RUNExample is the pattern shown to users in format errors.
const RUNExample = "12345678-9"

// RequiredRUN fails when value has no RUN characters at all: empty,
// whitespace, separators or other noise only. This is the same notion of
// "not provided" that run.Check reports as ErrEmpty.
func RequiredRUN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !notProvided(value)
		},
		Error: runRequiredError(field),
	}
}

// ValidRUNFormat checks the shape of a RUN: a 7 or 8 digit body followed by
// a digit or K once separators are removed. Values RequiredRUN rejects pass
// so optional fields can be combined with it.
func ValidRUNFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return notProvided(value) || hasRUNShape(value)
		},
		Error: runFormatError(field),
	}
}

// ValidRUNCheckDigit verifies the modulo-11 check character. Values that
// ValidRUNFormat rejects pass here, so a bad shape is reported only once.
func ValidRUNCheckDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !hasRUNShape(value) || run.ValidateChecksum(value)
		},
		Error: runCheckDigitError(field),
	}
}

// ValidRUN bundles the format and check-digit rules for a field.
//
//	err := validator.Apply(append(
//	    []validator.Rule{validator.RequiredRUN("run", req.RUN)},
//	    validator.ValidRUN("run", req.RUN)...,
//	)...)
func ValidRUN(field, value string) []Rule {
	return []Rule{
		ValidRUNFormat(field, value),
		ValidRUNCheckDigit(field, value),
	}
}

// ValidRUNAnyLength is ValidRUN without the 7 to 8 digit body bound, for
// legacy records with short or padded bodies.
func ValidRUNAnyLength(field, value string) []Rule {
	return []Rule{
		{
			Check: func() bool {
				return notProvided(value) || run.IsStructurallyValid(value)
			},
			Error: runFormatError(field),
		},
		{
			Check: func() bool {
				return !run.IsStructurallyValid(value) || run.ValidateChecksum(value)
			},
			Error: runCheckDigitError(field),
		},
	}
}

func notProvided(value string) bool {
	return run.Clean(value) == ""
}

func hasRUNShape(value string) bool {
	return run.IsStructurallyValid(value) && run.HasCanonicalLength(value)
}

func runRequiredError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "RUN is required",
		TranslationKey: KeyRUNRequired,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

func runFormatError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "RUN format is invalid, expected pattern like " + RUNExample,
		TranslationKey: KeyRUNFormat,
		TranslationValues: map[string]any{
			"field":   field,
			"example": RUNExample,
		},
	}
}

func runCheckDigitError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "RUN check digit is incorrect",
		TranslationKey: KeyRUNCheckDigit,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}
