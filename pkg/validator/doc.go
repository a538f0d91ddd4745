// Package validator is the request-validation layer for RUN fields.
//
// It offers two front doors that report identical, translation-friendly
// errors:
//
//   - Rule helpers (RequiredRUN, ValidRUNFormat, ValidRUNCheckDigit, ValidRUN)
//     evaluated with Apply, for hand-written validation code.
//   - Struct tags "run", "run_format" and "run_dv" registered on a
//     go-playground/validator instance by New, for request structs.
//
// A malformed value and a wrong check digit carry different translation keys
// (KeyRUNFormat and KeyRUNCheckDigit) so the caller can show "expected
// pattern like 12345678-9" or "check digit is incorrect" accordingly. A value
// is only ever reported once: the check-digit rule passes values the format
// rule already rejects.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredRUN("run", req.RUN),
//	    validator.ValidRUNFormat("run", req.RUN),
//	    validator.ValidRUNCheckDigit("run", req.RUN),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        msg := translator.T(lang, e.TranslationKey, "field", e.Field)
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. Use ExtractValidationErrors to inspect individual failures.
//
// The package is stateless apart from the go-playground validator, which is
// itself safe for concurrent use once New returns.
package validator
