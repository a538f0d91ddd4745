package validator

import (
	"errors"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// Struct tags registered by New.
const (
	// TagRUN requires a well-formed RUN with a correct check digit.
	TagRUN = "run"
	// TagRUNFormat checks only the shape (see ValidRUNFormat).
	TagRUNFormat = "run_format"
	// TagRUNCheckDigit checks only the check digit (see ValidRUNCheckDigit).
	TagRUNCheckDigit = "run_dv"
)

// Validate wraps go-playground/validator so struct-tag validation reports the
// same translation keys as the Rule helpers.
//
//	type CreateVolunteerRequest struct {
//	    Name string `json:"name" validate:"required"`
//	    RUN  string `json:"run" validate:"required,run"`
//	}
//
//	err := validator.New().Struct(req)
type Validate struct {
	v *playground.Validate
}

// New returns a Validate with the RUN tags registered and field names taken
// from json tags.
func New() *Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(TagRUN, stringField(func(s string) bool {
		return hasRUNShape(s) && ValidRUNCheckDigit("", s).Check()
	}))
	// Blank fields are left to "required"; any other text must look like a
	// RUN, so a noise-only value is a format error rather than a missing one.
	_ = v.RegisterValidation(TagRUNFormat, stringField(func(s string) bool {
		return strings.TrimSpace(s) == "" || hasRUNShape(s)
	}))
	_ = v.RegisterValidation(TagRUNCheckDigit, stringField(func(s string) bool {
		return ValidRUNCheckDigit("", s).Check()
	}))

	return &Validate{v: v}
}

// RegisterValidation adds a custom tag to the underlying validator.
func (val *Validate) RegisterValidation(tag string, fn playground.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// Struct validates s and converts field failures into ValidationErrors.
func (val *Validate) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *playground.InvalidValidationError
	if errors.As(err, &invalid) {
		return errors.Join(ErrValidationFailed, err)
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var out ValidationErrors
	for _, fe := range fieldErrs {
		out.Add(fromFieldError(fe))
	}
	return out
}

// Var validates a single value against a tag expression such as "required,run".
func (val *Validate) Var(field string, value any, tag string) error {
	err := val.v.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var out ValidationErrors
	for _, fe := range fieldErrs {
		ve := fromFieldError(fe)
		ve.Field = field
		if ve.TranslationValues != nil {
			ve.TranslationValues["field"] = field
		}
		out.Add(ve)
	}
	return out
}

func fromFieldError(fe playground.FieldError) ValidationError {
	field := fe.Field()
	value, _ := fe.Value().(string)

	switch fe.Tag() {
	case TagRUNFormat:
		return runFormatError(field)
	case TagRUNCheckDigit:
		return runCheckDigitError(field)
	case TagRUN:
		if !hasRUNShape(value) {
			return runFormatError(field)
		}
		return runCheckDigitError(field)
	}

	return ValidationError{
		Field:          field,
		Message:        strings.TrimSpace(fe.Tag() + " " + fe.Param()),
		TranslationKey: "validation." + fe.Tag(),
		TranslationValues: map[string]any{
			"field": field,
			"param": fe.Param(),
		},
	}
}

func stringField(check func(string) bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return check(f.String())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
