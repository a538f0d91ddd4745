package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomberos-cl/runkit/pkg/i18n"
	"github.com/bomberos-cl/runkit/pkg/validator"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	tr, err := i18n.Default(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	assert.Equal(t, "es", tr.DefaultLanguage())

	for _, key := range []string{
		validator.KeyRUNRequired,
		validator.KeyRUNFormat,
		validator.KeyRUNCheckDigit,
		"validation.required",
		"runcheck.summary",
	} {
		for _, lang := range tr.SupportedLanguages() {
			assert.True(t, tr.HasTranslation(lang, key), "%s missing %s", lang, key)
		}
	}
}

func TestLocalize(t *testing.T) {
	t.Parallel()

	tr, err := i18n.Default(context.Background())
	require.NoError(t, err)

	err = validator.Apply(
		validator.RequiredRUN("owner", ""),
		validator.ValidRUNFormat("member", "12.345"),
		validator.ValidRUNCheckDigit("chief", "12.345.678-9"),
	)
	require.Error(t, err)
	errs := validator.ExtractValidationErrors(err)

	t.Run("spanish", func(t *testing.T) {
		t.Parallel()
		msgs := i18n.Localize(tr, "es", errs)
		assert.Equal(t, []string{"El RUN es obligatorio."}, msgs["owner"])
		assert.Equal(t, []string{"El formato del RUN no es válido, se espera un formato como 12345678-9."}, msgs["member"])
		assert.Equal(t, []string{"El dígito verificador es incorrecto."}, msgs["chief"])
	})

	t.Run("english via match", func(t *testing.T) {
		t.Parallel()
		msgs := i18n.Localize(tr, tr.Match("en-US"), errs)
		assert.Equal(t, []string{"The check digit is incorrect."}, msgs["chief"])
	})
}

func TestLocalize_GroupsByField(t *testing.T) {
	t.Parallel()

	tr, err := i18n.Default(context.Background())
	require.NoError(t, err)

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "run", Message: "RUN is required", TranslationKey: validator.KeyRUNRequired})
	errs.Add(validator.ValidationError{Field: "leader_run", Message: "RUN check digit is incorrect", TranslationKey: validator.KeyRUNCheckDigit})
	errs.Add(validator.ValidationError{Field: "run", Message: "RUN check digit is incorrect", TranslationKey: validator.KeyRUNCheckDigit})

	msgs := i18n.Localize(tr, "en", errs)
	assert.Len(t, msgs, 2)
	assert.Equal(t, []string{"RUN is required.", "The check digit is incorrect."}, msgs["run"])
	assert.Equal(t, []string{"The check digit is incorrect."}, msgs["leader_run"])
	assert.Empty(t, i18n.Localize(tr, "en", nil))
}

func TestMessage(t *testing.T) {
	t.Parallel()

	tr, err := i18n.Default(context.Background())
	require.NoError(t, err)

	unknown := validator.ValidationError{
		Field:          "x",
		Message:        "custom failure",
		TranslationKey: "validation.not_in_catalogue",
	}
	assert.Equal(t, "custom failure", i18n.Message(tr, "es", unknown))
	assert.Equal(t, "custom failure", i18n.Message(nil, "es", unknown))

	required := validator.ValidationError{
		Field:             "name",
		Message:           "required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": "name"},
	}
	assert.Equal(t, "The name field is required.", i18n.Message(tr, "en", required))
}
