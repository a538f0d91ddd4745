package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomberos-cl/runkit/pkg/validator"
)

type createVolunteerRequest struct {
	Name      string `json:"name" validate:"required"`
	RUN       string `json:"run" validate:"required,run"`
	LeaderRUN string `json:"leader_run,omitempty" validate:"omitempty,run"`
}

type lookupRequest struct {
	RUN string `json:"run" validate:"run_format,run_dv"`
}

func TestValidate_Struct(t *testing.T) {
	v := validator.New()

	t.Run("valid request", func(t *testing.T) {
		err := v.Struct(createVolunteerRequest{Name: "Ana", RUN: "12.345.678-5"})
		assert.NoError(t, err)

		err = v.Struct(createVolunteerRequest{Name: "Ana", RUN: "12345670-k", LeaderRUN: "7.654.321-6"})
		assert.NoError(t, err)
	})

	t.Run("format and check digit use distinct keys", func(t *testing.T) {
		err := v.Struct(createVolunteerRequest{Name: "Ana", RUN: "12.3K5", LeaderRUN: "12.345.678-9"})
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)

		runErrs := verrs.GetErrors("run")
		require.Len(t, runErrs, 1)
		assert.Equal(t, validator.KeyRUNFormat, runErrs[0].TranslationKey)

		leaderErrs := verrs.GetErrors("leader_run")
		require.Len(t, leaderErrs, 1)
		assert.Equal(t, validator.KeyRUNCheckDigit, leaderErrs[0].TranslationKey)
	})

	t.Run("missing fields", func(t *testing.T) {
		err := v.Struct(createVolunteerRequest{})
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "name", verrs[0].Field)
		assert.Equal(t, "run", verrs[1].Field)
	})

	t.Run("noise-only value is a format error", func(t *testing.T) {
		verrs := validator.ExtractValidationErrors(v.Struct(lookupRequest{RUN: "abc"}))
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.KeyRUNFormat, verrs[0].TranslationKey)

		assert.NoError(t, v.Struct(lookupRequest{}))
	})

	t.Run("separate tags", func(t *testing.T) {
		verrs := validator.ExtractValidationErrors(v.Struct(lookupRequest{RUN: "123"}))
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.KeyRUNFormat, verrs[0].TranslationKey)

		verrs = validator.ExtractValidationErrors(v.Struct(lookupRequest{RUN: "12345678-0"}))
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.KeyRUNCheckDigit, verrs[0].TranslationKey)

		assert.NoError(t, v.Struct(lookupRequest{RUN: "12345678-5"}))
	})

	t.Run("non-struct input", func(t *testing.T) {
		err := v.Struct("not a struct")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Nil(t, validator.ExtractValidationErrors(err))
	})
}

func TestValidate_Var(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Var("run", "12.345.678-5", "required,run"))

	verrs := validator.ExtractValidationErrors(v.Var("run", "12.345.678-9", "required,run"))
	require.Len(t, verrs, 1)
	assert.Equal(t, "run", verrs[0].Field)
	assert.Equal(t, validator.KeyRUNCheckDigit, verrs[0].TranslationKey)

	verrs = validator.ExtractValidationErrors(v.Var("run", 12345678, "run"))
	require.Len(t, verrs, 1)
	assert.Equal(t, validator.KeyRUNFormat, verrs[0].TranslationKey, "non-string values are malformed")
}
