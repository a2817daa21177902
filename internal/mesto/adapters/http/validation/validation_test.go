package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto/internal/mesto/adapters/http/validation"
	"mesto/internal/mesto/domain/apperr"
)

func TestIsURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://www.example.com/path/to/img.png",
		"https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png",
		"https://example.com/search?q=go&page=2#top",
	}
	invalid := []string{
		"",
		"example.com",
		"ftp://example.com",
		"https://",
		"https://example",
		"javascript:alert(1)",
		"https://exa mple.com",
	}

	for _, s := range valid {
		assert.True(t, validation.IsURL(s), s)
	}
	for _, s := range invalid {
		assert.False(t, validation.IsURL(s), s)
	}
}

func TestIsObjectID(t *testing.T) {
	assert.True(t, validation.IsObjectID("65a1b2c3d4e5f6a7b8c9d0e1"))
	assert.False(t, validation.IsObjectID("65A1B2C3D4E5F6A7B8C9D0E1"), "uppercase is rejected")
	assert.False(t, validation.IsObjectID("65a1b2c3d4e5f6a7b8c9d0e"))
	assert.False(t, validation.IsObjectID("65a1b2c3d4e5f6a7b8c9d0e1f"))
	assert.False(t, validation.IsObjectID("zza1b2c3d4e5f6a7b8c9d0e1"))
}

type profile struct {
	Name   string `json:"name" validate:"required,min=2,max=30"`
	Avatar string `json:"avatar,omitempty" validate:"omitempty,mestourl"`
	Email  string `json:"email" validate:"required,email"`
}

func TestNew_StructViolations(t *testing.T) {
	v := validation.New()

	t.Run("valid struct", func(t *testing.T) {
		require.NoError(t, v.Struct(&profile{Name: "Жак", Email: "a@a.com"}))
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		require.NoError(t, v.Struct(&profile{Name: "Жа", Email: "a@a.com"}))
	})

	t.Run("violations use json names", func(t *testing.T) {
		err := v.Struct(&profile{Name: "Ж", Avatar: "not-a-url", Email: "bad"})
		require.Error(t, err)

		violations := validation.Violations(err, "")
		assert.ElementsMatch(t, []apperr.FieldViolation{
			{Field: "name", Rule: "min"},
			{Field: "avatar", Rule: validation.RuleURL},
			{Field: "email", Rule: "email"},
		}, violations)
	})
}

func TestNew_VarViolations(t *testing.T) {
	v := validation.New()

	require.NoError(t, v.Var("65a1b2c3d4e5f6a7b8c9d0e1", "required,"+validation.RuleObjectID))

	err := v.Var("123", "required,"+validation.RuleObjectID)
	require.Error(t, err)
	assert.Equal(t, []apperr.FieldViolation{{Field: "cardId", Rule: validation.RuleObjectID}},
		validation.Violations(err, "cardId"))
}

func TestViolations_NonValidatorError(t *testing.T) {
	assert.Nil(t, validation.Violations(assert.AnError, "x"))
}
