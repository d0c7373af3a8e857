package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email"`
}

func TestCheckStructPassesValidInput(t *testing.T) {
	v := NewValidator()
	err := CheckStruct(v, signupForm{Name: "Ana", Email: "ana@example.com"}, "en")
	require.NoError(t, err)
}

func TestCheckStructCollectsFieldErrors(t *testing.T) {
	v := NewValidator()
	err := CheckStruct(v, signupForm{Email: "not-an-email"}, "en")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	require.Equal(t, "Name", verr.Fields[0].Field)
	require.Equal(t, "field Name is required", verr.Fields[0].Message)
	require.Equal(t, "Email", verr.Fields[1].Field)
	require.Equal(t, "field Email must be a valid email address", verr.Fields[1].Message)
}

func TestCheckStructLocalizesMessages(t *testing.T) {
	v := NewValidator()
	err := CheckStruct(v, signupForm{Email: "ana@example.com"}, "pt-BR")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	require.Equal(t, "o campo Name é obrigatório", verr.Fields[0].Message)
}

func TestCheckStructFallsBackToEnglish(t *testing.T) {
	v := NewValidator()
	err := CheckStruct(v, signupForm{Email: "ana@example.com"}, "ja-JP")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "field Name is required", verr.Fields[0].Message)
}
