package shared

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// supported lists the locales user messages are available in; the first tag
// is the fallback.
var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var messagesEN = map[string]string{
	"required": "field %s is required",
	"email":    "field %s must be a valid email address",
	"min":      "field %s is below the minimum length or value",
	"max":      "field %s exceeds the maximum length or value",
	"gte":      "field %s must not be negative",
	"invalid":  "field %s is invalid",
}

var messagesPT = map[string]string{
	"required": "o campo %s é obrigatório",
	"email":    "o campo %s deve ser um email válido",
	"min":      "o campo %s está abaixo do mínimo permitido",
	"max":      "o campo %s excede o máximo permitido",
	"gte":      "o campo %s não pode ser negativo",
	"invalid":  "o campo %s é inválido",
}

// NewValidator builds the validator used by all request handlers.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// CheckStruct runs struct validation and translates failures into a
// ValidationError with user messages localized per the Accept-Language value.
func CheckStruct(v *validator.Validate, s any, locale string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	_, idx := language.MatchStrings(matcher, locale)
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: userMessage(supported[idx], fe),
			Detail:  fe.Error(),
		})
	}
	return &ValidationError{Fields: fields}
}

func userMessage(tag language.Tag, fe validator.FieldError) string {
	msgs := messagesEN
	if tag == language.BrazilianPortuguese {
		msgs = messagesPT
	}
	format, ok := msgs[fe.Tag()]
	if !ok {
		format = msgs["invalid"]
	}
	return fmt.Sprintf(format, fe.Field())
}
