// Package validation настраивает проверку тел и параметров запросов
// на go-playground/validator.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"mesto/internal/mesto/domain/apperr"
)

// Имена собственных правил.
const (
	RuleURL      = "mestourl"
	RuleObjectID = "objectid"
)

var (
	urlPattern      = regexp.MustCompile(`^https?:\/\/(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	objectIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)
)

// New создает валидатор с правилами mestourl и objectid.
// В описании нарушений поля называются по json-тегам.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// Ошибки регистрации возможны только при пустом имени правила.
	_ = v.RegisterValidation(RuleURL, func(fl validator.FieldLevel) bool {
		return IsURL(fl.Field().String())
	})
	_ = v.RegisterValidation(RuleObjectID, func(fl validator.FieldLevel) bool {
		return IsObjectID(fl.Field().String())
	})

	return v
}

// IsURL проверяет, что строка - http(s) ссылка.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// IsObjectID проверяет, что строка - идентификатор из 24 строчных шестнадцатеричных символов.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

// Violations переводит ошибку валидатора в список нарушений.
// field подставляется для ошибок проверки отдельных значений.
func Violations(err error, field string) []apperr.FieldViolation {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	violations := make([]apperr.FieldViolation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		name := fe.Field()
		if name == "" {
			name = field
		}
		violations = append(violations, apperr.FieldViolation{Field: name, Rule: fe.Tag()})
	}
	return violations
}
