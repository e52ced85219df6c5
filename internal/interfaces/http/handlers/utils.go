package handlers

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/interfaces/http/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func createErrorMessage(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors.RespondWithError(w, r.Context(), domain.NewValidation("invalid request payload"))
		return
	}

	var details []errors.ErrorDetail
	for _, fe := range validationErrors {
		field := pascalToSnake(fe.Field())
		details = append(details, errors.ErrorDetail{
			Field:   field,
			Message: validationMessage(fe),
		})
	}
	errors.RespondErrorWithDetails(w, r.Context(), domain.NewValidation("request validation failed"), details)
}

func validationMessage(fe validator.FieldError) string {
	field := pascalToSnake(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of " + fe.Param()
	default:
		return field + " is invalid"
	}
}

func pascalToSnake(str string) string {
	var b strings.Builder
	for i, r := range str {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
