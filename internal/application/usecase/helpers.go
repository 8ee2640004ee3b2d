package usecase

import (
	"strings"

	"github.com/jhoicas/privilege-pass-api/internal/domain"
)

// NormalizeEmail los emails se comparan y guardan en minúsculas y sin espacios.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEmailPtr(email *string) *string {
	if email == nil {
		return nil
	}
	e := NormalizeEmail(*email)
	return &e
}

// invalidEnum construye el error de validación de un campo enumerado.
func invalidEnum(field string) error {
	return domain.NewValidationError(field, "valor no permitido")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
