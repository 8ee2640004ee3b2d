package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/pkg/format"
)

// validate instancia compartida; validator.Validate es seguro para uso concurrente.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los mensajes usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// decimal.Decimal se valida como número (gte, lte...).
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		n, _ := d.Float64()
		return n
	}, decimal.Decimal{})
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return format.ValidCPF(fl.Field().String())
	})
	return v
}

// Validate aplica las reglas `validate` del struct y traduce los fallos a *domain.ValidationError.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ErrInvalidInput
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "obligatorio"
	case "email":
		return "email inválido"
	case "min":
		return "mínimo " + fe.Param()
	case "max":
		return "máximo " + fe.Param()
	case "gte":
		return "debe ser >= " + fe.Param()
	case "oneof":
		return "valor no permitido"
	case "cpf":
		return "CPF inválido"
	default:
		return "inválido (" + fe.Tag() + ")"
	}
}
