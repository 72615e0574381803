// Package validation centraliza a validação dos payloads da API
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
	"github.com/zebee/manager-api/internal/domain"
)

// New cria um validador com as regras específicas do domínio registradas
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Os erros são reportados com o nome do campo no JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(domain.Amount).Raw()
	}, domain.Amount{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(domain.Period).Raw()
	}, domain.Period{})
	v.RegisterCustomTypeFunc(nullableValue[string], domain.Nullable[string]{})
	v.RegisterCustomTypeFunc(nullableValue[int64], domain.Nullable[int64]{})
	v.RegisterCustomTypeFunc(nullableValue[time.Time], domain.Nullable[time.Time]{})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("period", validatePeriod)

	return v
}

func nullableValue[T any](field reflect.Value) any {
	n := field.Interface().(domain.Nullable[T])
	if !n.Valid {
		return nil
	}
	return n.Value
}

// validateAmount aceita decimais não negativos com até duas casas e no
// máximo N dígitos na parte inteira (N é o parâmetro da tag).
func validateAmount(fl validator.FieldLevel) bool {
	_, ok := ParseAmount(fl.Field().String(), fl.Param())
	return ok
}

func ParseAmount(value, maxIntegerDigits string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsNegative() || !d.Equal(d.Round(2)) {
		return decimal.Zero, false
	}

	if maxIntegerDigits != "" {
		digits, err := strconv.Atoi(maxIntegerDigits)
		if err == nil && d.GreaterThanOrEqual(decimal.New(1, int32(digits))) {
			return decimal.Zero, false
		}
	}
	return d, true
}

func validatePeriod(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.PeriodInputLayout, fl.Field().String())
	return err == nil
}

// Struct valida o payload completo
func Struct(v *validator.Validate, payload any) error {
	return translate(v.Struct(payload))
}

// Partial valida apenas os campos enviados (PATCH)
func Partial(v *validator.Validate, payload any, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return translate(v.StructPartial(payload, fields...))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	result := domain.NewValidationError()
	for _, fe := range ve {
		result.Add(fe.Field(), problem(fe))
	}
	return result
}

func problem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo é obrigatório."
	case "notblank":
		return "Este campo não pode ser em branco."
	case "max":
		return "Certifique-se de que este campo não tenha mais de " + fe.Param() + " caracteres."
	case "min":
		return "Certifique-se de que este valor seja maior ou igual a " + fe.Param() + "."
	case "email":
		return "Insira um endereço de email válido."
	case "oneof":
		return "Valor inválido. Opções: " + fe.Param() + "."
	case "amount":
		return "Informe um número decimal não negativo com no máximo 2 casas decimais e " + fe.Param() + " dígitos inteiros."
	case "period":
		return "Formato inválido para data. Use AAAA-MM-DD."
	default:
		return "Valor inválido."
	}
}
