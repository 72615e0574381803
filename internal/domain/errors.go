package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrConflict          = errors.New("registro duplicado")
	ErrForbidden         = errors.New("operação não permitida")
	ErrInvalidReference  = errors.New("referência inválida")
	ErrUnauthenticated   = errors.New("usuário não autenticado")
	ErrInvalidMonthlyMap = errors.New("monthly_data deve ser um objeto JSON")
)

// ValidationError agrupa problemas de validação por campo do payload
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, problem string) {
	e.Fields[field] = append(e.Fields[field], problem)
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return "dados inválidos: " + strings.Join(names, ", ")
}

// FieldValidationError cria um ValidationError com um único campo
func FieldValidationError(field, problem string) *ValidationError {
	err := NewValidationError()
	err.Add(field, problem)
	return err
}

// ConflictError identifica o campo que violou uma restrição de unicidade
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Details agrupa a mensagem pelo campo, no mesmo formato da validação
func (e *ConflictError) Details() map[string][]string {
	return map[string][]string{e.Field: {e.Message}}
}
