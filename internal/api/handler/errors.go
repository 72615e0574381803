package handler

import (
	stdjson "encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/authenticating"
	"github.com/zebee/manager-api/pkg/apiErrors"
	"github.com/zebee/manager-api/pkg/log"
	"github.com/zebee/manager-api/pkg/middleware"
	"github.com/zebee/manager-api/pkg/utils"
)

// writeServiceError traduz os erros dos casos de uso para a resposta da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	var validationErr *domain.ValidationError
	var conflictErr *domain.ConflictError

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados inválidos.", validationErr.Fields)

	case errors.As(err, &conflictErr):
		apiErrors.WriteError(w, apiErrors.ErrConflict, conflictErr.Message, conflictErr.Details())

	case errors.Is(err, domain.ErrNotFound), errors.Is(err, utils.ErrInvalidID):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Não encontrado.", nil)

	case errors.Is(err, domain.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para executar essa ação.", nil)

	case errors.Is(err, domain.ErrConflict):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Registro duplicado.", nil)

	case errors.Is(err, domain.ErrUnauthenticated):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro não tratado na requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// decodeBody lê o corpo JSON e responde com erro quando ele não puder ser lido
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	err := utils.DecodeJSON(r.Body, target)
	if err == nil {
		return true
	}

	var typeErr *stdjson.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeServiceError(w, r, domain.FieldValidationError(typeErr.Field, "Tipo de valor inválido."))
		return false
	}

	log.ForContext(r.Context()).WithError(err).Debug("Corpo da requisição inválido")
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "JSON inválido.", nil)
	return false
}

func principal(w http.ResponseWriter, r *http.Request) (*domain.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, domain.ErrUnauthenticated)
	}
	return p, ok
}

func writeResponse(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if err := utils.WriteJSON(w, status, payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
