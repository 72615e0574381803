package handler

import (
	"net/http"

	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/authenticating"
	"github.com/zebee/manager-api/pkg/apiErrors"
	"github.com/zebee/manager-api/pkg/log"
)

// Login troca usuário e senha por um token de acesso
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Username == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios.", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Username, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Info("Falha no login")
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, domain.LoginResponse{Access: token})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		writeResponse(w, r, http.StatusOK, p.Info())
	}
}
