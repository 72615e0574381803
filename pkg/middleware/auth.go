package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/pkg/apiErrors"
	"github.com/zebee/manager-api/pkg/log"
)

type contextKey string

const (
	ContextKeyPrincipal contextKey = "principal"
)

// Rotas acessíveis sem token
var publicPaths = map[string]struct{}{
	"/healthcheck":     {},
	"/metrics":         {},
	"/api/auth/login/": {},
	"/api/auth/login":  {},
}

// tokenSchemes são os prefixos aceitos no header Authorization; o
// frontend envia "Token", clientes de API costumam enviar "Bearer"
var tokenSchemes = []string{"Bearer ", "Token "}

type PrincipalResolver interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResolvePrincipal(ctx context.Context, claims *domain.Claims) (*domain.Principal, error)
}

// tokenCodeError é satisfeito pelos erros de autenticação que carregam o
// código da API
type tokenCodeError interface {
	error
	APICode() string
}

func AuthMiddleware(resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := extractToken(r.Header.Get("Authorization"))
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "As credenciais de autenticação não foram fornecidas.", nil)
				return
			}

			claims, err := resolver.ValidateToken(tokenString)
			if err != nil {
				writeAuthError(w, err, "Token inválido.")
				return
			}

			principal, err := resolver.ResolvePrincipal(r.Context(), claims)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Falha ao resolver usuário do token")
				writeAuthError(w, err, "Usuário do token não encontrado.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error, message string) {
	code := apiErrors.ErrInvalidToken

	var coded tokenCodeError
	if errors.As(err, &coded) {
		code = coded.APICode()
	}
	if code == apiErrors.ErrDatabaseOperation {
		message = "Erro ao validar autenticação."
	}

	apiErrors.WriteError(w, code, message, nil)
}

func extractToken(header string) (string, bool) {
	for _, scheme := range tokenSchemes {
		if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			token := strings.TrimSpace(header[len(scheme):])
			return token, token != ""
		}
	}
	return "", false
}

func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, principal)
}

// PrincipalFromContext retorna o usuário autenticado da requisição
func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	principal, ok := ctx.Value(ContextKeyPrincipal).(*domain.Principal)
	return principal, ok && principal != nil
}

// SuperuserOnly restringe a rota a superusuários
func SuperuserOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !principal.IsSuperuser {
				log.ForContext(r.Context()).Warnf("Acesso negado para usuário ID=%d", principal.UserID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para executar essa ação.", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
