package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/pkg/apiErrors"
)

type codedError struct {
	code string
}

func (e codedError) Error() string   { return e.code }
func (e codedError) APICode() string { return e.code }

type fakeResolver struct {
	validToken string
	principal  *domain.Principal
	resolveErr error
}

func (f *fakeResolver) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString != f.validToken {
		return nil, codedError{code: apiErrors.ErrExpiredToken}
	}
	return &domain.Claims{UserID: f.principal.UserID}, nil
}

func (f *fakeResolver) ResolvePrincipal(_ context.Context, _ *domain.Claims) (*domain.Principal, error) {
	return f.principal, f.resolveErr
}

func principalEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Header().Set("X-User", principal.Username)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	resolver := &fakeResolver{validToken: "abc", principal: &domain.Principal{UserID: 1, Username: "ana"}}
	handler := AuthMiddleware(resolver)(principalEcho())

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "esquema Bearer", path: "/api/clients/", header: "Bearer abc", wantStatus: http.StatusOK, wantUser: "ana"},
		{name: "esquema Token", path: "/api/clients/", header: "Token abc", wantStatus: http.StatusOK, wantUser: "ana"},
		{name: "sem header", path: "/api/clients/", wantStatus: http.StatusUnauthorized},
		{name: "esquema desconhecido", path: "/api/clients/", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "token expirado", path: "/api/clients/", header: "Bearer outro", wantStatus: http.StatusUnauthorized},
		{name: "rota pública", path: "/api/auth/login/", wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))
		})
	}
}

func TestAuthMiddleware_ResolveFailure(t *testing.T) {
	resolver := &fakeResolver{
		validToken: "abc",
		principal:  &domain.Principal{UserID: 1},
		resolveErr: errors.New("conexão recusada"),
	}
	handler := AuthMiddleware(resolver)(principalEcho())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSuperuserOnly(t *testing.T) {
	handler := SuperuserOnly()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		principal  *domain.Principal
		wantStatus int
	}{
		{name: "superusuário", principal: &domain.Principal{UserID: 1, IsSuperuser: true}, wantStatus: http.StatusNoContent},
		{name: "usuário comum", principal: &domain.Principal{UserID: 2}, wantStatus: http.StatusForbidden},
		{name: "sem principal", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/squads/", nil)
			if tt.principal != nil {
				req = req.WithContext(WithPrincipal(req.Context(), tt.principal))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/clients/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")

	req = httptest.NewRequest(http.MethodGet, "/api/clients/", nil)
	req.Header.Set("Origin", "https://outro.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
