package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zebee/manager-api/internal/config"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/authenticating"
	"github.com/zebee/manager-api/internal/usecases/squad"
	"github.com/zebee/manager-api/pkg/apiErrors"
)

type stubAuthenticator struct {
	authenticating.Authenticator
}

func (stubAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	if token != "valid" {
		return nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}
	return &domain.Claims{UserID: 1}, nil
}

func (stubAuthenticator) ResolvePrincipal(context.Context, *domain.Claims) (*domain.Principal, error) {
	return &domain.Principal{UserID: 1, Username: "admin", IsSuperuser: true}, nil
}

type stubSquads struct {
	squad.SquadService
}

func (stubSquads) ListSquads(context.Context) ([]*domain.Squad, error) {
	return []*domain.Squad{{ID: 1, Name: "Alpha"}}, nil
}

type stubDatabase struct{}

func (stubDatabase) Ping(context.Context) error { return nil }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"*"}}}
	srv, err := New(cfg, Services{
		Authenticator: stubAuthenticator{},
		Squads:        stubSquads{},
		Database:      stubDatabase{},
	}, prometheus.NewRegistry())
	require.NoError(t, err)

	return srv.Handler()
}

func TestServer(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{name: "healthcheck é público", path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "rota protegida sem token", path: "/api/squads/", wantStatus: http.StatusUnauthorized},
		{name: "token inválido", path: "/api/squads/", token: "Bearer other", wantStatus: http.StatusUnauthorized},
		{name: "token do frontend", path: "/api/squads/", token: "Token valid", wantStatus: http.StatusOK},
		{name: "rota inexistente", path: "/api/nada/", token: "Bearer valid", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/squads/", nil)
	req.Header.Set("Authorization", "Bearer valid")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `zebee_http_requests_total{method="GET",route="/api/squads/",status="200"} 1`)
}
