package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zebee/manager-api/internal/api/handler/router"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/authenticating"
	"github.com/zebee/manager-api/pkg/apiErrors"
	"github.com/zebee/manager-api/pkg/middleware"
)

var (
	superuser = &domain.Principal{UserID: 1, Username: "admin", IsSuperuser: true}
	member    = &domain.Principal{UserID: 2, Username: "ana", SquadID: int64Ptr(7), SquadName: stringPtr("Alpha")}
)

func int64Ptr(v int64) *int64    { return &v }
func stringPtr(v string) *string { return &v }

// serve monta o router com as rotas e injeta o usuário como faria o AuthMiddleware
func serve(t *testing.T, routes []router.Route, as *domain.Principal, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if as != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), as))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

type fakeAuthenticator struct {
	token string
	err   error
}

func (f *fakeAuthenticator) LoginUser(_ context.Context, username, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) { return nil, nil }

func (f *fakeAuthenticator) ResolvePrincipal(context.Context, *domain.Claims) (*domain.Principal, error) {
	return nil, nil
}

func (f *fakeAuthenticator) CreateUser(context.Context, *domain.CreateUserRequest) (*domain.User, error) {
	return nil, nil
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		service    *fakeAuthenticator
		body       string
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:       "retorna token de acesso",
			service:    &fakeAuthenticator{token: "jwt-token"},
			body:       `{"username":"ana","password":"segredo"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"access":"jwt-token"}`,
		},
		{
			name: "credenciais inválidas",
			service: &fakeAuthenticator{err: authenticating.NewAuthError(
				authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")},
			body:       `{"username":"ana","password":"errada"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "senha ausente",
			service:    &fakeAuthenticator{},
			body:       `{"username":"ana"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "json inválido",
			service:    &fakeAuthenticator{},
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Authentication(tt.service), nil, http.MethodPost, "/api/auth/login/", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetMe(t *testing.T) {
	tests := []struct {
		name     string
		as       *domain.Principal
		wantBody string
	}{
		{
			name:     "superusuário",
			as:       superuser,
			wantBody: `{"id":1,"username":"admin","is_superuser":true,"squad_name":"Super","profile":{"squad":null}}`,
		},
		{
			name:     "membro de squad",
			as:       member,
			wantBody: `{"id":2,"username":"ana","is_superuser":false,"squad_name":"Alpha","profile":{"squad":7}}`,
		},
		{
			name:     "sem squad",
			as:       &domain.Principal{UserID: 3, Username: "bruno"},
			wantBody: `{"id":3,"username":"bruno","is_superuser":false,"squad_name":null,"profile":{"squad":null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Authentication(&fakeAuthenticator{}), tt.as, http.MethodGet, "/api/auth/user/", "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetMe_Unauthenticated(t *testing.T) {
	rec := serve(t, Authentication(&fakeAuthenticator{}), nil, http.MethodGet, "/api/auth/user/", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(fakePinger{}), nil, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, Healthcheck(fakePinger{err: context.DeadlineExceeded}), nil, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
}

type fakeJob struct {
	triggered int
}

func (f *fakeJob) TriggerManualSync() { f.triggered++ }

func (f *fakeJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false, "triggered": f.triggered}
}

func TestRunCronJob(t *testing.T) {
	activeClients := &fakeJob{}
	rollup := &fakeJob{}
	routes := CronJobs(CronJobServices{ActiveClientsSyncService: activeClients, MonthlyRollupService: rollup})

	rec := serve(t, routes, superuser, http.MethodPost, "/api/admin/jobs/active-clients/run/", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, activeClients.triggered)
	assert.Equal(t, 0, rollup.triggered)

	rec = serve(t, routes, superuser, http.MethodPost, "/api/admin/jobs/all/run/", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, activeClients.triggered)
	assert.Equal(t, 1, rollup.triggered)

	rec = serve(t, routes, superuser, http.MethodPost, "/api/admin/jobs/desconhecido/run/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, routes, member, http.MethodPost, "/api/admin/jobs/all/run/", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 2, activeClients.triggered)

	rec = serve(t, routes, superuser, http.MethodGet, "/api/admin/jobs/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"active-clients":{"sync_running":false,"triggered":2},"monthly-rollup":{"sync_running":false,"triggered":1}}`,
		rec.Body.String())
}

func TestRunCronJob_MissingService(t *testing.T) {
	routes := CronJobs(CronJobServices{ActiveClientsSyncService: &fakeJob{}})

	rec := serve(t, routes, superuser, http.MethodPost, "/api/admin/jobs/monthly-rollup/run/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "não encontrado", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrResourceNotFound},
		{name: "proibido", err: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrInsufficientPrivilege},
		{name: "conflito", err: domain.ErrConflict, wantStatus: http.StatusConflict, wantCode: apiErrors.ErrConflict},
		{
			name:       "conflito com campo",
			err:        &domain.ConflictError{Field: "name", Message: "squad com este name já existe."},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrConflict,
		},
		{
			name:       "validação",
			err:        domain.FieldValidationError("plan_value", "Valor inválido."),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "token expirado",
			err:        authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{name: "inesperado", err: context.Canceled, wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestWriteServiceError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil),
		domain.FieldValidationError("client_commission_percentage", "Valor inválido."))

	assert.JSONEq(t,
		`{"code":"VAL_003","message":"Dados inválidos.","details":{"client_commission_percentage":["Valor inválido."]}}`,
		rec.Body.String())
}

func fixedTime() time.Time {
	return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
}
