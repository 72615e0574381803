package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrInvalidFormat, wantStatus: http.StatusBadRequest},
		{code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{code: ErrInsufficientPrivilege, wantStatus: http.StatusForbidden},
		{code: ErrResourceNotFound, wantStatus: http.StatusNotFound},
		{code: ErrConflict, wantStatus: http.StatusConflict},
		{code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string][]string{"name": {"obrigatório"}})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.NotNil(t, body.Details)
		})
	}
}
