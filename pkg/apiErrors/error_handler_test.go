package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Credenciais inválidas retornam 401", code: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "Sessão expirada retorna 401", code: ErrExpiredToken, wantStatus: http.StatusUnauthorized},
		{name: "Dados ausentes retornam 400", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "Requisição substituída retorna 409", code: ErrSupersededRequest, wantStatus: http.StatusConflict},
		{name: "Erro do backend retorna 502", code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "Rota inexistente retorna 404", code: ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "Código desconhecido retorna 500", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]any{"status": 1})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrExternalService))
	assert.Equal(t, APIError{Code: ErrExternalService, Message: "falhou"}, FromError(errors.New("falhou"), ErrExternalService))
}
