package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
)

type authenticatorStub struct {
	sessions map[string]*domain.Session
	err      error
}

func (a *authenticatorStub) Login(context.Context, domain.Credentials) (*domain.Session, error) {
	return nil, nil
}

func (a *authenticatorStub) Register(context.Context, domain.Registration) (string, error) {
	return "", nil
}

func (a *authenticatorStub) Resolve(_ context.Context, sessionID string) (*domain.Session, error) {
	if a.err != nil {
		return nil, a.err
	}
	session, ok := a.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (a *authenticatorStub) Invalidate(context.Context, string) error {
	return nil
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	session := &domain.Session{ID: "abc", Token: "jwt", Username: "mario"}

	echoUser := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, ok := domain.SessionFromContext(r.Context()); ok {
			_, _ = w.Write([]byte(s.Username))
			return
		}
		_, _ = w.Write([]byte("anonimo"))
	})

	tests := []struct {
		name       string
		path       string
		header     string
		authErr    error
		wantStatus int
		wantCode   string
		wantBody   string
	}{
		{
			name:       "Rota pública passa sem sessão",
			path:       "/v1/login",
			wantStatus: http.StatusOK,
			wantBody:   "anonimo",
		},
		{
			name:       "Sem header Authorization",
			path:       "/v1/expenses",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Header sem Bearer",
			path:       "/v1/expenses",
			header:     "abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Sessão desconhecida",
			path:       "/v1/expenses",
			header:     "Bearer xyz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrSessionNotFound,
		},
		{
			name:       "Sessão expirada",
			path:       "/v1/expenses",
			header:     "Bearer abc",
			authErr:    domain.ErrSessionExpired,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:       "Sessão válida é anexada ao contexto",
			path:       "/v1/expenses",
			header:     "Bearer abc",
			wantStatus: http.StatusOK,
			wantBody:   "mario",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &authenticatorStub{sessions: map[string]*domain.Session{"abc": session}, err: tt.authErr}
			handler := AuthMiddleware(stub)(echoUser)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Cors([]string{"http://localhost:5173"})(next)

	t.Run("Origem permitida recebe os headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/expenses", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida não recebe headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/expenses", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o próximo handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/expenses", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/logout", nil))
	correlationID = rec.Header().Get(CorrelationIDHeader)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, correlationID, 36)
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}
