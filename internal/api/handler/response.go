package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/internal/usecases/dashboarding"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
	"github.com/vfg2006/spendy-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		validationErr *domain.ValidationError
		authErr       *authenticating.AuthError
		backendErr    *domain.BackendError
	)

	switch {
	case errors.As(err, &validationErr):
		logger.Debug("Requisição inválida")
		apiErrors.WriteError(w, validationErr.Code, validationErr.Message, nil)

	case errors.As(err, &authErr):
		if authenticating.IsCredentialsError(err) {
			logger.Info("Credenciais recusadas")
		} else {
			logger.Error("Erro de autenticação")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Message(), nil)

	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrUnauthorized):
		logger.Info("Sessão expirada")
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Sessione scaduta. Effettua di nuovo l'accesso.", nil)

	case errors.Is(err, domain.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessione non valida. Effettua l'accesso.", nil)

	case errors.Is(err, dashboarding.ErrSuperseded):
		apiErrors.WriteError(w, apiErrors.ErrSupersededRequest, "Richiesta sostituita da una più recente.", nil)

	case errors.As(err, &backendErr):
		logger.WithField("backend_status", backendErr.Status).Warn("Erro do backend Spendy")
		code := apiErrors.ErrExternalService
		if backendErr.Status == http.StatusServiceUnavailable || backendErr.Status == http.StatusGatewayTimeout {
			code = apiErrors.ErrCommunication
		}
		apiErrors.WriteError(w, code, backendErr.Message, map[string]any{"status": backendErr.Status})

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logger.Warn("Backend não respondeu a tempo")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Il server non risponde. Riprova più tardi.", nil)

	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Si è verificato un errore imprevisto.", nil)
	}
}

// sessionFrom devolve a sessão anexada pelo AuthMiddleware
func sessionFrom(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Accesso richiesto. Effettua il login per continuare.", nil)
		return nil, false
	}
	return session, true
}
