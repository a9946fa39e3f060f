package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
)

var (
	// ErrUnauthorized é satisfeito por qualquer BackendError 401 ou 403
	ErrUnauthorized = errors.New("token rejeitado pelo backend")

	// ErrSessionNotFound indica que não há sessão para o identificador informado
	ErrSessionNotFound = errors.New("sessão não encontrada")

	// ErrSessionExpired exige novo login
	ErrSessionExpired = errors.New("sessão expirada")
)

// Erros de validação de filtros, com mensagens exibidas ao usuário
var (
	ErrMissingRange = NewValidationError(apiErrors.ErrMissingRequiredData, "Seleziona una data di inizio e di fine per applicare il filtro.")
	ErrInvalidRange = NewValidationError(apiErrors.ErrInvalidFormat, "La data di inizio non può essere successiva alla data di fine.")
	ErrInvalidDate  = NewValidationError(apiErrors.ErrInvalidFormat, "Data non valida. Usa il formato AAAA-MM-GG.")
	ErrInvalidMonth = NewValidationError(apiErrors.ErrInvalidFormat, "Mese non valido. Usa un valore tra 1 e 12.")
	ErrInvalidYear  = NewValidationError(apiErrors.ErrInvalidFormat, "Anno non valido. Usa quattro cifre.")
	ErrInvalidMode  = NewValidationError(apiErrors.ErrInvalidRequest, "Filtro non valido. Valori accettati: all, month, range.")
)

// ValidationError é um erro de entrada do usuário com código de API
type ValidationError struct {
	Code    string
	Message string
	Cause   error
}

func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// BackendError é a forma normalizada de qualquer falha do backend Spendy
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend respondeu %d: %s", e.Status, e.Message)
}

// Is permite errors.Is(err, ErrUnauthorized) para respostas 401 e 403
func (e *BackendError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// SessionInvalidator remove sessões cujo token foi rejeitado
type SessionInvalidator interface {
	Invalidate(ctx context.Context, sessionID string) error
}

// ExpireOnUnauthorized invalida a sessão quando o backend rejeita o token
// e devolve ErrSessionExpired. Outros erros passam sem alteração.
func ExpireOnUnauthorized(ctx context.Context, sessions SessionInvalidator, session *Session, err error) error {
	if err == nil || !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if sessions != nil && session != nil {
		if invErr := sessions.Invalidate(ctx, session.ID); invErr != nil {
			logrus.WithError(invErr).Warn("erro ao invalidar sessão rejeitada pelo backend")
		}
	}

	return fmt.Errorf("%w: %s", ErrSessionExpired, err.Error())
}
