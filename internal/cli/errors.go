package cli

import (
	"context"
	"errors"

	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/internal/usecases/dashboarding"
)

var ErrNotLoggedIn = errors.New("nenhuma sessão salva")

// UserMessage converte o erro de um comando no texto mostrado ao usuário
func UserMessage(err error) string {
	var (
		validationErr *domain.ValidationError
		authErr       *authenticating.AuthError
		backendErr    *domain.BackendError
	)

	switch {
	case errors.Is(err, ErrNotLoggedIn), errors.Is(err, domain.ErrSessionNotFound):
		return "Nessuna sessione attiva. Esegui \"spendy login\" per accedere."
	case errors.Is(err, domain.ErrSessionExpired):
		return "Sessione scaduta. Esegui di nuovo \"spendy login\"."
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &authErr):
		return authErr.Message()
	case errors.Is(err, dashboarding.ErrSuperseded):
		return "Richiesta sostituita da una più recente."
	case errors.As(err, &backendErr) && backendErr.Message != "":
		return backendErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		return "Il server non risponde. Riprova più tardi."
	default:
		return err.Error()
	}
}
