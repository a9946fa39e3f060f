package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
	"github.com/vfg2006/spendy-api/pkg/log"
)

// rotas liberadas sem sessão
var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/v1/login":    true,
	"/v1/register": true,
}

// AuthMiddleware resolve o identificador de sessão do header Authorization e anexa a sessão ao contexto
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			sessionID := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if authHeader == "" || sessionID == authHeader || sessionID == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Accesso richiesto. Effettua il login per continuare.", nil)
				return
			}

			session, err := authService.Resolve(r.Context(), sessionID)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Debug("Sessão recusada")
				writeSessionError(w, err)
				return
			}

			ctx := domain.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Sessione scaduta. Effettua di nuovo l'accesso.", nil)
	case errors.Is(err, domain.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessione non valida. Effettua l'accesso.", nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Message(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Errore interno durante la verifica della sessione.", nil)
	}
}
