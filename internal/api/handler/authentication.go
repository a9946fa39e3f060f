package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
	"github.com/vfg2006/spendy-api/pkg/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato della richiesta non valido.", nil)
			return
		}

		credentials := domain.Credentials{Username: req.Username, Email: req.Email, Password: req.Password}
		if req.Email == "" {
			// o campo único de login aceita username ou email
			credentials = domain.NewCredentials(req.Username, req.Password)
		}

		session, err := service.Login(r.Context(), credentials)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField(log.FieldUser, session.Username).Info("Login realizado")

		writeJSON(w, r, http.StatusOK, LoginResponse{
			Token:     session.ID,
			Username:  session.Username,
			ExpiresAt: session.ExpiresAt,
		})
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Registration
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato della richiesta non valido.", nil)
			return
		}

		message, err := service.Register(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, MessageResponse{Message: message})
	}
}

// Logout remove a sessão local; o token do backend simplesmente deixa de ser usado
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		if err := service.Invalidate(r.Context(), session.ID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Disconnessione effettuata."})
	}
}
