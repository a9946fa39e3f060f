package authenticating

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/spendyclient"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
	"github.com/vfg2006/spendy-api/pkg/utils"
)

const registeredMessage = "Registrazione completata! Ora puoi accedere."

type Authenticator interface {
	Login(ctx context.Context, credentials domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, registration domain.Registration) (string, error)
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
	Invalidate(ctx context.Context, sessionID string) error
}

type Service struct {
	integrator spendy.SpendyIntegrator
	sessions   domain.SessionRepository
	cfg        *config.Config

	now   func() time.Time
	newID func() (string, error)
}

func NewService(integrator spendy.SpendyIntegrator, sessions domain.SessionRepository, cfg *config.Config) *Service {
	return &Service{
		integrator: integrator,
		sessions:   sessions,
		cfg:        cfg,
		now:        time.Now,
		newID:      utils.GenerateSessionID,
	}
}

// Login autentica no backend e cria a sessão local que guarda o token
func (s *Service) Login(ctx context.Context, credentials domain.Credentials) (*domain.Session, error) {
	credentials.Username = strings.TrimSpace(credentials.Username)
	credentials.Email = strings.TrimSpace(credentials.Email)

	if credentials.Password == "" || credentials.Identifier() == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Inserisci le tue credenziali complete per continuare.")
	}

	token, err := s.integrator.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, backendMessage(err, "Accesso non riuscito. Controlla le credenziali e riprova."))
		case errors.Is(err, spendyclient.ErrEmptyToken):
			return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Il server non ha restituito un token di accesso.")
		}
		return nil, err
	}

	now := s.now()
	claims := inspectToken(token)

	expiresAt := now.Add(s.cfg.Session.TTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time.In(now.Location())
		if !now.Before(expiresAt) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Il token ricevuto è già scaduto.")
		}
	}

	// login por email: o sub do token traz o username do backend
	username := credentials.Username
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		username = credentials.Email
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        id,
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		logrus.WithError(err).Error("Erro ao salvar sessão")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Impossibile salvare la sessione.")
	}

	logrus.WithFields(logrus.Fields{
		"user_name":  session.Username,
		"expires_at": session.ExpiresAt,
	}).Info("Sessão criada")

	return session, nil
}

// inspectToken lê exp e sub do JWT do backend sem validar a assinatura.
// Tokens opacos devolvem claims vazias.
func inspectToken(token string) jwt.RegisteredClaims {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		logrus.WithError(err).Debug("Token do backend não é um JWT legível, usando TTL padrão")
		return jwt.RegisteredClaims{}
	}
	return claims
}

func (s *Service) Register(ctx context.Context, registration domain.Registration) (string, error) {
	registration.Username = strings.TrimSpace(registration.Username)
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Surname = strings.TrimSpace(registration.Surname)
	registration.Email = strings.TrimSpace(registration.Email)

	if missing := missingRegistrationFields(registration); len(missing) > 0 {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Campi obbligatori mancanti: "+strings.Join(missing, ", "))
	}

	if registration.Password != registration.ConfirmPassword {
		return "", NewAuthError(ErrPasswordMismatch, apiErrors.ErrInvalidRequest, "Le password non coincidono.")
	}

	message, err := s.integrator.Register(ctx, registration)
	if err != nil {
		var backendErr *domain.BackendError
		if errors.As(err, &backendErr) && backendErr.Status == http.StatusConflict {
			return "", NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, backendErr.Message)
		}
		return "", err
	}

	if message == "" {
		message = registeredMessage
	}

	return message, nil
}

func missingRegistrationFields(r domain.Registration) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"username", r.Username},
		{"email", r.Email},
		{"name", r.Name},
		{"surname", r.Surname},
		{"password", r.Password},
		{"confirmPassword", r.ConfirmPassword},
	}

	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Resolve carrega a sessão válida. Sessões vencidas são removidas e exigem novo login.
func (s *Service) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Impossibile leggere la sessione.")
	}

	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			logrus.WithError(err).Warn("Erro ao remover sessão expirada")
		}
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

func (s *Service) Invalidate(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Impossibile chiudere la sessione.")
	}
	return nil
}

func backendMessage(err error, fallback string) string {
	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	return fallback
}
