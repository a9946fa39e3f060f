package domain

import (
	"context"
	"strings"
	"time"
)

// Session liga o identificador opaco entregue ao cliente ao token do backend
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired considera a sessão expirada a partir do instante ExpiresAt
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionRepository persiste sessões. Get devolve nil, nil quando não encontra.
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionKey struct{}

// WithSession anexa a sessão autenticada ao contexto da requisição
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext recupera a sessão anexada por WithSession
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*Session)
	return session, ok && session != nil
}

// Credentials são os dados de login. Username ou Email é obrigatório.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// NewCredentials trata o identificador como email quando contém "@"
func NewCredentials(identifier, password string) Credentials {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return Credentials{Email: identifier, Password: password}
	}
	return Credentials{Username: identifier, Password: password}
}

// Identifier devolve o username ou, na falta dele, o email
func (c Credentials) Identifier() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Email
}

// Registration são os dados de cadastro de um novo usuário
type Registration struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
}
