package repository

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendy-api/infrastructure/database/postgres"
	"github.com/vfg2006/spendy-api/internal/domain"
	"golang.org/x/crypto/blake2b"
)

const sessionsTable = "sessions"

type sessionRepository struct {
	conn postgres.Queryer
}

// NewSessionRepository guarda sessões no PostgreSQL. O identificador só é persistido como hash.
func NewSessionRepository(conn postgres.Queryer) domain.SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func hashID(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

func saveSessionQuery(session *domain.Session) (string, []any, error) {
	return squirrel.
		Insert(sessionsTable).
		Columns("id_hash", "token", "username", "created_at", "expires_at").
		Values(hashID(session.ID), session.Token, session.Username, session.CreatedAt, session.ExpiresAt).
		Suffix("ON CONFLICT (id_hash) DO UPDATE SET token = EXCLUDED.token, username = EXCLUDED.username, expires_at = EXCLUDED.expires_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func getSessionQuery(id string) (string, []any, error) {
	return squirrel.
		Select("token", "username", "created_at", "expires_at").
		From(sessionsTable).
		Where(squirrel.Eq{"id_hash": hashID(id)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deleteSessionQuery(id string) (string, []any, error) {
	return squirrel.
		Delete(sessionsTable).
		Where(squirrel.Eq{"id_hash": hashID(id)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deleteExpiredQuery(now time.Time) (string, []any, error) {
	return squirrel.
		Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	query, args, err := saveSessionQuery(session)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return pkgerrors.Wrap(err, "erro ao salvar sessão")
	}

	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := getSessionQuery(id)
	if err != nil {
		return nil, err
	}

	session := domain.Session{ID: id}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&session.Token,
		&session.Username,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "erro ao buscar sessão")
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := deleteSessionQuery(id)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return pkgerrors.Wrap(err, "erro ao remover sessão")
	}

	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := deleteExpiredQuery(now)
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "erro ao remover sessões expiradas")
	}

	removed, err := result.RowsAffected()
	if err != nil {
		logrus.WithError(err).Warn("driver não informou linhas removidas")
		return 0, nil
	}

	return removed, nil
}
