package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/spendy-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileSessionRepository guarda a sessão corrente da CLI num arquivo JSON.
// Só existe uma sessão por arquivo; salvar uma nova substitui a anterior.
type FileSessionRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileSessionRepository(path string) *FileSessionRepository {
	return &FileSessionRepository{path: path}
}

func (r *FileSessionRepository) Path() string {
	return r.path
}

// Current devolve a sessão gravada, ou nil quando não há login
func (r *FileSessionRepository) Current(_ context.Context) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read()
}

func (r *FileSessionRepository) Save(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao serializar sessão")
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return pkgerrors.Wrap(err, "erro ao criar diretório da sessão")
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return pkgerrors.Wrap(err, "erro ao gravar sessão")
	}

	return os.Rename(tmp, r.path)
}

func (r *FileSessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.read()
	if err != nil || session == nil || session.ID != id {
		return nil, err
	}
	return session, nil
}

func (r *FileSessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.read()
	if err != nil {
		return err
	}
	if session == nil || session.ID != id {
		return nil
	}
	return r.remove()
}

func (r *FileSessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.read()
	if err != nil || session == nil || !session.Expired(now) {
		return 0, err
	}
	if err := r.remove(); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *FileSessionRepository) read() (*domain.Session, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "erro ao ler sessão")
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// arquivo corrompido equivale a não ter login
		return nil, nil
	}
	if session.Token == "" {
		return nil, nil
	}
	return &session, nil
}

func (r *FileSessionRepository) remove() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrap(err, "erro ao remover sessão")
	}
	return nil
}
