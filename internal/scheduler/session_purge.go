package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
)

// SessionPurgeConfig representa a configuração do agendador de limpeza de sessões
type SessionPurgeConfig struct {
	CronSchedule string
	Enabled      bool
}

// SessionPurgeService remove periodicamente as sessões vencidas do repositório
type SessionPurgeService struct {
	scheduler *gocron.Scheduler
	config    SessionPurgeConfig
	sessions  domain.SessionRepository
	now       func() time.Time

	purgeMutex   sync.Mutex
	purgeRunning bool

	lastPurgeStartedAt   time.Time
	lastPurgeCompletedAt time.Time
	lastPurgeRemoved     int64
	lastPurgeError       string
}

func NewSessionPurgeService(sessions domain.SessionRepository, appConfig *config.Config) *SessionPurgeService {
	purgeConfig := SessionPurgeConfig{
		CronSchedule: appConfig.SessionPurge.CronSchedule,
		Enabled:      appConfig.SessionPurge.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": purgeConfig.CronSchedule,
		"enabled":       purgeConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionPurgeService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    purgeConfig,
		sessions:  sessions,
		now:       time.Now,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto é cancelado
func (s *SessionPurgeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purge(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("Agendador de limpeza de sessões iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a limpeza imediatamente. Devolve false se já havia uma em andamento.
func (s *SessionPurgeService) RunNow(ctx context.Context) (int64, bool) {
	return s.purge(ctx)
}

func (s *SessionPurgeService) purge(ctx context.Context) (int64, bool) {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return 0, false
	}
	s.purgeRunning = true
	s.lastPurgeStartedAt = s.now()
	s.purgeMutex.Unlock()

	removed, err := s.sessions.DeleteExpired(ctx, s.now())

	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	s.purgeRunning = false
	s.lastPurgeCompletedAt = s.now()
	s.lastPurgeRemoved = removed
	s.lastPurgeError = ""

	if err != nil {
		s.lastPurgeError = err.Error()
		logrus.WithError(err).Error("Erro ao remover sessões expiradas")
		return 0, true
	}

	logrus.WithField("removed", removed).Info("Sessões expiradas removidas")
	return removed, true
}

// GetStatus retorna o status atual do agendador
func (s *SessionPurgeService) GetStatus() map[string]any {
	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	return map[string]any{
		"purge_enabled":           s.config.Enabled,
		"purge_cron":              s.config.CronSchedule,
		"purge_running":           s.purgeRunning,
		"last_purge_started_at":   s.lastPurgeStartedAt,
		"last_purge_completed_at": s.lastPurgeCompletedAt,
		"last_purge_removed":      s.lastPurgeRemoved,
		"last_purge_error":        s.lastPurgeError,
	}
}
