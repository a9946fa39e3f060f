package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendy-api/infrastructure/database/postgres"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/spendyclient"
	"github.com/vfg2006/spendy-api/infrastructure/repository"
	"github.com/vfg2006/spendy-api/internal/api"
	"github.com/vfg2006/spendy-api/internal/api/handler"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/scheduler"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/internal/usecases/dashboarding"
	"github.com/vfg2006/spendy-api/internal/usecases/housing"
	"github.com/vfg2006/spendy-api/internal/usecases/importing"
	"github.com/vfg2006/spendy-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !log.Configure(cfg.App.LogLevel, os.Stdout) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, closeStore := sessionStore(ctx, cfg)
	defer closeStore()

	client := spendyclient.NewClient(cfg)
	integrator := spendy.New(cfg, client)

	authenticator := authenticating.NewService(integrator, sessions, cfg)

	importer, err := importing.NewService(cfg, integrator, authenticator)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o classificador de categorias")
	}

	sessionPurgeService := scheduler.NewSessionPurgeService(sessions, cfg)
	if err := sessionPurgeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Houses:        housing.NewService(integrator, authenticator),
		Importer:      importer,
		Dashboard:     dashboarding.NewService(cfg, integrator, authenticator),
		CronJobs: handler.CronJobServices{
			SessionPurgeService: sessionPurgeService,
		},
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// sessionStore escolhe onde as sessões ficam guardadas
func sessionStore(ctx context.Context, cfg *config.Config) (domain.SessionRepository, func()) {
	if cfg.Session.Store != config.SessionStorePostgres {
		logrus.Warn("Sessões em memória: serão perdidas ao reiniciar o servidor")
		return repository.NewMemorySessionRepository(), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	if err := postgres.RunMigrations(conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	return repository.NewSessionRepository(conn), func() { _ = conn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
