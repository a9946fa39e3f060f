package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/spendyclient"
	"github.com/vfg2006/spendy-api/infrastructure/repository"
	"github.com/vfg2006/spendy-api/internal/cli"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/internal/usecases/dashboarding"
	"github.com/vfg2006/spendy-api/internal/usecases/housing"
	"github.com/vfg2006/spendy-api/internal/usecases/importing"
	"github.com/vfg2006/spendy-api/pkg/log"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.NewConfig()
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}

	// logs só aparecem com LOG_LEVEL=debug; o terminal é da saída dos comandos
	var logOut io.Writer = io.Discard
	if cfg.App.LogLevel == "debug" {
		logOut = os.Stderr
	}
	log.Configure(cfg.App.LogLevel, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := repository.NewFileSessionRepository(cfg.Session.File)
	integrator := spendy.New(cfg, spendyclient.NewClient(cfg))
	authenticator := authenticating.NewService(integrator, sessions, cfg)

	importer, err := importing.NewService(cfg, integrator, authenticator)
	if err != nil {
		pterm.Error.Println(cli.UserMessage(err))
		return 1
	}

	app := cli.NewApp(version, cli.Deps{
		Config:        cfg,
		Authenticator: authenticator,
		Sessions:      sessions,
		Houses:        housing.NewService(integrator, authenticator),
		Importer:      importer,
		Dashboard:     dashboarding.NewService(cfg, integrator, authenticator),
	})

	if err := app.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(cli.UserMessage(err))
		return 1
	}
	return 0
}
