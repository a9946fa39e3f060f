package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/authenticating"
	"github.com/vfg2006/spendy-api/internal/usecases/dashboarding"
	"github.com/vfg2006/spendy-api/internal/usecases/housing"
	"github.com/vfg2006/spendy-api/internal/usecases/importing"
	"github.com/vfg2006/spendy-api/internal/usecases/summarizing"
	"github.com/vfg2006/spendy-api/pkg/utils"
)

// SessionStore guarda a sessão única da CLI
type SessionStore interface {
	Current(ctx context.Context) (*domain.Session, error)
}

type Deps struct {
	Config        *config.Config
	Authenticator authenticating.Authenticator
	Sessions      SessionStore
	Houses        housing.HouseManager
	Importer      importing.Importer
	Dashboard     dashboarding.Dashboard
}

// App representa a aplicação de linha de comando
type App struct {
	rootCmd  *cobra.Command
	deps     Deps
	renderer *Renderer
	now      func() time.Time
}

func NewApp(version string, deps Deps) *App {
	app := &App{
		deps:     deps,
		renderer: NewRenderer(os.Stdout),
		now:      time.Now,
	}

	rootCmd := &cobra.Command{
		Use:           "spendy",
		Short:         "Spendy: spese di casa dal terminale",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		app.loginCmd(),
		app.logoutCmd(),
		app.registerCmd(),
		app.importCmd(),
		app.expensesCmd(),
		app.summaryCmd(),
		app.monthlyCmd(),
		app.dashboardCmd(),
		app.houseCmd(),
	)

	app.rootCmd = rootCmd
	return app
}

// SetOutput redireciona a saída dos comandos
func (app *App) SetOutput(out io.Writer) {
	app.renderer = NewRenderer(out)
	app.rootCmd.SetOut(out)
	app.rootCmd.SetErr(out)
}

func (app *App) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

func (app *App) Execute() error {
	return app.rootCmd.Execute()
}

func (app *App) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// session carrega a sessão salva e confere se ainda vale
func (app *App) session(ctx context.Context) (*domain.Session, error) {
	saved, err := app.deps.Sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrNotLoggedIn
	}
	return app.deps.Authenticator.Resolve(ctx, saved.ID)
}

func (app *App) loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username|email>",
		Short: "Accedi e salva la sessione",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return err
				}
			}

			session, err := app.deps.Authenticator.Login(cmd.Context(), domain.NewCredentials(args[0], password))
			if err != nil {
				return err
			}

			app.renderer.Message("Bentornato, " + session.Username + "!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (se omessa viene richiesta)")
	return cmd
}

func (app *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Chiudi la sessione salvata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.deps.Sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			if saved != nil {
				if err := app.deps.Authenticator.Invalidate(cmd.Context(), saved.ID); err != nil {
					return err
				}
			}

			app.renderer.Message("Disconnessione effettuata.")
			return nil
		},
	}
}

func (app *App) registerCmd() *cobra.Command {
	var registration domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crea un nuovo account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := app.deps.Authenticator.Register(cmd.Context(), registration)
			if err != nil {
				return err
			}

			app.renderer.Message(message)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&registration.Username, "username", "", "username")
	flags.StringVar(&registration.Email, "email", "", "email")
	flags.StringVar(&registration.Name, "name", "", "nome")
	flags.StringVar(&registration.Surname, "surname", "", "cognome")
	flags.StringVar(&registration.Password, "password", "", "password")
	flags.StringVar(&registration.ConfirmPassword, "confirm-password", "", "conferma password")
	return cmd
}

func (app *App) importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Importa un estratto conto CSV o Excel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			file := domain.StatementFile{Name: filepath.Base(args[0]), Data: data}

			if dryRun {
				preview, err := app.deps.Importer.Preview(cmd.Context(), file)
				if err != nil {
					return err
				}
				app.renderer.Preview(preview)
				return nil
			}

			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			message, err := app.deps.Importer.Import(cmd.Context(), session, file)
			if err != nil {
				return err
			}

			app.renderer.Message(message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "legge il file localmente senza inviarlo")
	return cmd
}

type filterFlags struct {
	month string
	year  string
	from  string
	to    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.month, "month", "", "mese (1-12, default con --year: mese corrente)")
	cmd.Flags().StringVar(&f.year, "year", "", "anno del filtro mensile (default con --month: anno corrente)")
	cmd.Flags().StringVar(&f.from, "from", "", "data di inizio AAAA-MM-GG")
	cmd.Flags().StringVar(&f.to, "to", "", "data di fine AAAA-MM-GG")
}

// filter escolhe o modo pelas flags preenchidas: intervalo, mês ou tudo.
// Mês e ano ausentes assumem o corrente.
func (f *filterFlags) filter(now time.Time) domain.ExpenseFilter {
	switch {
	case strings.TrimSpace(f.from) != "" || strings.TrimSpace(f.to) != "":
		return domain.ExpenseFilter{Mode: domain.FilterRange, StartedDate: f.from, CompletedDate: f.to}
	case strings.TrimSpace(f.month) != "" || strings.TrimSpace(f.year) != "":
		month, year := f.month, f.year
		if strings.TrimSpace(month) == "" {
			month = utils.CurrentMonth(now)
		}
		if strings.TrimSpace(year) == "" {
			year = utils.CurrentYear(now)
		}
		return domain.ExpenseFilter{Mode: domain.FilterMonth, Month: month, Year: year}
	default:
		return domain.ExpenseFilter{Mode: domain.FilterAll}
	}
}

func (app *App) expensesCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Elenca le spese",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			expenses, err := app.deps.Dashboard.Expenses(cmd.Context(), session, flags.filter(app.now()))
			if err != nil {
				return err
			}

			app.renderer.Expenses(expenses)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (app *App) summaryCmd() *cobra.Command {
	var (
		flags  filterFlags
		bucket bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Riepilogo delle spese per categoria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			filter := flags.filter(app.now())
			if !bucket {
				metrics, err := app.deps.Dashboard.Summary(cmd.Context(), session, filter)
				if err != nil {
					return err
				}
				app.renderer.Metrics(*metrics)
				return nil
			}

			expenses, err := app.deps.Dashboard.Expenses(cmd.Context(), session, filter)
			if err != nil {
				return err
			}

			app.renderer.Metrics(summarizing.Aggregate(expenses,
				summarizing.WithCategoryStrategy(summarizing.CategoryBucket),
				summarizing.WithUncategorizedLabel(app.deps.Config.Dashboard.UncategorizedLabel),
			))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&bucket, "bucket-uncategorized", false, "raggruppa le spese senza categoria invece di escluderle")
	return cmd
}

func (app *App) monthlyCmd() *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Grafico delle spese mensili",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			if year == "" {
				year = utils.CurrentYear(app.now())
			}

			series, err := app.deps.Dashboard.Monthly(cmd.Context(), session, year)
			if err != nil {
				return err
			}

			app.renderer.Monthly(series, year)
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "anno (default: anno corrente)")
	return cmd
}

func (app *App) dashboardCmd() *cobra.Command {
	var (
		flags     filterFlags
		chartYear string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Riepilogo, grafico mensile e spese in un'unica vista",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			view, err := app.deps.Dashboard.Load(cmd.Context(), session, flags.filter(app.now()), chartYear)
			if err != nil {
				return err
			}

			app.renderer.Dashboard(view)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&chartYear, "chart-year", "", "anno del grafico (default: anno corrente)")
	return cmd
}

func (app *App) houseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "house",
		Short: "Gestione della casa condivisa",
	}

	link := &cobra.Command{
		Use:   "link <codice>",
		Short: "Collega il tuo account a una casa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			message, err := app.deps.Houses.LinkHouse(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}

			app.renderer.Message(message)
			return nil
		},
	}

	roommates := &cobra.Command{
		Use:   "roommates <id-casa>",
		Short: "Elenca i coinquilini",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			list, err := app.deps.Houses.Roommates(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}

			app.renderer.Roommates(list)
			return nil
		},
	}

	cmd.AddCommand(link, roommates)
	return cmd
}
