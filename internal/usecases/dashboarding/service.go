package dashboarding

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/summarizing"
	"github.com/vfg2006/spendy-api/pkg/log"
	"github.com/vfg2006/spendy-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

const defaultMonthlyError = "Grafico mensile non disponibile al momento."

// ErrSuperseded é devolvido ao carregamento que foi substituído por outro mais novo da mesma sessão
var ErrSuperseded = errors.New("carregamento substituído por um mais recente")

type Dashboard interface {
	Load(ctx context.Context, session *domain.Session, filter domain.ExpenseFilter, chartYear string) (*domain.DashboardView, error)
	Expenses(ctx context.Context, session *domain.Session, filter domain.ExpenseFilter) ([]domain.Expense, error)
	Summary(ctx context.Context, session *domain.Session, filter domain.ExpenseFilter) (*domain.Metrics, error)
	Monthly(ctx context.Context, session *domain.Session, year string) ([]domain.MonthlyPoint, error)
}

type Service struct {
	integrator spendy.SpendyIntegrator
	sessions   domain.SessionInvalidator
	aggregate  []summarizing.Option
	monthlyErr string

	fence  *Fence
	group  singleflight.Group
	logger log.Logger
	now    func() time.Time
}

func NewService(cfg *config.Config, integrator spendy.SpendyIntegrator, sessions domain.SessionInvalidator) *Service {
	monthlyErr := cfg.Dashboard.MonthlyErrorMessage
	if monthlyErr == "" {
		monthlyErr = defaultMonthlyError
	}

	return &Service{
		integrator: integrator,
		sessions:   sessions,
		aggregate:  summarizing.OptionsFromConfig(cfg.Dashboard),
		monthlyErr: monthlyErr,
		fence:      NewFence(),
		logger:     log.Component("dashboarding"),
		now:        time.Now,
	}
}

// Load busca despesas e série mensal em paralelo. A falha da série não derruba
// o carregamento: vira MonthlyError com a série vazia.
func (s *Service) Load(ctx context.Context, session *domain.Session, filter domain.ExpenseFilter, chartYear string) (*domain.DashboardView, error) {
	filter, err := validFilter(filter)
	if err != nil {
		return nil, err
	}

	chartYear, err = s.validYear(chartYear)
	if err != nil {
		return nil, err
	}

	loadCtx, ticket := s.fence.Acquire(ctx, session.ID)
	defer ticket.Release()

	logger := s.logger.WithContext(ctx).WithFields(log.Fields{
		log.FieldUser: session.Username,
		"filter":      filter.Key(),
		"chart_year":  chartYear,
		"sequence":    ticket.Seq,
	})

	var (
		wg         sync.WaitGroup
		expenses   []domain.Expense
		expErr     error
		amounts    map[string]any
		monthlyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		expenses, expErr = s.integrator.GetExpenses(loadCtx, session.Token, filter)
	}()
	go func() {
		defer wg.Done()
		amounts, monthlyErr = s.monthlyAmounts(loadCtx, session, chartYear)
	}()
	wg.Wait()

	if !ticket.Current() {
		logger.Debug("Carregamento descartado por um mais recente")
		return nil, ErrSuperseded
	}

	for _, err := range []error{expErr, monthlyErr} {
		if errors.Is(err, domain.ErrUnauthorized) {
			logger.WithError(err).Warn("Token rejeitado ao carregar dashboard")
			return nil, domain.ExpireOnUnauthorized(ctx, s.sessions, session, err)
		}
	}

	if expErr != nil {
		logger.WithError(expErr).Error("Erro ao buscar despesas")
		return nil, expErr
	}

	view := &domain.DashboardView{
		Filter:    filter,
		ChartYear: chartYear,
		Expenses:  expenses,
		Metrics:   summarizing.Aggregate(expenses, s.aggregate...),
		Sequence:  ticket.Seq,
	}

	if monthlyErr != nil {
		logger.WithError(monthlyErr).Warn("Série mensal indisponível")
		view.Monthly = []domain.MonthlyPoint{}
		view.MonthlyError = s.monthlyErrorMessage(monthlyErr)
	} else {
		view.Monthly = summarizing.BuildMonthlySeries(amounts, chartYear)
	}

	logger.WithField("expenses", len(expenses)).Info("Dashboard carregado")

	return view, nil
}

func (s *Service) Expenses(ctx context.Context, session *domain.Session, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	filter, err := validFilter(filter)
	if err != nil {
		return nil, err
	}

	expenses, err := s.integrator.GetExpenses(ctx, session.Token, filter)
	if err != nil {
		return nil, domain.ExpireOnUnauthorized(ctx, s.sessions, session, err)
	}

	return expenses, nil
}

func (s *Service) Summary(ctx context.Context, session *domain.Session, filter domain.ExpenseFilter) (*domain.Metrics, error) {
	expenses, err := s.Expenses(ctx, session, filter)
	if err != nil {
		return nil, err
	}

	metrics := summarizing.Aggregate(expenses, s.aggregate...)
	return &metrics, nil
}

// Monthly devolve a série de doze meses do ano; ano vazio usa o ano corrente
func (s *Service) Monthly(ctx context.Context, session *domain.Session, year string) ([]domain.MonthlyPoint, error) {
	year, err := s.validYear(year)
	if err != nil {
		return nil, err
	}

	amounts, err := s.monthlyAmounts(ctx, session, year)
	if err != nil {
		return nil, domain.ExpireOnUnauthorized(ctx, s.sessions, session, err)
	}

	return summarizing.BuildMonthlySeries(amounts, year), nil
}

// monthlyAmounts compartilha a mesma busca entre chamadas simultâneas da sessão para o
// mesmo ano. A busca segue mesmo se quem a iniciou desistir.
func (s *Service) monthlyAmounts(ctx context.Context, session *domain.Session, year string) (map[string]any, error) {
	key := session.ID + ":" + year

	ch := s.group.DoChan(key, func() (any, error) {
		return s.integrator.GetMonthlyAmounts(context.WithoutCancel(ctx), session.Token, year)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		amounts, _ := res.Val.(map[string]any)
		return amounts, nil
	}
}

func (s *Service) monthlyErrorMessage(err error) string {
	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	return s.monthlyErr
}

func (s *Service) validYear(year string) (string, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		year = utils.CurrentYear(s.now())
	}
	if err := domain.ValidateYear(year); err != nil {
		return "", err
	}
	return year, nil
}

func validFilter(filter domain.ExpenseFilter) (domain.ExpenseFilter, error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return domain.ExpenseFilter{}, err
	}
	return filter, nil
}
