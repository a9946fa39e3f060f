package spendy

import (
	"bytes"
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	spendydomain "github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/domain"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/spendyclient"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
)

type SpendyIntegrator interface {
	Login(ctx context.Context, credentials domain.Credentials) (string, error)
	Register(ctx context.Context, registration domain.Registration) (string, error)
	LinkHouse(ctx context.Context, token string, houseCode string) (string, error)
	GetRoommates(ctx context.Context, token string, houseID string) ([]domain.Roommate, error)
	ImportStatement(ctx context.Context, token string, file domain.StatementFile) (string, error)
	GetExpenses(ctx context.Context, token string, filter domain.ExpenseFilter) ([]domain.Expense, error)
	GetMonthlyAmounts(ctx context.Context, token string, year string) (map[string]any, error)
}

type SpendyService struct {
	cfg    *config.Config
	Client spendyclient.Client
}

func New(cfg *config.Config, client spendyclient.Client) SpendyIntegrator {
	return &SpendyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SpendyService) Login(ctx context.Context, credentials domain.Credentials) (string, error) {
	resp, err := s.Client.Login(ctx, spendydomain.LoginRequest{
		Username: credentials.Username,
		Email:    credentials.Email,
		Password: credentials.Password,
	})
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}

func (s *SpendyService) Register(ctx context.Context, registration domain.Registration) (string, error) {
	return s.Client.Register(ctx, spendydomain.RegisterRequest{
		Username: registration.Username,
		Password: registration.Password,
		Name:     registration.Name,
		Surname:  registration.Surname,
		Email:    registration.Email,
	})
}

func (s *SpendyService) LinkHouse(ctx context.Context, token string, houseCode string) (string, error) {
	return s.Client.LinkHouse(ctx, token, spendydomain.LinkHouseRequest{HouseCode: houseCode})
}

func (s *SpendyService) GetRoommates(ctx context.Context, token string, houseID string) ([]domain.Roommate, error) {
	records, err := s.Client.RetrieveRoommates(ctx, token, houseID)
	if err != nil {
		return nil, err
	}

	roommates := make([]domain.Roommate, 0, len(records))
	for _, record := range records {
		var roommate domain.Roommate
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &roommate,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(record); err != nil {
			logrus.WithError(err).Debug("coinquilino com campos ignorados")
		}
		roommates = append(roommates, roommate)
	}

	return roommates, nil
}

func (s *SpendyService) ImportStatement(ctx context.Context, token string, file domain.StatementFile) (string, error) {
	return s.Client.ImportExpenses(ctx, token, file.Name, bytes.NewReader(file.Data))
}

// GetExpenses escolhe o endpoint conforme o modo do filtro e normaliza os registros
func (s *SpendyService) GetExpenses(ctx context.Context, token string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	var (
		records []map[string]any
		err     error
	)

	filter = filter.Normalize()

	switch filter.Mode {
	case domain.FilterMonth:
		records, err = s.Client.GetExpensesByMonth(ctx, token, spendydomain.MonthRequest{
			Month: filter.Month,
			Year:  filter.Year,
		})
	case domain.FilterRange:
		start, end, boundsErr := filter.RangeBounds()
		if boundsErr != nil {
			return nil, boundsErr
		}
		records, err = s.Client.GetExpensesByDate(ctx, token, spendydomain.DateRangeRequest{
			StartedDate:   start,
			CompletedDate: end,
		})
	default:
		records, err = s.Client.GetExpenses(ctx, token)
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"filter":  filter.Key(),
		"records": len(records),
	}).Debug("Despesas recebidas do backend")

	return domain.NormalizeExpenses(records), nil
}

func (s *SpendyService) GetMonthlyAmounts(ctx context.Context, token string, year string) (map[string]any, error) {
	return s.Client.GetMonthlyAmountOfYear(ctx, token, spendydomain.YearRequest{Year: year})
}
