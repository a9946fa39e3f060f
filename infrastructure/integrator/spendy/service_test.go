package spendy

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spendydomain "github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/domain"
	spendymocks "github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/mocks"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/spendyclient"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSpendyService_GetExpenses(t *testing.T) {
	records := []map[string]any{
		{"description": "Lidl", "amount": "-12.50", "category": "Food", "started_date": "2024-03-02 10:00:00"},
	}

	tests := []struct {
		name   string
		filter domain.ExpenseFilter
		setup  func(client *spendymocks.MockClient)
		want   error
	}{
		{
			name:   "Sem filtro busca todas as despesas",
			filter: domain.ExpenseFilter{Mode: domain.FilterAll},
			setup: func(client *spendymocks.MockClient) {
				client.EXPECT().GetExpenses(gomock.Any(), "tok").Return(records, nil)
			},
		},
		{
			name:   "Filtro por mês envia o mês com dois dígitos",
			filter: domain.ExpenseFilter{Mode: domain.FilterMonth, Month: "3", Year: "2024"},
			setup: func(client *spendymocks.MockClient) {
				client.EXPECT().
					GetExpensesByMonth(gomock.Any(), "tok", spendydomain.MonthRequest{Month: "03", Year: "2024"}).
					Return(records, nil)
			},
		},
		{
			name:   "Filtro por intervalo envia o dia inteiro",
			filter: domain.ExpenseFilter{Mode: domain.FilterRange, StartedDate: "2024-03-01", CompletedDate: "2024-03-31"},
			setup: func(client *spendymocks.MockClient) {
				client.EXPECT().
					GetExpensesByDate(gomock.Any(), "tok", spendydomain.DateRangeRequest{
						StartedDate:   "2024-03-01 00:00:00",
						CompletedDate: "2024-03-31 23:59:59",
					}).
					Return(records, nil)
			},
		},
		{
			name:   "Erro do backend é propagado",
			filter: domain.ExpenseFilter{Mode: domain.FilterAll},
			setup: func(client *spendymocks.MockClient) {
				client.EXPECT().GetExpenses(gomock.Any(), "tok").
					Return(nil, &domain.BackendError{Status: 500, Message: "boom"})
			},
			want: &domain.BackendError{Status: 500, Message: "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := spendymocks.NewMockClient(ctrl)
			tt.setup(client)

			service := New(&config.Config{}, client)
			expenses, err := service.GetExpenses(context.Background(), "tok", tt.filter)

			if tt.want != nil {
				assert.Equal(t, tt.want, err)
				assert.Nil(t, expenses)
				return
			}

			require.NoError(t, err)
			require.Len(t, expenses, 1)
			assert.Equal(t, "Lidl", expenses[0].Description)
			assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("-12.50")))
			assert.Equal(t, "2024-03-02 10:00:00", expenses[0].StartedDate)
		})
	}
}

func TestSpendyService_LoginERoommates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := spendymocks.NewMockClient(ctrl)
	client.EXPECT().
		Login(gomock.Any(), spendydomain.LoginRequest{Email: "mario@example.com", Password: "segreta"}).
		Return(&spendydomain.LoginResponse{Token: "jwt"}, nil)
	client.EXPECT().
		RetrieveRoommates(gomock.Any(), "jwt", "h-1").
		Return([]map[string]any{{"id": 7, "username": "luigi", "name": "Luigi", "extra": true}}, nil)

	service := New(&config.Config{}, client)

	token, err := service.Login(context.Background(), domain.Credentials{Email: "mario@example.com", Password: "segreta"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)

	roommates, err := service.GetRoommates(context.Background(), token, "h-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Roommate{{ID: "7", Username: "luigi", Name: "Luigi"}}, roommates)
}

func TestSpendyService_ImportStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := spendymocks.NewMockClient(ctrl)
	client.EXPECT().
		ImportExpenses(gomock.Any(), "jwt", "estratto.csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, content io.Reader) (string, error) {
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "a;b\n", string(data))
			return "ok", nil
		})

	service := New(&config.Config{}, client)
	message, err := service.ImportStatement(context.Background(), "jwt", domain.StatementFile{Name: "estratto.csv", Data: []byte("a;b\n")})

	require.NoError(t, err)
	assert.Equal(t, "ok", message)
}

func TestSpendyService_LoginComErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := spendymocks.NewMockClient(ctrl)
	client.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, &domain.BackendError{Status: 401, Message: "Credenziali errate"})

	service := New(&config.Config{}, client)
	_, err := service.Login(context.Background(), domain.Credentials{Username: "mario", Password: "x"})

	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestSpendyService_GetExpensesPorMesMontaDataDoBackend(t *testing.T) {
	var received spendydomain.MonthRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Expense/rest/expense/getExpenseByMonth", r.URL.Path)
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := &config.Config{Backend: config.Backend{BaseURL: server.URL, Timeout: time.Second}}
	service := New(cfg, spendyclient.NewClient(cfg))

	_, err := service.GetExpenses(context.Background(), "tok", domain.ExpenseFilter{Mode: domain.FilterMonth, Month: "3", Year: "2024"})
	require.NoError(t, err)

	assert.Equal(t, spendydomain.MonthRequest{Month: "03", Year: "2024"}, received)

	// o backend monta o início do mês assim e exige o layout yyyy-MM-dd HH:mm:ss
	_, err = time.Parse(time.DateTime, received.Year+"-"+received.Month+"-01 00:00:00")
	assert.NoError(t, err)
}
