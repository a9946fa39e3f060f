package spendyclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spendydomain "github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/domain"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		Backend: config.Backend{BaseURL: server.URL, Timeout: 2 * time.Second},
	})
}

func TestSpendyClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Auth/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body spendydomain.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, spendydomain.LoginRequest{Username: "mario", Password: "segreta"}, body)

		_, _ = w.Write([]byte(`{"token":"jwt-token"}`))
	})

	resp, err := client.Login(context.Background(), spendydomain.LoginRequest{Username: "mario", Password: "segreta"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
}

func TestSpendyClient_LoginSemToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Login(context.Background(), spendydomain.LoginRequest{Username: "mario", Password: "x"})

	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestSpendyClient_NormalizacaoDeErros(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantUnauth  bool
	}{
		{name: "Campo message", status: http.StatusBadRequest, body: `{"message":"Utente già registrato"}`, wantMessage: "Utente già registrato"},
		{name: "Campo error", status: http.StatusUnauthorized, body: `{"status":401,"error":"Unauthorized"}`, wantMessage: "Unauthorized", wantUnauth: true},
		{name: "String JSON", status: http.StatusForbidden, body: `"Token scaduto"`, wantMessage: "Token scaduto", wantUnauth: true},
		{name: "Texto puro", status: http.StatusInternalServerError, body: "boom", wantMessage: "boom"},
		{name: "Corpo vazio usa o texto do status", status: http.StatusServiceUnavailable, body: "", wantMessage: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetExpenses(context.Background(), "tok")

			var backendErr *domain.BackendError
			require.True(t, errors.As(err, &backendErr))
			assert.Equal(t, tt.status, backendErr.Status)
			assert.Equal(t, tt.wantMessage, backendErr.Message)
			assert.Equal(t, tt.wantUnauth, errors.Is(err, domain.ErrUnauthorized))
		})
	}
}

func TestSpendyClient_FalhaDeTransporte(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(&config.Config{Backend: config.Backend{BaseURL: url, Timeout: time.Second}})

	_, err := client.GetExpenses(context.Background(), "tok")

	var backendErr *domain.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusInternalServerError, backendErr.Status)
	assert.NotEmpty(t, backendErr.Message)
}

func TestSpendyClient_CancelamentoPreservaErroDoContexto(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetExpenses(ctx, "tok")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpendyClient_GetExpenses(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
	}{
		{name: "Array de objetos", body: `[{"description":"Lidl","amount":-10},{"description":"Uber","amount":"-5.5"}]`, wantLen: 2},
		{name: "Elementos que não são objetos são descartados", body: `[{"amount":-1}, 3, "x", null]`, wantLen: 1},
		{name: "Corpo não array vira lista vazia", body: `{"content":[]}`, wantLen: 0},
		{name: "Corpo nulo vira lista vazia", body: `null`, wantLen: 0},
		{name: "Corpo vazio vira lista vazia", body: ``, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/Expense/rest/expense/getExpenses", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(tt.body))
			})

			records, err := client.GetExpenses(context.Background(), "tok")

			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Len(t, records, tt.wantLen)
		})
	}
}

func TestSpendyClient_RespostaInvalida(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"amount":`))
	})

	_, err := client.GetExpenses(context.Background(), "tok")

	var backendErr *domain.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusBadGateway, backendErr.Status)
}

func TestSpendyClient_FiltrosDeDespesas(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		switch r.URL.Path {
		case "/Expense/rest/expense/getExpenseByDate":
			assert.JSONEq(t, `{"startedDate":"2024-01-01 00:00:00","completedDate":"2024-01-31 23:59:59"}`, string(body))
		case "/Expense/rest/expense/getExpenseByMonth":
			assert.JSONEq(t, `{"month":"3","year":"2024"}`, string(body))
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
		}

		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`[{"amount":-1}]`))
	})

	byDate, err := client.GetExpensesByDate(context.Background(), "tok", spendydomain.DateRangeRequest{
		StartedDate:   "2024-01-01 00:00:00",
		CompletedDate: "2024-01-31 23:59:59",
	})
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	byMonth, err := client.GetExpensesByMonth(context.Background(), "tok", spendydomain.MonthRequest{Month: "03", Year: "2024"})
	require.NoError(t, err)
	assert.Len(t, byMonth, 1)
}

func TestSpendyClient_GetMonthlyAmountOfYear(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{name: "Mapa de valores", body: `{"2024-01": -12.5, "2024-02": "30"}`, want: map[string]any{"2024-01": -12.5, "2024-02": "30"}},
		{name: "Nulo vira mapa vazio", body: `null`, want: map[string]any{}},
		{name: "Array vira mapa vazio", body: `[]`, want: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/Expense/rest/expense/getMonthlyAmountOfYear", r.URL.Path)
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"year":"2024"}`, string(body))
				_, _ = w.Write([]byte(tt.body))
			})

			amounts, err := client.GetMonthlyAmountOfYear(context.Background(), "tok", spendydomain.YearRequest{Year: "2024"})

			require.NoError(t, err)
			assert.Equal(t, tt.want, amounts)
		})
	}
}

func TestSpendyClient_ImportExpenses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Expense/rest/expense/import", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, _ := io.ReadAll(file)
		assert.Equal(t, "estratto.csv", header.Filename)
		assert.Equal(t, "text/csv", header.Header.Get("Content-Type"))
		assert.Equal(t, "a;b\n1;2\n", string(content))

		_, _ = w.Write([]byte("Importate 1 spese"))
	})

	message, err := client.ImportExpenses(context.Background(), "tok", "estratto.csv", strings.NewReader("a;b\n1;2\n"))

	require.NoError(t, err)
	assert.Equal(t, "Importate 1 spese", message)
}

func TestSpendyClient_CasaECoinquilini(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Auth/auth/external/link-house":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"houseCode":"CASA-1"}`, string(body))
			_, _ = w.Write([]byte(`{"message":"Casa collegata"}`))
		case "/Auth/client/retrieveCoinquy":
			assert.Equal(t, "h-42", r.URL.Query().Get("houseId"))
			_, _ = w.Write([]byte(`[{"username":"luigi","name":"Luigi"}]`))
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
		}
	})

	message, err := client.LinkHouse(context.Background(), "tok", spendydomain.LinkHouseRequest{HouseCode: "CASA-1"})
	require.NoError(t, err)
	assert.Equal(t, "Casa collegata", message)

	roommates, err := client.RetrieveRoommates(context.Background(), "tok", "h-42")
	require.NoError(t, err)
	require.Len(t, roommates, 1)
	assert.Equal(t, "luigi", roommates[0]["username"])
}

func TestSpendyClient_Register(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Auth/auth/register", r.URL.Path)
		var body spendydomain.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mario@example.com", body.Email)
		_, _ = w.Write([]byte(`"Utente registrato"`))
	})

	message, err := client.Register(context.Background(), spendydomain.RegisterRequest{
		Username: "mario", Password: "x", Name: "Mario", Surname: "Rossi", Email: "mario@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Utente registrato", message)
}
