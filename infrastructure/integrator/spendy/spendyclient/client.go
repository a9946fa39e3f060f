package spendyclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	spendydomain "github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/domain"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	loginPath          = "/Auth/auth/login"
	registerPath       = "/Auth/auth/register"
	linkHousePath      = "/Auth/auth/external/link-house"
	roommatesPath      = "/Auth/client/retrieveCoinquy"
	importPath         = "/Expense/rest/expense/import"
	expensesPath       = "/Expense/rest/expense/getExpenses"
	expensesByDatePath = "/Expense/rest/expense/getExpenseByDate"
	expensesByMonth    = "/Expense/rest/expense/getExpenseByMonth"
	monthlyAmountsPath = "/Expense/rest/expense/getMonthlyAmountOfYear"
)

// ErrEmptyToken indica um login bem-sucedido sem token na resposta
var ErrEmptyToken = errors.New("backend não retornou token de acesso")

type Client interface {
	Login(ctx context.Context, payload spendydomain.LoginRequest) (*spendydomain.LoginResponse, error)
	Register(ctx context.Context, payload spendydomain.RegisterRequest) (string, error)
	LinkHouse(ctx context.Context, token string, payload spendydomain.LinkHouseRequest) (string, error)
	RetrieveRoommates(ctx context.Context, token string, houseID string) ([]map[string]any, error)
	ImportExpenses(ctx context.Context, token string, filename string, content io.Reader) (string, error)
	GetExpenses(ctx context.Context, token string) ([]map[string]any, error)
	GetExpensesByDate(ctx context.Context, token string, payload spendydomain.DateRangeRequest) ([]map[string]any, error)
	GetExpensesByMonth(ctx context.Context, token string, payload spendydomain.MonthRequest) ([]map[string]any, error)
	GetMonthlyAmountOfYear(ctx context.Context, token string, payload spendydomain.YearRequest) (map[string]any, error)
}

type SpendyClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente do backend Spendy com o timeout configurado
func NewClient(cfg *config.Config) Client {
	return &SpendyClient{
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		baseURL: cfg.Backend.BaseURL,
	}
}

type request struct {
	method      string
	path        string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
}

func (c *SpendyClient) sendJSON(ctx context.Context, method, endpointPath, token string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	return c.send(ctx, request{
		method:      method,
		path:        endpointPath,
		token:       token,
		body:        body,
		contentType: "application/json",
	})
}

func (c *SpendyClient) send(ctx context.Context, r request) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, r.path)
	if len(r.query) > 0 {
		endpoint.RawQuery = r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), r.body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.body != nil && r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(ctx, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithFields(logrus.Fields{
			"method": r.method,
			"path":   r.path,
			"status": resp.StatusCode,
		}).Debugf("Resposta de erro do backend:\n%s", utils.PrettyJson(data))
		return nil, newBackendError(resp.StatusCode, data)
	}

	return data, nil
}

// transportError preserva o cancelamento do contexto; o resto vira erro 500 do backend
func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return &domain.BackendError{Status: http.StatusInternalServerError, Message: err.Error()}
}

func newBackendError(status int, body []byte) *domain.BackendError {
	message := messageFrom(body)
	if message == "" {
		message = http.StatusText(status)
	}
	return &domain.BackendError{Status: status, Message: message}
}

// messageFrom extrai a mensagem de um corpo JSON ({message}, {error} ou string) ou texto puro
func messageFrom(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '{':
		var errResp spendydomain.ErrorResponse
		if err := json.Unmarshal(trimmed, &errResp); err == nil && errResp.Text() != "" {
			return errResp.Text()
		}
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil {
			return text
		}
	}

	return string(trimmed)
}

func invalidResponse(err error) error {
	return &domain.BackendError{
		Status:  http.StatusBadGateway,
		Message: fmt.Sprintf("resposta inválida do backend: %s", err),
	}
}

// decodeRecords aceita apenas arrays de objetos; qualquer outro JSON vira lista vazia
func decodeRecords(data []byte) ([]map[string]any, error) {
	records := []map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, invalidResponse(err)
	}

	items, ok := payload.([]any)
	if !ok {
		return records, nil
	}

	for _, item := range items {
		if record, isObject := item.(map[string]any); isObject {
			records = append(records, record)
		}
	}

	return records, nil
}
