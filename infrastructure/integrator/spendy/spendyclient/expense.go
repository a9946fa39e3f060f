package spendyclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	spendydomain "github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/domain"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
}

// ImportExpenses envia o extrato como multipart, no campo "file"
func (c *SpendyClient) ImportExpenses(ctx context.Context, token string, filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	header.Set("Content-Type", contentTypeFor(filename))

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("erro ao criar o multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("erro ao copiar o arquivo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("erro ao finalizar o multipart: %w", err)
	}

	data, err := c.send(ctx, request{
		method:      http.MethodPost,
		path:        importPath,
		token:       token,
		body:        &body,
		contentType: writer.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}

	return messageFrom(data), nil
}

func (c *SpendyClient) GetExpenses(ctx context.Context, token string) ([]map[string]any, error) {
	data, err := c.send(ctx, request{
		method: http.MethodGet,
		path:   expensesPath,
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	return decodeRecords(data)
}

func (c *SpendyClient) GetExpensesByDate(ctx context.Context, token string, payload spendydomain.DateRangeRequest) ([]map[string]any, error) {
	data, err := c.sendJSON(ctx, http.MethodPost, expensesByDatePath, token, payload)
	if err != nil {
		return nil, err
	}

	return decodeRecords(data)
}

func (c *SpendyClient) GetExpensesByMonth(ctx context.Context, token string, payload spendydomain.MonthRequest) ([]map[string]any, error) {
	data, err := c.sendJSON(ctx, http.MethodPost, expensesByMonth, token, payload)
	if err != nil {
		return nil, err
	}

	return decodeRecords(data)
}

// GetMonthlyAmountOfYear devolve o mapa "YYYY-MM" -> valor. Corpo nulo ou não objeto vira mapa vazio.
func (c *SpendyClient) GetMonthlyAmountOfYear(ctx context.Context, token string, payload spendydomain.YearRequest) (map[string]any, error) {
	data, err := c.sendJSON(ctx, http.MethodPost, monthlyAmountsPath, token, payload)
	if err != nil {
		return nil, err
	}

	amounts := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return amounts, nil
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, invalidResponse(err)
	}

	if object, ok := decoded.(map[string]any); ok {
		return object, nil
	}

	return amounts, nil
}

func contentTypeFor(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
