package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExpense(t *testing.T) {
	tests := []struct {
		name     string
		record   map[string]any
		validate func(t *testing.T, e Expense)
	}{
		{
			name: "Valores numéricos e strings numéricas",
			record: map[string]any{
				"id":          float64(42),
				"type":        "CARD_PAYMENT",
				"description": "Lidl",
				"amount":      "-12.50",
				"fee":         0.3,
				"currency":    "EUR",
				"category":    "Supermercati e Alimentari",
			},
			validate: func(t *testing.T, e Expense) {
				assert.Equal(t, "42", e.ID)
				assert.Equal(t, "CARD_PAYMENT", e.Type)
				assert.True(t, e.Amount.Equal(decimal.RequireFromString("-12.5")))
				assert.True(t, e.Fee.Equal(decimal.RequireFromString("0.3")))
				assert.Equal(t, "Supermercati e Alimentari", e.Category)
				assert.True(t, e.IsOutflow())
			},
		},
		{
			name: "Valor ausente ou ilegível vira zero",
			record: map[string]any{
				"description": "sem valor",
				"fee":         "abc",
			},
			validate: func(t *testing.T, e Expense) {
				assert.True(t, e.Amount.IsZero())
				assert.True(t, e.Fee.IsZero())
				assert.False(t, e.IsOutflow())
			},
		},
		{
			name: "Valor nulo vira zero",
			record: map[string]any{
				"amount": nil,
				"fee":    " 1.25 ",
			},
			validate: func(t *testing.T, e Expense) {
				assert.True(t, e.Amount.IsZero())
				assert.True(t, e.Fee.Equal(decimal.RequireFromString("1.25")))
			},
		},
		{
			name: "Datas em snake_case",
			record: map[string]any{
				"started_date":        "2024-03-01T10:00:00",
				"completed_date_time": "2024-03-02T11:00:00",
			},
			validate: func(t *testing.T, e Expense) {
				assert.Equal(t, "2024-03-01T10:00:00", e.StartedDate)
				assert.Equal(t, "2024-03-02T11:00:00", e.CompletedDate)
			},
		},
		{
			name: "camelCase tem precedência sobre os aliases",
			record: map[string]any{
				"startedDate":  "2024-01-01T00:00:00",
				"started_date": "2023-12-31T00:00:00",
			},
			validate: func(t *testing.T, e Expense) {
				assert.Equal(t, "2024-01-01T00:00:00", e.StartedDate)
			},
		},
		{
			name: "Alias nulo passa para o próximo",
			record: map[string]any{
				"startedDate":       nil,
				"started_date":      nil,
				"started_date_time": "2024-05-05T05:05:05",
			},
			validate: func(t *testing.T, e Expense) {
				assert.Equal(t, "2024-05-05T05:05:05", e.StartedDate)
			},
		},
		{
			name: "Campo de texto com tipo incompatível fica vazio sem afetar os demais",
			record: map[string]any{
				"description": map[string]any{"x": 1},
				"amount":      -3,
				"state":       "COMPLETED",
			},
			validate: func(t *testing.T, e Expense) {
				assert.Empty(t, e.Description)
				assert.True(t, e.Amount.Equal(decimal.NewFromInt(-3)))
				assert.Equal(t, "COMPLETED", e.State)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NormalizeExpense(tt.record))
		})
	}
}

func TestNormalizeExpenses_PreservaOrdem(t *testing.T) {
	raw := []map[string]any{
		{"description": "a", "amount": -1},
		{"description": "b", "amount": "x"},
		{"description": "c", "amount": 5},
	}

	expenses := NormalizeExpenses(raw)

	require.Len(t, expenses, 3)
	assert.Equal(t, "a", expenses[0].Description)
	assert.Equal(t, "b", expenses[1].Description)
	assert.Equal(t, "c", expenses[2].Description)
	assert.Empty(t, NormalizeExpenses(nil))
}

func TestExpense_JSONComValorNumerico(t *testing.T) {
	e := Expense{Description: "Netflix", Amount: decimal.RequireFromString("-9.99")}

	out, err := json.Marshal(e)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"amount":-9.99`)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "float", value: -12.5, want: "-12.5"},
		{name: "inteiro", value: 7, want: "7"},
		{name: "string com espaços", value: "  3.40 ", want: "3.4"},
		{name: "string vazia", value: "", want: "0"},
		{name: "string inválida", value: "1,5", want: "0"},
		{name: "json.Number", value: json.Number("-2.75"), want: "-2.75"},
		{name: "nil", value: nil, want: "0"},
		{name: "booleano", value: true, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.value).String())
		})
	}
}

func TestParseExpenseDate(t *testing.T) {
	got, ok := ParseExpenseDate("2025-01-02T14:05:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 2, 14, 5, 0, 0, time.UTC), got)

	got, ok = ParseExpenseDate("2025-01-02 14:05:00")
	require.True(t, ok)
	assert.Equal(t, 14, got.Hour())

	_, ok = ParseExpenseDate("")
	assert.False(t, ok)

	_, ok = ParseExpenseDate("ieri")
	assert.False(t, ok)
}
