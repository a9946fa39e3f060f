package domain

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func init() {
	// valores monetários saem como número no JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense é uma transação importada de um extrato bancário
type Expense struct {
	ID            string          `json:"id,omitempty" mapstructure:"id"`
	Type          string          `json:"type" mapstructure:"type"`
	Product       string          `json:"product" mapstructure:"product"`
	StartedDate   string          `json:"startedDate,omitempty" mapstructure:"startedDate"`
	CompletedDate string          `json:"completedDate,omitempty" mapstructure:"completedDate"`
	Description   string          `json:"description" mapstructure:"description"`
	Amount        decimal.Decimal `json:"amount" mapstructure:"amount"`
	Fee           decimal.Decimal `json:"fee" mapstructure:"fee"`
	Currency      string          `json:"currency,omitempty" mapstructure:"currency"`
	State         string          `json:"state,omitempty" mapstructure:"state"`
	Category      string          `json:"category,omitempty" mapstructure:"category"`
}

// IsOutflow indica se a transação é uma saída de dinheiro
func (e Expense) IsOutflow() bool {
	return e.Amount.IsNegative()
}

// StartedAt interpreta a data de início nos formatos aceitos pelo backend
func (e Expense) StartedAt() (time.Time, bool) {
	return ParseExpenseDate(e.StartedDate)
}

var expenseDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseExpenseDate aceita os formatos ISO usados pelo backend
func ParseExpenseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range expenseDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// campos de data que o backend pode enviar com nomes diferentes
var dateAliases = map[string][]string{
	"startedDate":   {"startedDate", "started_date", "started_date_time"},
	"completedDate": {"completedDate", "completed_date", "completed_date_time"},
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// NormalizeExpenses converte os registros crus do backend em Expense.
// A ordem de entrada é preservada e nenhum registro é descartado.
func NormalizeExpenses(raw []map[string]any) []Expense {
	expenses := make([]Expense, 0, len(raw))
	for _, record := range raw {
		expenses = append(expenses, NormalizeExpense(record))
	}
	return expenses
}

// NormalizeExpense converte um único registro. Valores numéricos ilegíveis viram 0.
func NormalizeExpense(record map[string]any) Expense {
	input := make(map[string]any, len(record))
	for key, value := range record {
		input[key] = value
	}

	for field, aliases := range dateAliases {
		input[field] = firstPresent(record, aliases)
	}

	var expense Expense
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decimalHook,
		WeaklyTypedInput: true,
		Result:           &expense,
	})
	if err != nil {
		logrus.WithError(err).Error("erro ao criar decoder de despesas")
		return expense
	}

	// campos com tipos incompatíveis ficam vazios; os demais são decodificados
	if err := decoder.Decode(input); err != nil {
		logrus.WithError(err).Debug("registro de despesa com campos ignorados")
	}

	return expense
}

func decimalHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	return ParseAmount(data), nil
}

// firstPresent devolve o primeiro alias com valor não nulo
func firstPresent(record map[string]any, aliases []string) any {
	for _, alias := range aliases {
		if value, ok := record[alias]; ok && value != nil {
			return value
		}
	}
	return nil
}
