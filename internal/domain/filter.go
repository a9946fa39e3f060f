package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/spendy-api/pkg/utils"
)

type FilterMode string

const (
	FilterAll   FilterMode = "all"
	FilterMonth FilterMode = "month"
	FilterRange FilterMode = "range"
)

// ExpenseFilter seleciona quais despesas buscar no backend
type ExpenseFilter struct {
	Mode          FilterMode `json:"mode"`
	Month         string     `json:"month,omitempty"`
	Year          string     `json:"year,omitempty"`
	StartedDate   string     `json:"startedDate,omitempty"`
	CompletedDate string     `json:"completedDate,omitempty"`
}

// Normalize aplica o modo padrão, remove espaços e completa o mês com zero
// à esquerda: o backend monta "ano-mês-01" e só aceita mês com dois dígitos
func (f ExpenseFilter) Normalize() ExpenseFilter {
	f.Mode = FilterMode(strings.ToLower(strings.TrimSpace(string(f.Mode))))
	if f.Mode == "" {
		f.Mode = FilterAll
	}
	f.Month = strings.TrimSpace(f.Month)
	if m, err := ParseMonth(f.Month); err == nil {
		f.Month = fmt.Sprintf("%02d", m)
	}
	f.Year = strings.TrimSpace(f.Year)
	f.StartedDate = strings.TrimSpace(f.StartedDate)
	f.CompletedDate = strings.TrimSpace(f.CompletedDate)
	return f
}

// Validate deve ser chamado antes de qualquer requisição ao backend
func (f ExpenseFilter) Validate() error {
	switch f.Mode {
	case FilterAll:
		return nil
	case FilterMonth:
		if _, err := ParseMonth(f.Month); err != nil {
			return err
		}
		return ValidateYear(f.Year)
	case FilterRange:
		if f.StartedDate == "" || f.CompletedDate == "" {
			return ErrMissingRange
		}
		start, err := utils.ParseDate(f.StartedDate)
		if err != nil {
			return ErrInvalidDate
		}
		end, err := utils.ParseDate(f.CompletedDate)
		if err != nil {
			return ErrInvalidDate
		}
		if start.After(*end) {
			return ErrInvalidRange
		}
		return nil
	default:
		return ErrInvalidMode
	}
}

// RangeBounds devolve o intervalo no formato esperado pelo backend
func (f ExpenseFilter) RangeBounds() (string, string, error) {
	start, err := utils.ParseDate(f.StartedDate)
	if err != nil || start == nil {
		return "", "", ErrInvalidDate
	}
	end, err := utils.ParseDate(f.CompletedDate)
	if err != nil || end == nil {
		return "", "", ErrInvalidDate
	}
	return utils.StartOfDay(*start), utils.EndOfDay(*end), nil
}

// Key identifica o filtro em logs
func (f ExpenseFilter) Key() string {
	switch f.Mode {
	case FilterMonth:
		return fmt.Sprintf("month:%s-%s", f.Year, f.Month)
	case FilterRange:
		return fmt.Sprintf("range:%s..%s", f.StartedDate, f.CompletedDate)
	default:
		return string(FilterAll)
	}
}

// ParseMonth aceita "1".."12" com ou sem zero à esquerda
func ParseMonth(month string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return 0, ErrInvalidMonth
	}
	return m, nil
}

// ValidateYear aceita apenas anos com quatro dígitos
func ValidateYear(year string) error {
	if len(year) != 4 {
		return ErrInvalidYear
	}
	if _, err := strconv.Atoi(year); err != nil {
		return ErrInvalidYear
	}
	return nil
}
