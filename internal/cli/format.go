package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/spendy-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const emptyValue = "—"

var italian = message.NewPrinter(language.Italian)

var shortMonths = [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"}

var currencySymbols = map[string]string{
	"":    "€",
	"EUR": "€",
}

// FormatCurrency formata no padrão italiano: 1.234,56 €
func FormatCurrency(value float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code
	}
	return fmt.Sprintf("%s %s", italian.Sprint(number.Decimal(value, number.Scale(2))), symbol)
}

func FormatAmount(amount decimal.Decimal, currency string) string {
	return FormatCurrency(amount.Round(2).InexactFloat64(), currency)
}

// FormatDateTime devolve "02 gen 2025, 14:05"; vazio vira travessão e ilegível sai como veio
func FormatDateTime(value string) string {
	if strings.TrimSpace(value) == "" {
		return emptyValue
	}

	t, ok := domain.ParseExpenseDate(value)
	if !ok {
		return value
	}

	return fmt.Sprintf("%02d %s %d, %02d:%02d", t.Day(), shortMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
