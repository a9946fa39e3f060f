package summarizing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/utils"
)

// MonthLabels são os rótulos abreviados em italiano, de janeiro a dezembro
var MonthLabels = [12]string{"Gen", "Feb", "Mar", "Apr", "Mag", "Giu", "Lug", "Ago", "Set", "Ott", "Nov", "Dic"}

// BuildMonthlySeries monta a série de 12 meses a partir do mapa "YYYY-MM" -> valor.
// Chaves de outros anos ou com mês fora de 1..12 são ignoradas.
func BuildMonthlySeries(data map[string]any, year string) []domain.MonthlyPoint {
	series := make([]domain.MonthlyPoint, len(MonthLabels))
	for i, label := range MonthLabels {
		series[i] = domain.MonthlyPoint{Month: label}
	}

	// ordem determinística quando duas chaves apontam para o mesmo mês
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !strings.HasPrefix(key, year) {
			continue
		}

		month, ok := monthOfKey(key)
		if !ok {
			continue
		}

		series[month-1].Value = utils.RoundToCents(domain.ParseAmount(data[key]).Abs())
	}

	return series
}

func monthOfKey(key string) (int, bool) {
	parts := strings.Split(key, "-")
	if len(parts) < 2 {
		return 0, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > len(MonthLabels) {
		return 0, false
	}

	return month, true
}

// MonthLabel devolve o rótulo do mês (1..12) ou o próprio valor quando inválido
func MonthLabel(month string) string {
	m, err := domain.ParseMonth(month)
	if err != nil {
		return month
	}
	return MonthLabels[m-1]
}
