package domain

// CategoryTotal agrega as saídas de uma categoria
type CategoryTotal struct {
	Name         string  `json:"name"`
	Total        float64 `json:"total"`
	Transactions int     `json:"transactions"`
}

// Metrics resume as saídas de um conjunto de despesas
type Metrics struct {
	TotalExpenses     float64         `json:"totalExpenses"`
	AverageExpense    float64         `json:"averageExpense"`
	HighestExpense    float64         `json:"highestExpense"`
	TotalTransactions int             `json:"totalTransactions"`
	Categories        []CategoryTotal `json:"categories"`
}

// EmptyMetrics devolve métricas zeradas com lista de categorias vazia
func EmptyMetrics() Metrics {
	return Metrics{Categories: []CategoryTotal{}}
}

// MonthlyPoint é um ponto da série mensal de gastos
type MonthlyPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// DashboardView é a composição retornada pelo carregamento do dashboard
type DashboardView struct {
	Filter       ExpenseFilter  `json:"filter"`
	ChartYear    string         `json:"chartYear"`
	Expenses     []Expense      `json:"expenses"`
	Metrics      Metrics        `json:"metrics"`
	Monthly      []MonthlyPoint `json:"monthly"`
	MonthlyError string         `json:"monthlyError,omitempty"`
	Sequence     uint64         `json:"sequence"`
}
