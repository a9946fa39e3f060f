package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/vfg2006/spendy-api/internal/domain"
)

// largura máxima das barras do gráfico mensal
const barWidth = 40

var (
	negative  = color.New(color.FgRed, color.Bold).SprintFunc()
	positive  = color.New(color.FgGreen, color.Bold).SprintFunc()
	highlight = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Renderer escreve as visões do Spendy no terminal
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) println(text string) {
	fmt.Fprintln(r.out, text)
}

func (r *Renderer) table(data pterm.TableData) {
	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Srender()
	if err != nil {
		r.println(err.Error())
		return
	}
	r.println(rendered)
}

func (r *Renderer) Message(message string) {
	r.println(positive("✓ ") + message)
}

func coloredAmount(expense domain.Expense) string {
	text := FormatAmount(expense.Amount, expense.Currency)
	if expense.IsOutflow() {
		return negative(text)
	}
	return positive(text)
}

func (r *Renderer) Expenses(expenses []domain.Expense) {
	if len(expenses) == 0 {
		r.println("Nessuna spesa trovata per il periodo selezionato.")
		return
	}

	data := pterm.TableData{{"Data", "Descrizione", "Categoria", "Importo", "Stato"}}
	for _, expense := range expenses {
		category := expense.Category
		if category == "" {
			category = emptyValue
		}
		data = append(data, []string{
			FormatDateTime(expense.StartedDate),
			expense.Description,
			category,
			coloredAmount(expense),
			valueOrDash(expense.State),
		})
	}
	r.table(data)
}

func (r *Renderer) Metrics(metrics domain.Metrics) {
	r.table(pterm.TableData{
		{"Spese totali", "Spesa media", "Spesa più alta", "Movimenti"},
		{
			negative(FormatCurrency(metrics.TotalExpenses, "")),
			FormatCurrency(metrics.AverageExpense, ""),
			FormatCurrency(metrics.HighestExpense, ""),
			strconv.Itoa(metrics.TotalTransactions),
		},
	})

	if len(metrics.Categories) == 0 {
		return
	}

	data := pterm.TableData{{"Categoria", "Totale", "Movimenti", "%"}}
	for _, category := range metrics.Categories {
		share := 0.0
		if metrics.TotalExpenses > 0 {
			share = category.Total / metrics.TotalExpenses * 100
		}
		data = append(data, []string{
			category.Name,
			FormatCurrency(category.Total, ""),
			strconv.Itoa(category.Transactions),
			italian.Sprintf("%.1f%%", share),
		})
	}
	r.table(data)
}

// Monthly desenha a série como barras proporcionais ao maior mês
func (r *Renderer) Monthly(series []domain.MonthlyPoint, year string) {
	highest := 0.0
	for _, point := range series {
		highest = max(highest, point.Value)
	}

	r.println(highlight("Spese mensili " + year))
	if highest == 0 {
		r.println("Nessuna spesa registrata nell'anno.")
		return
	}

	data := pterm.TableData{{"Mese", "Totale", ""}}
	for _, point := range series {
		bar := strings.Repeat("█", int(point.Value/highest*barWidth))
		data = append(data, []string{point.Month, FormatCurrency(point.Value, ""), pterm.FgBlue.Sprint(bar)})
	}

	rendered, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	r.println(rendered)
}

func (r *Renderer) Roommates(roommates []domain.Roommate) {
	data := pterm.TableData{{"ID", "Username", "Nome"}}
	for _, roommate := range roommates {
		data = append(data, []string{roommate.ID, roommate.Username, valueOrDash(roommate.Name)})
	}
	r.table(data)
}

func (r *Renderer) Dashboard(view *domain.DashboardView) {
	r.Metrics(view.Metrics)

	if view.MonthlyError != "" {
		r.println(negative(view.MonthlyError))
	} else {
		r.Monthly(view.Monthly, view.ChartYear)
	}

	r.Expenses(view.Expenses)
}

func (r *Renderer) Preview(preview *domain.ImportPreview) {
	separator := preview.Separator
	if separator == "\t" {
		separator = "tab"
	}
	r.println(fmt.Sprintf("%s: %d righe lette (separatore %q)", highlight(preview.FileName), preview.Rows, separator))
	r.Metrics(preview.Metrics)
	r.Expenses(preview.Expenses)
}

func valueOrDash(value string) string {
	if value == "" {
		return emptyValue
	}
	return value
}
