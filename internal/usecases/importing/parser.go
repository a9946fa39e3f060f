package importing

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
)

// saída no mesmo formato ISO que o backend devolve
const statementDateLayout = "2006-01-02T15:04:05"

var statementDateLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"02/01/2006",
	"02/01/2006 15:04:05",
}

// últimas tentativas no formato ISO local
var isoLocalLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
}

// campos canônicos e seus sinônimos de cabeçalho
var headerSynonyms = []struct {
	field    string
	synonyms []string
}{
	{"type", []string{"Type", "Tipo"}},
	{"product", []string{"Product", "Prodotto", "item", "description_item"}},
	{"startedDate", []string{"started", "started_date", "starteddate", "Data di inizio", "start_date", "Data"}},
	{"completedDate", []string{"completed", "completed_date", "Data di completamento", "data_fine", "end_date", "Data"}},
	{"description", []string{"Description", "Descrizione", "Operazione"}},
	{"amount", []string{"Amount", "Importo", "value", "valore", "totale"}},
	{"fee", []string{"Fee", "tax", "commission"}},
	{"currency", []string{"Currency", "Valuta", "moneta"}},
	{"state", []string{"State", "Stato", "status", "Contabilizzazione"}},
}

var (
	currencySymbols = strings.NewReplacer("€", "", "$", "", "£", "", "¥", "", "\u00a0", "")
	nonNumeric      = regexp.MustCompile(`[^0-9.\-]`)
)

// Statement é o resultado da leitura de um extrato CSV
type Statement struct {
	Separator rune
	Header    []string
	Columns   map[string]int
	Expenses  []domain.Expense
}

// ParseStatement lê o extrato como o importador do backend: separador detectado
// pelo cabeçalho, colunas por sinônimo e categoria pelo classificador
func ParseStatement(r io.Reader, classifier *Classifier) (*Statement, error) {
	br := bufio.NewReader(r)

	headerLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}
	headerLine = strings.TrimPrefix(strings.TrimRight(headerLine, "\r\n"), "\ufeff")
	if strings.TrimSpace(headerLine) == "" {
		return nil, ErrMissingHeader
	}

	separator := DetectSeparator(headerLine)

	headerReader := newCSVReader(strings.NewReader(headerLine), separator)
	header, err := headerReader.Read()
	if err != nil {
		return nil, domain.NewValidationError(apiErrors.ErrInvalidFormat, fmt.Sprintf("Intestazione non valida: %s", err))
	}

	statement := &Statement{
		Separator: separator,
		Header:    header,
		Columns:   MapHeader(header),
		Expenses:  []domain.Expense{},
	}

	reader := newCSVReader(br, separator)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError(apiErrors.ErrInvalidFormat, fmt.Sprintf("Riga non valida: %s", err))
		}

		expense, err := statement.expenseFrom(record, classifier)
		if err != nil {
			return nil, err
		}
		statement.Expenses = append(statement.Expenses, expense)
	}

	return statement, nil
}

func newCSVReader(r io.Reader, separator rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

func (s *Statement) expenseFrom(record []string, classifier *Classifier) (domain.Expense, error) {
	started, err := ParseStatementDate(s.value(record, "startedDate"))
	if err != nil {
		return domain.Expense{}, err
	}

	completed, err := ParseStatementDate(s.value(record, "completedDate"))
	if err != nil {
		return domain.Expense{}, err
	}

	description := s.value(record, "description")

	return domain.Expense{
		Type:          s.value(record, "type"),
		Product:       s.value(record, "product"),
		StartedDate:   started,
		CompletedDate: completed,
		Description:   description,
		Amount:        ParseStatementAmount(s.value(record, "amount")),
		Fee:           ParseStatementAmount(s.value(record, "fee")),
		Currency:      s.value(record, "currency"),
		State:         s.value(record, "state"),
		Category:      classifier.Classify(description),
	}, nil
}

func (s *Statement) value(record []string, field string) string {
	idx, ok := s.Columns[field]
	if !ok || idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// DetectSeparator escolhe o mais frequente entre vírgula, ponto e vírgula e tab.
// Empates preferem ponto e vírgula, depois tab.
func DetectSeparator(headerLine string) rune {
	commas := strings.Count(headerLine, ",")
	semicolons := strings.Count(headerLine, ";")
	tabs := strings.Count(headerLine, "\t")

	highest := max(commas, semicolons, tabs)
	switch highest {
	case semicolons:
		return ';'
	case tabs:
		return '\t'
	default:
		return ','
	}
}

// MapHeader associa cada campo canônico à primeira coluna cujo nome contém um sinônimo
func MapHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for i, raw := range header {
		name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), `"`, ""))
		for _, entry := range headerSynonyms {
			if _, mapped := columns[entry.field]; mapped {
				continue
			}
			for _, synonym := range entry.synonyms {
				if strings.Contains(name, strings.ToLower(synonym)) {
					columns[entry.field] = i
					break
				}
			}
		}
	}
	return columns
}

// ParseStatementDate devolve a data no formato ISO local; vazio devolve vazio
func ParseStatementDate(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}

	// com fuso: mantém o horário de parede
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.Format(statementDateLayout), nil
	}

	for _, layout := range statementDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(statementDateLayout), nil
		}
	}

	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		if len(v) >= 13 {
			n /= 1000
		}
		return time.Unix(n, 0).UTC().Format(statementDateLayout), nil
	}

	for _, layout := range isoLocalLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(statementDateLayout), nil
		}
	}

	return "", &domain.ValidationError{
		Code:    apiErrors.ErrInvalidFormat,
		Message: fmt.Sprintf("Impossibile leggere la data: %s", v),
		Cause:   ErrUnparseableDate,
	}
}

// ParseStatementAmount aceita símbolos de moeda e vírgula decimal. Ilegível vira zero.
func ParseStatementAmount(value string) decimal.Decimal {
	v := strings.TrimSpace(currencySymbols.Replace(strings.TrimSpace(value)))
	if v == "" {
		return decimal.Zero
	}

	hasComma := strings.Contains(v, ",")
	hasDot := strings.Contains(v, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(v, ".") > strings.LastIndex(v, ",") {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.ReplaceAll(v, ".", "")
			v = strings.ReplaceAll(v, ",", ".")
		}
	case hasComma:
		v = strings.ReplaceAll(v, ",", ".")
	}

	v = nonNumeric.ReplaceAllString(v, "")
	if v == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
