package importing

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// separador dos CSV gerados a partir de planilhas; vírgula colidiria com decimais
const spreadsheetSeparator = ';'

// XLSXToCSV converte a primeira planilha do arquivo em CSV
func XLSXToCSV(data []byte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrUnreadableSpreadsheet, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(ErrUnreadableSpreadsheet, err.Error())
	}

	rows = trimEmptyRows(rows)
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = spreadsheetSeparator

	for _, row := range rows {
		// GetRows omite células vazias no fim da linha
		padded := make([]string, width)
		copy(padded, row)
		if err := writer.Write(padded); err != nil {
			return nil, errors.Wrap(err, "erro ao gerar CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao gerar CSV")
	}

	return buf.Bytes(), nil
}

func trimEmptyRows(rows [][]string) [][]string {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(strings.Join(row, "")) != "" {
			kept = append(kept, row)
		}
	}
	return kept
}
