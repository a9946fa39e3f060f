package utils

import (
	"fmt"
	"strconv"
	"time"
)

const (
	startOfDay = "00:00:00"
	endOfDay   = "23:59:59"
)

// ParseDate interpreta datas no formato YYYY-MM-DD. String vazia resulta em nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfDay formata a data como "YYYY-MM-DD 00:00:00"
func StartOfDay(date time.Time) string {
	return date.Format(time.DateOnly) + " " + startOfDay
}

// EndOfDay formata a data como "YYYY-MM-DD 23:59:59"
func EndOfDay(date time.Time) string {
	return date.Format(time.DateOnly) + " " + endOfDay
}

// CurrentYear retorna o ano corrente com quatro dígitos
func CurrentYear(now time.Time) string {
	return strconv.Itoa(now.Year())
}

// CurrentMonth retorna o mês corrente com dois dígitos
func CurrentMonth(now time.Time) string {
	return fmt.Sprintf("%02d", int(now.Month()))
}
