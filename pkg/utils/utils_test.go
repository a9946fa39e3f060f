package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2024, 1, 5, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-05 00:00:00", StartOfDay(date))
	assert.Equal(t, "2024-01-05 23:59:59", EndOfDay(date))
	assert.Equal(t, "2024", CurrentYear(date))
	assert.Equal(t, "01", CurrentMonth(date))
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 0.0, RoundToCents(decimal.Zero))
	assert.Equal(t, 10.57, RoundToCents(decimal.RequireFromString("10.565")))
	assert.Equal(t, 33.33, RoundToCents(decimal.NewFromInt(100).Div(decimal.NewFromInt(3))))
}

func TestGenerateSessionID(t *testing.T) {
	first, err := GenerateSessionID()
	require.NoError(t, err)
	second, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"b\": true\n}", PrettyJson([]byte(`{"b":true}`)))
	assert.Equal(t, "not json", PrettyJson([]byte("not json")))
}
