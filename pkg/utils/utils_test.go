package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate(" 2024-01-05 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "37.50", FormatMoney(decimal.RequireFromString("37.5")))
	assert.Equal(t, "29.97", FormatMoney(decimal.RequireFromString("29.970")))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 2.35, RoundWithTwoDecimalPlace(2.349))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
