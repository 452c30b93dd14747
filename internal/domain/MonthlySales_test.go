package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPeriod_String(t *testing.T) {
	assert.Equal(t, "2024-01", Period{Year: 2024, Month: time.January}.String())
	assert.Equal(t, "0999-12", Period{Year: 999, Month: time.December}.String())
}

func TestPeriod_Before(t *testing.T) {
	jan := Period{Year: 2024, Month: time.January}
	feb := Period{Year: 2024, Month: time.February}
	dec := Period{Year: 2023, Month: time.December}

	assert.True(t, jan.Before(feb))
	assert.False(t, feb.Before(jan))
	assert.True(t, dec.Before(jan))
	assert.False(t, jan.Before(jan))
}

func TestTransactionRecord_Revenue(t *testing.T) {
	r := TransactionRecord{Quantity: 3, Price: decimal.RequireFromString("9.99")}
	assert.True(t, decimal.RequireFromString("29.97").Equal(r.Revenue()))
}
