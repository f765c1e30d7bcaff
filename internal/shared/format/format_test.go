package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromCents(t *testing.T) {
	assert.Equal(t, "$10.99", MoneyFromCents(1099, "USD"))
	assert.Equal(t, "€0.05", MoneyFromCents(5, "EUR"))
	assert.Equal(t, "£1200.00", MoneyFromCents(120000, "GBP"))
	assert.Equal(t, "XYZ 3.50", MoneyFromCents(350, "XYZ"))
}

func TestDate(t *testing.T) {
	ts := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 9, 2025", Date(ts))
	assert.Equal(t, "Mar 9, 2025 14:30", DateTime(ts))
	assert.Equal(t, "", Date(time.Time{}))
}
