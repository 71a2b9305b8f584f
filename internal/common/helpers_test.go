package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "0.00", FormatCurrency(0))
	assert.Equal(t, "150.00", FormatCurrency(150))
	assert.Equal(t, "100.50", FormatCurrency(100.5))
	assert.Equal(t, "1,234,567.50", FormatCurrency(1234567.5))
	assert.Equal(t, "-50.00", FormatCurrency(-50))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "2,350", FormatCount(2350))
	assert.Equal(t, "1,000,001", FormatCount(1000001))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	assert.Equal(t, "2025-03-14 15:09:26", FormatDateTime(ts))
}
