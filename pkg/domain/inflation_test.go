package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInflationRate_RateFactor(t *testing.T) {
	tests := []struct {
		name string
		rate string
		want string
	}{
		{"one percent", "1", "0.99"},
		{"zero", "0", "1"},
		{"ten percent", "10", "0.9"},
		{"deflation", "-2", "1.02"},
		{"half-up rounding of the division", "0.5", "0.99"}, // 0.5/100 = 0.005 -> 0.01
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &InflationRate{PercentageRate: decimal.RequireFromString(tt.rate)}
			got := r.RateFactor()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"rate %s: got %s, want %s", tt.rate, got, tt.want)
		})
	}
}

func TestInflationRateKey(t *testing.T) {
	assert.Equal(t, "INFLATION|ES|2024-05", InflationRateKey(CountryES, "2024-05"))
	assert.Equal(t, "INFLATION|BR|2023-12", InflationRateKey(CountryBR, "2023-12"))
}

func TestInflationRateKeyForDate(t *testing.T) {
	date := time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "INFLATION|US|2024-01", InflationRateKeyForDate(CountryUS, date))
}

func TestInflationRate_Key(t *testing.T) {
	r := &InflationRate{Country: CountryES, Period: "2024-05"}
	assert.Equal(t, "INFLATION|ES|2024-05", r.Key())
}
