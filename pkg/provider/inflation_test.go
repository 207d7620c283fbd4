package provider

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-app/moneta/pkg/domain"
)

func obs(period, value string) Observation {
	return Observation{Period: period, Value: decimal.RequireFromString(value)}
}

func TestSeries_LatestMonthlyRate(t *testing.T) {
	tests := []struct {
		name         string
		observations []Observation
		wantPeriod   string
		wantValue    string
	}{
		{
			name:         "ten percent rise",
			observations: []Observation{obs("2024-04", "100"), obs("2024-05", "110")},
			wantPeriod:   "2024-05",
			wantValue:    "10.00",
		},
		{
			name:         "fractional rate rounded half-up",
			observations: []Observation{obs("2024-04", "104.871"), obs("2024-05", "105.113")},
			wantPeriod:   "2024-05",
			wantValue:    "0.23", // (105.113-104.871)/104.871 = 0.0023 -> 0.23
		},
		{
			name:         "deflation yields a negative rate",
			observations: []Observation{obs("2024-04", "110"), obs("2024-05", "100")},
			wantPeriod:   "2024-05",
			wantValue:    "-9.09",
		},
		{
			name: "only the two most recent observations count",
			observations: []Observation{
				obs("2024-02", "50"), obs("2024-03", "80"),
				obs("2024-04", "100"), obs("2024-05", "110"),
			},
			wantPeriod: "2024-05",
			wantValue:  "10.00",
		},
		{
			name:         "single observation passes through unchanged",
			observations: []Observation{obs("2024-05", "105.4")},
			wantPeriod:   "2024-05",
			wantValue:    "105.4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Series{
				Frequency:    "M",
				Country:      domain.CountryES,
				Indicator:    domain.IndicatorPCPIIX,
				Observations: tt.observations,
			}
			got, err := s.LatestMonthlyRate()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriod, got.Period)
			assert.True(t, got.Value.Equal(decimal.RequireFromString(tt.wantValue)),
				"got %s, want %s", got.Value, tt.wantValue)
		})
	}
}

func TestSeries_LatestMonthlyRate_Empty(t *testing.T) {
	s := &Series{Frequency: "M", Country: domain.CountryES}
	_, err := s.LatestMonthlyRate()
	assert.ErrorIs(t, err, ErrNoObservations)

	var nilSeries *Series
	_, err = nilSeries.LatestMonthlyRate()
	assert.ErrorIs(t, err, ErrNoObservations)
}
