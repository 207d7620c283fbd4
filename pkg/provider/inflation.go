// Package provider defines the external inflation-data source contract and
// the series arithmetic applied to its observations.
package provider

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta/pkg/domain"
)

// ErrNoObservations is returned when a series holds no observations.
var ErrNoObservations = errors.New("no observations in series")

const (
	divisionScale   = 4
	percentageScale = 2
)

var oneHundred = decimal.NewFromInt(100)

// Observation is a single (period, index value) data point of a monthly
// series. Period uses the yyyy-MM label.
type Observation struct {
	Period string
	Value  decimal.Decimal
}

// Series is an ordered run of monthly price-index observations for one
// country and indicator. Observations are appended chronologically and
// consumed newest-first.
type Series struct {
	Frequency    string
	Country      domain.Country
	Indicator    domain.Indicator
	Observations []Observation
}

// LatestMonthlyRate computes the month-over-month inflation percentage from
// the two most recent observations.
//
// Formula: (latest - previous) / previous * 100, the division carried to four
// decimal places and the result rounded half-up to two.
//
// A series with a single observation returns that observation unchanged: no
// rate can be computed, so the raw index value passes through under the rate
// field.
func (s *Series) LatestMonthlyRate() (Observation, error) {
	if s == nil || len(s.Observations) == 0 {
		return Observation{}, ErrNoObservations
	}

	latest := s.Observations[len(s.Observations)-1]
	if len(s.Observations) == 1 {
		return latest, nil
	}

	previous := s.Observations[len(s.Observations)-2]
	rate := latest.Value.Sub(previous.Value).
		DivRound(previous.Value, divisionScale).
		Mul(oneHundred).
		Round(percentageScale)

	return Observation{Period: latest.Period, Value: rate}, nil
}

// InflationSource fetches the monthly price-index series for a country over a
// year window. A nil series with a nil error means the source has no data for
// that country.
type InflationSource interface {
	FetchMonthlySeries(ctx context.Context, country domain.Country, startYear, endYear int) (*Series, error)
}
