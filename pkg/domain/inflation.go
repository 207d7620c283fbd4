package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Indicator identifies an IMF price indicator series.
type Indicator string

const (
	// IndicatorPCPIIX is the consumer price index, all items.
	IndicatorPCPIIX Indicator = "PCPI_IX"
	// IndicatorPCPIPCH is the inflation rate, average consumer prices.
	IndicatorPCPIPCH Indicator = "PCPIPCH"
	// IndicatorPCPIEPCH is the inflation rate, end of period consumer prices.
	IndicatorPCPIEPCH Indicator = "PCPIEPCH"
)

const (
	inflationKeyPrefix = "INFLATION"
	// PeriodLayout is the yyyy-MM label used for monthly observation periods.
	PeriodLayout = "2006-01"
)

var (
	one        = decimal.NewFromInt(1)
	oneHundred = decimal.NewFromInt(100)
)

// InflationRate is the cached month-over-month inflation percentage for one
// country and period.
type InflationRate struct {
	PercentageRate decimal.Decimal `json:"percentageRate"`
	Period         string          `json:"period"`
	Country        Country         `json:"country"`
	Indicator      Indicator       `json:"indicator"`
}

// RateFactor converts the percentage rate to a multiplier on a gross amount.
// Formula: 1 - (percentageRate / 100), the division rounded half-up to two
// decimal places. A 1% inflation rate yields 0.99.
func (r *InflationRate) RateFactor() decimal.Decimal {
	return one.Sub(r.PercentageRate.DivRound(oneHundred, 2))
}

// Key returns the cache key for this rate.
func (r *InflationRate) Key() string {
	return InflationRateKey(r.Country, r.Period)
}

// InflationRateKey builds the cache key for a country and a yyyy-MM period
// label. Deterministic and collision-free across country/period pairs.
func InflationRateKey(country Country, period string) string {
	return inflationKeyPrefix + "|" + string(country) + "|" + period
}

// InflationRateKeyForDate builds the cache key for the year-month of date.
func InflationRateKeyForDate(country Country, date time.Time) string {
	return InflationRateKey(country, date.Format(PeriodLayout))
}
