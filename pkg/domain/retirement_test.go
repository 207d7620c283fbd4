package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRetirementDetail_DurationInMonths(t *testing.T) {
	tests := []struct {
		name       string
		retirement time.Time
		expectancy time.Time
		want       int
	}{
		{"exact years", date(2040, time.January, 1), date(2070, time.January, 1), 360},
		{"one month", date(2040, time.January, 1), date(2040, time.February, 1), 1},
		{"partial trailing month does not count", date(2040, time.January, 15), date(2040, time.March, 14), 1},
		{"years plus months", date(2040, time.March, 1), date(2041, time.May, 1), 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &RetirementDetail{RetirementDate: tt.retirement, LifeExpectation: tt.expectancy}
			months, err := d.DurationInMonths()
			require.NoError(t, err)
			assert.Equal(t, tt.want, months)
		})
	}
}

func TestRetirementDetail_DurationInMonths_NonPositive(t *testing.T) {
	tests := []struct {
		name       string
		retirement time.Time
		expectancy time.Time
	}{
		{"equal dates", date(2040, time.January, 1), date(2040, time.January, 1)},
		{"inverted dates", date(2070, time.January, 1), date(2040, time.January, 1)},
		{"less than a month", date(2040, time.January, 1), date(2040, time.January, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &RetirementDetail{RetirementDate: tt.retirement, LifeExpectation: tt.expectancy}
			_, err := d.DurationInMonths()
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestRetirementDetail_TotalSavingsNeeded(t *testing.T) {
	d := &RetirementDetail{IncomePerMonthDesired: decimal.RequireFromString("2000")}
	needed := d.TotalSavingsNeeded(360)
	assert.True(t, needed.Equal(decimal.RequireFromString("720000")), "got %s", needed)
}
