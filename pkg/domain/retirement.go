package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RetirementDetail holds one user's retirement target: the monthly income
// desired during retirement and the dates bounding the retirement period.
// There is at most one detail per user.
type RetirementDetail struct {
	ID                    uuid.UUID
	IncomePerMonthDesired decimal.Decimal
	RetirementDate        time.Time
	LifeExpectation       time.Time
	UserID                uuid.UUID
}

// DurationInMonths returns the number of whole calendar months between the
// retirement date and the life expectation, as years*12 plus remainder months.
// Fails when the duration is not strictly positive, which covers equal and
// inverted dates.
func (d *RetirementDetail) DurationInMonths() (int, error) {
	months := monthsBetween(d.RetirementDate, d.LifeExpectation)
	if months <= 0 {
		return 0, fmt.Errorf("%w: retirement duration must be greater than 0 months", ErrInvalidArgument)
	}
	return months, nil
}

// TotalSavingsNeeded is the desired monthly income multiplied by the duration
// in months, with exact decimal arithmetic.
func (d *RetirementDetail) TotalSavingsNeeded(months int) decimal.Decimal {
	return d.IncomePerMonthDesired.Mul(decimal.NewFromInt(int64(months)))
}

// monthsBetween counts whole calendar months from start to end. A partial
// trailing month does not count.
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	return months
}
