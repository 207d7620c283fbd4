package retirement

import "github.com/shopspring/decimal"

const dateLayout = "2006-01-02"

// CreateRetirementDetail is the request body for registering retirement plans.
// Dates are calendar days in ISO 8601 form.
type CreateRetirementDetail struct {
	Username              string          `json:"username" validate:"required,min=3,max=15"`
	IncomePerMonthDesired decimal.Decimal `json:"incomePerMonthDesired" validate:"required"`
	RetirementDate        string          `json:"retirementDate" validate:"required,datetime=2006-01-02"`
	LifeExpectation       string          `json:"lifeExpectation" validate:"required,datetime=2006-01-02"`
}

// UpdateRetirementDetail is the request body for revising retirement plans.
type UpdateRetirementDetail struct {
	IncomePerMonthDesired decimal.Decimal `json:"incomePerMonthDesired" validate:"required"`
	RetirementDate        string          `json:"retirementDate" validate:"required,datetime=2006-01-02"`
	LifeExpectation       string          `json:"lifeExpectation" validate:"required,datetime=2006-01-02"`
}
