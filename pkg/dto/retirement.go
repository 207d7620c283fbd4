package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta/pkg/domain"
)

type RetirementDetailCreate struct {
	Username              string
	IncomePerMonthDesired decimal.Decimal
	RetirementDate        time.Time
	LifeExpectation       time.Time
}

type RetirementDetailUpdate struct {
	IncomePerMonthDesired decimal.Decimal
	RetirementDate        time.Time
	LifeExpectation       time.Time
}

type RetirementDetailRead struct {
	ID                    uuid.UUID       `json:"id"`
	IncomePerMonthDesired decimal.Decimal `json:"incomePerMonthDesired"`
	RetirementDate        time.Time       `json:"retirementDate"`
	LifeExpectation       time.Time       `json:"lifeExpectation"`
	UserID                uuid.UUID       `json:"userId"`
}

func NewRetirementDetailRead(d *domain.RetirementDetail) *RetirementDetailRead {
	return &RetirementDetailRead{
		ID:                    d.ID,
		IncomePerMonthDesired: d.IncomePerMonthDesired,
		RetirementDate:        d.RetirementDate,
		LifeExpectation:       d.LifeExpectation,
		UserID:                d.UserID,
	}
}
