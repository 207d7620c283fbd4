package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RetirementGoal is the cached goal-achievement percentage for one user,
// rounded to two decimal places. It is overwritten on every recalculation.
type RetirementGoal struct {
	UserID         uuid.UUID       `json:"userId"`
	GoalPercentage decimal.Decimal `json:"goalPercentage"`
}

// Key returns the cache key for this goal, the stringified user id.
func (g *RetirementGoal) Key() string {
	return g.UserID.String()
}
