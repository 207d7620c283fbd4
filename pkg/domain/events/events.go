// Package events defines the domain triggers that decouple write operations
// from downstream recalculation.
package events

import "github.com/google/uuid"

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// Source tags an event with the operation that raised it. The tag alone
// determines the delivery discipline: scan-driven events are delivered
// immediately, every other source is delivered after the enclosing unit of
// work commits.
type Source string

const (
	SourceScan             Source = "SCAN"
	SourceDeposit          Source = "DEPOSIT"
	SourceAccountCreation  Source = "ACCOUNT_CREATION"
	SourceNetRecalculation Source = "RECALCULATION_NET_AMOUNT"
	SourceRetirementUpdate Source = "RETIREMENT_UPDATE"
)

// Sourced is implemented by events carrying an originating source tag.
type Sourced interface {
	Event
	EventSource() Source
}

// Event type constants
const (
	EventTypeNetWorthRecalculationRequested       = "NetWorth.RecalculationRequested"
	EventTypeRetirementGoalRecalculationRequested = "RetirementGoal.RecalculationRequested"
	EventTypeRetirementDetailUpdated              = "RetirementDetail.Updated"
)

// NetWorthRecalculationRequested asks for the inflation-adjusted net amounts
// of all of one user's accounts to be recomputed.
type NetWorthRecalculationRequested struct {
	UserID uuid.UUID
	Source Source
}

func (e NetWorthRecalculationRequested) Type() string        { return EventTypeNetWorthRecalculationRequested }
func (e NetWorthRecalculationRequested) EventSource() Source { return e.Source }

// RetirementGoalRecalculationRequested asks for one user's retirement-goal
// percentage to be recomputed from the current net amounts.
type RetirementGoalRecalculationRequested struct {
	UserID uuid.UUID
	Source Source
}

func (e RetirementGoalRecalculationRequested) Type() string {
	return EventTypeRetirementGoalRecalculationRequested
}
func (e RetirementGoalRecalculationRequested) EventSource() Source { return e.Source }

// RetirementDetailUpdated is raised when a user edits their retirement target.
// It triggers a goal recalculation directly, bypassing net-worth recalculation.
type RetirementDetailUpdated struct {
	UserID uuid.UUID
	Source Source
}

func (e RetirementDetailUpdated) Type() string        { return EventTypeRetirementDetailUpdated }
func (e RetirementDetailUpdated) EventSource() Source { return e.Source }
