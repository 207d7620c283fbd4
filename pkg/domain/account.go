package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
)

// Account is a user-owned balance. Amount holds the gross balance; AmountNet is
// the inflation-adjusted balance and is only ever written by the net-worth
// recalculation, never by a direct user write.
type Account struct {
	ID        uuid.UUID
	Amount    decimal.NullDecimal
	AmountNet decimal.NullDecimal
	Type      AccountType
	Date      time.Time
	UserID    uuid.UUID
}

// Deposit adds amount to the gross balance and returns a history snapshot of
// the pre-deposit state. The snapshot is taken before the balance changes.
func (a *Account) Deposit(amount decimal.NullDecimal) (*AccountHistory, error) {
	if !amount.Valid || amount.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidOperation)
	}

	history := &AccountHistory{
		ID:        uuid.New(),
		Amount:    a.Amount,
		Date:      time.Now(),
		AccountID: a.ID,
	}

	if a.Amount.Valid {
		a.Amount.Decimal = a.Amount.Decimal.Add(amount.Decimal)
	} else {
		a.Amount = amount
	}
	return history, nil
}

// ApplyInflation sets the net amount from the gross amount and the given
// inflation rate. Positive inflation reduces purchasing power, so the net
// amount ends up at or below the gross amount.
func (a *Account) ApplyInflation(rate *InflationRate) {
	if !a.Amount.Valid {
		a.AmountNet = decimal.NullDecimal{}
		return
	}
	a.AmountNet = decimal.NullDecimal{
		Decimal: rate.RateFactor().Mul(a.Amount.Decimal),
		Valid:   true,
	}
}

// AccountHistory is an immutable snapshot of an account balance, created once
// per deposit. It references the account by id only and survives account
// mutation.
type AccountHistory struct {
	ID        uuid.UUID
	Amount    decimal.NullDecimal
	Date      time.Time
	AccountID uuid.UUID
}
