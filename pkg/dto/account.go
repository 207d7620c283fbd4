package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta/pkg/domain"
)

// AccountCreate carries the fields accepted when opening an account. The net
// amount is never part of a write; it is derived asynchronously.
type AccountCreate struct {
	Username string
	Amount   decimal.NullDecimal
	Type     domain.AccountType
}

// AccountRead is the read-optimized account projection.
type AccountRead struct {
	ID        uuid.UUID           `json:"id"`
	Amount    decimal.NullDecimal `json:"amount"`
	AmountNet decimal.NullDecimal `json:"amountNet"`
	Type      domain.AccountType  `json:"type"`
	Date      time.Time           `json:"date"`
	UserID    uuid.UUID           `json:"userId"`
}

// NewAccountRead projects a domain account.
func NewAccountRead(a *domain.Account) *AccountRead {
	return &AccountRead{
		ID:        a.ID,
		Amount:    a.Amount,
		AmountNet: a.AmountNet,
		Type:      a.Type,
		Date:      a.Date,
		UserID:    a.UserID,
	}
}
