package account

import "github.com/shopspring/decimal"

// CreateAccount is the request body for opening an account. The opening
// balance is optional; the net amount is never accepted on a write.
type CreateAccount struct {
	Username string           `json:"username" validate:"required,min=3,max=15"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     string           `json:"type" validate:"required,oneof=SAVINGS"`
}

// UpdateAccount is the request body for changing account details. Balances
// are immutable through this endpoint; deposits are the only balance write.
type UpdateAccount struct {
	Type string `json:"type" validate:"required,oneof=SAVINGS"`
}

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}
