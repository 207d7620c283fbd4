package domain

import "github.com/google/uuid"

// User owns accounts and an optional retirement detail. Country determines
// which inflation rate applies to the user's balances.
type User struct {
	ID       uuid.UUID
	Username string
	Country  Country
}
