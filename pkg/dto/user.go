package dto

import (
	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/domain"
)

type UserCreate struct {
	Username string
	Country  domain.Country
}

type UserRead struct {
	ID       uuid.UUID      `json:"id"`
	Username string         `json:"username"`
	Country  domain.Country `json:"country"`
}

func NewUserRead(u *domain.User) *UserRead {
	return &UserRead{ID: u.ID, Username: u.Username, Country: u.Country}
}
