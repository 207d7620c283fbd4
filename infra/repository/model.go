// Package repository implements the persistence contracts on gorm/postgres.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta/pkg/domain"
)

// Account is the gorm model backing domain.Account.
type Account struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Amount    decimal.NullDecimal `gorm:"column:amount_gross;type:numeric"`
	AmountNet decimal.NullDecimal `gorm:"column:amount_net;type:numeric"`
	Type      string              `gorm:"not null"`
	Date      time.Time           `gorm:"not null"`
	UserID    uuid.UUID           `gorm:"type:uuid;not null;index"`
}

// AccountHistory is the gorm model backing domain.AccountHistory. Rows are
// written once and never updated.
type AccountHistory struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Amount    decimal.NullDecimal `gorm:"type:numeric"`
	Date      time.Time           `gorm:"not null"`
	AccountID uuid.UUID           `gorm:"type:uuid;not null"`
}

func (AccountHistory) TableName() string { return "account_history" }

// RetirementDetail is the gorm model backing domain.RetirementDetail.
type RetirementDetail struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	IncomePerMonthDesired decimal.Decimal `gorm:"column:income_per_month_desired;type:numeric;not null"`
	RetirementDate        time.Time       `gorm:"column:retirement_date;not null"`
	LifeExpectation       time.Time       `gorm:"column:life_expectation;not null"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
}

func (RetirementDetail) TableName() string { return "retirement_detail" }

// User is the gorm model backing domain.User.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"not null;uniqueIndex;size:15"`
	Country  string    `gorm:"not null;index:idx_country"`
}

func (User) TableName() string { return "app_user" }

func mapAccountToModel(a *domain.Account) Account {
	return Account{
		ID:        a.ID,
		Amount:    a.Amount,
		AmountNet: a.AmountNet,
		Type:      string(a.Type),
		Date:      a.Date,
		UserID:    a.UserID,
	}
}

func mapModelToAccount(m *Account) *domain.Account {
	return &domain.Account{
		ID:        m.ID,
		Amount:    m.Amount,
		AmountNet: m.AmountNet,
		Type:      domain.AccountType(m.Type),
		Date:      m.Date,
		UserID:    m.UserID,
	}
}

func mapHistoryToModel(h *domain.AccountHistory) AccountHistory {
	return AccountHistory{
		ID:        h.ID,
		Amount:    h.Amount,
		Date:      h.Date,
		AccountID: h.AccountID,
	}
}

func mapDetailToModel(d *domain.RetirementDetail) RetirementDetail {
	return RetirementDetail{
		ID:                    d.ID,
		IncomePerMonthDesired: d.IncomePerMonthDesired,
		RetirementDate:        d.RetirementDate,
		LifeExpectation:       d.LifeExpectation,
		UserID:                d.UserID,
	}
}

func mapModelToDetail(m *RetirementDetail) *domain.RetirementDetail {
	return &domain.RetirementDetail{
		ID:                    m.ID,
		IncomePerMonthDesired: m.IncomePerMonthDesired,
		RetirementDate:        m.RetirementDate,
		LifeExpectation:       m.LifeExpectation,
		UserID:                m.UserID,
	}
}

func mapUserToModel(u *domain.User) User {
	return User{ID: u.ID, Username: u.Username, Country: string(u.Country)}
}

func mapModelToUser(m *User) *domain.User {
	return &domain.User{ID: m.ID, Username: m.Username, Country: domain.Country(m.Country)}
}
