// Package infra bootstraps external resources.
package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/moneta-app/moneta/infra/repository"
)

// NewDatabase opens the postgres database and migrates the schema.
func NewDatabase(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	err = db.AutoMigrate(
		&repository.User{},
		&repository.Account{},
		&repository.AccountHistory{},
		&repository.RetirementDetail{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return db, nil
}
