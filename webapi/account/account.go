// Package account exposes the account endpoints.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/dto"
	accountsvc "github.com/moneta-app/moneta/pkg/service/account"
	"github.com/moneta-app/moneta/webapi/common"
)

// Routes registers the account endpoints.
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/account", CreateAccountHandler(svc))
	app.Get("/account/:id", GetAccount(svc))
	app.Put("/account/:id", UpdateAccountHandler(svc))
	app.Delete("/account/:id", DeleteAccount(svc))
	app.Post("/account/:id/deposit", Deposit(svc))
}

// CreateAccountHandler opens an account for the given username.
func CreateAccountHandler(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccount](c)
		if input == nil {
			return err // error response already written
		}
		var amount decimal.NullDecimal
		if input.Amount != nil {
			amount = decimal.NullDecimal{Decimal: *input.Amount, Valid: true}
		}
		account, err := svc.Create(c.Context(), dto.AccountCreate{
			Username: input.Username,
			Amount:   amount,
			Type:     domain.AccountType(input.Type),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created account", account)
	}
}

// GetAccount retrieves an account by id.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account ID", "Account ID must be a valid UUID")
		}
		account, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", account)
	}
}

// UpdateAccountHandler updates mutable account details.
func UpdateAccountHandler(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateAccount](c)
		if input == nil {
			return err // error response already written
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account ID", "Account ID must be a valid UUID")
		}
		account, err := svc.Update(c.Context(), id, domain.AccountType(input.Type))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated successfully", account)
	}
}

// DeleteAccount removes an account by id.
func DeleteAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account ID", "Account ID must be a valid UUID")
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Account successfully deleted", nil)
	}
}

// Deposit credits an account and records a balance snapshot.
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err // error response already written
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account ID", "Account ID must be a valid UUID")
		}
		account, err := svc.Deposit(c.Context(), id, decimal.NullDecimal{
			Decimal: input.Amount,
			Valid:   true,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't deposit to account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", account)
	}
}
