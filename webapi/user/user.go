// Package user exposes the user management endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/dto"
	usersvc "github.com/moneta-app/moneta/pkg/service/user"
	"github.com/moneta-app/moneta/webapi/common"
)

// Routes registers the user endpoints.
func Routes(app *fiber.App, svc *usersvc.Service) {
	app.Post("/user", CreateUserHandler(svc))
	app.Get("/user/:id", GetUser(svc))
	app.Put("/user/:id", UpdateUserHandler(svc))
	app.Delete("/user/:id", DeleteUser(svc))
}

// CreateUserHandler registers a new user.
func CreateUserHandler(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateUser](c)
		if input == nil {
			return err // error response already written
		}
		user, err := svc.Create(c.Context(), dto.UserCreate{
			Username: input.Username,
			Country:  domain.Country(input.Country),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user", user)
	}
}

// GetUser retrieves a user by id.
func GetUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid user ID", "User ID must be a valid UUID")
		}
		user, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", user)
	}
}

// UpdateUserHandler updates a user's details.
func UpdateUserHandler(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateUser](c)
		if input == nil {
			return err // error response already written
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid user ID", "User ID must be a valid UUID")
		}
		user, err := svc.Update(c.Context(), id, dto.UserCreate{
			Username: input.Username,
			Country:  domain.Country(input.Country),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated successfully", user)
	}
}

// DeleteUser removes a user by id.
func DeleteUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid user ID", "User ID must be a valid UUID")
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "User successfully deleted", nil)
	}
}
