// Package webapi provides the HTTP handlers and API endpoints.
// It is organized into sub-packages for different domains:
// - user: User management endpoints
// - account: Account and deposit endpoints
// - retirement: Retirement detail and goal endpoints
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/moneta-app/moneta/pkg/app"
	accountweb "github.com/moneta-app/moneta/webapi/account"
	"github.com/moneta-app/moneta/webapi/common"
	retirementweb "github.com/moneta-app/moneta/webapi/retirement"
	userweb "github.com/moneta-app/moneta/webapi/user"
)

// SetupApp initializes Fiber with custom configuration and registers routes.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Moneta API is running! 🚀")
	})

	userweb.Routes(fiberApp, app.UserService)
	accountweb.Routes(fiberApp, app.AccountService)
	retirementweb.Routes(fiberApp, app.RetirementService, app.GoalService)

	return fiberApp
}
