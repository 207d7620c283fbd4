// Package retirement exposes the retirement detail and goal endpoints.
package retirement

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/moneta-app/moneta/pkg/dto"
	goalsvc "github.com/moneta-app/moneta/pkg/service/goal"
	retirementsvc "github.com/moneta-app/moneta/pkg/service/retirement"
	"github.com/moneta-app/moneta/webapi/common"
)

// Routes registers the retirement endpoints.
func Routes(app *fiber.App, svc *retirementsvc.Service, goals *goalsvc.Service) {
	app.Post("/retirement", CreateRetirementHandler(svc))
	app.Get("/retirement/:id", GetRetirement(svc))
	app.Put("/retirement/:id", UpdateRetirementHandler(svc))
	app.Delete("/retirement/:id", DeleteRetirement(svc))
	app.Get("/retirement/goal/:userId", GetGoal(goals))
}

// CreateRetirementHandler registers a user's retirement plans.
func CreateRetirementHandler(svc *retirementsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRetirementDetail](c)
		if input == nil {
			return err // error response already written
		}
		retirementDate, _ := time.Parse(dateLayout, input.RetirementDate)
		lifeExpectation, _ := time.Parse(dateLayout, input.LifeExpectation)
		detail, err := svc.Create(c.Context(), dto.RetirementDetailCreate{
			Username:              input.Username,
			IncomePerMonthDesired: input.IncomePerMonthDesired,
			RetirementDate:        retirementDate,
			LifeExpectation:       lifeExpectation,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create retirement detail", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created retirement detail", detail)
	}
}

// GetRetirement retrieves retirement details by id.
func GetRetirement(svc *retirementsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid retirement detail ID", "Retirement detail ID must be a valid UUID")
		}
		detail, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch retirement detail", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Retirement detail found", detail)
	}
}

// UpdateRetirementHandler revises retirement plans and triggers a goal
// recalculation once the revision commits.
func UpdateRetirementHandler(svc *retirementsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateRetirementDetail](c)
		if input == nil {
			return err // error response already written
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid retirement detail ID", "Retirement detail ID must be a valid UUID")
		}
		retirementDate, _ := time.Parse(dateLayout, input.RetirementDate)
		lifeExpectation, _ := time.Parse(dateLayout, input.LifeExpectation)
		detail, err := svc.Update(c.Context(), id, dto.RetirementDetailUpdate{
			IncomePerMonthDesired: input.IncomePerMonthDesired,
			RetirementDate:        retirementDate,
			LifeExpectation:       lifeExpectation,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update retirement detail", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Retirement detail updated successfully", detail)
	}
}

// DeleteRetirement removes retirement details by id.
func DeleteRetirement(svc *retirementsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid retirement detail ID", "Retirement detail ID must be a valid UUID")
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete retirement detail", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Retirement detail successfully deleted", nil)
	}
}

// GetGoal returns the cached retirement goal for a user.
func GetGoal(goals *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid user ID", "User ID must be a valid UUID")
		}
		goal, err := goals.GetGoal(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch retirement goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Retirement goal found", goal)
	}
}
