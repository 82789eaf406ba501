package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Indrani-08/recosave-backend/database"
)

type salaryInputRequest struct {
	UserID         uint    `json:"user_id"`
	Salary         *int    `json:"salary"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	InvestmentGoal *string `json:"investment_goal"`
}

// SalaryInput handles POST /salary_input, overwriting the mutable
// profile fields.
func (h *Handler) SalaryInput(c *fiber.Ctx) error {
	var req salaryInputRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	if err := database.UpdateUserProfile(req.UserID, req.Salary, req.Age, req.Gender, req.InvestmentGoal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error: " + err.Error(),
		})
	}

	// Any cached analysis was derived from the old profile.
	database.InvalidateRecommendation(req.UserID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User data updated successfully!",
	})
}

// UserProfile handles GET /user_profile/:id.
func (h *Handler) UserProfile(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	user, err := database.GetUserByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(profileJSON(user))
}
