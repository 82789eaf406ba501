package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Indrani-08/recosave-backend/database"
)

// GetRecommendations handles GET /recommendations/:id. The profile must
// already hold salary, age, and an investment goal; the adapter is not
// invoked for an incomplete profile.
func (h *Handler) GetRecommendations(c *fiber.Ctx) error {
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

	if !user.HasCompleteProfile() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing essential profile data (salary, age, or goal) required for AI analysis.",
		})
	}

	if cached, ok := database.GetCachedRecommendation(user.ID); ok {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"recommendation_analysis": json.RawMessage(cached),
		})
	}

	result, err := h.Recommender.Generate(c.UserContext(), user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if data, err := json.Marshal(result); err == nil {
		database.SetCachedRecommendation(user.ID, data)
	} else {
		log.Printf("Error serializing recommendation for cache: %v", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"recommendation_analysis": result,
	})
}
