// Package handlers maps each HTTP route onto the persistence layer, the
// scheme catalog, and the recommendation adapter, and translates their
// outcomes into JSON bodies and status codes.
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Indrani-08/recosave-backend/models"
	"github.com/Indrani-08/recosave-backend/recommend"
)

// Handler carries the injected dependencies shared by all routes.
type Handler struct {
	Recommender recommend.Recommender
	JWTSecret   string
}

// New creates a Handler.
func New(recommender recommend.Recommender, jwtSecret string) *Handler {
	return &Handler{Recommender: recommender, JWTSecret: jwtSecret}
}

// Home handles GET /.
func (h *Handler) Home(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "RecoSave AI Backend is Running. Use API endpoints for functionality.",
	})
}

// userIDParam parses the :id path segment.
func userIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// profileJSON is the wire shape existing clients expect for a profile.
func profileJSON(user *models.User) fiber.Map {
	return fiber.Map{
		"id":              user.ID,
		"username":        user.Username,
		"salary":          user.Salary,
		"age":             user.Age,
		"gender":          user.Gender,
		"investment_goal": user.InvestmentGoal,
	}
}
