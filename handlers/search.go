package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Indrani-08/recosave-backend/catalog"
)

// SearchSchemes handles GET /search?q=. The empty-query guard lives
// here: catalog.Find("") would match the whole catalog, so the route
// answers with a hint instead of calling it.
func (h *Handler) SearchSchemes(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"results": []catalog.SearchResult{},
			"message": "Enter a search term (e.g., 'tax', 'age 60').",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"results": catalog.Find(query),
	})
}
