package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Indrani-08/recosave-backend/catalog"
	"github.com/Indrani-08/recosave-backend/database"
	"github.com/Indrani-08/recosave-backend/models"
)

type enrollRequest struct {
	UserID     uint   `json:"user_id"`
	SchemeName string `json:"scheme_name"`
}

// EnrollScheme handles POST /enroll_scheme.
func (h *Handler) EnrollScheme(c *fiber.Ctx) error {
	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if req.UserID == 0 || req.SchemeName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID and scheme name are required.",
		})
	}

	enrollment := models.Enrollment{
		UserID:     req.UserID,
		SchemeName: req.SchemeName,
	}

	if err := database.CreateEnrollment(&enrollment); err != nil {
		if err == database.ErrDuplicateEnrollment {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": fmt.Sprintf("Scheme '%s' is already enrolled.", req.SchemeName),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to enroll scheme: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Scheme '%s' enrolled successfully.", req.SchemeName),
	})
}

// GetEnrollments handles GET /get_enrollments/:id. Entries come back
// newest first, enriched with catalog data where the stored name still
// resolves.
func (h *Handler) GetEnrollments(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	enrollments, err := database.ListEnrollments(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve enrollments: " + err.Error(),
		})
	}

	enrolled := make([]fiber.Map, 0, len(enrollments))
	for _, enrollment := range enrollments {
		item := fiber.Map{
			"scheme_name": enrollment.SchemeName,
			"category":    nil,
			"description": "",
			"created_at":  enrollment.CreatedAt.Format(time.RFC3339),
		}
		if entry, ok := catalog.Lookup(enrollment.SchemeName); ok {
			item["scheme_name"] = entry.Name
			item["category"] = entry.Tag
			item["description"] = entry.Desc
		}
		enrolled = append(enrolled, item)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"enrolled_schemes": enrolled,
	})
}
