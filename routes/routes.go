package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Indrani-08/recosave-backend/auth"
	"github.com/Indrani-08/recosave-backend/handlers"
)

// SetupRoutes registers every route on the app.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.Home)

	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/change_password", h.ChangePassword)

	app.Post("/salary_input", h.SalaryInput)
	app.Get("/user_profile/:id", h.UserProfile)

	app.Post("/enroll_scheme", h.EnrollScheme)
	app.Get("/get_enrollments/:id", h.GetEnrollments)

	app.Get("/search", h.SearchSchemes)
	app.Get("/recommendations/:id", h.GetRecommendations)

	// Token-based convenience route; the public contract above stays
	// unauthenticated.
	app.Get("/me", auth.JwtAuthMiddleware(h.JWTSecret), h.Me)
}
