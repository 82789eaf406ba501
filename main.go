package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/Indrani-08/recosave-backend/database"
	"github.com/Indrani-08/recosave-backend/handlers"
	"github.com/Indrani-08/recosave-backend/recommend"
	"github.com/Indrani-08/recosave-backend/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize the database connection on startup.
	database.Connect()

	// Optional recommendation cache.
	database.ConnectRedis()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	app := fiber.New()

	h := handlers.New(recommend.NewGeminiClient(), jwtSecret)
	routes.SetupRoutes(app, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting server on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
