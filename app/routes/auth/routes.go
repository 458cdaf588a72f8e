package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, db *sql.DB, jwtSecret string) {
	app.Post("/api/login", LoginAPI(db, jwtSecret))
}
