package users

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/users")
	api.Get("/", GetUsersAPI(db))
	api.Post("/", CreateUserAPI(db))
	api.Put("/:id", UpdateUserAPI(db))
	api.Delete("/:id", DeleteUserAPI(db))
}
