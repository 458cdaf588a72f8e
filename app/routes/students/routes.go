package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")
	api.Get("/", GetStudentsAPI(db))
	api.Post("/", CreateStudentAPI(db))
	api.Post("/bulk", BulkUpsertStudentsAPI(db))
	api.Put("/:id", UpdateStudentAPI(db))
	api.Delete("/:id", DeleteStudentAPI(db))
}
