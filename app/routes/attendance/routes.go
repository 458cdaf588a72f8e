package attendance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App, db *sql.DB) {
	app.Post("/api/attendance/mark", MarkAttendanceAPI(db))
}
