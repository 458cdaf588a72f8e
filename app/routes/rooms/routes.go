package rooms

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupRoomsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/rooms")
	api.Get("/", GetRoomsAPI(db))
	api.Get("/occupancy", GetRoomOccupancyAPI(db))
	api.Post("/", CreateRoomAPI(db))
	api.Post("/bulk", BulkUpsertRoomsAPI(db))
	api.Put("/:id", UpdateRoomAPI(db))
	api.Delete("/:id", DeleteRoomAPI(db))
}
