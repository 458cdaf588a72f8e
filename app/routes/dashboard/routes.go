package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/stats", GetStatsAPI(db))
	app.Get("/api/notifications", GetNotificationsAPI(db))
	app.Get("/api/navigation", GetNavigationAPI())
}
