package dashboard

import (
	"database/sql"
	"log"

	"exams-control/app/database"
	"exams-control/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetStatsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := database.GetDashboardStats(db)
		if err != nil {
			log.Println("Failed to fetch stats:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(stats)
	}
}

// GetNotificationsAPI derives the capacity alerts from the current occupancy
// on every call. Nothing is persisted; a refresh replaces the previous set.
func GetNotificationsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		occupancy, err := database.GetRoomOccupancy(db)
		if err != nil {
			log.Println("Failed to fetch occupancy for notifications:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(services.CapacityAlerts(occupancy))
	}
}

// GetNavigationAPI returns the dashboard tabs a role may open (?role=...).
func GetNavigationAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Query("role")
		return c.JSON(services.NavItemsForRole(role))
	}
}
