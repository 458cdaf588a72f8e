package logistics

import "github.com/gofiber/fiber/v2"

func SetupLogisticsRoutes(app *fiber.App) {
	app.Post("/api/logistics/deliver", DeliverAPI())
}
