package logistics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DeliverAPI acknowledges an envelope hand-off. Deliveries are not persisted;
// the dashboard keeps its own transient delivery list.
func DeliverAPI() fiber.Handler {
	type DeliverRequest struct {
		RoomID       int64  `json:"room_id"`
		ReceiverName string `json:"receiver_name"`
	}

	return func(c *fiber.Ctx) error {
		var req DeliverRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		return c.JSON(fiber.Map{
			"success":       true,
			"time":          time.Now().Format("15:04"),
			"receiver_name": req.ReceiverName,
			"receipt_id":    uuid.New().String(),
		})
	}
}
