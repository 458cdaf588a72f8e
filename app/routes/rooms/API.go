package rooms

import (
	"database/sql"
	"errors"
	"log"

	"exams-control/app/database"
	"exams-control/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetRoomsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rooms, err := database.GetAllRooms(db)
		if err != nil {
			log.Println("Failed to fetch rooms:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(rooms)
	}
}

func GetRoomOccupancyAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		occupancy, err := database.GetRoomOccupancy(db)
		if err != nil {
			log.Println("Failed to fetch room occupancy:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(occupancy)
	}
}

func CreateRoomAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		room := &models.Room{}
		if err := c.BodyParser(room); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if err := database.CreateRoom(db, room); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(400).JSON(fiber.Map{"error": "اسم القاعة موجود مسبقاً"})
			}
			log.Println("Failed to create room:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(room)
	}
}

func UpdateRoomAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		room := &models.Room{}
		if err := c.BodyParser(room); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		room.ID = int64(id)
		if err := database.UpdateRoom(db, room); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(400).JSON(fiber.Map{"error": "اسم القاعة موجود مسبقاً"})
			}
			log.Println("Failed to update room:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func DeleteRoomAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if err := database.DeleteRoom(db, int64(id)); err != nil {
			log.Println("Failed to delete room:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// BulkUpsertRoomsAPI takes a JSON array of rooms and applies it atomically,
// keyed on room name.
func BulkUpsertRoomsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rooms := []*models.Room{}
		if err := c.BodyParser(&rooms); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if err := database.UpsertRooms(db, rooms); err != nil {
			log.Println("Failed to bulk upsert rooms:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true, "count": len(rooms)})
	}
}
