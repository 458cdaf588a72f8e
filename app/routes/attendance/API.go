package attendance

import (
	"database/sql"
	"log"

	"exams-control/app/database"
	"exams-control/app/models"

	"github.com/gofiber/fiber/v2"
)

func MarkAttendanceAPI(db *sql.DB) fiber.Handler {
	type MarkRequest struct {
		StudentID int64  `json:"student_id"`
		ExamID    int64  `json:"exam_id"`
		Status    string `json:"status"`
	}

	return func(c *fiber.Ctx) error {
		var req MarkRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if req.Status == "" {
			req.Status = models.AttendanceAbsent
		}
		if err := database.MarkAttendance(db, req.StudentID, req.ExamID, req.Status); err != nil {
			log.Println("Failed to mark attendance:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
