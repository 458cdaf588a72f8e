package students

import (
	"database/sql"
	"errors"
	"log"

	"exams-control/app/database"
	"exams-control/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.GetAllStudents(db)
		if err != nil {
			log.Println("Failed to fetch students:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(students)
	}
}

func CreateStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student := &models.Student{}
		if err := c.BodyParser(student); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if err := database.CreateStudent(db, student); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(400).JSON(fiber.Map{"error": "الرقم الأكاديمي موجود مسبقاً"})
			}
			log.Println("Failed to create student:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(student)
	}
}

func UpdateStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		student := &models.Student{}
		if err := c.BodyParser(student); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		student.ID = int64(id)
		if err := database.UpdateStudent(db, student); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(400).JSON(fiber.Map{"error": "الرقم الأكاديمي موجود مسبقاً"})
			}
			log.Println("Failed to update student:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func DeleteStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if err := database.DeleteStudent(db, int64(id)); err != nil {
			log.Println("Failed to delete student:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// BulkUpsertStudentsAPI takes a JSON array of students and applies it
// atomically, keyed on academic_id. Existing students keep their row id.
func BulkUpsertStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students := []*models.Student{}
		if err := c.BodyParser(&students); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if err := database.UpsertStudents(db, students); err != nil {
			log.Println("Failed to bulk upsert students:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true, "count": len(students)})
	}
}
