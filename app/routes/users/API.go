package users

import (
	"database/sql"
	"errors"
	"log"

	"exams-control/app/database"
	"exams-control/app/models"

	"github.com/gofiber/fiber/v2"
)

// userRequest is the mutable field set of an account. Password is optional on
// update: leaving it empty keeps the stored one.
type userRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func GetUsersAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := database.GetAllUsers(db)
		if err != nil {
			log.Println("Failed to fetch users:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(users)
	}
}

func CreateUserAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req userRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		user := &models.User{Name: req.Name, Role: req.Role, Username: req.Username, Password: req.Password}
		if err := database.CreateUser(db, user); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(400).JSON(fiber.Map{"error": "اسم المستخدم موجود مسبقاً"})
			}
			log.Println("Failed to create user:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"role":     user.Role,
			"username": user.Username,
		})
	}
}

func UpdateUserAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		var req userRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		user := &models.User{
			ID:       int64(id),
			Name:     req.Name,
			Role:     req.Role,
			Username: req.Username,
			Password: req.Password,
		}
		if err := database.UpdateUser(db, user); err != nil {
			log.Println("Failed to update user:", err)
			return c.Status(400).JSON(fiber.Map{"error": "خطأ في التحديث"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func DeleteUserAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		if err := database.DeleteUser(db, int64(id)); err != nil {
			if errors.Is(err, database.ErrProtectedUser) {
				return c.Status(403).JSON(fiber.Map{"error": "لا يمكن حذف المدير العام"})
			}
			log.Println("Failed to delete user:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
