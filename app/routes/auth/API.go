package auth

import (
	"database/sql"
	"log"
	"time"

	"exams-control/app/database"

	"github.com/gofiber/fiber/v2"
)

// LoginAPI checks the submitted credentials against the store. The failure
// message is the same whether the username or the password was wrong.
func LoginAPI(db *sql.DB, jwtSecret string) fiber.Handler {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "طلب غير صالح"})
		}
		log.Println("Login attempt:", req.Username)

		user, err := database.GetUserByCredentials(db, req.Username, req.Password)
		if err != nil {
			if err == sql.ErrNoRows {
				log.Println("Login failed: invalid credentials for", req.Username)
				return c.Status(401).JSON(fiber.Map{"error": "اسم المستخدم أو كلمة المرور غير صحيحة"})
			}
			log.Println("Database error during login:", err)
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}

		token, err := GenerateJWT(jwtSecret, user.ID, user.Username, user.Name, user.Role)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "خطأ في قاعدة البيانات"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    token,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		log.Println("Login success:", req.Username)
		return c.JSON(fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"role":     user.Role,
			"username": user.Username,
		})
	}
}
