package main

import (
	"fmt"
	"log"
	"strings"

	"exams-control/app/config"
	"exams-control/app/database"
	"exams-control/app/routes/attendance"
	"exams-control/app/routes/auth"
	"exams-control/app/routes/dashboard"
	"exams-control/app/routes/logistics"
	"exams-control/app/routes/rooms"
	"exams-control/app/routes/students"
	"exams-control/app/routes/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// customErrorHandler keeps API errors as JSON bodies.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(code).SendString(err.Error())
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := config.OpenDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	// SPA bundle
	app.Static("/", "./static")

	auth.SetupAuthRoutes(app, db, cfg.JWTSecret)
	dashboard.SetupDashboardRoutes(app, db)
	rooms.SetupRoomsRoutes(app, db)
	students.SetupStudentsRoutes(app, db)
	users.SetupUsersRoutes(app, db)
	attendance.SetupAttendanceRoutes(app, db)
	logistics.SetupLogisticsRoutes(app)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Server running on http://localhost%s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
