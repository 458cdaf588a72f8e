package dashboard

import (
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"exams-control/app/database"

	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"
)

func newTestApp(t *testing.T) (*fiber.App, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := database.RunMigrations(db); err != nil {
		t.Fatal(err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	SetupDashboardRoutes(app, db)
	return app, db
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode
}

func TestGetStats(t *testing.T) {
	app, _ := newTestApp(t)

	var stats map[string]float64
	if status := getJSON(t, app, "/api/stats", &stats); status != 200 {
		t.Fatalf("status = %d", status)
	}
	if stats["totalStudents"] != 3 || stats["totalRooms"] != 3 {
		t.Errorf("stats = %v", stats)
	}
	if stats["presentToday"] != 0 || stats["absentToday"] != 3 {
		t.Errorf("attendance counters = %v", stats)
	}
}

func TestNotificationsDerivedFromOccupancy(t *testing.T) {
	app, db := newTestApp(t)

	var alerts []map[string]any
	if status := getJSON(t, app, "/api/notifications", &alerts); status != 200 {
		t.Fatalf("status = %d", status)
	}
	if len(alerts) != 0 {
		t.Fatalf("alerts on empty distributions = %d, want 0", len(alerts))
	}

	// Fill room 3 (capacity 15) to 14 students: 93%, warning.
	for i := 0; i < 14; i++ {
		if _, err := db.Exec("INSERT INTO distributions (student_id, room_id, exam_id) VALUES (1, 3, 1)"); err != nil {
			t.Fatal(err)
		}
	}

	if status := getJSON(t, app, "/api/notifications", &alerts); status != 200 {
		t.Fatalf("status = %d", status)
	}
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if alerts[0]["id"] != "room-3-capacity" || alerts[0]["type"] != "warning" {
		t.Errorf("alert = %v", alerts[0])
	}
}

func TestNavigationFiltering(t *testing.T) {
	app, _ := newTestApp(t)

	var items []map[string]any
	if status := getJSON(t, app, "/api/navigation?role=مراقب", &items); status != 200 {
		t.Fatalf("status = %d", status)
	}
	if len(items) != 1 || items[0]["id"] != "attendance" {
		t.Errorf("proctor tabs = %v", items)
	}
}
