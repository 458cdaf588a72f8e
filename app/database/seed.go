package database

import (
	"database/sql"
	"fmt"
	"log"

	"exams-control/app/models"
)

// The one account an operator can always fall back on. Bootstrap re-creates it
// if missing and resets its password if it drifted from the canonical value.
const (
	SuperAdminUsername = "1027594579"
	SuperAdminPassword = "admin123"

	// DefaultPassword is assigned when a new account is created without one.
	DefaultPassword = "123456"
)

// Seed inserts the starter fixture into empty tables and enforces the
// super-admin invariant. Runs on every startup after migrations.
func Seed(db *sql.DB) error {
	var roomCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM rooms").Scan(&roomCount); err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if roomCount == 0 {
		if err := seedFixture(db); err != nil {
			return err
		}
		log.Println("Seeded starter rooms, students, teachers and exam")
	}

	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount == 0 {
		if err := seedUsers(db); err != nil {
			return err
		}
		log.Println("Seeded starter accounts")
		return nil
	}
	return EnsureSuperAdmin(db)
}

func seedFixture(db *sql.DB) error {
	rooms := []struct {
		name     string
		capacity int
	}{
		{"القاعة الكبرى", 30},
		{"مختبر الحاسب", 20},
		{"القاعة 101", 15},
	}
	for _, r := range rooms {
		if _, err := db.Exec("INSERT INTO rooms (name, capacity) VALUES (?, ?)", r.name, r.capacity); err != nil {
			return fmt.Errorf("seed room %s: %w", r.name, err)
		}
	}

	students := []struct {
		name, academicID, grade string
	}{
		{"أحمد محمد", "1001", "العاشر"},
		{"سارة أحمد", "1002", "العاشر"},
		{"خالد وليد", "1003", "العاشر"},
	}
	for _, s := range students {
		if _, err := db.Exec("INSERT INTO students (name, academic_id, grade) VALUES (?, ?, ?)",
			s.name, s.academicID, s.grade); err != nil {
			return fmt.Errorf("seed student %s: %w", s.academicID, err)
		}
	}

	teachers := []struct {
		name, subject string
	}{
		{"أ. عبدالله", "الرياضيات"},
		{"أ. ليلى", "اللغة العربية"},
	}
	for _, t := range teachers {
		if _, err := db.Exec("INSERT INTO teachers (name, subject) VALUES (?, ?)", t.name, t.subject); err != nil {
			return fmt.Errorf("seed teacher %s: %w", t.name, err)
		}
	}

	if _, err := db.Exec("INSERT INTO exams (subject, date, start_time) VALUES (?, ?, ?)",
		"الرياضيات", "2026-02-25", "08:00"); err != nil {
		return fmt.Errorf("seed exam: %w", err)
	}
	return nil
}

func seedUsers(db *sql.DB) error {
	users := []struct {
		name, role, username, password string
	}{
		{"المدير العام", models.RoleAdmin, SuperAdminUsername, SuperAdminPassword},
		{"سارة الكنترول", models.RoleController, "control1", DefaultPassword},
		{"أ. محمد المراقب", models.RoleProctor, "proctor1", DefaultPassword},
	}
	for _, u := range users {
		if _, err := db.Exec("INSERT INTO users (name, role, username, password) VALUES (?, ?, ?, ?)",
			u.name, u.role, u.username, u.password); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}
	return nil
}

// EnsureSuperAdmin restores the canonical admin credential: the account is
// re-created if someone removed the row out of band, and its password is reset
// if any path other than the update endpoint changed it.
func EnsureSuperAdmin(db *sql.DB) error {
	var password string
	err := db.QueryRow("SELECT password FROM users WHERE username = ?", SuperAdminUsername).Scan(&password)
	switch {
	case err == sql.ErrNoRows:
		_, err = db.Exec("INSERT INTO users (name, role, username, password) VALUES (?, ?, ?, ?)",
			"المدير العام", models.RoleAdmin, SuperAdminUsername, SuperAdminPassword)
		if err != nil {
			return fmt.Errorf("restore super admin: %w", err)
		}
		log.Println("Super admin account restored")
	case err != nil:
		return fmt.Errorf("look up super admin: %w", err)
	case password != SuperAdminPassword:
		_, err = db.Exec("UPDATE users SET password = ? WHERE username = ?",
			SuperAdminPassword, SuperAdminUsername)
		if err != nil {
			return fmt.Errorf("reset super admin password: %w", err)
		}
		log.Println("Super admin password reset to canonical value")
	}
	return nil
}
