package database

import (
	"database/sql"
	"fmt"

	"exams-control/app/models"
)

// GetDashboardStats returns the counters for the dashboard landing cards.
// Absent is derived: every student not marked present counts as absent.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := db.QueryRow("SELECT COUNT(*) FROM students").Scan(&stats.TotalStudents); err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM rooms").Scan(&stats.TotalRooms); err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM attendance WHERE status = 'present'").Scan(&stats.PresentToday); err != nil {
		return nil, fmt.Errorf("count present: %w", err)
	}
	stats.AbsentToday = stats.TotalStudents - stats.PresentToday

	return stats, nil
}
