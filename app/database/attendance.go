package database

import (
	"database/sql"
	"fmt"
)

// MarkAttendance records a student's status for an exam, replacing any prior
// mark for the same (student, exam) pair.
func MarkAttendance(db *sql.DB, studentID, examID int64, status string) error {
	_, err := db.Exec(`
		INSERT INTO attendance (student_id, exam_id, status) VALUES (?, ?, ?)
		ON CONFLICT(student_id, exam_id) DO UPDATE SET status = excluded.status, timestamp = CURRENT_TIMESTAMP
	`, studentID, examID, status)
	if err != nil {
		return fmt.Errorf("mark attendance: %w", err)
	}
	return nil
}
