package models

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance holds one row per (student, exam) pair; marking again replaces
// the status and timestamp.
type Attendance struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"student_id"`
	ExamID    int64  `json:"exam_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
