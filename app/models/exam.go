package models

type Exam struct {
	ID        int64  `json:"id"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

type Teacher struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Quota   int    `json:"quota"`
}

// Distribution assigns a student to a room for an exam. It is the source of
// truth for room occupancy.
type Distribution struct {
	ID        int64 `json:"id"`
	StudentID int64 `json:"student_id"`
	RoomID    int64 `json:"room_id"`
	ExamID    int64 `json:"exam_id"`
}

type ProctorAssignment struct {
	ID        int64 `json:"id"`
	TeacherID int64 `json:"teacher_id"`
	RoomID    int64 `json:"room_id"`
	ExamID    int64 `json:"exam_id"`
}
