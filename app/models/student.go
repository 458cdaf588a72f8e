package models

// Student is an examinee. AcademicID is unique and keys bulk upserts.
type Student struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	AcademicID string `json:"academic_id"`
	Grade      string `json:"grade"`
}
