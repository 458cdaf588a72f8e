package database

import (
	"database/sql"
	"fmt"

	"exams-control/app/models"
)

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	rows, err := db.Query("SELECT id, name, academic_id, grade FROM students")
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.Name, &student.AcademicID, &student.Grade); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	res, err := db.Exec("INSERT INTO students (name, academic_id, grade) VALUES (?, ?, ?)",
		student.Name, student.AcademicID, student.Grade)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create student: %w", err)
	}
	student.ID, err = res.LastInsertId()
	return err
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	_, err := db.Exec("UPDATE students SET name = ?, academic_id = ?, grade = ? WHERE id = ?",
		student.Name, student.AcademicID, student.Grade, student.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

func DeleteStudent(db *sql.DB, id int64) error {
	if _, err := db.Exec("DELETE FROM students WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// UpsertStudents inserts or updates a batch keyed on academic_id, in one
// transaction. An existing student keeps its row id; any failing row rolls
// back the whole batch.
func UpsertStudents(db *sql.DB, students []*models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin students upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO students (name, academic_id, grade) VALUES (?, ?, ?)
		ON CONFLICT(academic_id) DO UPDATE SET name = excluded.name, grade = excluded.grade
	`)
	if err != nil {
		return fmt.Errorf("prepare students upsert: %w", err)
	}
	defer stmt.Close()

	for _, student := range students {
		if student.AcademicID == "" {
			return fmt.Errorf("upsert student %q: missing academic_id", student.Name)
		}
		if _, err := stmt.Exec(student.Name, student.AcademicID, student.Grade); err != nil {
			return fmt.Errorf("upsert student %s: %w", student.AcademicID, err)
		}
	}
	return tx.Commit()
}
