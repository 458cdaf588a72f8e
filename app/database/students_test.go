package database

import (
	"errors"
	"testing"

	"exams-control/app/models"
)

func TestCreateStudentDuplicateAcademicID(t *testing.T) {
	db := newSeededDB(t)

	dup := &models.Student{Name: "طالب جديد", AcademicID: "1001", Grade: "العاشر"}
	err := CreateStudent(db, dup)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	// The failed insert must not have touched the table.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM students").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("students = %d, want 3", count)
	}
}

func TestUpsertStudentsUpdatesInPlace(t *testing.T) {
	db := newSeededDB(t)

	var originalID int64
	if err := db.QueryRow("SELECT id FROM students WHERE academic_id = '1001'").Scan(&originalID); err != nil {
		t.Fatal(err)
	}

	batch := []*models.Student{{Name: "X", AcademicID: "1001", Grade: "10"}}
	if err := UpsertStudents(db, batch); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var id int64
	var name string
	if err := db.QueryRow("SELECT id, name FROM students WHERE academic_id = '1001'").Scan(&id, &name); err != nil {
		t.Fatal(err)
	}
	if id != originalID {
		t.Errorf("row id changed: %d -> %d", originalID, id)
	}
	if name != "X" {
		t.Errorf("name = %q, want %q", name, "X")
	}
}

func TestUpsertStudentsInsertsNewRows(t *testing.T) {
	db := newSeededDB(t)

	batch := []*models.Student{
		{Name: "طالب أ", AcademicID: "2001", Grade: "الحادي عشر"},
		{Name: "طالب ب", AcademicID: "2002", Grade: "الحادي عشر"},
	}
	if err := UpsertStudents(db, batch); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM students").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("students = %d, want 5", count)
	}
}

func TestUpsertStudentsIsAtomic(t *testing.T) {
	db := newSeededDB(t)

	// The NOT NULL academic_id makes the second row fail; nothing from the
	// batch may remain.
	batch := []*models.Student{
		{Name: "صالح", AcademicID: "3001", Grade: "العاشر"},
		{Name: "بدون رقم", Grade: "العاشر"},
	}
	if err := UpsertStudents(db, batch); err == nil {
		t.Fatal("expected batch to fail")
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM students WHERE academic_id = '3001'").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("partial batch applied: %d rows", count)
	}
}
