package database

import (
	"database/sql"
	"errors"
	"testing"

	"exams-control/app/models"
)

func TestDeleteSuperAdminAlwaysFails(t *testing.T) {
	db := newSeededDB(t)

	var adminID int64
	if err := db.QueryRow("SELECT id FROM users WHERE username = ?", SuperAdminUsername).Scan(&adminID); err != nil {
		t.Fatal(err)
	}

	if err := DeleteUser(db, adminID); !errors.Is(err, ErrProtectedUser) {
		t.Fatalf("err = %v, want ErrProtectedUser", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", SuperAdminUsername).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatal("super admin row missing after rejected delete")
	}
}

func TestDeleteRegularUser(t *testing.T) {
	db := newSeededDB(t)

	var id int64
	if err := db.QueryRow("SELECT id FROM users WHERE username = 'proctor1'").Scan(&id); err != nil {
		t.Fatal(err)
	}
	if err := DeleteUser(db, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE id = ?", id).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatal("user still present after delete")
	}
}

func TestCreateUserDefaultsPassword(t *testing.T) {
	db := newSeededDB(t)

	user := &models.User{Name: "عضو جديد", Role: models.RoleController, Username: "control2"}
	if err := CreateUser(db, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	var password string
	if err := db.QueryRow("SELECT password FROM users WHERE username = 'control2'").Scan(&password); err != nil {
		t.Fatal(err)
	}
	if password != DefaultPassword {
		t.Fatalf("password = %q, want default", password)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := newSeededDB(t)

	dup := &models.User{Name: "آخر", Role: models.RoleProctor, Username: "proctor1"}
	if err := CreateUser(db, dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
}

func TestUpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	db := newSeededDB(t)

	var id int64
	if err := db.QueryRow("SELECT id FROM users WHERE username = 'control1'").Scan(&id); err != nil {
		t.Fatal(err)
	}

	update := &models.User{ID: id, Name: "سارة المحدثة", Role: models.RoleController, Username: "control1"}
	if err := UpdateUser(db, update); err != nil {
		t.Fatalf("update: %v", err)
	}

	var name, password string
	if err := db.QueryRow("SELECT name, password FROM users WHERE id = ?", id).Scan(&name, &password); err != nil {
		t.Fatal(err)
	}
	if name != "سارة المحدثة" {
		t.Errorf("name = %q", name)
	}
	if password != DefaultPassword {
		t.Errorf("password changed on omitted field: %q", password)
	}
}

func TestGetUserByCredentials(t *testing.T) {
	db := newSeededDB(t)

	user, err := GetUserByCredentials(db, SuperAdminUsername, SuperAdminPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", user.Role)
	}
	if user.Password != "" {
		t.Error("credential lookup leaked the password field")
	}

	// Wrong password and unknown username are indistinguishable.
	_, errWrongPass := GetUserByCredentials(db, SuperAdminUsername, "nope")
	_, errWrongUser := GetUserByCredentials(db, "ghost", "nope")
	if errWrongPass != sql.ErrNoRows || errWrongUser != sql.ErrNoRows {
		t.Fatalf("errors differ: %v vs %v", errWrongPass, errWrongUser)
	}
}

func TestGetAllUsersOmitsPasswords(t *testing.T) {
	db := newSeededDB(t)

	users, err := GetAllUsers(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 3 {
		t.Fatalf("users = %d, want 3", len(users))
	}
	for _, user := range users {
		if user.Password != "" {
			t.Errorf("user %s carries a password", user.Username)
		}
	}
}
