package database

import (
	"database/sql"
	"fmt"

	"exams-control/app/models"
)

// GetAllUsers lists accounts without their passwords.
func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	rows, err := db.Query("SELECT id, name, role, username FROM users")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.Username); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func CreateUser(db *sql.DB, user *models.User) error {
	if user.Password == "" {
		user.Password = DefaultPassword
	}
	res, err := db.Exec("INSERT INTO users (name, role, username, password) VALUES (?, ?, ?, ?)",
		user.Name, user.Role, user.Username, user.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create user: %w", err)
	}
	user.ID, err = res.LastInsertId()
	return err
}

// UpdateUser replaces name, role and username. The password is only replaced
// when a new one is given; an empty password keeps the stored one.
func UpdateUser(db *sql.DB, user *models.User) error {
	var err error
	if user.Password != "" {
		_, err = db.Exec("UPDATE users SET name = ?, role = ?, username = ?, password = ? WHERE id = ?",
			user.Name, user.Role, user.Username, user.Password, user.ID)
	} else {
		_, err = db.Exec("UPDATE users SET name = ?, role = ?, username = ? WHERE id = ?",
			user.Name, user.Role, user.Username, user.ID)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// DeleteUser removes an account. The super admin is never deletable, no
// matter who asks.
func DeleteUser(db *sql.DB, id int64) error {
	var username string
	err := db.QueryRow("SELECT username FROM users WHERE id = ?", id).Scan(&username)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("look up user: %w", err)
	}
	if username == SuperAdminUsername {
		return ErrProtectedUser
	}
	if _, err := db.Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// GetUserByCredentials looks an account up by exact username and password
// match. Returns sql.ErrNoRows for both a wrong username and a wrong
// password; callers must not distinguish the two.
func GetUserByCredentials(db *sql.DB, username, password string) (*models.User, error) {
	user := &models.User{}
	err := db.QueryRow(
		"SELECT id, name, role, username FROM users WHERE username = ? AND password = ?",
		username, password,
	).Scan(&user.ID, &user.Name, &user.Role, &user.Username)
	if err != nil {
		return nil, err
	}
	return user, nil
}
