package database

import (
	"errors"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrDuplicate marks a unique-constraint violation on a natural key
// (student academic_id, user username, room name).
var ErrDuplicate = errors.New("duplicate key")

// ErrProtectedUser marks an attempt to delete the super admin.
var ErrProtectedUser = errors.New("protected user")

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
