package database

import (
	"database/sql"
	"fmt"

	"exams-control/app/models"
)

func GetAllRooms(db *sql.DB) ([]*models.Room, error) {
	rows, err := db.Query("SELECT id, name, capacity, location FROM rooms")
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.Location); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func CreateRoom(db *sql.DB, room *models.Room) error {
	res, err := db.Exec("INSERT INTO rooms (name, capacity, location) VALUES (?, ?, ?)",
		room.Name, room.Capacity, room.Location)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create room: %w", err)
	}
	room.ID, err = res.LastInsertId()
	return err
}

func UpdateRoom(db *sql.DB, room *models.Room) error {
	_, err := db.Exec("UPDATE rooms SET name = ?, capacity = ?, location = ? WHERE id = ?",
		room.Name, room.Capacity, room.Location, room.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

func DeleteRoom(db *sql.DB, id int64) error {
	if _, err := db.Exec("DELETE FROM rooms WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

// UpsertRooms inserts or updates a batch keyed on room name, in one
// transaction. Any failing row rolls back the whole batch.
func UpsertRooms(db *sql.DB, rooms []*models.Room) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin rooms upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO rooms (name, capacity, location) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET capacity = excluded.capacity, location = excluded.location
	`)
	if err != nil {
		return fmt.Errorf("prepare rooms upsert: %w", err)
	}
	defer stmt.Close()

	for _, room := range rooms {
		if room.Name == "" {
			return fmt.Errorf("upsert room: missing name")
		}
		if _, err := stmt.Exec(room.Name, room.Capacity, room.Location); err != nil {
			return fmt.Errorf("upsert room %s: %w", room.Name, err)
		}
	}
	return tx.Commit()
}

// GetRoomOccupancy returns one row per room with the count of students
// distributed into it across all exams. Rooms without distributions appear
// with a zero count.
func GetRoomOccupancy(db *sql.DB) ([]*models.RoomOccupancy, error) {
	rows, err := db.Query(`
		SELECT r.id, r.name, r.capacity, COUNT(d.student_id) AS current_occupancy
		FROM rooms r
		LEFT JOIN distributions d ON r.id = d.room_id
		GROUP BY r.id
	`)
	if err != nil {
		return nil, fmt.Errorf("room occupancy: %w", err)
	}
	defer rows.Close()

	occupancy := []*models.RoomOccupancy{}
	for rows.Next() {
		row := &models.RoomOccupancy{}
		if err := rows.Scan(&row.ID, &row.Name, &row.Capacity, &row.CurrentOccupancy); err != nil {
			return nil, fmt.Errorf("scan occupancy: %w", err)
		}
		occupancy = append(occupancy, row)
	}
	return occupancy, rows.Err()
}
