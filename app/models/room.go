package models

// Room is an exam hall. Name is the natural key used by bulk upsert.
type Room struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Location *string `json:"location"`
}

// RoomOccupancy is a room joined with the count of students currently
// distributed into it, across all exams.
type RoomOccupancy struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Capacity         int    `json:"capacity"`
	CurrentOccupancy int    `json:"current_occupancy"`
}
