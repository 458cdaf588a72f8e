package models

// DashboardStats feeds the landing cards of the dashboard.
type DashboardStats struct {
	TotalStudents int `json:"totalStudents"`
	TotalRooms    int `json:"totalRooms"`
	PresentToday  int `json:"presentToday"`
	AbsentToday   int `json:"absentToday"`
}
