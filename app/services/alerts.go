package services

import (
	"fmt"
	"time"

	"exams-control/app/models"
)

// Capacity thresholds, in percent of room capacity.
const (
	alertThreshold = 90
	fullThreshold  = 100
)

// CapacityAlerts derives one notification per room at or above the warning
// threshold. The notification id is a function of the room id, so a refresh
// replaces a room's alert instead of duplicating it. Alerts are recomputed on
// every call and never stored.
func CapacityAlerts(occupancy []*models.RoomOccupancy) []models.Notification {
	now := time.Now()
	alerts := []models.Notification{}
	for _, room := range occupancy {
		if room.Capacity <= 0 {
			continue
		}
		rate := float64(room.CurrentOccupancy) / float64(room.Capacity) * 100
		if rate < alertThreshold {
			continue
		}
		severity := models.NotificationWarning
		if rate >= fullThreshold {
			severity = models.NotificationError
		}
		alerts = append(alerts, models.Notification{
			ID:        fmt.Sprintf("room-%d-capacity", room.ID),
			Title:     "تنبيه سعة القاعة",
			Message:   fmt.Sprintf("القاعة \"%s\" اقتربت من سعتها القصوى (%d/%d)", room.Name, room.CurrentOccupancy, room.Capacity),
			Type:      severity,
			Timestamp: now.Format("15:04:05"),
			IsRead:    false,
		})
	}
	return alerts
}
