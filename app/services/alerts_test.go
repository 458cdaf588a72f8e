package services

import (
	"testing"

	"exams-control/app/models"
)

func occ(id int64, name string, capacity, current int) *models.RoomOccupancy {
	return &models.RoomOccupancy{ID: id, Name: name, Capacity: capacity, CurrentOccupancy: current}
}

func TestCapacityAlertsThresholds(t *testing.T) {
	rows := []*models.RoomOccupancy{
		occ(1, "هادئة", 30, 10),
		occ(2, "ممتلئة تقريباً", 20, 18),
		occ(3, "ممتلئة", 15, 15),
		occ(4, "فائضة", 10, 12),
	}

	alerts := CapacityAlerts(rows)
	if len(alerts) != 3 {
		t.Fatalf("alerts = %d, want 3", len(alerts))
	}

	byID := map[string]models.Notification{}
	for _, alert := range alerts {
		byID[alert.ID] = alert
	}
	if byID["room-2-capacity"].Type != models.NotificationWarning {
		t.Errorf("room 2 severity = %q, want warning", byID["room-2-capacity"].Type)
	}
	if byID["room-3-capacity"].Type != models.NotificationError {
		t.Errorf("room 3 severity = %q, want error", byID["room-3-capacity"].Type)
	}
	if byID["room-4-capacity"].Type != models.NotificationError {
		t.Errorf("room 4 severity = %q, want error", byID["room-4-capacity"].Type)
	}
}

func TestCapacityAlertsDeterministicIDs(t *testing.T) {
	rows := []*models.RoomOccupancy{occ(7, "قاعة", 10, 10)}

	first := CapacityAlerts(rows)
	second := CapacityAlerts(rows)
	if first[0].ID != second[0].ID {
		t.Fatalf("ids differ across refreshes: %q vs %q", first[0].ID, second[0].ID)
	}
	if first[0].ID != "room-7-capacity" {
		t.Fatalf("id = %q", first[0].ID)
	}
}

func TestCapacityAlertsSkipsZeroCapacity(t *testing.T) {
	rows := []*models.RoomOccupancy{occ(1, "بدون سعة", 0, 5)}
	if alerts := CapacityAlerts(rows); len(alerts) != 0 {
		t.Fatalf("alerts = %d, want 0", len(alerts))
	}
}

func TestCapacityAlertsEmptyInput(t *testing.T) {
	if alerts := CapacityAlerts(nil); len(alerts) != 0 {
		t.Fatal("expected no alerts")
	}
}
