package services

import (
	"reflect"
	"testing"

	"exams-control/app/models"
)

func TestAllowedTabsByRole(t *testing.T) {
	cases := []struct {
		role string
		want []string
	}{
		{models.RoleAdmin, []string{"dashboard", "rooms", "students", "attendance", "logistics", "staff", "settings"}},
		{models.RoleController, []string{"dashboard", "rooms", "students", "attendance", "logistics"}},
		{models.RoleProctor, []string{"attendance"}},
		{"unknown", []string{}},
	}

	for _, tc := range cases {
		got := AllowedTabs(tc.role)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("AllowedTabs(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
