package services

import "exams-control/app/models"

// NavItem is one dashboard tab and the roles allowed to open it.
type NavItem struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Roles []string `json:"roles"`
}

var navItems = []NavItem{
	{ID: "dashboard", Label: "لوحة التحكم", Roles: []string{models.RoleAdmin, models.RoleController}},
	{ID: "rooms", Label: "اللجان والقاعات", Roles: []string{models.RoleAdmin, models.RoleController}},
	{ID: "students", Label: "الطلاب", Roles: []string{models.RoleAdmin, models.RoleController}},
	{ID: "attendance", Label: "التحضير الذكي", Roles: []string{models.RoleAdmin, models.RoleController, models.RoleProctor}},
	{ID: "logistics", Label: "اللوجستيات", Roles: []string{models.RoleAdmin, models.RoleController}},
	{ID: "staff", Label: "أعضاء الكنترول", Roles: []string{models.RoleAdmin}},
	{ID: "settings", Label: "الإعدادات", Roles: []string{models.RoleAdmin}},
}

// NavItemsForRole filters the navigation down to the tabs a role may open.
func NavItemsForRole(role string) []NavItem {
	items := []NavItem{}
	for _, item := range navItems {
		for _, r := range item.Roles {
			if r == role {
				items = append(items, item)
				break
			}
		}
	}
	return items
}

// AllowedTabs returns just the tab ids for a role.
func AllowedTabs(role string) []string {
	items := NavItemsForRole(role)
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
