// Copyright (c) 2026 Commdominium. All rights reserved.

// Package nav computes the navigation menu for a role.
//
// The menu is a pure function of the role and nothing else. It is
// re-derived on every render so a re-login as a different user in the same
// tab can never show a stale menu.
package nav

import "github.com/commdominium/commdominium/internal/platform/sec"

// Entry is one navigation menu item.
type Entry struct {
	Key   string
	Label string
	Path  string
}

// The full menu in display order. Visibility per role is decided in
// Entries; this slice is never exposed directly.
var allEntries = []Entry{
	{Key: "home", Label: "Home", Path: "/"},
	{Key: "payments", Label: "Financeiro", Path: "/financeiro"},
	{Key: "notices", Label: "Avisos", Path: "/avisos"},
	{Key: "complaints", Label: "Reclamações", Path: "/reclamacoes"},
	{Key: "residents", Label: "Moradores", Path: "/moradores"},
	{Key: "condominiums", Label: "Condomínios", Path: "/condominios"},
	{Key: "users", Label: "Usuários", Path: "/usuarios"},
}

// visibility maps each role to the set of entry keys it may see.
var visibility = map[sec.Role]map[string]bool{
	sec.RoleAdmin: {
		"home": true, "payments": true, "notices": true, "complaints": true,
		"residents": true, "condominiums": true, "users": true,
	},
	sec.RoleAssignee: {
		"home": true, "payments": true, "notices": true, "complaints": true,
		"residents": true,
	},
	sec.RoleResident: {
		"home": true, "notices": true, "complaints": true,
	},
}

// Entries returns the ordered menu for role. Unknown roles see nothing.
func Entries(role sec.Role) []Entry {
	visible := visibility[role]
	if visible == nil {
		return nil
	}

	entries := make([]Entry, 0, len(allEntries))
	for _, entry := range allEntries {
		if visible[entry.Key] {
			entries = append(entries, entry)
		}
	}
	return entries
}
