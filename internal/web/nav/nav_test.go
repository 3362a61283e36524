// Copyright (c) 2026 Commdominium. All rights reserved.

package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/web/nav"
)

func keys(entries []nav.Entry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Key)
	}
	return result
}

/*
TestEntries_PerRole verifies each role sees exactly its menu, in display
order.
*/
func TestEntries_PerRole(t *testing.T) {
	tests := []struct {
		name string
		role sec.Role
		want []string
	}{
		{
			name: "admin_sees_everything",
			role: sec.RoleAdmin,
			want: []string{"home", "payments", "notices", "complaints", "residents", "condominiums", "users"},
		},
		{
			name: "assignee_has_no_admin_pages",
			role: sec.RoleAssignee,
			want: []string{"home", "payments", "notices", "complaints", "residents"},
		},
		{
			name: "resident_sees_own_pages_only",
			role: sec.RoleResident,
			want: []string{"home", "notices", "complaints"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys(nav.Entries(tt.role)))
		})
	}
}

/*
TestEntries_UnknownRole verifies an unrecognized role gets an empty menu
rather than a default one.
*/
func TestEntries_UnknownRole(t *testing.T) {
	assert.Empty(t, nav.Entries(sec.Role("Visitante")))
	assert.Empty(t, nav.Entries(sec.Role("")))
}

/*
TestEntries_Deterministic verifies the menu is a pure function of the
role: repeated calls return the same entries with stable paths.
*/
func TestEntries_Deterministic(t *testing.T) {
	first := nav.Entries(sec.RoleAssignee)
	second := nav.Entries(sec.RoleAssignee)
	assert.Equal(t, first, second)

	for _, entry := range first {
		assert.NotEmpty(t, entry.Label)
		assert.NotEmpty(t, entry.Path)
	}
}
