// Copyright (c) 2026 Commdominium. All rights reserved.

package sec

// # User Roles

// Role represents the authorization level granted to an account.
//
// The set is closed: every account is exactly one of Admin, Assignee
// (building manager) or Resident. The numeric id_userType stored on a user
// row has no meaning on its own; it must be resolved to one of these values
// through the usertype lookup before any comparison.
type Role string

const (
	// Unrestricted access across all condominiums.
	RoleAdmin Role = "Admin"

	// Manages a single condominium (the "síndico").
	RoleAssignee Role = "Síndico"

	// Default role for unit residents.
	RoleResident Role = "Morador"
)

// ParseRole maps a stored role label to a [Role].
//
// The boolean result is false for unknown labels; callers must treat an
// unresolved role as no role at all (deny-by-default).
func ParseRole(label string) (Role, bool) {
	switch Role(label) {
	case RoleAdmin, RoleAssignee, RoleResident:
		return Role(label), true
	default:
		return "", false
	}
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleAssignee:
		return 20
	case RoleResident:
		return 10
	default:
		return 0
	}
}

// OneOf reports whether the role is a member of the allowed set.
//
// An empty allowed set always yields false. Absence of a match never grants
// access.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// # Identity

// Identity is the authenticated principal attached to a request context by
// the Authenticate middleware after token introspection.
type Identity struct {
	// UserID is the numeric id of the account behind the session token.
	UserID int

	// CondominiumID scopes list queries; zero for admins (global scope).
	CondominiumID int

	// Role is the resolved role of the account.
	Role Role
}
