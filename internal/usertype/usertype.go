// Copyright (c) 2026 Commdominium. All rights reserved.

// Package usertype exposes the closed role enumeration backing user accounts.
//
// A user row references a role only by numeric id_userType; that id has no
// meaning on its own and must be resolved against this table before any role
// comparison.
package usertype

// UserType links a numeric role id to its [sec.Role] label.
type UserType struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// FindByID returns the entry with the given id, or nil when absent.
func FindByID(types []*UserType, id int) *UserType {
	for _, t := range types {
		if t.ID == id {
			return t
		}
	}
	return nil
}