// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package user implements the resident/manager/admin account domain.

It defines the core account entity and its lifecycle: registration by an
admin or the self-registration flow, profile edits, the soft active flip,
and the hard delete the legacy API exposes.
*/
package user

import "time"

// User represents a person with access to the platform.
//
// IDCondominium is nil for admins, who are not bound to a building. The
// numeric IDUserType must be resolved through the usertype lookup before any
// role comparison.
type User struct {
	ID            int       `json:"id"`
	Fullname      string    `json:"fullname"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"` // Explicitly omitted from JSON for security.
	IDCondominium *int      `json:"id_condominium"`
	IDUserType    int       `json:"id_userType"`
	Block         string    `json:"block,omitempty"`
	Building      string    `json:"building,omitempty"`
	Number        string    `json:"number,omitempty"`
	AvatarArchive string    `json:"avatarArchive,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// # Field Identifiers

// Global field names for validation in the account domain.
const (
	FieldFullname    = "fullname"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldID          = "id"
	FieldIDUser      = "id_user"
	FieldIDUserType  = "id_userType"
	FieldCondominium = "id_condominium"
)
