// Copyright (c) 2026 Commdominium. All rights reserved.

// Package complaint implements the resident complaint box.
//
// Complaints are filed by residents against their condominium and worked by
// the building assignee, who flips the resolved flag when done. Listings
// join the author's name and avatar so the board can render attribution
// without a second round trip.
package complaint

import "time"

// Complaint represents one filed complaint.
//
// Fullname and AvatarArchive are read-only projections of the author row
// and are only populated on reads.
type Complaint struct {
	ID            int       `json:"id"`
	Message       string    `json:"message"`
	Resolved      bool      `json:"resolved"`
	IDUser        int       `json:"id_user"`
	IDCondominium int       `json:"id_condominium"`
	Fullname      string    `json:"fullname,omitempty"`
	AvatarArchive string    `json:"avatarArchive,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Field names used by request validation.
const (
	FieldID            = "id"
	FieldMessage       = "message"
	FieldIDUser        = "id_user"
	FieldIDCondominium = "id_condominium"
)
