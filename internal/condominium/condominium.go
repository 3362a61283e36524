// Copyright (c) 2026 Commdominium. All rights reserved.

// Package condominium implements the managed-building domain.
//
// A condominium is the scope boundary of the system: almost every list
// endpoint is implicitly filtered by the logged-in user's building, except
// for admins who see across all of them.
package condominium

import "time"

// Condominium represents a managed building/property.
type Condominium struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Field names used by request validation.
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldState  = "state"
	FieldCity   = "city"
	FieldStreet = "street"
	FieldNumber = "number"
)

// FindByID returns the entry with the given id, or nil when absent.
func FindByID(condominiums []*Condominium, id int) *Condominium {
	for _, c := range condominiums {
		if c.ID == id {
			return c
		}
	}
	return nil
}