// Copyright (c) 2026 Commdominium. All rights reserved.

// Package noticetype exposes the closed notice category enumeration.
package noticetype

// Notice categories seeded by migration.
const (
	Handout = "Aviso"
	Meeting = "Reunião"
)

// NoticeType links a numeric notice category id to its label.
type NoticeType struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// FindByID returns the entry with the given id, or nil when absent.
func FindByID(types []*NoticeType, id int) *NoticeType {
	for _, t := range types {
		if t.ID == id {
			return t
		}
	}
	return nil
}