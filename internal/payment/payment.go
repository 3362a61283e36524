// Copyright (c) 2026 Commdominium. All rights reserved.

// Package payment implements the billing domain.
//
// A payment row is one monthly bill assigned to a resident: a link to the
// uploaded bill document, a due date and a paid flag. The month a bill
// belongs to is derived from its due date, which is what the existence
// check keys on.
package payment

import "time"

// Payment represents one bill assigned to a resident.
type Payment struct {
	ID          int       `json:"id"`
	BillArchive string    `json:"billArchive"`
	DueDate     time.Time `json:"dueDate"`
	Paid        bool      `json:"paid"`
	IDUser      int       `json:"id_user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Field names used by request validation.
const (
	FieldID          = "id"
	FieldBillArchive = "billArchive"
	FieldDueDate     = "dueDate"
	FieldIDUser      = "id_user"
	FieldMonth       = "month"
	FieldYear        = "year"
)
