// Copyright (c) 2026 Commdominium. All rights reserved.

// Package notice implements the bulletin-board domain.
//
// Notices are announcements posted inside a condominium, typed by the
// noticetype catalog (handouts and meetings). Meetings carry an event day;
// plain handouts do not.
package notice

import "time"

// Notice represents one posted announcement.
type Notice struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	EventDay      *time.Time `json:"eventDay"`
	IDNoticeType  int        `json:"id_noticeType"`
	IDCondominium int        `json:"id_condominium"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Field names used by request validation.
const (
	FieldID            = "id"
	FieldTitle         = "title"
	FieldMessage       = "message"
	FieldEventDay      = "eventDay"
	FieldIDNoticeType  = "id_noticeType"
	FieldIDCondominium = "id_condominium"
)
