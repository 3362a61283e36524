// Copyright (c) 2026 Commdominium. All rights reserved.

package complaint

import "context"

// Repository persists complaints.
type Repository interface {
	Create(ctx context.Context, complaint *Complaint) error
	FindByID(ctx context.Context, id int) (*Complaint, error)
	FindAll(ctx context.Context) ([]*Complaint, error)
	FindAllByCondominium(ctx context.Context, condominiumID int) ([]*Complaint, error)
	FindAllByUser(ctx context.Context, userID int) ([]*Complaint, error)
	Update(ctx context.Context, complaint *Complaint) error
	SetResolved(ctx context.Context, id int, resolved bool) error
	Delete(ctx context.Context, id int) error
}
