// Copyright (c) 2026 Commdominium. All rights reserved.

package payment

import "context"

// Repository persists payments.
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id int) (*Payment, error)
	FindAll(ctx context.Context) ([]*Payment, error)
	FindAllByUser(ctx context.Context, userID int) ([]*Payment, error)
	FindByUserAndMonth(ctx context.Context, userID, month, year int) (*Payment, error)
	Update(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id int) error
}
