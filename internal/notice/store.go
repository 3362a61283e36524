// Copyright (c) 2026 Commdominium. All rights reserved.

package notice

import "context"

// Repository persists notices.
type Repository interface {
	Create(ctx context.Context, notice *Notice) error
	FindByID(ctx context.Context, id int) (*Notice, error)
	FindAll(ctx context.Context) ([]*Notice, error)
	FindAllByCondominium(ctx context.Context, condominiumID int) ([]*Notice, error)
	Update(ctx context.Context, notice *Notice) error
	Delete(ctx context.Context, id int) error
}
