// Copyright (c) 2026 Commdominium. All rights reserved.

package condominium

import "context"

// Repository defines the data access contract.
type Repository interface {
	Create(context context.Context, condominium *Condominium) error
	FindByID(context context.Context, id int) (*Condominium, error)
	FindAll(context context.Context) ([]*Condominium, error)
	Update(context context.Context, condominium *Condominium) error
	Delete(context context.Context, id int) error
}