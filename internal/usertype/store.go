// Copyright (c) 2026 Commdominium. All rights reserved.

package usertype

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListUserTypes(context context.Context) ([]*UserType, error)
	GetUserTypeByID(context context.Context, id int) (*UserType, error)
}