// Copyright (c) 2026 Commdominium. All rights reserved.

package user

import "context"

// Repository defines the data access contract for user accounts.
type Repository interface {
	// Create persists a brand-new account and fills in its generated id.
	Create(context context.Context, user *User) error

	// FindByID returns the account with the given id.
	FindByID(context context.Context, id int) (*User, error)

	// FindByEmail returns the account with the given email.
	FindByEmail(context context.Context, email string) (*User, error)

	// FindAll returns every account, ordered by fullname.
	FindAll(context context.Context) ([]*User, error)

	// FindAllByCondominium returns the accounts bound to one building.
	FindAllByCondominium(context context.Context, condominiumID int) ([]*User, error)

	// Update persists changes to mutable profile fields.
	Update(context context.Context, user *User) error

	// SetActive flips the enable/disable flag without touching other fields.
	SetActive(context context.Context, id int, active bool) error

	// Delete removes the account row permanently.
	Delete(context context.Context, id int) error
}
