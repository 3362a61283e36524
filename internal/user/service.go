// Copyright (c) 2026 Commdominium. All rights reserved.

package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/pkg/textnorm"
)

// Service implements account use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Fullname      string
	Email         string
	Password      string
	IDCondominium *int
	IDUserType    int
	Block         string
	Building      string
	Number        string
}

// Register validates, hashes, and persists a brand new account.
//
// New accounts are always enabled; deactivation is an explicit admin action.
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Email uniqueness. Return a client-safe Conflict error.
	if _, err := service.repo.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_hash_failed: %w", err)
	}

	account := &User{
		Fullname:      input.Fullname,
		Email:         input.Email,
		PasswordHash:  hashedPassword,
		IDCondominium: input.IDCondominium,
		IDUserType:    input.IDUserType,
		Block:         input.Block,
		Building:      input.Building,
		Number:        input.Number,
		Active:        true,
	}

	if err := service.repo.Create(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// FindByID returns one account.
func (service *Service) FindByID(context context.Context, id int) (*User, error) {
	return service.repo.FindByID(context, id)
}

// ListInput scopes an account listing.
//
// Admins list across all condominiums; everyone else is bound to their own
// building. Query is an optional accent-insensitive fullname filter.
type ListInput struct {
	Identity *sec.Identity
	Query    string
}

// List returns the accounts visible to the caller.
func (service *Service) List(context context.Context, input ListInput) ([]*User, error) {
	var accounts []*User
	var err error

	if input.Identity.Role == sec.RoleAdmin {
		accounts, err = service.repo.FindAll(context)
	} else {
		accounts, err = service.repo.FindAllByCondominium(context, input.Identity.CondominiumID)
	}
	if err != nil {
		return nil, err
	}

	if input.Query == "" {
		return accounts, nil
	}

	filtered := make([]*User, 0, len(accounts))
	for _, account := range accounts {
		if textnorm.Contains(account.Fullname, input.Query) {
			filtered = append(filtered, account)
		}
	}
	return filtered, nil
}

// UpdateInput holds the mutable profile fields.
type UpdateInput struct {
	ID            int
	Fullname      string
	Email         string
	Password      string // empty keeps the current hash
	IDCondominium *int
	IDUserType    int
	Block         string
	Building      string
	Number        string
	AvatarArchive string
}

// Update persists profile changes, rehashing the password only when a new
// one was provided.
func (service *Service) Update(context context.Context, input UpdateInput) (*User, error) {
	account, err := service.repo.FindByID(context, input.ID)
	if err != nil {
		return nil, err
	}

	account.Fullname = input.Fullname
	account.Email = input.Email
	account.IDCondominium = input.IDCondominium
	account.IDUserType = input.IDUserType
	account.Block = input.Block
	account.Building = input.Building
	account.Number = input.Number
	account.AvatarArchive = input.AvatarArchive

	if input.Password != "" {
		hashed, err := sec.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("user_service_rehash_failed: %w", err)
		}
		account.PasswordHash = hashed
	}

	if err := service.repo.Update(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ToggleActive flips the enable/disable flag and returns the new state.
func (service *Service) ToggleActive(context context.Context, id int) (bool, error) {
	account, err := service.repo.FindByID(context, id)
	if err != nil {
		return false, err
	}

	next := !account.Active
	if err := service.repo.SetActive(context, id, next); err != nil {
		return false, err
	}
	return next, nil
}

// Delete removes an account permanently. The legacy contract is a hard
// delete; disabling is the reversible path.
func (service *Service) Delete(context context.Context, id int) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}
