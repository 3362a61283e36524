// Copyright (c) 2026 Commdominium. All rights reserved.

package complaint

import (
	"context"
	"log/slog"

	"github.com/commdominium/commdominium/internal/platform/sec"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input holds the mutable fields of a complaint.
type Input struct {
	Message       string
	IDUser        int
	IDCondominium int
}

func (service *Service) Create(context context.Context, input Input) (*Complaint, error) {
	complaint := &Complaint{
		Message:       input.Message,
		IDUser:        input.IDUser,
		IDCondominium: input.IDCondominium,
	}
	if err := service.repo.Create(context, complaint); err != nil {
		return nil, err
	}

	service.logger.Info("complaint filed",
		slog.Int("complaint_id", complaint.ID),
		slog.Int("condominium_id", complaint.IDCondominium),
	)
	return complaint, nil
}

func (service *Service) FindByID(context context.Context, id int) (*Complaint, error) {
	return service.repo.FindByID(context, id)
}

// List returns complaints scoped to the caller, newest first. Residents see
// only their own complaints; staff see the whole condominium, and admins
// without a condominium see everything.
func (service *Service) List(context context.Context, identity *sec.Identity) ([]*Complaint, error) {
	if identity.Role == sec.RoleResident {
		return service.repo.FindAllByUser(context, identity.UserID)
	}
	if identity.Role == sec.RoleAdmin && identity.CondominiumID == 0 {
		return service.repo.FindAll(context)
	}
	return service.repo.FindAllByCondominium(context, identity.CondominiumID)
}

func (service *Service) Update(context context.Context, id int, input Input) (*Complaint, error) {
	complaint, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	complaint.Message = input.Message

	if err := service.repo.Update(context, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// ToggleResolved flips the resolved flag and returns the new state.
func (service *Service) ToggleResolved(context context.Context, id int) (bool, error) {
	complaint, err := service.repo.FindByID(context, id)
	if err != nil {
		return false, err
	}

	resolved := !complaint.Resolved
	if err := service.repo.SetResolved(context, id, resolved); err != nil {
		return false, err
	}

	service.logger.Info("complaint status updated",
		slog.Int("complaint_id", id),
		slog.Bool("resolved", resolved),
	)
	return resolved, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}
