// Copyright (c) 2026 Commdominium. All rights reserved.

package usertype

import (
	"context"
	"log/slog"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/sec"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListUserTypes(context context.Context) ([]*UserType, error) {
	return service.repo.ListUserTypes(context)
}

// ResolveRole maps a numeric id_userType to its closed [sec.Role].
//
// Unknown ids and unknown labels both fail; callers must treat that as no
// role at all.
func (service *Service) ResolveRole(context context.Context, id int) (sec.Role, error) {
	userType, err := service.repo.GetUserTypeByID(context, id)
	if err != nil {
		return "", err
	}

	role, ok := sec.ParseRole(userType.Type)
	if !ok {
		return "", apperr.Internal(nil)
	}
	return role, nil
}