// Copyright (c) 2026 Commdominium. All rights reserved.

package noticetype

import (
	"context"
	"log/slog"
)

// Repository defines the data access contract.
type Repository interface {
	ListNoticeTypes(context context.Context) ([]*NoticeType, error)
}

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

func (service *Service) ListNoticeTypes(context context.Context) ([]*NoticeType, error) {
	return service.repo.ListNoticeTypes(context)
}