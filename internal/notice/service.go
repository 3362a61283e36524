// Copyright (c) 2026 Commdominium. All rights reserved.

package notice

import (
	"context"
	"log/slog"
	"time"

	"github.com/commdominium/commdominium/internal/platform/sec"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input holds the mutable fields of a notice.
type Input struct {
	Title         string
	Message       string
	EventDay      *time.Time
	IDNoticeType  int
	IDCondominium int
}

func (service *Service) Create(context context.Context, input Input) (*Notice, error) {
	notice := &Notice{
		Title:         input.Title,
		Message:       input.Message,
		EventDay:      input.EventDay,
		IDNoticeType:  input.IDNoticeType,
		IDCondominium: input.IDCondominium,
	}
	if err := service.repo.Create(context, notice); err != nil {
		return nil, err
	}

	service.logger.Info("notice posted",
		slog.Int("notice_id", notice.ID),
		slog.Int("condominium_id", notice.IDCondominium),
	)
	return notice, nil
}

func (service *Service) FindByID(context context.Context, id int) (*Notice, error) {
	return service.repo.FindByID(context, id)
}

// List returns notices scoped to the caller's condominium. Admins without a
// condominium see the whole board.
func (service *Service) List(context context.Context, identity *sec.Identity) ([]*Notice, error) {
	if identity.Role == sec.RoleAdmin && identity.CondominiumID == 0 {
		return service.repo.FindAll(context)
	}
	return service.repo.FindAllByCondominium(context, identity.CondominiumID)
}

// ListOrdered returns notices newest first, scoped to the caller's
// condominium. Admins without a condominium see the whole board.
func (service *Service) ListOrdered(context context.Context, identity *sec.Identity) ([]*Notice, error) {
	if identity.Role == sec.RoleAdmin && identity.CondominiumID == 0 {
		return service.repo.FindAll(context)
	}
	return service.repo.FindAllByCondominium(context, identity.CondominiumID)
}

func (service *Service) Update(context context.Context, id int, input Input) (*Notice, error) {
	notice, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	notice.Title = input.Title
	notice.Message = input.Message
	notice.EventDay = input.EventDay
	notice.IDNoticeType = input.IDNoticeType
	notice.IDCondominium = input.IDCondominium

	if err := service.repo.Update(context, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}
