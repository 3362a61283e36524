// Copyright (c) 2026 Commdominium. All rights reserved.

package payment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/dberr"
	"github.com/commdominium/commdominium/internal/platform/sec"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input holds the mutable fields of a payment.
type Input struct {
	BillArchive string
	DueDate     time.Time
	Paid        bool
	IDUser      int
}

// Create registers a bill, refusing a second bill for the same resident and
// month.
func (service *Service) Create(context context.Context, input Input) (*Payment, error) {
	month := int(input.DueDate.Month())
	year := input.DueDate.Year()

	existing, err := service.repo.FindByUserAndMonth(context, input.IDUser, month, year)
	if err != nil && !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("A bill already exists for this resident and month")
	}

	payment := &Payment{
		BillArchive: input.BillArchive,
		DueDate:     input.DueDate,
		Paid:        input.Paid,
		IDUser:      input.IDUser,
	}
	if err := service.repo.Create(context, payment); err != nil {
		return nil, err
	}

	service.logger.Info("bill registered",
		slog.Int("payment_id", payment.ID),
		slog.Int("user_id", payment.IDUser),
	)
	return payment, nil
}

func (service *Service) FindByID(context context.Context, id int) (*Payment, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) List(context context.Context) ([]*Payment, error) {
	return service.repo.FindAll(context)
}

func (service *Service) ListByUser(context context.Context, userID int) ([]*Payment, error) {
	return service.repo.FindAllByUser(context, userID)
}

// ListOrdered returns the caller's own bills, newest due date first. It
// backs the home page's billing summary regardless of role.
func (service *Service) ListOrdered(context context.Context, identity *sec.Identity) ([]*Payment, error) {
	return service.repo.FindAllByUser(context, identity.UserID)
}

// VerifyBillExistence reports whether the resident already has a bill for
// the given month. A nil payment with a nil error means no bill exists.
func (service *Service) VerifyBillExistence(context context.Context, userID, month, year int) (*Payment, error) {
	payment, err := service.repo.FindByUserAndMonth(context, userID, month, year)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}

func (service *Service) Update(context context.Context, id int, input Input) (*Payment, error) {
	payment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	payment.BillArchive = input.BillArchive
	payment.DueDate = input.DueDate
	payment.Paid = input.Paid

	if err := service.repo.Update(context, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}
