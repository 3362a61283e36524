// Copyright (c) 2026 Commdominium. All rights reserved.

package condominium

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input holds the mutable fields of a condominium.
type Input struct {
	Name   string
	State  string
	City   string
	Street string
	Number string
}

func (service *Service) Create(context context.Context, input Input) (*Condominium, error) {
	condominium := &Condominium{
		Name:   input.Name,
		State:  input.State,
		City:   input.City,
		Street: input.Street,
		Number: input.Number,
	}
	if err := service.repo.Create(context, condominium); err != nil {
		return nil, err
	}
	return condominium, nil
}

func (service *Service) FindByID(context context.Context, id int) (*Condominium, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) List(context context.Context) ([]*Condominium, error) {
	return service.repo.FindAll(context)
}

func (service *Service) Update(context context.Context, id int, input Input) (*Condominium, error) {
	condominium, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	condominium.Name = input.Name
	condominium.State = input.State
	condominium.City = input.City
	condominium.Street = input.Street
	condominium.Number = input.Number

	if err := service.repo.Update(context, condominium); err != nil {
		return nil, err
	}
	return condominium, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}