// Copyright (c) 2026 Commdominium. All rights reserved.

package usertype

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commdominium/commdominium/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/findAll", handler.findAll)
	return router
}

func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	types, err := handler.service.ListUserTypes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Collection(writer, types)
}