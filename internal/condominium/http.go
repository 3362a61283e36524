// Copyright (c) 2026 Commdominium. All rights reserved.

package condominium

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commdominium/commdominium/internal/platform/middleware"
	requestutil "github.com/commdominium/commdominium/internal/platform/request"
	"github.com/commdominium/commdominium/internal/platform/respond"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/platform/validate"
)

// Handler implements the legacy condominium endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /condominium subtree.
//
// Reads require a session; mutations are reserved for administrators.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/findAll", handler.findAll)
		r.Post("/findById", handler.findByID)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(sec.RoleAdmin))
		r.Post("/register", handler.register)
		r.Patch("/update", handler.update)
		r.Delete("/delete", handler.delete)
	})

	return router
}

type registerRequest struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	City   string `json:"city"`
	Street string `json:"street"`
	Number string `json:"number"`
}

type updateRequest struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	State  string `json:"state"`
	City   string `json:"city"`
	Street string `json:"street"`
	Number string `json:"number"`
}

type findByIDRequest struct {
	ID int `json:"id"`
}

type deleteRequest struct {
	ID int `json:"id"`
}

func validateInput(validator *validate.Validator, input Input) {
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120).
		Required(FieldState, input.State).
		Required(FieldCity, input.City).
		Required(FieldStreet, input.Street).
		Required(FieldNumber, input.Number)
}

// register handles POST /condominium/register.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	serviceInput := Input{
		Name:   input.Name,
		State:  input.State,
		City:   input.City,
		Street: input.Street,
		Number: input.Number,
	}

	validator := &validate.Validator{}
	validateInput(validator, serviceInput)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	condominium, err := handler.service.Create(request.Context(), serviceInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, condominium)
}

// findAll handles GET /condominium/findAll.
func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	condominiums, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, condominiums)
}

// findByID handles POST /condominium/findById.
func (handler *Handler) findByID(writer http.ResponseWriter, request *http.Request) {
	var input findByIDRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	condominium, err := handler.service.FindByID(request.Context(), input.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, condominium)
}

// update handles PATCH /condominium/update.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	serviceInput := Input{
		Name:   input.Name,
		State:  input.State,
		City:   input.City,
		Street: input.Street,
		Number: input.Number,
	}

	validator := &validate.Validator{}
	validator.Positive(FieldID, input.ID)
	validateInput(validator, serviceInput)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	condominium, err := handler.service.Update(request.Context(), input.ID, serviceInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, condominium)
}

// delete handles DELETE /condominium/delete.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	var input deleteRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.Delete(request.Context(), input.ID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"status": "deleted"})
}
