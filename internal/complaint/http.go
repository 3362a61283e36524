// Copyright (c) 2026 Commdominium. All rights reserved.

package complaint

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/middleware"
	requestutil "github.com/commdominium/commdominium/internal/platform/request"
	"github.com/commdominium/commdominium/internal/platform/respond"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/platform/validate"
)

// Handler implements the legacy complaint endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /complaint subtree.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/register", handler.register)
	router.Post("/findById", handler.findByID)
	router.Patch("/update", handler.update)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(sec.RoleAdmin, sec.RoleAssignee))
		r.Delete("/delete", handler.delete)
	})

	return router
}

// ServiceRoutes attaches the complaint board routes to the shared /services
// router.
func (handler *Handler) ServiceRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).
		Get("/findAllComplaints", handler.findAll)
	router.With(middleware.RequireRoles(sec.RoleAdmin, sec.RoleAssignee)).
		Patch("/updateResolvedStatus", handler.updateResolved)
}

type registerRequest struct {
	Message       string `json:"message"`
	IDUser        int    `json:"id_user"`
	IDCondominium int    `json:"id_condominium"`
}

type updateRequest struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type findByIDRequest struct {
	ID int `json:"id"`
}

type deleteRequest struct {
	ID int `json:"id"`
}

type updateResolvedRequest struct {
	ID int `json:"id"`
}

// register handles POST /complaint/register.
//
// Residents can only file complaints as themselves.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if identity.Role == sec.RoleResident && identity.UserID != input.IDUser {
		respond.Error(writer, request, apperr.Forbidden("Residents can only file complaints as themselves"))
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldMessage, input.Message).
		MaxLen(FieldMessage, input.Message, 2000).
		Positive(FieldIDUser, input.IDUser).
		Positive(FieldIDCondominium, input.IDCondominium)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	complaint, err := handler.service.Create(request.Context(), Input{
		Message:       input.Message,
		IDUser:        input.IDUser,
		IDCondominium: input.IDCondominium,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, complaint)
}

// findAll handles GET /services/findAllComplaints.
func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	complaints, err := handler.service.List(request.Context(), identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, complaints)
}

// findByID handles POST /complaint/findById.
func (handler *Handler) findByID(writer http.ResponseWriter, request *http.Request) {
	var input findByIDRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	complaint, err := handler.service.FindByID(request.Context(), input.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, complaint)
}

// update handles PATCH /complaint/update.
//
// Residents can only edit the text of their own complaints.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldID, input.ID).
		Required(FieldMessage, input.Message).
		MaxLen(FieldMessage, input.Message, 2000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if identity.Role == sec.RoleResident {
		existing, err := handler.service.FindByID(request.Context(), input.ID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if existing.IDUser != identity.UserID {
			respond.Error(writer, request, apperr.Forbidden("Residents can only edit their own complaints"))
			return
		}
	}

	complaint, err := handler.service.Update(request.Context(), input.ID, Input{Message: input.Message})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, complaint)
}

// updateResolved handles PATCH /services/updateResolvedStatus.
func (handler *Handler) updateResolved(writer http.ResponseWriter, request *http.Request) {
	var input updateResolvedRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	resolved, err := handler.service.ToggleResolved(request.Context(), input.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"id": input.ID, "resolved": resolved})
}

// delete handles DELETE /complaint/delete.
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
