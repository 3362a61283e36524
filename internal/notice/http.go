// Copyright (c) 2026 Commdominium. All rights reserved.

package notice

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/commdominium/commdominium/internal/platform/middleware"
	requestutil "github.com/commdominium/commdominium/internal/platform/request"
	"github.com/commdominium/commdominium/internal/platform/respond"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/platform/validate"
)

// Handler implements the legacy notice endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /notices subtree.
//
// Residents can read the board; only admins and building assignees post,
// edit or remove notices.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/findAll", handler.findAll)
		r.Post("/findById", handler.findByID)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(sec.RoleAdmin, sec.RoleAssignee))
		r.Post("/register", handler.register)
		r.Patch("/update", handler.update)
		r.Delete("/delete", handler.delete)
	})

	return router
}

// ServiceRoutes attaches the home-page board feed to the shared /services
// router.
func (handler *Handler) ServiceRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).
		Get("/findAllOrderedNotices", handler.findAllOrdered)
}

type registerRequest struct {
	Title         string  `json:"title"`
	Message       string  `json:"message"`
	EventDay      *string `json:"eventDay"`
	IDNoticeType  int     `json:"id_noticeType"`
	IDCondominium int     `json:"id_condominium"`
}

type updateRequest struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Message       string  `json:"message"`
	EventDay      *string `json:"eventDay"`
	IDNoticeType  int     `json:"id_noticeType"`
	IDCondominium int     `json:"id_condominium"`
}

type findByIDRequest struct {
	ID int `json:"id"`
}

type deleteRequest struct {
	ID int `json:"id"`
}

func validateInput(validator *validate.Validator, input Input) {
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 120).
		Required(FieldMessage, input.Message).
		Positive(FieldIDNoticeType, input.IDNoticeType).
		Positive(FieldIDCondominium, input.IDCondominium)
}

// eventDayInput validates the optional wire date and parses it. Meetings
// carry a day; plain handouts submit null or empty.
func eventDayInput(validator *validate.Validator, value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	validator.Date(FieldEventDay, *value)

	day, err := time.Parse(validate.DateLayout, *value)
	if err != nil {
		return nil
	}
	return &day
}

// register handles POST /notices/register.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	serviceInput := Input{
		Title:         input.Title,
		Message:       input.Message,
		EventDay:      eventDayInput(validator, input.EventDay),
		IDNoticeType:  input.IDNoticeType,
		IDCondominium: input.IDCondominium,
	}

	validateInput(validator, serviceInput)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	notice, err := handler.service.Create(request.Context(), serviceInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, notice)
}

// findAll handles GET /notices/findAll. The listing is scoped to the
// caller's condominium.
func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	notices, err := handler.service.List(request.Context(), identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, notices)
}

// findAllOrdered handles GET /services/findAllOrderedNotices.
func (handler *Handler) findAllOrdered(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	notices, err := handler.service.ListOrdered(request.Context(), identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, notices)
}

// findByID handles POST /notices/findById.
func (handler *Handler) findByID(writer http.ResponseWriter, request *http.Request) {
	var input findByIDRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	notice, err := handler.service.FindByID(request.Context(), input.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, notice)
}

// update handles PATCH /notices/update.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	serviceInput := Input{
		Title:         input.Title,
		Message:       input.Message,
		EventDay:      eventDayInput(validator, input.EventDay),
		IDNoticeType:  input.IDNoticeType,
		IDCondominium: input.IDCondominium,
	}

	validator.Positive(FieldID, input.ID)
	validateInput(validator, serviceInput)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	notice, err := handler.service.Update(request.Context(), input.ID, serviceInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, notice)
}

// delete handles DELETE /notices/delete.
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
