// Copyright (c) 2026 Commdominium. All rights reserved.

package payment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/middleware"
	requestutil "github.com/commdominium/commdominium/internal/platform/request"
	"github.com/commdominium/commdominium/internal/platform/respond"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/platform/validate"
)

// Handler implements the legacy payment endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /payment subtree.
//
// Residents can only look at their own bills; admins and assignees manage
// the billing for everyone.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/findById", handler.findByID)
	router.Post("/findByUser", handler.findByUser)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(sec.RoleAdmin, sec.RoleAssignee))
		r.Get("/findAll", handler.findAll)
		r.Post("/register", handler.register)
		r.Patch("/update", handler.update)
		r.Delete("/delete", handler.delete)
	})

	return router
}

// ServiceRoutes attaches the bill existence check and the home-page billing
// feed to the shared /services router.
func (handler *Handler) ServiceRoutes(router chi.Router) {
	router.With(middleware.RequireRoles(sec.RoleAdmin, sec.RoleAssignee)).
		Post("/verifyBillExistance", handler.verifyExistence)
	router.With(middleware.RequireAuth).
		Get("/findAllOrderedPayments", handler.findAllOrdered)
}

type registerRequest struct {
	BillArchive string `json:"billArchive"`
	DueDate     string `json:"dueDate"`
	Paid        bool   `json:"paid"`
	IDUser      int    `json:"id_user"`
}

type updateRequest struct {
	ID          int    `json:"id"`
	BillArchive string `json:"billArchive"`
	DueDate     string `json:"dueDate"`
	Paid        bool   `json:"paid"`
}

type findByIDRequest struct {
	ID int `json:"id"`
}

type findByUserRequest struct {
	IDUser int `json:"id_user"`
}

type deleteRequest struct {
	ID int `json:"id"`
}

type verifyExistenceRequest struct {
	IDUser int `json:"id_user"`
	Month  int `json:"month"`
	Year   int `json:"year"`
}

// register handles POST /payment/register.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldBillArchive, input.BillArchive).
		Required(FieldDueDate, input.DueDate).
		Date(FieldDueDate, input.DueDate).
		Positive(FieldIDUser, input.IDUser)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dueDate, _ := time.Parse(validate.DateLayout, input.DueDate)

	payment, err := handler.service.Create(request.Context(), Input{
		BillArchive: input.BillArchive,
		DueDate:     dueDate,
		Paid:        input.Paid,
		IDUser:      input.IDUser,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, payment)
}

// findAll handles GET /payment/findAll.
func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	payments, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, payments)
}

// findByID handles POST /payment/findById.
//
// Residents can only fetch bills assigned to them.
func (handler *Handler) findByID(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input findByIDRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	payment, err := handler.service.FindByID(request.Context(), input.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if identity.Role == sec.RoleResident && payment.IDUser != identity.UserID {
		respond.Error(writer, request, apperr.Forbidden("Residents can only view their own bills"))
		return
	}

	respond.OK(writer, payment)
}

// findByUser handles POST /payment/findByUser.
//
// Residents can only list their own bills.
func (handler *Handler) findByUser(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input findByUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if identity.Role == sec.RoleResident && identity.UserID != input.IDUser {
		respond.Error(writer, request, apperr.Forbidden("Residents can only view their own bills"))
		return
	}

	payments, err := handler.service.ListByUser(request.Context(), input.IDUser)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, payments)
}

// findAllOrdered handles GET /services/findAllOrderedPayments. Every role
// gets its own bills only, newest due date first.
func (handler *Handler) findAllOrdered(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payments, err := handler.service.ListOrdered(request.Context(), identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, payments)
}

// verifyExistence handles POST /services/verifyBillExistance.
//
// Responds 204 when no bill exists for the resident and month, 200 with the
// bill otherwise. The endpoint name keeps the legacy spelling.
func (handler *Handler) verifyExistence(writer http.ResponseWriter, request *http.Request) {
	var input verifyExistenceRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldIDUser, input.IDUser).
		Range(FieldMonth, input.Month, 1, 12).
		Range(FieldYear, input.Year, 2000, 2200)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	payment, err := handler.service.VerifyBillExistence(request.Context(), input.IDUser, input.Month, input.Year)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if payment == nil {
		respond.NoContent(writer)
		return
	}

	respond.OK(writer, payment)
}

// update handles PATCH /payment/update.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldID, input.ID).
		Required(FieldBillArchive, input.BillArchive).
		Required(FieldDueDate, input.DueDate).
		Date(FieldDueDate, input.DueDate)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dueDate, _ := time.Parse(validate.DateLayout, input.DueDate)

	payment, err := handler.service.Update(request.Context(), input.ID, Input{
		BillArchive: input.BillArchive,
		DueDate:     dueDate,
		Paid:        input.Paid,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, payment)
}

// delete handles DELETE /payment/delete.
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
