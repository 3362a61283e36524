// Copyright (c) 2026 Commdominium. All rights reserved.

package user

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

// Handler implements the legacy account endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /user subtree.
//
// # Endpoints
//   - POST   /register : creates a new account (open for self-registration).
//   - GET    /findAll  : lists accounts visible to the caller.
//   - POST   /findById : fetches one account.
//   - PATCH  /update   : edits profile fields.
//   - DELETE /delete   : removes an account permanently (admin only).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/findAll", handler.findAll)
		r.Post("/findById", handler.findByID)
		r.Patch("/update", handler.update)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(sec.RoleAdmin))
		r.Delete("/delete", handler.delete)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Fullname      string `json:"fullname"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	IDCondominium *int   `json:"id_condominium"`
	IDUserType    int    `json:"id_userType"`
	Block         string `json:"block"`
	Building      string `json:"building"`
	Number        string `json:"number"`
}

type findByIDRequest struct {
	ID int `json:"id"`
}

type updateRequest struct {
	ID            int    `json:"id"`
	Fullname      string `json:"fullname"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	IDCondominium *int   `json:"id_condominium"`
	IDUserType    int    `json:"id_userType"`
	Block         string `json:"block"`
	Building      string `json:"building"`
	Number        string `json:"number"`
	AvatarArchive string `json:"avatarArchive"`
}

type deleteRequest struct {
	ID int `json:"id"`
}

// register handles POST /user/register.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldFullname, input.Fullname).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8).
		Positive(FieldIDUserType, input.IDUserType)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Register(request.Context(), RegisterInput{
		Fullname:      input.Fullname,
		Email:         input.Email,
		Password:      input.Password,
		IDCondominium: input.IDCondominium,
		IDUserType:    input.IDUserType,
		Block:         input.Block,
		Building:      input.Building,
		Number:        input.Number,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

// findAll handles GET /user/findAll?q=.
//
// Admins see every account; everyone else only their condominium. The
// optional q parameter filters by fullname, accent-insensitive.
func (handler *Handler) findAll(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	accounts, err := handler.service.List(request.Context(), ListInput{
		Identity: identity,
		Query:    request.URL.Query().Get("q"),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Collection(writer, accounts)
}

// findByID handles POST /user/findById.
func (handler *Handler) findByID(writer http.ResponseWriter, request *http.Request) {
	var input findByIDRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	account, err := handler.service.FindByID(request.Context(), input.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

// update handles PATCH /user/update.
//
// Residents may only edit their own profile; assignees and admins may edit
// accounts they can see.
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

	if identity.Role == sec.RoleResident && identity.UserID != input.ID {
		respond.Error(writer, request, apperr.Forbidden("Residents can only edit their own profile"))
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldID, input.ID).
		Required(FieldFullname, input.Fullname).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Positive(FieldIDUserType, input.IDUserType)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Update(request.Context(), UpdateInput{
		ID:            input.ID,
		Fullname:      input.Fullname,
		Email:         input.Email,
		Password:      input.Password,
		IDCondominium: input.IDCondominium,
		IDUserType:    input.IDUserType,
		Block:         input.Block,
		Building:      input.Building,
		Number:        input.Number,
		AvatarArchive: input.AvatarArchive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

// delete handles DELETE /user/delete.
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

// # Status Toggle

// ServiceRoutes attaches the soft active flip to the shared /services
// router. It lives apart from the /user subtree because the legacy API
// groups status mutations under /services.
func (handler *Handler) ServiceRoutes(router chi.Router) {
	router.With(middleware.RequireRoles(sec.RoleAdmin, sec.RoleAssignee)).
		Patch("/toggleUserActive", handler.toggleActive)
}

type toggleActiveRequest struct {
	IDUser int `json:"id_user"`
}

// toggleActive handles PATCH /services/toggleUserActive.
func (handler *Handler) toggleActive(writer http.ResponseWriter, request *http.Request) {
	var input toggleActiveRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	active, err := handler.service.ToggleActive(request.Context(), input.IDUser)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"id": input.IDUser, "active": active})
}
