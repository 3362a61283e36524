// Copyright (c) 2026 Commdominium. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	requestutil "github.com/commdominium/commdominium/internal/platform/request"
	"github.com/commdominium/commdominium/internal/platform/respond"
	"github.com/commdominium/commdominium/internal/platform/validate"
)

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /auth subtree.
//
// # Endpoints
//   - POST /authenticate : exchanges credentials for {token, user}.
//   - POST /logout       : revokes the presented bearer token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/authenticate", handler.authenticate)
	router.Post("/logout", handler.logout)
	return router
}

type authenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authenticate handles POST /auth/authenticate.
func (handler *Handler) authenticate(writer http.ResponseWriter, request *http.Request) {
	var input authenticateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Authenticate(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// logout handles POST /auth/logout. Revoking an absent token still succeeds.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.BearerToken(request)

	if err := handler.service.Logout(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// QueryTokenHandler handles GET /queryToken.
//
// The endpoint lives at the API root rather than under /auth because the
// legacy contract pins the path.
func (handler *Handler) QueryTokenHandler(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.BearerToken(request)
	if token == "" {
		respond.Error(writer, request, apperr.Unauthorized("Missing bearer token"))
		return
	}

	subject, err := handler.service.QueryToken(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, subject)
}
