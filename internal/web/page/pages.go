// Copyright (c) 2026 Commdominium. All rights reserved.

package page

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/web/session"
)

// Handlers implements every page of the frontend.
type Handlers struct {
	renderer *Renderer
	gateway  session.Gateway
	resolver *session.Resolver
	tokens   session.TokenStore
	logger   *slog.Logger
}

// NewHandlers wires the page handlers.
func NewHandlers(renderer *Renderer, gw session.Gateway, resolver *session.Resolver, tokens session.TokenStore, logger *slog.Logger) *Handlers {
	return &Handlers{
		renderer: renderer,
		gateway:  gw,
		resolver: resolver,
		tokens:   tokens,
		logger:   logger,
	}
}

// # Wire Shapes

// The list pages decode only the fields they display.

type noticeRow struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Message      string  `json:"message"`
	EventDay     *string `json:"eventDay"`
	IDNoticeType int     `json:"id_noticeType"`
	CreatedAt    string  `json:"createdAt"`
}

type complaintRow struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Resolved  bool   `json:"resolved"`
	Fullname  string `json:"fullname"`
	CreatedAt string `json:"createdAt"`
}

type paymentRow struct {
	ID          int    `json:"id"`
	BillArchive string `json:"billArchive"`
	DueDate     string `json:"dueDate"`
	Paid        bool   `json:"paid"`
	IDUser      int    `json:"id_user"`
}

type accountRow struct {
	ID       int    `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Block    string `json:"block"`
	Building string `json:"building"`
	Number   string `json:"number"`
	Active   bool   `json:"active"`
}

type condominiumRow struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	State  string `json:"state"`
	City   string `json:"city"`
	Street string `json:"street"`
	Number string `json:"number"`
}

// homeView carries the two feeds of the home page.
type homeView struct {
	Notices  []noticeRow
	Payments []paymentRow
}

// # Authentication Pages

// Login handles GET /login.
func (handlers *Handlers) Login(writer http.ResponseWriter, request *http.Request) {
	handlers.renderer.Render(writer, "login.html", View{Title: "Login"})
}

// LoginSubmit handles POST /login.
//
// On success the token cookie is written and the browser lands on the home
// page. On failure the login page re-renders with a flash carrying the
// normalized error, scoped to this single response.
func (handlers *Handlers) LoginSubmit(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		handlers.renderer.Render(writer, "login.html", View{Title: "Login", Flash: "Invalid form submission"})
		return
	}

	email := request.PostFormValue("email")
	password := request.PostFormValue("password")
	if email == "" || password == "" {
		handlers.renderer.Render(writer, "login.html", View{Title: "Login", Flash: "Email and password are required"})
		return
	}

	login, err := handlers.resolver.SignIn(request.Context(), email, password)
	if err != nil {
		handlers.renderer.Render(writer, "login.html", View{Title: "Login", Flash: err.Error()})
		return
	}

	handlers.tokens.Write(writer, login.Token, constants.SessionTokenTTL)
	http.Redirect(writer, request, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. It revokes the token server-side, clears
// the cookie, and sends the browser back to the login page.
func (handlers *Handlers) Logout(writer http.ResponseWriter, request *http.Request) {
	if token, ok := handlers.tokens.Read(request); ok {
		handlers.resolver.SignOut(request.Context(), token)
	}
	handlers.tokens.Clear(writer)
	http.Redirect(writer, request, "/login", http.StatusSeeOther)
}

// # Content Pages

// Home handles GET /. It shows the condominium board feed, newest first,
// plus the user's own bills by due date.
func (handlers *Handlers) Home(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	var data homeView
	flash := handlers.fetchCollection(request, http.MethodGet, "/services/findAllOrderedNotices", &data.Notices)
	if flash == "" {
		flash = handlers.fetchCollection(request, http.MethodGet, "/services/findAllOrderedPayments", &data.Payments)
	}

	handlers.renderer.Render(writer, "home.html", View{
		Title:   "Home",
		Active:  "home",
		Account: account,
		Flash:   flash,
		Data:    data,
	})
}

// Notices handles GET /avisos.
func (handlers *Handlers) Notices(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	var notices []noticeRow
	flash := handlers.fetchCollection(request, http.MethodGet, "/services/findAllOrderedNotices", &notices)

	handlers.renderer.Render(writer, "notices.html", View{
		Title:   "Avisos",
		Active:  "notices",
		Account: account,
		Flash:   flash,
		Data:    notices,
	})
}

// Complaints handles GET /reclamacoes.
func (handlers *Handlers) Complaints(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	var complaints []complaintRow
	flash := handlers.fetchCollection(request, http.MethodGet, "/services/findAllComplaints", &complaints)

	handlers.renderer.Render(writer, "complaints.html", View{
		Title:   "Reclamações",
		Active:  "complaints",
		Account: account,
		Flash:   flash,
		Data:    complaints,
	})
}

// Payments handles GET /financeiro.
func (handlers *Handlers) Payments(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	var payments []paymentRow
	flash := handlers.fetchCollection(request, http.MethodGet, "/payment/findAll", &payments)

	handlers.renderer.Render(writer, "payments.html", View{
		Title:   "Financeiro",
		Active:  "payments",
		Account: account,
		Flash:   flash,
		Data:    payments,
	})
}

// Residents handles GET /moradores. The optional q parameter is forwarded
// to the backend's accent-insensitive name filter.
func (handlers *Handlers) Residents(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	path := "/user/findAll"
	if query := request.URL.Query().Get("q"); query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var residents []accountRow
	flash := handlers.fetchCollection(request, http.MethodGet, path, &residents)

	handlers.renderer.Render(writer, "residents.html", View{
		Title:   "Moradores",
		Active:  "residents",
		Account: account,
		Flash:   flash,
		Data:    residents,
	})
}

// Condominiums handles GET /condominios.
func (handlers *Handlers) Condominiums(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	var condominiums []condominiumRow
	flash := handlers.fetchCollection(request, http.MethodGet, "/condominium/findAll", &condominiums)

	handlers.renderer.Render(writer, "condominiums.html", View{
		Title:   "Condomínios",
		Active:  "condominiums",
		Account: account,
		Flash:   flash,
		Data:    condominiums,
	})
}

// Users handles GET /usuarios.
func (handlers *Handlers) Users(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	var accounts []accountRow
	flash := handlers.fetchCollection(request, http.MethodGet, "/user/findAll", &accounts)

	handlers.renderer.Render(writer, "users.html", View{
		Title:   "Usuários",
		Active:  "users",
		Account: account,
		Flash:   flash,
		Data:    accounts,
	})
}

// Profile handles GET /meu-perfil. The account is already resolved by the
// guard; no further fetch is needed.
func (handlers *Handlers) Profile(writer http.ResponseWriter, request *http.Request, account *session.Account) {
	handlers.renderer.Render(writer, "profile.html", View{
		Title:   "Meu Perfil",
		Active:  "",
		Account: account,
		Data:    account,
	})
}

// # Helpers

// fetchCollection performs one authenticated list fetch and returns a
// flash message on failure, leaving v empty. A backend 204 decodes as an
// empty list, not a failure.
func (handlers *Handlers) fetchCollection(request *http.Request, method, path string, v any) string {
	token, _ := handlers.tokens.Read(request)

	result := handlers.gateway.Do(request.Context(), method, path, token, nil)
	if err := result.Collection(v); err != nil {
		handlers.logger.Warn("page_fetch_failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return err.Error()
	}
	return ""
}
