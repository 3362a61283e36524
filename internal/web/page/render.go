// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package page renders the server-side HTML pages of the frontend.

Every page is composed from the shared layout plus one content template.
Handlers fetch their data through the gateway only after the access guard
has passed, and every fetch failure surfaces as a one-shot flash message
scoped to the single response being rendered. There is no cross-request
error state.
*/
package page

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/commdominium/commdominium/internal/web/nav"
	"github.com/commdominium/commdominium/internal/web/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// View is the data handed to every template execution.
type View struct {
	Title   string
	Active  string
	Account *session.Account
	Nav     []nav.Entry

	// Flash is a one-shot notification for this response only.
	Flash string

	Data any
}

// Renderer holds the parsed template set, one entry per page.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// pageTemplates lists the content templates composed with the layout.
var pageTemplates = []string{
	"login.html",
	"home.html",
	"notices.html",
	"complaints.html",
	"payments.html",
	"residents.html",
	"condominiums.html",
	"users.html",
	"profile.html",
}

// NewRenderer parses all page templates at startup so a broken template
// fails the boot, not a request.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		parsed, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("page: parse %s: %w", name, err)
		}
		pages[name] = parsed
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

// Render executes the named page with view. The view's Nav is derived here
// from the account so no handler can forget to refresh it.
func (renderer *Renderer) Render(writer http.ResponseWriter, name string, view View) {
	page, ok := renderer.pages[name]
	if !ok {
		renderer.logger.Error("unknown_template", slog.String("name", name))
		http.Error(writer, "internal error", http.StatusInternalServerError)
		return
	}

	if view.Account != nil {
		view.Nav = nav.Entries(view.Account.Role)
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.ExecuteTemplate(writer, "layout", view); err != nil {
		renderer.logger.Error("template_execution_failed",
			slog.String("name", name),
			slog.Any("error", err),
		)
	}
}
