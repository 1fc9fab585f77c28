package main

import (
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/models"
	"log/slog"
	"net/http"
)

// navigate starts a page switch. htmx requests get the shell in transition, which fetches /view to pick up the
// committed page. Plain form posts wait for the switch to commit and redirect.
func (app *application) navigate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	page, err := models.ParsePage(r.PostForm.Get("page"))
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	app.switchPage(w, r, page)
}

// switchPage moves the workspace to page and responds the way navigate does.
func (app *application) switchPage(w http.ResponseWriter, r *http.Request, page models.Page) {
	ws := currentWorkspace(r)
	if ws.Navigate(page) {
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "page switch started", slog.String("page", string(page)))
	}

	if app.isHTMX(w, r) {
		app.renderApp(w, r, http.StatusOK, nil)
		return
	}

	if err := app.awaitNavigation(r); err != nil {
		app.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// view renders the shell once the pending page switch, if any, has committed.
func (app *application) view(w http.ResponseWriter, r *http.Request) {
	if err := app.awaitNavigation(r); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.renderApp(w, r, http.StatusOK, nil)
}

func (app *application) awaitNavigation(r *http.Request) error {
	if err := currentWorkspace(r).Nav.Wait(r.Context()); err != nil {
		return errors.Wrap(err, "wait for page switch")
	}
	return nil
}
