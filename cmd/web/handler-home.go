package main

import (
	"github.com/myrjola/ideacoach/internal/contexthelpers"
	"net/http"
)

// home shows the login form to signed out users and the current page to everyone else.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	if !contexthelpers.IsAuthenticated(r.Context()) {
		data := loginTemplateData{
			BaseTemplateData: newBaseTemplateData(r),
			Form:             loginForm{Name: "", Email: "", FieldErrors: nil},
		}
		app.render(w, r, http.StatusOK, "login", "base", data)
		return
	}

	app.renderApp(w, r, http.StatusOK, nil)
}
