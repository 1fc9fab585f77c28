package main

import (
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/models"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
)

type loginForm struct {
	Name        string
	Email       string
	FieldErrors map[string]string
}

func (f *loginForm) validate() bool {
	f.FieldErrors = map[string]string{}
	if f.Name == "" {
		f.FieldErrors["name"] = "Name is required"
	}
	if f.Email == "" {
		f.FieldErrors["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		f.FieldErrors["email"] = "Enter a valid email address"
	}
	return len(f.FieldErrors) == 0
}

// login signs in without any credential check. Anyone with a name and an email address gets in.
func (app *application) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	form := loginForm{
		Name:        strings.TrimSpace(r.PostForm.Get("name")),
		Email:       strings.TrimSpace(r.PostForm.Get("email")),
		FieldErrors: nil,
	}
	if !form.validate() {
		data := loginTemplateData{BaseTemplateData: newBaseTemplateData(r), Form: form}
		app.render(w, r, http.StatusUnprocessableEntity, "login", "base", data)
		return
	}

	ctx := r.Context()
	if err := app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	ws := currentWorkspace(r)
	user := models.NewUser(form.Name, form.Email, app.now())
	ws.Store.Dispatch(appstate.Authenticate{User: user})
	app.logger.LogAttrs(ctx, slog.LevelInfo, "user signed in", slog.String("userID", user.ID))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// logout clears the user, the authentication and the chat log of the workspace.
func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	currentWorkspace(r).Logout()
	app.logger.LogAttrs(ctx, slog.LevelInfo, "user signed out")

	app.redirect(w, r, "/")
}
