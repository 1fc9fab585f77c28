package main

import (
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/models"
	"net/http"
	"net/mail"
	"strings"
)

func (f *profileForm) validate() bool {
	f.FieldErrors = map[string]string{}
	if f.Name == "" {
		f.FieldErrors["name"] = "Name is required"
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		f.FieldErrors["email"] = "Enter a valid email address"
	}
	return len(f.FieldErrors) == 0
}

func (app *application) editProfile(w http.ResponseWriter, r *http.Request) {
	currentWorkspace(r).Store.Dispatch(appstate.SetEditMode{Editing: true})
	app.profileUpdated(w, r)
}

func (app *application) cancelProfileEdit(w http.ResponseWriter, r *http.Request) {
	currentWorkspace(r).Store.Dispatch(appstate.SetEditMode{Editing: false})
	app.profileUpdated(w, r)
}

// saveProfile updates the name and email of the user and leaves edit mode.
func (app *application) saveProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	form := profileForm{
		Name:        strings.TrimSpace(r.PostForm.Get("name")),
		Email:       strings.TrimSpace(r.PostForm.Get("email")),
		FieldErrors: nil,
	}
	if !form.validate() {
		app.renderApp(w, r, http.StatusUnprocessableEntity, func(data *appTemplateData) {
			data.ProfileForm = form
		})
		return
	}

	ws := currentWorkspace(r)
	ws.Store.Dispatch(appstate.UpdateUser{Patch: models.UserPatch{Name: &form.Name, Email: &form.Email, Avatar: nil}})
	ws.Store.Dispatch(appstate.SetEditMode{Editing: false})
	app.profileUpdated(w, r)
}

func (app *application) profileUpdated(w http.ResponseWriter, r *http.Request) {
	if app.isHTMX(w, r) {
		app.renderApp(w, r, http.StatusOK, nil)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
