package main

import (
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/models"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"unicode/utf8"
)

const maxIdeaDescriptionLength = 500

func (f *ideaForm) validate() bool {
	f.FieldErrors = map[string]string{}
	required := []struct {
		field, value, message string
	}{
		{"title", f.Title, "Give your idea a title"},
		{"description", f.Description, "Describe your idea"},
		{"category", f.Category, "Pick a category"},
		{"targetMarket", f.TargetMarket, "Describe your target market"},
		{"problem", f.Problem, "Describe the problem you are solving"},
		{"businessModel", f.BusinessModel, "Describe how you will make money"},
	}
	for _, r := range required {
		if r.value == "" {
			f.FieldErrors[r.field] = r.message
		}
	}
	if utf8.RuneCountInString(f.Description) > maxIdeaDescriptionLength {
		f.FieldErrors["description"] = "Keep the description under 500 characters"
	}
	if f.Category != "" && !slices.Contains(models.IdeaCategories, f.Category) {
		f.FieldErrors["category"] = "Pick one of the listed categories"
	}
	return len(f.FieldErrors) == 0
}

// submitIdea adds the idea, selects it as the current idea and switches to the dashboard.
func (app *application) submitIdea(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	form := ideaForm{
		Title:         strings.TrimSpace(r.PostForm.Get("title")),
		Description:   strings.TrimSpace(r.PostForm.Get("description")),
		Category:      r.PostForm.Get("category"),
		TargetMarket:  strings.TrimSpace(r.PostForm.Get("targetMarket")),
		Problem:       strings.TrimSpace(r.PostForm.Get("problem")),
		BusinessModel: strings.TrimSpace(r.PostForm.Get("businessModel")),
		FieldErrors:   nil,
	}
	if !form.validate() {
		app.renderApp(w, r, http.StatusUnprocessableEntity, func(data *appTemplateData) {
			data.IdeaForm = form
		})
		return
	}

	ws := currentWorkspace(r)
	idea := models.NewIdea(form.Title, form.Description, form.Category, app.now())
	ws.Store.Dispatch(appstate.SetLoading{Loading: true})
	ws.Store.Dispatch(appstate.AddIdea{Idea: idea})
	ws.Store.Dispatch(appstate.SetCurrentIdea{IdeaID: idea.ID})
	ws.Store.Dispatch(appstate.SetLoading{Loading: false})
	app.metrics.IdeaSubmitted()
	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "idea submitted",
		slog.String("ideaID", idea.ID), slog.String("category", idea.Category))

	app.switchPage(w, r, models.PageDashboard)
}

// selectIdea makes the idea the current idea and opens it on the dashboard.
func (app *application) selectIdea(w http.ResponseWriter, r *http.Request) {
	ws := currentWorkspace(r)
	ideaID := r.PathValue("ideaID")
	if _, ok := ws.Store.Snapshot().IdeaByID(ideaID); !ok {
		app.notFound(w, r)
		return
	}
	ws.Store.Dispatch(appstate.SetCurrentIdea{IdeaID: ideaID})

	app.switchPage(w, r, models.PageDashboard)
}
