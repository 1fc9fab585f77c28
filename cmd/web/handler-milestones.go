package main

import (
	"github.com/myrjola/ideacoach/internal/appstate"
	"log/slog"
	"net/http"
)

func (app *application) completeMilestone(w http.ResponseWriter, r *http.Request) {
	ws := currentWorkspace(r)
	id := r.PathValue("milestoneID")
	ws.Store.Dispatch(appstate.CompleteMilestone{ID: id})
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "milestone completed", slog.String("milestoneID", id))

	if app.isHTMX(w, r) {
		app.renderApp(w, r, http.StatusOK, nil)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
