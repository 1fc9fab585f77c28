package main

import (
	"context"
	"github.com/myrjola/ideacoach/internal/errors"
	"log/slog"
	"net/http"
	"time"
)

// replyPollTimeout bounds one long-poll for a chat reply. It stays below the server write timeout so that a slow
// reply ends the poll with a fresh shell that polls again.
const replyPollTimeout = defaultTimeout / 2

// ask sends the user's message to the mentor. Blank messages are ignored.
func (app *application) ask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	ws := currentWorkspace(r)
	if replyID, ok := ws.Ask(r.PostForm.Get("message")); ok {
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "chat reply pending", slog.String("replyID", replyID))
	}

	if app.isHTMX(w, r) {
		app.renderApp(w, r, http.StatusOK, nil)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// chatReply long-polls until the reply with the given ID has been delivered and then renders the shell.
func (app *application) chatReply(w http.ResponseWriter, r *http.Request) {
	ws := currentWorkspace(r)
	replyID := r.PathValue("replyID")

	ctx, cancel := context.WithTimeout(r.Context(), replyPollTimeout)
	defer cancel()
	start := time.Now()
	_, delivered, err := ws.AwaitReply(ctx, replyID)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		// The shell still lists the reply as pending and polls again.
	case err != nil:
		app.serverError(w, r, errors.Wrap(err, "await chat reply", slog.String("replyID", replyID)))
		return
	default:
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "chat reply poll done",
			slog.String("replyID", replyID), slog.Bool("delivered", delivered),
			slog.Duration("waited", time.Since(start)))
	}

	app.renderApp(w, r, http.StatusOK, nil)
}
