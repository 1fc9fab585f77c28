package main

import (
	"fmt"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/export"
	"log/slog"
	"net/http"
	"strconv"
)

// export downloads the user's data as a JSON file.
func (app *application) export(w http.ResponseWriter, r *http.Request) {
	now := app.now()
	doc := export.Build(currentWorkspace(r).Store.Snapshot(), now)
	data, err := export.Encode(doc)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "encode export"))
		return
	}
	filename := export.Filename(now)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)

	app.metrics.Exported()
	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "data exported", slog.String("filename", filename),
		slog.Int("ideas", len(doc.Ideas)), slog.Int("feedback", len(doc.Feedback)))
}
