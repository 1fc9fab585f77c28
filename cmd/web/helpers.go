package main

import (
	"github.com/myrjola/ideacoach/internal/errors"
	"log/slog"
	"net/http"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
		slog.String("method", method), slog.String("uri", uri), slog.Any("formdata", r.PostForm))
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

// isHTMX reports whether the request was issued by htmx and expects a fragment instead of a full page.
func (app *application) isHTMX(w http.ResponseWriter, r *http.Request) bool {
	return app.htmx.NewHandler(w, r).IsHxRequest()
}

// redirect sends the browser to url. htmx requests get a client-side redirect instead of one that htmx would follow
// and swap into the page.
func (app *application) redirect(w http.ResponseWriter, r *http.Request, url string) {
	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		h.Redirect(url)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
