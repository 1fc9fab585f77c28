package main

import (
	"bytes"
	"fmt"
	"github.com/myrjola/ideacoach/internal/contexthelpers"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/ui"
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to directory inside ui/templates/pages folder. It has to include a template named "page".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	patterns := []string{
		"templates/base.gohtml",
		fmt.Sprintf("templates/pages/%s/*.gohtml", pageName),
	}

	// We need to initialize the FuncMap before parsing the files. These will be overridden in the render function.
	t, err := template.New(pageName).Funcs(template.FuncMap{
		"nonce": func() string {
			panic("not implemented")
		},
		"csrf": func() string {
			panic("not implemented")
		},
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"clock": func(t time.Time) string {
			return t.Format(time.Kitchen)
		},
	}).ParseFS(ui.Files, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "parse page template files", slog.String("page", pageName))
	}
	return t, nil
}

// render executes the template named name of page pageName. Use "base" as name for a full HTML document and a
// fragment name for htmx swaps.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, pageName, name string, data any) {
	var (
		err error
		t   *template.Template
	)

	if t, err = app.pageTemplate(pageName); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", pageName)))
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=\"%s\"", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // we trust the nonce since it's not provided by user.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // we trust the csrf since it's not provided by user.
		},
	})
	if err = t.ExecuteTemplate(buf, name, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template",
			slog.String("template", pageName), slog.String("name", name)))
		return
	}

	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}

// renderApp renders the signed in application shell for the workspace of the request. htmx requests get only the
// shell fragment that replaces the #app element.
func (app *application) renderApp(w http.ResponseWriter, r *http.Request, status int, mutate func(*appTemplateData)) {
	ws := currentWorkspace(r)
	page, transitioning := ws.Nav.State()
	data := newAppTemplateData(r, ws.Store.Snapshot(), page, transitioning, ws.PendingReplies())
	if mutate != nil {
		mutate(&data)
	}

	name := "base"
	if app.isHTMX(w, r) {
		name = "shell"
	}
	app.render(w, r, status, "app", name, data)
}
