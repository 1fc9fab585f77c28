package main

import (
	"github.com/justinas/alice"
	"github.com/myrjola/ideacoach/ui"
	"io/fs"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(ui.Files, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", cacheForeverHeaders(http.StripPrefix("/static", http.FileServerFS(static))))

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.Handle("GET /metrics", app.metrics.Handler())

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, commonContext, app.workspace)
	authenticated := session.Append(app.requireAuthentication)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("POST /login", session.ThenFunc(app.login))
	mux.Handle("POST /logout", session.ThenFunc(app.logout))

	mux.Handle("POST /navigate", authenticated.ThenFunc(app.navigate))
	mux.Handle("GET /view", authenticated.ThenFunc(app.view))
	mux.Handle("POST /ideas", authenticated.ThenFunc(app.submitIdea))
	mux.Handle("POST /ideas/{ideaID}/select", authenticated.ThenFunc(app.selectIdea))
	mux.Handle("POST /chat", authenticated.ThenFunc(app.ask))
	mux.Handle("GET /chat/replies/{replyID}", authenticated.ThenFunc(app.chatReply))
	mux.Handle("POST /milestones/{milestoneID}/complete", authenticated.ThenFunc(app.completeMilestone))
	mux.Handle("POST /profile/edit", authenticated.ThenFunc(app.editProfile))
	mux.Handle("POST /profile/cancel", authenticated.ThenFunc(app.cancelProfileEdit))
	mux.Handle("POST /profile", authenticated.ThenFunc(app.saveProfile))
	mux.Handle("GET /export", authenticated.ThenFunc(app.export))

	common := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	return common.Then(timeoutHandler(mux, defaultTimeout))
}
