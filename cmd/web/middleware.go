package main

import (
	"fmt"
	"github.com/justinas/nosurf"
	"github.com/myrjola/ideacoach/internal/contexthelpers"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/logging"
	"github.com/myrjola/ideacoach/internal/random"
	"log/slog"
	"net/http"
)

const cspNonceLength = 24

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce, err := random.Letters(cspNonceLength)
		if err != nil {
			panic(errors.Wrap(err, "generate CSP nonce"))
		}
		r = contexthelpers.SetCSPNonce(r, nonce)

		w.Header().Set("Content-Security-Policy",
			fmt.Sprintf(`script-src 'nonce-%s' 'strict-dynamic' https: http:;
				   object-src 'none';
				   base-uri 'none';`, nonce))

		w.Header().Set("Referrer-Policy", "origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-XSS-Protection", "0")

		next.ServeHTTP(w, r)
	})
}

func cacheForeverHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")

		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			proto  = r.Proto
			method = r.Method
			uri    = r.URL.RequestURI()
		)

		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "received request",
			slog.String("proto", proto), slog.String("method", method), slog.String("uri", uri))

		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, r, errors.New(fmt.Sprintf("panic: %v", err)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// workspace loads the workspace of the session into the request context. A session without a workspace, or with
// one that has been evicted, gets a fresh workspace.
func (app *application) workspace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := app.sessionManager.GetString(ctx, workspaceIDSessionKey)
		ws, created := app.workspaces.GetOrCreate(id)
		if created {
			app.sessionManager.Put(ctx, workspaceIDSessionKey, ws.ID)
		}
		ctx = logging.WithAttrs(ctx, slog.String("workspaceID", ws.ID))
		if created {
			app.logger.LogAttrs(ctx, slog.LevelInfo, "created workspace", slog.String("previousID", id))
		}
		r = setWorkspace(r.WithContext(ctx), ws)

		if s := ws.Store.Snapshot(); s.Authenticated && s.User != nil {
			r = contexthelpers.AuthenticateContext(r, s.User.ID)
		}

		next.ServeHTTP(w, r)
	})
}

// requireAuthentication sends signed out users back to the login form. Log records of signed in requests carry the
// user ID.
func (app *application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if !contexthelpers.IsAuthenticated(ctx) {
			app.redirect(w, r, "/")
			return
		}
		ctx = logging.WithAttrs(ctx, slog.String("userID", contexthelpers.AuthenticatedUserID(ctx)))

		w.Header().Add("Cache-Control", "no-store")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func commonContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = contexthelpers.SetCSRFToken(r, nosurf.Token(r))
		next.ServeHTTP(w, r)
	})
}

// noSurf implements CSRF protection using https://github.com/justinas/nosurf
func noSurf(next http.Handler) http.Handler {
	csrfHandler := nosurf.New(next)
	csrfHandler.SetBaseCookie(http.Cookie{ //nolint:exhaustruct // defaults are fine for the rest
		HttpOnly: true,
		Path:     "/",
		Secure:   true,
	})

	return csrfHandler
}
