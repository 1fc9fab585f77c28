package main

import (
	"bytes"
	"github.com/donseba/go-htmx"
	"github.com/myrjola/ideacoach/internal/contexthelpers"
	"github.com/myrjola/ideacoach/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func Test_application_requireAuthentication(t *testing.T) {
	var logs bytes.Buffer
	app := &application{ //nolint:exhaustruct // the middleware needs only these
		logger: testhelpers.NewLogger(&logs),
		htmx:   htmx.New(),
	}
	handler := app.requireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.logger.LogAttrs(r.Context(), slog.LevelInfo, "handled")
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("signed in", func(t *testing.T) {
		logs.Reset()
		r := contexthelpers.AuthenticateContext(httptest.NewRequest(http.MethodGet, "/view", nil), "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		require.Contains(t, logs.String(), "userID=user-1")
	})

	t.Run("signed out", func(t *testing.T) {
		logs.Reset()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))
		require.NotContains(t, logs.String(), "handled")
	})
}
