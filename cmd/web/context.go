package main

import (
	"context"
	"github.com/myrjola/ideacoach/internal/workspace"
	"net/http"
)

type contextKey string

const workspaceContextKey = contextKey("workspace")

func setWorkspace(r *http.Request, ws *workspace.Workspace) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), workspaceContextKey, ws))
}

// currentWorkspace returns the workspace loaded by the workspace middleware. Calling it from a handler that is not
// behind the middleware is a programming error and panics.
func currentWorkspace(r *http.Request) *workspace.Workspace {
	ws, ok := r.Context().Value(workspaceContextKey).(*workspace.Workspace)
	if !ok {
		panic("workspace missing from request context")
	}
	return ws
}
