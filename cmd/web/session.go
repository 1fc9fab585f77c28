package main

// workspaceIDSessionKey is the session key of the ID of the workspace holding the session's application state.
const workspaceIDSessionKey = "workspaceID"
