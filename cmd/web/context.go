package main

import (
	"context"
	"net/http"
)

// It is recommended to use a custom type for our context keys.
type contextKey string

// We will use a predefined constant rather than using the literal value every time.
const requestIDContextKey = contextKey("request_id")

// contextSetRequestID returns a copy of the given request with the request ID attached to its context.
func (app *application) contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetRequestID extracts the request ID from the request's context, returning an empty string if none was set.
func (app *application) contextGetRequestID(r *http.Request) string {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}
