package main

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routes builds the handler chain. Background work started by the middleware
// stops when ctx is cancelled.
func (app *application) routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Page and filter triggers.
	router.HandlerFunc(http.MethodGet, "/", app.pageHandler)
	router.HandlerFunc(http.MethodPost, "/search", app.searchHandler)
	router.HandlerFunc(http.MethodPost, "/filter/year", app.yearFilterHandler)
	router.HandlerFunc(http.MethodPost, "/filter/genre", app.genreFilterHandler)

	// Read-only JSON API.
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/movies", app.listMoviesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/movies/:id", app.showMovieHandler)
	router.HandlerFunc(http.MethodGet, "/v1/facets", app.facetsHandler)

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	return app.recoverPanic(app.requestID(app.metrics(app.rateLimit(ctx, router))))
}
