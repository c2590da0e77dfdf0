package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ejacobg/moviesapp/internal/data"
	"github.com/ejacobg/moviesapp/internal/validator"
	"github.com/ejacobg/moviesapp/internal/view"
	"github.com/goccy/go-json"
	"github.com/julienschmidt/httprouter"
)

// envelope wraps JSON responses in a named top-level key.
type envelope map[string]any

// readIDParam retrieves the "id" URL parameter from the request context.
func (app *application) readIDParam(r *http.Request) (int64, error) {
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}

	return id, nil
}

// writeJSON encodes data with a trailing newline and writes it with the given status and headers.
func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// readString returns a string value from the query string, or the provided default value if no matching key could be found.
func (app *application) readString(qs url.Values, key string, defaultValue string) string {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}
	return s
}

// readCSV splits a comma-separated query string value into a slice of trimmed elements.
func (app *application) readCSV(qs url.Values, key string, defaultValue []string) []string {
	csv := qs.Get(key)
	if csv == "" {
		return defaultValue
	}

	values := strings.Split(csv, ",")
	for i, value := range values {
		values[i] = strings.TrimSpace(value)
	}
	return values
}

// readYear parses a year from the query string, recording a validation error if it is malformed.
func (app *application) readYear(qs url.Values, key string, v *validator.Validator) data.Year {
	year, err := data.ParseYear(qs.Get(key))
	if err != nil {
		v.AddError(key, "must be an integer value")
		return 0
	}
	return year
}

// renderPage writes a catalog snapshot as an HTML page.
func (app *application) renderPage(w http.ResponseWriter, r *http.Request, status int, pd view.PageData) {
	var buf bytes.Buffer
	if err := app.renderer.Page(&buf, pd); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
