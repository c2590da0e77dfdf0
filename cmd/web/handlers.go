package main

import (
	"errors"
	"net/http"

	"github.com/ejacobg/moviesapp/internal/catalog"
	"github.com/ejacobg/moviesapp/internal/data"
	"github.com/ejacobg/moviesapp/internal/metrics"
	"github.com/ejacobg/moviesapp/internal/validator"
)

func (app *application) pageHandler(w http.ResponseWriter, r *http.Request) {
	app.renderPage(w, r, http.StatusOK, app.catalog.Snapshot())
}

func (app *application) searchHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// The query is used as typed: no trimming, and an empty value matches every movie.
	res := app.catalog.Search(r.PostForm.Get("title"))
	metrics.RecordTrigger(string(res.Trigger), "ok", len(res.Matched))

	app.renderPage(w, r, http.StatusOK, res.Page)
}

func (app *application) yearFilterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res, err := app.catalog.FilterYear(r.PostForm.Get("year"))
	if err != nil {
		var inputErr *catalog.InputError
		if errors.As(err, &inputErr) {
			metrics.RecordTrigger(string(catalog.TriggerYear), "invalid", 0)
			app.renderPage(w, r, http.StatusUnprocessableEntity, res.Page)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}
	metrics.RecordTrigger(string(res.Trigger), "ok", len(res.Matched))

	app.renderPage(w, r, http.StatusOK, res.Page)
}

func (app *application) genreFilterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res := app.catalog.FilterGenres(r.PostForm["genre"])
	metrics.RecordTrigger(string(res.Trigger), "ok", len(res.Matched))

	app.renderPage(w, r, http.StatusOK, res.Page)
}

func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.Env,
			"version":     version,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listMoviesHandler applies at most one of the title, year or genres filters
// to the store. It never touches the highlighted rows of the page.
func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	var input data.Query

	v := validator.New()
	qs := r.URL.Query()

	if qs.Has(data.FilterTitle) {
		input.Title = app.readString(qs, data.FilterTitle, "")
		input.Filters = append(input.Filters, data.FilterTitle)
	}
	if qs.Has(data.FilterYear) {
		input.Year = app.readYear(qs, data.FilterYear, v)
		input.Filters = append(input.Filters, data.FilterYear)
	}
	if qs.Has(data.FilterGenres) {
		input.Genres = app.readCSV(qs, data.FilterGenres, nil)
		input.Filters = append(input.Filters, data.FilterGenres)
	}

	if data.ValidateQuery(v, input, app.store.Genres()); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	movies := data.Select(app.store.All(), input.Predicate())

	err := app.writeJSON(w, http.StatusOK, envelope{
		"movies": movies,
		"metadata": map[string]int{
			"total_records": app.store.Len(),
			"matched":       len(movies),
		},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.store.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"movie": movie}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// facetsHandler exposes the values the filter controls are built from.
func (app *application) facetsHandler(w http.ResponseWriter, r *http.Request) {
	movies := app.store.All()

	err := app.writeJSON(w, http.StatusOK, envelope{
		"years":  data.Years(movies),
		"genres": data.GenreCounts(movies),
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
