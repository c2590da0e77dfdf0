package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ejacobg/moviesapp/internal/catalog"
	"github.com/ejacobg/moviesapp/internal/config"
	"github.com/ejacobg/moviesapp/internal/data"
	"github.com/ejacobg/moviesapp/internal/jsonlog"
	"github.com/ejacobg/moviesapp/internal/view"
)

var testMovies = []data.Movie{
	{ID: 1, Title: "Matrix", Genre: "Sci-Fi", Year: 1999, Image: "https://images.example.org/matrix.jpg"},
	{ID: 2, Title: "Amelie", Genre: "Drama", Year: 2001, Image: "https://images.example.org/amelie.jpg"},
	{ID: 3, Title: "Heat", Genre: "Crime", Year: 1995},
	{ID: 4, Title: "Whiplash", Genre: "Drama", Year: 2014},
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	store, err := data.NewStore(testMovies)
	if err != nil {
		t.Fatal(err)
	}
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{Env: "testing"}
	cfg.Limiter.Enabled = false

	return &application{
		config:   cfg,
		logger:   jsonlog.New(io.Discard, jsonlog.LevelOff),
		store:    store,
		catalog:  catalog.New(store, view.NewTable()),
		renderer: renderer,
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func parseHTML(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func activeIDs(doc *goquery.Document) []string {
	var ids []string
	doc.Find("#movies-table tbody tr.active").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-id")
		ids = append(ids, id)
	})
	return ids
}
