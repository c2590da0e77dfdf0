// Package catalog owns the interactive state of the movies page: which rows
// are highlighted and which filter controls are selected. Every trigger
// resets the highlights before applying exactly one predicate.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/ejacobg/moviesapp/internal/data"
	"github.com/ejacobg/moviesapp/internal/validator"
	"github.com/ejacobg/moviesapp/internal/view"
)

type Trigger string

const (
	TriggerSearch Trigger = "search"
	TriggerYear   Trigger = "year"
	TriggerGenre  Trigger = "genre"
)

// Result records which rows a trigger highlighted. Page is the page state
// captured before the trigger released the controller.
type Result struct {
	Trigger Trigger
	Matched []int64
	Page    view.PageData
}

// InputError is returned when a trigger's form input fails validation. The
// rows are already reset when it is returned.
type InputError struct {
	Errors map[string]string
}

func (e *InputError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Errors[k])
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

// Controller serializes triggers; the HTTP server calls it from many goroutines.
type Controller struct {
	mu          sync.Mutex
	store       *data.Store
	table       *view.Table
	years       []view.YearControl
	genres      []view.GenreControl
	searchValue string
	last        Result
	errors      map[string]string
}

// New renders the table and builds the filter controls from the store.
func New(store *data.Store, table *view.Table) *Controller {
	movies := store.All()
	table.Render(movies)

	return &Controller{
		store:  store,
		table:  table,
		years:  view.BuildYearControls(movies),
		genres: view.BuildGenreControls(movies),
	}
}

// Search highlights every movie whose title contains query, then clears the
// search input.
func (c *Controller) Search(query string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	c.searchValue = query
	res := c.apply(TriggerSearch, data.TitlePredicate(c.searchValue))
	c.searchValue = ""
	res.Page = c.snapshot()
	return res
}

// FilterYear highlights the movies released in the selected year. raw is the
// value of the selected radio control, parsed to the record's numeric type
// before comparison.
func (c *Controller) FilterYear(raw string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	for i := range c.years {
		c.years[i].Checked = false
	}

	v := validator.New()
	v.Check(strings.TrimSpace(raw) != "", "year", "must be selected")

	var year data.Year
	if v.Valid() {
		var err error
		year, err = data.ParseYear(raw)
		if err != nil {
			v.AddError("year", "must be a valid year")
		}
	}

	if !v.Valid() {
		c.errors = v.Errors
		c.last = Result{Trigger: TriggerYear}
		return Result{Trigger: TriggerYear, Page: c.snapshot()}, &InputError{Errors: v.Errors}
	}

	for i := range c.years {
		c.years[i].Checked = c.years[i].Year == year
	}
	res := c.apply(TriggerYear, data.YearPredicate(year))
	res.Page = c.snapshot()
	return res, nil
}

// FilterGenres highlights the movies whose genre is one of the selected values.
func (c *Controller) FilterGenres(values []string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	for i := range c.genres {
		c.genres[i].Checked = validator.In(c.genres[i].Genre, values...)
	}
	res := c.apply(TriggerGenre, data.GenrePredicate(values))
	res.Page = c.snapshot()
	return res
}

// Snapshot returns a consistent copy of the page state.
func (c *Controller) Snapshot() view.PageData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// snapshot must be called with mu held.
func (c *Controller) snapshot() view.PageData {
	pd := view.PageData{
		Rows:        c.table.Rows(),
		Years:       append([]view.YearControl(nil), c.years...),
		Genres:      append([]view.GenreControl(nil), c.genres...),
		SearchValue: c.searchValue,
		Trigger:     string(c.last.Trigger),
		Matched:     len(c.last.Matched),
	}
	if len(c.errors) > 0 {
		pd.Errors = make(map[string]string, len(c.errors))
		for k, msg := range c.errors {
			pd.Errors[k] = msg
		}
	}
	return pd
}

// reset must be called with mu held.
func (c *Controller) reset() {
	c.table.ResetAll()
	c.errors = nil
}

// apply must be called with mu held, after reset.
func (c *Controller) apply(trigger Trigger, p data.Predicate) Result {
	matched := data.Select(c.store.All(), p)
	res := Result{Trigger: trigger, Matched: make([]int64, 0, len(matched))}
	for _, m := range matched {
		c.table.Activate(m.ID)
		res.Matched = append(res.Matched, m.ID)
	}
	c.last = res
	return res
}
