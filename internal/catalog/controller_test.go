package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/ejacobg/moviesapp/internal/data"
	"github.com/ejacobg/moviesapp/internal/view"
)

func newController(t *testing.T) (*Controller, *view.Table) {
	t.Helper()
	store, err := data.NewStore([]data.Movie{
		{ID: 1, Title: "Matrix", Genre: "Sci-Fi", Year: 1999},
		{ID: 2, Title: "Amelie", Genre: "Drama", Year: 2001},
	})
	if err != nil {
		t.Fatal(err)
	}
	table := view.NewTable()
	return New(store, table), table
}

func TestEndToEnd(t *testing.T) {
	c, table := newController(t)

	c.Search("ma")
	if got := table.ActiveIDs(); !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("search: got %v", got)
	}

	if _, err := c.FilterYear("2001"); err != nil {
		t.Fatal(err)
	}
	if got := table.ActiveIDs(); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("year: got %v", got)
	}

	c.FilterGenres([]string{"Drama"})
	if got := table.ActiveIDs(); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("genre: got %v", got)
	}
}

func TestSearch_IgnoresCase(t *testing.T) {
	c, table := newController(t)
	for _, q := range []string{"ma", "MA", "Matrix", "mATRIX"} {
		res := c.Search(q)
		if !reflect.DeepEqual(res.Matched, []int64{1}) || !reflect.DeepEqual(table.ActiveIDs(), []int64{1}) {
			t.Fatalf("%q: expected only Matrix, got %v", q, res.Matched)
		}
	}
}

func TestSearch_EmptyMatchesAll(t *testing.T) {
	c, table := newController(t)
	c.Search("")
	if got := table.ActiveIDs(); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("got %v", got)
	}
}

func TestSearch_IdempotentAndClearsInput(t *testing.T) {
	c, table := newController(t)
	first := c.Search("e")
	once := table.ActiveIDs()
	second := c.Search("e")
	if !reflect.DeepEqual(once, table.ActiveIDs()) || !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated search changed highlights: %v vs %v", once, table.ActiveIDs())
	}
	if pd := c.Snapshot(); pd.SearchValue != "" {
		t.Fatalf("search input not cleared: %q", pd.SearchValue)
	}
}

func TestTriggers_NoStaleHighlights(t *testing.T) {
	c, table := newController(t)
	c.Search("")
	c.FilterGenres([]string{"Sci-Fi"})
	if got := table.ActiveIDs(); !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("got %v", got)
	}
	c.FilterGenres(nil)
	if got := table.ActiveIDs(); len(got) != 0 {
		t.Fatalf("empty genre selection should leave all neutral: %v", got)
	}
}

func TestFilterYear_InvalidInput(t *testing.T) {
	c, table := newController(t)
	c.Search("")

	for _, raw := range []string{"", "nineteen"} {
		_, err := c.FilterYear(raw)
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("%q: expected InputError, got %v", raw, err)
		}
		if _, ok := inputErr.Errors["year"]; !ok {
			t.Fatalf("%q: expected year error, got %v", raw, inputErr.Errors)
		}
		if got := table.ActiveIDs(); len(got) != 0 {
			t.Fatalf("%q: rows should be reset, got %v", raw, got)
		}
		if pd := c.Snapshot(); pd.Errors["year"] == "" {
			t.Fatalf("%q: snapshot should carry the error", raw)
		}
	}
}

func TestSnapshot_ControlState(t *testing.T) {
	c, _ := newController(t)

	if _, err := c.FilterYear("1999"); err != nil {
		t.Fatal(err)
	}
	c.FilterGenres([]string{"Drama"})

	pd := c.Snapshot()
	if len(pd.Years) != 2 || pd.Years[0].Year != 1999 || pd.Years[1].Year != 2001 {
		t.Fatalf("unexpected year controls: %+v", pd.Years)
	}
	if !pd.Years[0].Checked || pd.Years[1].Checked {
		t.Fatalf("year selection should persist: %+v", pd.Years)
	}
	if pd.Genres[0].Checked || !pd.Genres[1].Checked {
		t.Fatalf("unexpected genre selection: %+v", pd.Genres)
	}
	if pd.Trigger != string(TriggerGenre) || pd.Matched != 1 {
		t.Fatalf("unexpected summary: %s %d", pd.Trigger, pd.Matched)
	}
	if pd.Errors != nil {
		t.Fatalf("unexpected errors: %v", pd.Errors)
	}

	pd.Years[0].Checked = false
	if !c.Snapshot().Years[0].Checked {
		t.Fatal("snapshot should be a copy")
	}
}

func TestConcurrentTriggers(t *testing.T) {
	c, table := newController(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); c.Search("Matrix") }()
		go func() { defer wg.Done(); _, _ = c.FilterYear("2001") }()
		go func() { defer wg.Done(); _ = c.Snapshot() }()
	}
	wg.Wait()

	// Whichever trigger ran last, exactly one row is highlighted.
	if got := table.ActiveIDs(); len(got) != 1 {
		t.Fatalf("expected a single highlighted row, got %v", got)
	}
}

func pageActiveIDs(pd view.PageData) []int64 {
	var ids []int64
	for _, r := range pd.Rows {
		if r.Active {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func TestTriggers_ReturnOwnPage(t *testing.T) {
	c, _ := newController(t)

	var wg sync.WaitGroup
	errs := make(chan string, 300)
	for i := 0; i < 100; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			res := c.Search("Matrix")
			if got := pageActiveIDs(res.Page); !reflect.DeepEqual(got, []int64{1}) || res.Page.Trigger != string(TriggerSearch) {
				errs <- fmt.Sprintf("search page: %v %s", got, res.Page.Trigger)
			}
		}()
		go func() {
			defer wg.Done()
			res := c.FilterGenres([]string{"Drama"})
			if got := pageActiveIDs(res.Page); !reflect.DeepEqual(got, []int64{2}) || res.Page.Trigger != string(TriggerGenre) {
				errs <- fmt.Sprintf("genre page: %v %s", got, res.Page.Trigger)
			}
		}()
		go func() {
			defer wg.Done()
			res, _ := c.FilterYear("")
			if got := pageActiveIDs(res.Page); len(got) != 0 || res.Page.Errors["year"] == "" {
				errs <- fmt.Sprintf("year page: %v %v", got, res.Page.Errors)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Fatal(msg)
	}
}
