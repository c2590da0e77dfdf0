package view

import "github.com/ejacobg/moviesapp/internal/data"

// Row is the rendered form of one movie. Active marks a highlighted row.
type Row struct {
	ID     int64
	Movie  data.Movie
	Active bool
}

// Table holds one row per movie, keyed by movie ID.
type Table struct {
	rows  []*Row
	index map[int64]*Row
}

func NewTable() *Table {
	return &Table{index: make(map[int64]*Row)}
}

// Render replaces any previously rendered rows with one neutral row per
// movie, in the given order.
func (t *Table) Render(movies []data.Movie) {
	t.rows = make([]*Row, 0, len(movies))
	t.index = make(map[int64]*Row, len(movies))
	for _, m := range movies {
		row := &Row{ID: m.ID, Movie: m}
		t.rows = append(t.rows, row)
		t.index[m.ID] = row
	}
}

// Activate highlights the row bound to id. It reports false when no such row exists.
func (t *Table) Activate(id int64) bool {
	row, ok := t.index[id]
	if !ok {
		return false
	}
	row.Active = true
	return true
}

// ResetAll returns every row to the neutral state.
func (t *Table) ResetAll() {
	for _, row := range t.rows {
		row.Active = false
	}
}

// Rows returns a copy of the rows in render order.
func (t *Table) Rows() []Row {
	out := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, *row)
	}
	return out
}

// ActiveIDs lists the highlighted rows in render order.
func (t *Table) ActiveIDs() []int64 {
	var ids []int64
	for _, row := range t.rows {
		if row.Active {
			ids = append(ids, row.ID)
		}
	}
	return ids
}

func (t *Table) Len() int {
	return len(t.rows)
}
