package view

import (
	"testing"

	"github.com/ejacobg/moviesapp/internal/data"
)

func TestBuildYearControls_Ascending(t *testing.T) {
	controls := BuildYearControls([]data.Movie{{Year: 2001}, {Year: 1999}, {Year: 2005}})
	want := []data.Year{1999, 2001, 2005}
	if len(controls) != len(want) {
		t.Fatalf("got %d controls", len(controls))
	}
	for i, c := range controls {
		if c.Year != want[i] {
			t.Fatalf("control %d: got %d, want %d", i, c.Year, want[i])
		}
	}
	if id := controls[0].ID(); id != "year-1999" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestBuildGenreControls_Labels(t *testing.T) {
	controls := BuildGenreControls([]data.Movie{{Genre: "Action"}, {Genre: "Drama"}, {Genre: "Action"}})
	if len(controls) != 2 {
		t.Fatalf("got %d controls", len(controls))
	}
	if controls[0].Genre != "Action" || controls[0].Count != 2 {
		t.Fatalf("unexpected first control: %+v", controls[0])
	}
	if got := controls[0].Label(); got != "Action (2)" {
		t.Fatalf("label = %q", got)
	}
	if got := controls[1].Label(); got != "Drama (1)" {
		t.Fatalf("label = %q", got)
	}
}
