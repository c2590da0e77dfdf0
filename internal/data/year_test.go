package data

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestYear_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Year
		wantErr bool
	}{
		{`1999`, 1999, false},
		{`"2001"`, 2001, false},
		{`" 2005 "`, 2005, false},
		{`"nineteen"`, 0, true},
		{`1999.5`, 0, true},
		{`"1999`, 0, true},
	}
	for _, tt := range tests {
		var y Year
		err := y.UnmarshalJSON([]byte(tt.in))
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidYearFormat) {
				t.Fatalf("%s: expected ErrInvalidYearFormat, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if y != tt.want {
			t.Fatalf("%s: got %d, want %d", tt.in, y, tt.want)
		}
	}
}

func TestYear_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Movie{ID: 1, Title: "Heat", Genre: "Crime", Year: 1995})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":1,"title":"Heat","genre":"Crime","year":1995}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}

func TestParseYear(t *testing.T) {
	if y, err := ParseYear("2001"); err != nil || y != 2001 {
		t.Fatalf("got %d, %v", y, err)
	}
	for _, in := range []string{"", "abc", "99999999999"} {
		if _, err := ParseYear(in); !errors.Is(err, ErrInvalidYearFormat) {
			t.Fatalf("%q: expected ErrInvalidYearFormat, got %v", in, err)
		}
	}
}
