package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/langel/movieshell/internal/domain"
)

func validMovie(id int64) domain.Movie {
	z := int64(3)
	place := "Moscow"
	return domain.Movie{
		ID:           id,
		Name:         "Solaris",
		Coordinates:  &domain.Coordinates{X: 10, Y: 20},
		CreationDate: domain.Today(),
		OscarsCount:  2,
		Genre:        domain.GenreFantasy,
		MpaaRating:   domain.RatingPG13,
		Screenwriter: &domain.Person{
			Name:     "Tarkovsky",
			Height:   1.8,
			EyeColor: domain.ColorBlue,
			Location: &domain.Location{X: 1, Y: 2, Z: &z, Name: &place},
		},
	}
}

// TestMovie_Validate tests field validation rules
func TestMovie_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.Movie)
		wantErrs int
		contains string
	}{
		{name: "valid movie", mutate: func(*domain.Movie) {}, wantErrs: 0},
		{name: "empty name", mutate: func(m *domain.Movie) { m.Name = "" }, wantErrs: 1, contains: "movie.name"},
		{name: "x too large", mutate: func(m *domain.Movie) { m.Coordinates.X = 517 }, wantErrs: 1, contains: "516"},
		{name: "zero oscars", mutate: func(m *domain.Movie) { m.OscarsCount = 0 }, wantErrs: 1, contains: "oscarsCount"},
		{name: "missing genre and rating", mutate: func(m *domain.Movie) { m.Genre = ""; m.MpaaRating = "" }, wantErrs: 2},
		{name: "screenwriter without location", mutate: func(m *domain.Movie) { m.Screenwriter.Location = nil }, wantErrs: 1, contains: "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMovie(1)
			tt.mutate(&m)
			errs := m.Validate()
			if len(errs) != tt.wantErrs {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, tt.wantErrs)
			}
			if tt.contains != "" && !strings.Contains(strings.Join(errs, "\n"), tt.contains) {
				t.Errorf("errors %v do not mention %q", errs, tt.contains)
			}
		})
	}
}

func TestMovie_Compare(t *testing.T) {
	a := validMovie(1)
	b := validMovie(2)
	if a.Compare(b) >= 0 {
		t.Fatal("equal oscars and name must fall back to id")
	}
	b.OscarsCount = 1
	if a.Compare(b) <= 0 {
		t.Fatal("more oscars must sort after")
	}
	b.OscarsCount = a.OscarsCount
	b.Name = "Andrei Rublev"
	if a.Compare(b) <= 0 {
		t.Fatal("name must break oscar ties")
	}
}

func TestPerson_Compare(t *testing.T) {
	short := domain.Person{Name: "A", Height: 1.5, EyeColor: domain.ColorGreen}
	tall := domain.Person{Name: "A", Height: 1.9, EyeColor: domain.ColorGreen}
	if short.Compare(tall) >= 0 {
		t.Fatal("height must order persons")
	}
	red := domain.Person{Name: "A", Height: 1.5, EyeColor: domain.ColorRed}
	if short.Compare(red) >= 0 {
		t.Fatal("eye color ordinal must break ties")
	}
}

func TestMovieJSONDate(t *testing.T) {
	m := validMovie(4)
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"creationDate":"`+m.CreationDate.String()+`"`) {
		t.Fatalf("creation date not serialized as a day: %s", raw)
	}
	var back domain.Movie
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.CreationDate.String() != m.CreationDate.String() {
		t.Fatalf("date mismatch: %s vs %s", back.CreationDate, m.CreationDate)
	}
}

func TestParseEnums(t *testing.T) {
	if g, err := domain.ParseMovieGenre("western"); err != nil || g != domain.GenreWestern {
		t.Fatalf("ParseMovieGenre = %v, %v", g, err)
	}
	if _, err := domain.ParseMpaaRating("NC_17"); err == nil {
		t.Fatal("expected unknown rating error")
	}
	if c, err := domain.ParseColor(" Orange "); err != nil || c != domain.ColorOrange {
		t.Fatalf("ParseColor = %v, %v", c, err)
	}
}
