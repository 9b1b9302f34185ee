package domain

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// MaxCoordinateX is the largest accepted Coordinates.X.
const MaxCoordinateX = 516

// MovieGenre enumerates accepted genres.
type MovieGenre string

const (
	GenreAction   MovieGenre = "ACTION"
	GenreWestern  MovieGenre = "WESTERN"
	GenreComedy   MovieGenre = "COMEDY"
	GenreThriller MovieGenre = "THRILLER"
	GenreFantasy  MovieGenre = "FANTASY"
)

// MovieGenres lists genres in declaration order.
var MovieGenres = []MovieGenre{GenreAction, GenreWestern, GenreComedy, GenreThriller, GenreFantasy}

// MpaaRating enumerates accepted ratings.
type MpaaRating string

const (
	RatingG    MpaaRating = "G"
	RatingPG13 MpaaRating = "PG_13"
	RatingR    MpaaRating = "R"
)

// MpaaRatings lists ratings in declaration order.
var MpaaRatings = []MpaaRating{RatingG, RatingPG13, RatingR}

// Color enumerates eye colors.
type Color string

const (
	ColorGreen  Color = "GREEN"
	ColorRed    Color = "RED"
	ColorBlue   Color = "BLUE"
	ColorOrange Color = "ORANGE"
)

// Colors lists colors in declaration order.
var Colors = []Color{ColorGreen, ColorRed, ColorBlue, ColorOrange}

// Date is a calendar day serialized as 2006-01-02.
type Date struct {
	time.Time
}

// Today returns the current local date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Format(DateFormat)
}

// Equal reports whether both dates denote the same instant.
func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(DateFormat, raw, time.Local)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

// Coordinates is the position of a movie.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Validate returns human-readable violations.
func (c Coordinates) Validate() []string {
	var errs []string
	if c.X > MaxCoordinateX {
		errs = append(errs, fmt.Sprintf("coordinates.x must not exceed %d", MaxCoordinateX))
	}
	return errs
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates{x=%d, y=%d}", c.X, c.Y)
}

// Location is where a person lives.
type Location struct {
	X    float64 `json:"x"`
	Y    int64   `json:"y"`
	Z    *int64  `json:"z"`
	Name *string `json:"name"`
}

// Validate returns human-readable violations.
func (l Location) Validate() []string {
	var errs []string
	if l.Z == nil {
		errs = append(errs, "location.z must not be null")
	}
	if l.Name == nil {
		errs = append(errs, "location.name must not be null")
	}
	return errs
}

// String implements fmt.Stringer.
func (l Location) String() string {
	z, name := "null", "null"
	if l.Z != nil {
		z = fmt.Sprint(*l.Z)
	}
	if l.Name != nil {
		name = "'" + *l.Name + "'"
	}
	return fmt.Sprintf("Location{x=%g, y=%d, z=%s, name=%s}", l.X, l.Y, z, name)
}

// Person is a movie screenwriter.
type Person struct {
	Name     string    `json:"name"`
	Height   float32   `json:"height"`
	EyeColor Color     `json:"eyeColor"`
	Location *Location `json:"location"`
}

// Validate returns human-readable violations.
func (p Person) Validate() []string {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "person.name must not be empty")
	}
	if p.Height <= 0 {
		errs = append(errs, "person.height must be greater than 0")
	}
	if p.EyeColor == "" {
		errs = append(errs, "person.eyeColor must not be null")
	}
	if p.Location == nil {
		errs = append(errs, "person.location must not be null")
	} else {
		errs = append(errs, p.Location.Validate()...)
	}
	return errs
}

// Compare orders persons by height, then name, then eye color.
func (p Person) Compare(o Person) int {
	if c := cmp.Compare(p.Height, o.Height); c != 0 {
		return c
	}
	if c := strings.Compare(p.Name, o.Name); c != 0 {
		return c
	}
	if p.EyeColor != "" && o.EyeColor != "" {
		return cmp.Compare(colorOrdinal(p.EyeColor), colorOrdinal(o.EyeColor))
	}
	return 0
}

// String implements fmt.Stringer.
func (p Person) String() string {
	loc := "null"
	if p.Location != nil {
		loc = p.Location.String()
	}
	return fmt.Sprintf("Person{name='%s', height=%g, eyeColor=%s, location=%s}", p.Name, p.Height, p.EyeColor, loc)
}

// Movie is the record stored in the collection.
type Movie struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Coordinates  *Coordinates `json:"coordinates"`
	CreationDate Date         `json:"creationDate"`
	OscarsCount  int64        `json:"oscarsCount"`
	Genre        MovieGenre   `json:"genre"`
	MpaaRating   MpaaRating   `json:"mpaaRating"`
	Screenwriter *Person      `json:"screenwriter"`
}

// Validate returns human-readable violations; an empty slice means valid.
func (m Movie) Validate() []string {
	var errs []string
	if m.Name == "" {
		errs = append(errs, "movie.name must not be empty")
	}
	if m.Coordinates == nil {
		errs = append(errs, "movie.coordinates must not be null")
	} else {
		errs = append(errs, m.Coordinates.Validate()...)
	}
	if m.Genre == "" {
		errs = append(errs, "movie.genre must not be null")
	}
	if m.MpaaRating == "" {
		errs = append(errs, "movie.mpaaRating must not be null")
	}
	if m.OscarsCount <= 0 {
		errs = append(errs, "movie.oscarsCount must be greater than 0")
	}
	if m.Screenwriter != nil {
		errs = append(errs, m.Screenwriter.Validate()...)
	}
	return errs
}

// Compare orders movies by oscars count, then name, then id.
func (m Movie) Compare(o Movie) int {
	if c := cmp.Compare(m.OscarsCount, o.OscarsCount); c != 0 {
		return c
	}
	if c := strings.Compare(m.Name, o.Name); c != 0 {
		return c
	}
	return cmp.Compare(m.ID, o.ID)
}

// String implements fmt.Stringer.
func (m Movie) String() string {
	coords, writer := "null", "null"
	if m.Coordinates != nil {
		coords = m.Coordinates.String()
	}
	if m.Screenwriter != nil {
		writer = m.Screenwriter.String()
	}
	return fmt.Sprintf("Movie{id=%d, name='%s', coordinates=%s, creationDate=%s, oscarsCount=%d, genre=%s, mpaaRating=%s, screenwriter=%s}",
		m.ID, m.Name, coords, m.CreationDate, m.OscarsCount, m.Genre, m.MpaaRating, writer)
}

func colorOrdinal(c Color) int {
	for i, v := range Colors {
		if v == c {
			return i
		}
	}
	return len(Colors)
}
