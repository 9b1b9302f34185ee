// Package asker builds movie records field by field from console input.
// Because it reads through the console multiplexer, scripts can feed the
// forms exactly as an operator would.
package asker

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

const abortWord = "exit"

// Asker prompts for records on a console.
type Asker struct {
	console ports.Console
}

// New returns an asker reading from console.
func New(console ports.Console) *Asker {
	return &Asker{console: console}
}

// AskMovie reads a movie with the given id. It returns domain.ErrInputAborted
// when the operator types exit and a read error when input runs out.
func (a *Asker) AskMovie(id int64) (domain.Movie, error) {
	a.console.Println("\n=== New movie ===")
	name, err := a.askString("Movie name")
	if err != nil {
		return domain.Movie{}, err
	}
	oscars, err := ask(a, "Oscars count", parseInt64(1, math.MaxInt64))
	if err != nil {
		return domain.Movie{}, err
	}
	coords, err := a.askCoordinates()
	if err != nil {
		return domain.Movie{}, err
	}
	genre, err := ask(a, "Genre ("+domain.EnumNames(domain.MovieGenres)+")", domain.ParseMovieGenre)
	if err != nil {
		return domain.Movie{}, err
	}
	rating, err := ask(a, "MPAA rating ("+domain.EnumNames(domain.MpaaRatings)+")", domain.ParseMpaaRating)
	if err != nil {
		return domain.Movie{}, err
	}
	writer, err := a.AskPerson()
	if err != nil {
		return domain.Movie{}, err
	}
	return domain.Movie{
		ID:           id,
		Name:         name,
		Coordinates:  &coords,
		CreationDate: domain.Today(),
		OscarsCount:  oscars,
		Genre:        genre,
		MpaaRating:   rating,
		Screenwriter: &writer,
	}, nil
}

// AskPerson reads a screenwriter.
func (a *Asker) AskPerson() (domain.Person, error) {
	a.console.Println("\n--- Screenwriter ---")
	name, err := a.askString("Screenwriter name")
	if err != nil {
		return domain.Person{}, err
	}
	height, err := ask(a, "Screenwriter height", parseFloat32(0, math.MaxFloat32))
	if err != nil {
		return domain.Person{}, err
	}
	eyes, err := ask(a, "Eye color ("+domain.EnumNames(domain.Colors)+")", domain.ParseColor)
	if err != nil {
		return domain.Person{}, err
	}
	loc, err := a.askLocation()
	if err != nil {
		return domain.Person{}, err
	}
	return domain.Person{Name: name, Height: height, EyeColor: eyes, Location: &loc}, nil
}

func (a *Asker) askCoordinates() (domain.Coordinates, error) {
	a.console.Println("\n--- Coordinates ---")
	x, err := ask(a, "Coordinate X", parseInt(math.MinInt32, domain.MaxCoordinateX))
	if err != nil {
		return domain.Coordinates{}, err
	}
	y, err := ask(a, "Coordinate Y", parseInt(math.MinInt32, math.MaxInt32))
	if err != nil {
		return domain.Coordinates{}, err
	}
	return domain.Coordinates{X: x, Y: y}, nil
}

func (a *Asker) askLocation() (domain.Location, error) {
	a.console.Println("\n--- Location ---")
	x, err := ask(a, "Coordinate X", parseFloat64)
	if err != nil {
		return domain.Location{}, err
	}
	y, err := ask(a, "Coordinate Y", parseInt64(math.MinInt64, math.MaxInt64))
	if err != nil {
		return domain.Location{}, err
	}
	z, err := ask(a, "Coordinate Z", parseInt64(math.MinInt64, math.MaxInt64))
	if err != nil {
		return domain.Location{}, err
	}
	name, err := a.askString("Place name")
	if err != nil {
		return domain.Location{}, err
	}
	return domain.Location{X: x, Y: y, Z: &z, Name: &name}, nil
}

func (a *Asker) askString(prompt string) (string, error) {
	return ask(a, prompt, func(s string) (string, error) { return s, nil })
}

// ask reprompts until parse accepts a non-empty answer.
func ask[T any](a *Asker, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		a.console.Print(prompt + ": ")
		raw, err := a.console.ReadLine()
		if err != nil {
			return zero, err
		}
		input := strings.TrimSpace(raw)
		if strings.EqualFold(input, abortWord) {
			return zero, domain.ErrInputAborted
		}
		if input == "" {
			a.console.PrintError("enter a non-empty value")
			continue
		}
		value, err := parse(input)
		if err != nil {
			a.console.PrintError(err.Error())
			continue
		}
		return value, nil
	}
}

func parseInt(lo, hi int) func(string) (int, error) {
	return func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("enter a valid integer")
		}
		if v < lo || v > hi {
			return 0, fmt.Errorf("value must be in range [%d, %d]", lo, hi)
		}
		return v, nil
	}
}

func parseInt64(lo, hi int64) func(string) (int64, error) {
	return func(s string) (int64, error) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("enter a valid integer")
		}
		if v < lo || v > hi {
			return 0, fmt.Errorf("value must be in range [%d, %d]", lo, hi)
		}
		return v, nil
	}
}

func parseFloat32(lo, hi float32) func(string) (float32, error) {
	return func(s string) (float32, error) {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil || math.IsNaN(v) {
			return 0, fmt.Errorf("enter a valid number")
		}
		f := float32(v)
		if f < lo || f > hi {
			return 0, fmt.Errorf("value must be in range [%g, %g]", lo, hi)
		}
		return f, nil
	}
}

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("enter a valid number")
	}
	return v, nil
}
