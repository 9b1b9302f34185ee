package domain

import (
	"fmt"
	"strings"
)

// ParseMovieGenre resolves a case-insensitive genre name.
func ParseMovieGenre(value string) (MovieGenre, error) {
	return parseEnum(value, MovieGenres)
}

// ParseMpaaRating resolves a case-insensitive rating name.
func ParseMpaaRating(value string) (MpaaRating, error) {
	return parseEnum(value, MpaaRatings)
}

// ParseColor resolves a case-insensitive color name.
func ParseColor(value string) (Color, error) {
	return parseEnum(value, Colors)
}

// EnumNames joins the values of an enumeration for prompts.
func EnumNames[T ~string](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

func parseEnum[T ~string](value string, values []T) (T, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	for _, v := range values {
		if string(v) == upper {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown value %q, expected one of %s", value, EnumNames(values))
}
