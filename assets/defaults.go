package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// MoviesSchemaJSON is the JSON Schema of the collection data file.
//
//go:embed defaults/movies.schema.json
var MoviesSchemaJSON []byte
