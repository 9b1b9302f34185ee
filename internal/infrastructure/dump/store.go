// Package dump persists the movie collection as a pretty-printed JSON array.
package dump

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/langel/movieshell/assets"
	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

const schemaURL = "movies.schema.json"

var (
	// ErrNotFound is returned when the data file does not exist yet.
	ErrNotFound = errors.New("data file not found")
	// ErrMalformed wraps JSON syntax and schema violations.
	ErrMalformed = errors.New("data file is malformed")
)

// JSONStore reads and writes the collection file.
type JSONStore struct {
	path   string
	indent string
	schema *jsonschema.Schema
	logger ports.Logger
}

// NewJSONStore builds a store for path. The embedded schema is compiled when
// settings ask for validation.
func NewJSONStore(path string, settings domain.DumpSettings, logger ports.Logger) (*JSONStore, error) {
	if path == "" {
		return nil, errors.New("data file path is empty")
	}
	store := &JSONStore{
		path:   path,
		indent: strings.Repeat(" ", max(settings.Indent, 0)),
		logger: logger,
	}
	if settings.ValidateSchema {
		schema, err := compileSchema()
		if err != nil {
			return nil, fmt.Errorf("compile data schema: %w", err)
		}
		store.schema = schema
	}
	return store, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(assets.MoviesSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// Read implements ports.DumpStore. A blank file is an empty collection.
func (s *JSONStore) Read(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	data = bytes.TrimPrefix(data, []byte(string(domain.ByteOrderMark)))
	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug("data file is blank", map[string]interface{}{"path": s.path})
		return nil, nil
	}

	if s.schema != nil {
		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if err := s.schema.Validate(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	var movies []domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for _, m := range movies {
		if errs := m.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("%w: movie id=%d: %s", ErrMalformed, m.ID, strings.Join(errs, "; "))
		}
	}
	return movies, nil
}

// Write implements ports.DumpStore.
func (s *JSONStore) Write(ctx context.Context, movies []domain.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if movies == nil {
		movies = []domain.Movie{}
	}
	data, err := json.MarshalIndent(movies, "", s.indent)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, append(data, '\n'), domain.DataFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.logger.Debug("data file written", map[string]interface{}{"path": s.path, "size": len(movies)})
	return nil
}

// Path returns the data file path.
func (s *JSONStore) Path() string {
	return s.path
}

var _ ports.DumpStore = (*JSONStore)(nil)
