// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core (the
// execution loop, the commands and the collection) and external adapters
// (console streams, JSON files, the SQLite journal). Following the Ports and
// Adapters pattern, the application depends on these abstractions only.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Console, Command, DumpStore)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"io"
	"iter"

	"github.com/langel/movieshell/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.movieshell/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// LineSource yields raw input lines from one stream.
type LineSource interface {
	// ReadLine returns the next line without its terminator. It returns
	// domain.ErrEndOfInput once the stream is exhausted.
	ReadLine() (string, error)
	// HasMore reports whether another line is available.
	HasMore() bool
}

// Console multiplexes reads between the interactive stream and the script
// currently being replayed, and carries operator-facing output.
type Console interface {
	LineSource

	// SelectFile routes subsequent reads to src until SelectConsole.
	SelectFile(src LineSource)
	// SelectConsole routes subsequent reads back to the interactive stream.
	SelectConsole()
	// Active returns the source reads currently come from.
	Active() LineSource
	// Wrap turns a script stream into a LineSource usable with SelectFile.
	Wrap(r io.Reader) LineSource

	Prompt()
	PromptString() string

	Print(a ...any)
	Println(a ...any)
	PrintError(a ...any)
}

// Command is one operator command.
type Command interface {
	Name() string
	Usage() string
	Description() string
	Kind() domain.CommandKind
	Apply(argument string) domain.ExecutionResult
}

// CommandLookup resolves command names for the execution loop and help.
type CommandLookup interface {
	Lookup(name string) (Command, bool)
	All() iter.Seq[Command]
}

// DumpStore reads and writes the persisted collection.
type DumpStore interface {
	Read(ctx context.Context) ([]domain.Movie, error)
	Write(ctx context.Context, movies []domain.Movie) error
	Path() string
}

// HistoryRepository journals dispatched command lines.
type HistoryRepository interface {
	Save(record domain.HistoryRecord) error
	Records(limit int, sessionID string) ([]domain.HistoryRecord, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
