// Package history journals dispatched command lines.
package history

import (
	"fmt"
	"path/filepath"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/pkg/filesystem"
	"github.com/langel/movieshell/internal/ports"
)

// Repository is a journal that may hold resources.
type Repository interface {
	ports.HistoryRepository
	Close() error
}

// New builds the repository selected by settings. An empty path resolves to
// ~/.movieshell/history/history.db (or history.jsonl).
func New(settings domain.HistorySettings) (Repository, error) {
	switch settings.Backend {
	case "", domain.HistoryBackendSQLite:
		return NewSQLiteStore(resolvePath(settings.Path, "history.db")), nil
	case domain.HistoryBackendFile:
		return closer{NewFileStore(resolvePath(settings.Path, "history.jsonl"))}, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", settings.Backend)
	}
}

func resolvePath(path, name string) string {
	if path != "" {
		return filesystem.ExpandPath(path)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".movieshell", "history", name)
}

// closer adapts stores without resources to Repository.
type closer struct {
	*FileStore
}

func (closer) Close() error { return nil }
