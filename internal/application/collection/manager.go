// Package collection keeps the in-memory movie collection sorted and indexed
// by id, and persists it through a ports.DumpStore.
package collection

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

// ErrDuplicateID is returned by Load when two stored movies share an id.
var ErrDuplicateID = errors.New("duplicate movie id")

// Manager owns the collection. It is used from the single execution loop
// goroutine and is not safe for concurrent use.
type Manager struct {
	store  ports.DumpStore
	logger ports.Logger

	movies   []domain.Movie
	byID     map[int64]int
	nextID   int64
	initTime time.Time
	saveTime time.Time
}

// NewManager builds an empty manager persisting through store.
func NewManager(store ports.DumpStore, logger ports.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		byID:   make(map[int64]int),
		nextID: 1,
	}
}

// Load replaces the collection with the stored one. A stored collection
// with duplicate ids is discarded and ErrDuplicateID returned.
func (m *Manager) Load(ctx context.Context) error {
	movies, err := m.store.Read(ctx)
	m.initTime = time.Now()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}

	m.movies = m.movies[:0]
	clear(m.byID)
	seen := make(map[int64]struct{}, len(movies))
	for _, movie := range movies {
		if _, dup := seen[movie.ID]; dup {
			m.movies = nil
			clear(m.byID)
			return fmt.Errorf("%w: %d", ErrDuplicateID, movie.ID)
		}
		seen[movie.ID] = struct{}{}
		if movie.ID >= m.nextID {
			m.nextID = movie.ID
		}
		m.movies = append(m.movies, movie)
	}
	m.sort()
	m.logger.Info("collection loaded", map[string]interface{}{"path": m.store.Path(), "size": len(m.movies)})
	return nil
}

// Save writes the collection through the store.
func (m *Manager) Save(ctx context.Context) error {
	if err := m.store.Write(ctx, m.movies); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	m.saveTime = time.Now()
	m.logger.Info("collection saved", map[string]interface{}{"path": m.store.Path(), "size": len(m.movies)})
	return nil
}

// FreeID returns the smallest unused id at or after the allocation cursor.
func (m *Manager) FreeID() int64 {
	for {
		if _, taken := m.byID[m.nextID]; !taken {
			return m.nextID
		}
		if m.nextID == math.MaxInt64 {
			m.nextID = 1
			continue
		}
		m.nextID++
	}
}

// Get returns the movie with id.
func (m *Manager) Get(id int64) (domain.Movie, bool) {
	idx, ok := m.byID[id]
	if !ok {
		return domain.Movie{}, false
	}
	return m.movies[idx], true
}

// Add inserts movie unless its id is taken.
func (m *Manager) Add(movie domain.Movie) bool {
	if _, taken := m.byID[movie.ID]; taken {
		return false
	}
	m.movies = append(m.movies, movie)
	m.sort()
	return true
}

// Remove deletes the movie with id.
func (m *Manager) Remove(id int64) bool {
	idx, ok := m.byID[id]
	if !ok {
		return false
	}
	m.movies = slices.Delete(m.movies, idx, idx+1)
	m.sort()
	return true
}

// RemoveIf deletes every movie matching pred and returns how many went.
func (m *Manager) RemoveIf(pred func(domain.Movie) bool) int {
	before := len(m.movies)
	m.movies = slices.DeleteFunc(m.movies, pred)
	m.sort()
	return before - len(m.movies)
}

// Clear empties the collection.
func (m *Manager) Clear() {
	m.movies = nil
	clear(m.byID)
}

// All returns the movies in natural order. The slice is a copy.
func (m *Manager) All() []domain.Movie {
	return slices.Clone(m.movies)
}

// Len returns the collection size.
func (m *Manager) Len() int {
	return len(m.movies)
}

// Min returns the smallest movie in natural order.
func (m *Manager) Min() (domain.Movie, bool) {
	if len(m.movies) == 0 {
		return domain.Movie{}, false
	}
	return m.movies[0], true
}

// Max returns the largest movie in natural order.
func (m *Manager) Max() (domain.Movie, bool) {
	if len(m.movies) == 0 {
		return domain.Movie{}, false
	}
	return m.movies[len(m.movies)-1], true
}

// InitTime returns when the collection was last loaded.
func (m *Manager) InitTime() time.Time {
	return m.initTime
}

// SaveTime returns when the collection was last saved.
func (m *Manager) SaveTime() time.Time {
	return m.saveTime
}

// StorePath returns where the collection is persisted.
func (m *Manager) StorePath() string {
	return m.store.Path()
}

// String renders every movie separated by blank lines.
func (m *Manager) String() string {
	if len(m.movies) == 0 {
		return "The collection is empty!"
	}
	return Join(m.movies)
}

// Join renders movies separated by blank lines.
func Join(movies []domain.Movie) string {
	parts := make([]string, 0, len(movies))
	for _, movie := range movies {
		parts = append(parts, movie.String())
	}
	return strings.Join(parts, "\n\n")
}

func (m *Manager) sort() {
	slices.SortFunc(m.movies, func(a, b domain.Movie) int { return a.Compare(b) })
	clear(m.byID)
	for i, movie := range m.movies {
		m.byID[movie.ID] = i
	}
}
