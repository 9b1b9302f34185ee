package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/pkg/logger"
)

type stubStore struct {
	movies  []domain.Movie
	err     error
	written []domain.Movie
}

func (s *stubStore) Read(context.Context) ([]domain.Movie, error) { return s.movies, s.err }

func (s *stubStore) Write(_ context.Context, movies []domain.Movie) error {
	s.written = append([]domain.Movie(nil), movies...)
	return s.err
}

func (s *stubStore) Path() string { return "stub.json" }

func movie(id int64, name string, oscars int64) domain.Movie {
	return domain.Movie{
		ID:          id,
		Name:        name,
		Coordinates: &domain.Coordinates{X: 1, Y: 1},
		OscarsCount: oscars,
		Genre:       domain.GenreComedy,
		MpaaRating:  domain.RatingG,
	}
}

func ids(movies []domain.Movie) []int64 {
	out := make([]int64, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func TestManagerLoadSortsAndAdvancesIDs(t *testing.T) {
	store := &stubStore{movies: []domain.Movie{movie(7, "b", 3), movie(2, "a", 1), movie(4, "c", 3)}}
	m := NewManager(store, logger.NewStd(false))

	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff([]int64{2, 7, 4}, ids(m.All())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if got := m.FreeID(); got != 8 {
		t.Fatalf("FreeID = %d, want 8", got)
	}
	if m.InitTime().IsZero() {
		t.Fatal("init time not recorded")
	}
}

func TestManagerLoadRejectsDuplicates(t *testing.T) {
	store := &stubStore{movies: []domain.Movie{movie(1, "a", 1), movie(1, "b", 2)}}
	m := NewManager(store, logger.NewStd(false))

	err := m.Load(context.Background())
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("collection should be discarded, has %d", m.Len())
	}
}

func TestManagerAddRemove(t *testing.T) {
	m := NewManager(&stubStore{}, logger.NewStd(false))

	if !m.Add(movie(m.FreeID(), "first", 5)) {
		t.Fatal("Add failed")
	}
	if m.Add(movie(1, "dup", 1)) {
		t.Fatal("Add must refuse a taken id")
	}
	if got := m.FreeID(); got != 2 {
		t.Fatalf("FreeID = %d, want 2", got)
	}
	m.Add(movie(2, "second", 1))
	if low, _ := m.Min(); low.ID != 2 {
		t.Fatalf("Min = %d, want 2", low.ID)
	}
	if high, _ := m.Max(); high.ID != 1 {
		t.Fatalf("Max = %d, want 1", high.ID)
	}
	if !m.Remove(1) || m.Remove(1) {
		t.Fatal("Remove must succeed once")
	}
	if _, ok := m.Get(2); !ok {
		t.Fatal("index lost after removal")
	}
}

func TestManagerRemoveIf(t *testing.T) {
	m := NewManager(&stubStore{}, logger.NewStd(false))
	for i := int64(1); i <= 4; i++ {
		m.Add(movie(i, "m", i))
	}
	removed := m.RemoveIf(func(x domain.Movie) bool { return x.OscarsCount < 3 })
	if removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}
	if diff := cmp.Diff([]int64{3, 4}, ids(m.All())); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestManagerSave(t *testing.T) {
	store := &stubStore{}
	m := NewManager(store, logger.NewStd(false))
	m.Add(movie(1, "only", 1))

	if err := m.Save(context.Background()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if len(store.written) != 1 || m.SaveTime().IsZero() {
		t.Fatalf("save not recorded: %+v", store.written)
	}

	store.err = errors.New("read-only")
	if err := m.Save(context.Background()); err == nil {
		t.Fatal("expected save error")
	}
}

func TestManagerString(t *testing.T) {
	m := NewManager(&stubStore{}, logger.NewStd(false))
	if m.String() != "The collection is empty!" {
		t.Fatalf("got %q", m.String())
	}
}
