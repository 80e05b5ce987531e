package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarpenko/flightdesk/internal/domain"
)

func sample(name string) domain.Flight {
	return domain.Flight{
		FlightName:     name,
		Company:        "Acme",
		DeparturePlace: "A",
		ArrivalPlace:   "B",
		DepartureDate:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		ArrivalDate:    time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewFlightRepository_Seed(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	flights := repo.List(ctx)
	assert.Len(t, flights, 10)

	seen := make(map[int64]bool)
	for _, f := range flights {
		assert.GreaterOrEqual(t, f.ID, int64(1))
		assert.LessOrEqual(t, f.ID, int64(10))
		assert.False(t, seen[f.ID], "duplicate id %d", f.ID)
		seen[f.ID] = true
	}

	first, ok := repo.GetByID(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "H001-V", first.FlightName)
	assert.Equal(t, "Iberia", first.Company)
}

func TestInsert_SequentialIDs(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	a, err := repo.Insert(ctx, sample("X1"))
	require.NoError(t, err)
	b, err := repo.Insert(ctx, sample("X2"))
	require.NoError(t, err)

	assert.Equal(t, int64(11), a.ID)
	assert.Equal(t, int64(12), b.ID)
}

func TestInsert_IDsNeverReused(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	f, err := repo.Insert(ctx, sample("X1"))
	require.NoError(t, err)
	require.True(t, repo.Delete(ctx, f.ID))

	next, err := repo.Insert(ctx, sample("X2"))
	require.NoError(t, err)
	assert.Equal(t, f.ID+1, next.ID)
}

func TestInsert_DuplicateName(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	_, err := repo.Insert(ctx, sample("h001-v"))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestExistsByName(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	assert.True(t, repo.ExistsByName(ctx, "H001-V", 0))
	assert.True(t, repo.ExistsByName(ctx, "h001-v", 0))
	assert.False(t, repo.ExistsByName(ctx, "H001-V", 1), "own id is excluded")
	assert.False(t, repo.ExistsByName(ctx, "H001", 0), "prefix must not match")
	assert.False(t, repo.ExistsByName(ctx, "", 0))
}

func TestUpdate(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	f := sample("X1")
	updated, err := repo.Update(ctx, 1, f)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID, "id is preserved")
	assert.Equal(t, "X1", updated.FlightName)

	stored, ok := repo.GetByID(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "Acme", stored.Company)
}

func TestUpdate_KeepOwnName(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	f := sample("H001-V")
	_, err := repo.Update(ctx, 1, f)
	assert.NoError(t, err)
}

func TestUpdate_DuplicateName(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	f := sample("T100-V")
	_, err := repo.Update(ctx, 1, f)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	_, err := repo.Update(ctx, 999, sample("X1"))
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	assert.True(t, repo.Delete(ctx, 1))
	assert.False(t, repo.Delete(ctx, 1), "second delete misses")
	assert.False(t, repo.Delete(ctx, 999))

	_, ok := repo.GetByID(ctx, 1)
	assert.False(t, ok)
}

func TestGetByID_Miss(t *testing.T) {
	repo := NewFlightRepository()

	_, ok := repo.GetByID(context.Background(), 999)
	assert.False(t, ok)
}

// Two concurrent inserts with the same proposed name must not both pass the
// duplicate check. Run with -race.
func TestInsert_ConcurrentDuplicates(t *testing.T) {
	repo := NewFlightRepository()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(ctx, sample("RACE-1"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, dup int
	for err := range results {
		switch err {
		case nil:
			ok++
		case ErrDuplicateName:
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactly one insert wins")
	assert.Equal(t, workers-1, dup)
}
