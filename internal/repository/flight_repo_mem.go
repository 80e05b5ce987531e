package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vkarpenko/flightdesk/internal/domain"
)

// Repository sentinels. The store reports facts; the service decides which
// business error they become.
var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrDuplicateName  = errors.New("duplicate flight name")
)

type FlightRepository interface {
	List(ctx context.Context) []domain.Flight
	GetByID(ctx context.Context, id int64) (domain.Flight, bool)
	ExistsByName(ctx context.Context, name string, excludeID int64) bool
	Insert(ctx context.Context, f domain.Flight) (domain.Flight, error)
	Update(ctx context.Context, id int64, f domain.Flight) (domain.Flight, error)
	Delete(ctx context.Context, id int64) bool
}

// MemoryFlightRepository holds the canonical flight collection for the
// process lifetime. Ids are sequential from 1 and never reused, even after
// deletion. All mutations and the duplicate-name check run under one lock so
// two concurrent creates with the same name cannot both pass the check.
type MemoryFlightRepository struct {
	mu      sync.RWMutex
	flights map[int64]domain.Flight
	nextID  int64
}

// NewFlightRepository builds a store pre-populated with ten sample flights,
// inserted through Insert so they receive ids 1..10.
func NewFlightRepository() *MemoryFlightRepository {
	r := &MemoryFlightRepository{
		flights: make(map[int64]domain.Flight),
		nextID:  1,
	}

	ctx := context.Background()
	seed := []domain.Flight{
		{FlightName: "H001-V", Company: "Iberia", DeparturePlace: "Madrid", ArrivalPlace: "Buenos Aires", DepartureDate: date(2025, 3, 10), ArrivalDate: date(2025, 3, 11)},
		{FlightName: "T100-V", Company: "Turkish", DeparturePlace: "Istanbul", ArrivalPlace: "New York", DepartureDate: date(2025, 3, 10), ArrivalDate: date(2025, 3, 11)},
		{FlightName: "E777-V", Company: "Emirates", DeparturePlace: "Dubai", ArrivalPlace: "Madrid", DepartureDate: date(2025, 3, 12), ArrivalDate: date(2025, 3, 12)},
		{FlightName: "A320-V", Company: "Vueling", DeparturePlace: "Barcelona", ArrivalPlace: "Paris", DepartureDate: date(2025, 3, 9), ArrivalDate: date(2025, 3, 9)},
		{FlightName: "AF500-V", Company: "Air France", DeparturePlace: "Paris", ArrivalPlace: "Rome", DepartureDate: date(2025, 3, 8), ArrivalDate: date(2025, 3, 8)},
		{FlightName: "LH220-V", Company: "Lufthansa", DeparturePlace: "Frankfurt", ArrivalPlace: "Lisbon", DepartureDate: date(2025, 3, 15), ArrivalDate: date(2025, 3, 15)},
		{FlightName: "AZ900-V", Company: "ITA Airways", DeparturePlace: "Rome", ArrivalPlace: "Istanbul", DepartureDate: date(2025, 3, 11), ArrivalDate: date(2025, 3, 11)},
		{FlightName: "UX010-V", Company: "Air Europa", DeparturePlace: "Madrid", ArrivalPlace: "New York", DepartureDate: date(2025, 3, 14), ArrivalDate: date(2025, 3, 15)},
		{FlightName: "IB999-V", Company: "Iberia", DeparturePlace: "Madrid", ArrivalPlace: "London", DepartureDate: date(2025, 3, 7), ArrivalDate: date(2025, 3, 7)},
		{FlightName: "TK333-V", Company: "Turkish", DeparturePlace: "Istanbul", ArrivalPlace: "Berlin", DepartureDate: date(2025, 3, 13), ArrivalDate: date(2025, 3, 13)},
	}
	for _, f := range seed {
		_, _ = r.Insert(ctx, f)
	}
	return r
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// List returns a copy of every stored flight. Order is not part of the
// contract; the service always re-sorts.
func (r *MemoryFlightRepository) List(ctx context.Context) []domain.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		flights = append(flights, f)
	}
	return flights
}

func (r *MemoryFlightRepository) GetByID(ctx context.Context, id int64) (domain.Flight, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flights[id]
	return f, ok
}

// ExistsByName reports whether any stored flight has the given name,
// case-insensitively, ignoring the flight with excludeID. Pass 0 to exclude
// nothing (ids start at 1). A blank name never matches.
func (r *MemoryFlightRepository) ExistsByName(ctx context.Context, name string, excludeID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.existsByNameLocked(name, excludeID)
}

func (r *MemoryFlightRepository) existsByNameLocked(name string, excludeID int64) bool {
	if name == "" {
		return false
	}
	for _, f := range r.flights {
		if f.ID != excludeID && strings.EqualFold(f.FlightName, name) {
			return true
		}
	}
	return false
}

// Insert assigns the next sequential id and stores the flight. The name
// check happens under the same lock as the write, so concurrent inserts of
// the same name cannot both succeed.
func (r *MemoryFlightRepository) Insert(ctx context.Context, f domain.Flight) (domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.existsByNameLocked(f.FlightName, 0) {
		return domain.Flight{}, ErrDuplicateName
	}

	f.ID = r.nextID
	r.nextID++
	r.flights[f.ID] = f
	return f, nil
}

// Update overwrites every mutable field of the stored flight, keeping its id.
func (r *MemoryFlightRepository) Update(ctx context.Context, id int64, f domain.Flight) (domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[id]; !ok {
		return domain.Flight{}, ErrFlightNotFound
	}
	if r.existsByNameLocked(f.FlightName, id) {
		return domain.Flight{}, ErrDuplicateName
	}

	f.ID = id
	r.flights[id] = f
	return f, nil
}

func (r *MemoryFlightRepository) Delete(ctx context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[id]; !ok {
		return false
	}
	delete(r.flights, id)
	return true
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
