// Package flights holds the business rules for flight records: validation,
// duplicate detection, filter composition and sort selection. It raises
// typed domain errors; the HTTP layer maps them to status codes.
package flights

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vkarpenko/flightdesk/internal/dates"
	"github.com/vkarpenko/flightdesk/internal/domain"
	"github.com/vkarpenko/flightdesk/internal/repository"
)

// ListQuery carries the optional list filters and sort key, already parsed
// by the HTTP layer. A zero DepartureDate means the filter is off.
type ListQuery struct {
	Company       string
	ArrivalPlace  string
	DepartureDate time.Time
	SortBy        string
}

type FlightUseCase interface {
	List(ctx context.Context, q ListQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, f domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, id int64, f domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type FlightService struct {
	repo repository.FlightRepository
	log  zerolog.Logger
}

func NewFlightService(repo repository.FlightRepository, log zerolog.Logger) *FlightService {
	return &FlightService{repo: repo, log: log}
}

// List fetches every flight, applies the conjunctive filters and returns the
// result ordered by the requested sort key. The store is never mutated.
func (s *FlightService) List(ctx context.Context, q ListQuery) ([]domain.Flight, error) {
	less, err := s.comparator(q.SortBy)
	if err != nil {
		return nil, err
	}

	flights := s.applyFilters(s.repo.List(ctx), q)
	s.sortFlights(flights, less)

	s.log.Debug().
		Str("company", q.Company).
		Str("arrival_place", q.ArrivalPlace).
		Int("results", len(flights)).
		Msg("flights listed")

	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, ok := s.repo.GetByID(ctx, id)
	if !ok {
		return nil, domain.NotFound("flight not found")
	}
	return &f, nil
}

// Create validates the flight and inserts it; the store assigns the id and
// rejects duplicate names atomically.
func (s *FlightService) Create(ctx context.Context, f domain.Flight) (*domain.Flight, error) {
	if err := validate(f); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, f)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, domain.Conflict("flight already exists (flightName taken)")
		}
		return nil, err
	}

	s.log.Info().Int64("id", created.ID).Str("flight_name", created.FlightName).Msg("flight created")
	return &created, nil
}

// Update validates the new data and overwrites every mutable field of the
// existing flight. The flight may keep its own name; any other flight's
// name is a conflict.
func (s *FlightService) Update(ctx context.Context, id int64, f domain.Flight) (*domain.Flight, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, f)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFlightNotFound):
			return nil, domain.NotFound("flight not found")
		case errors.Is(err, repository.ErrDuplicateName):
			return nil, domain.Conflict("flightName already in use")
		}
		return nil, err
	}

	s.log.Info().Int64("id", id).Msg("flight updated")
	return &updated, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if !s.repo.Delete(ctx, id) {
		return domain.NotFound("flight not found or already removed")
	}
	s.log.Info().Int64("id", id).Msg("flight deleted")
	return nil
}

// validate applies the shared create/update rules: required strings must be
// non-blank, both dates must be present, and the range must be coherent.
func validate(f domain.Flight) error {
	if strings.TrimSpace(f.FlightName) == "" ||
		strings.TrimSpace(f.Company) == "" ||
		strings.TrimSpace(f.DeparturePlace) == "" ||
		strings.TrimSpace(f.ArrivalPlace) == "" ||
		f.DepartureDate.IsZero() ||
		f.ArrivalDate.IsZero() {
		return domain.BadInput("invalid flight data")
	}
	return dates.ValidateRange(f.DepartureDate, f.ArrivalDate)
}

var _ FlightUseCase = (*FlightService)(nil)
