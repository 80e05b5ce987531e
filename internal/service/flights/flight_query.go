package flights

import (
	"sort"
	"strings"

	"github.com/vkarpenko/flightdesk/internal/domain"
)

// applyFilters keeps only the flights matching every active filter. Filters
// are conjunctive and the order of application does not change the result.
func (s *FlightService) applyFilters(flights []domain.Flight, q ListQuery) []domain.Flight {
	company := strings.TrimSpace(q.Company)
	arrivalPlace := strings.TrimSpace(q.ArrivalPlace)

	filtered := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if company != "" && !strings.EqualFold(f.Company, company) {
			continue
		}
		if arrivalPlace != "" && !strings.EqualFold(f.ArrivalPlace, arrivalPlace) {
			continue
		}
		if !q.DepartureDate.IsZero() && !q.DepartureDate.Equal(f.DepartureDate) {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}

// comparator resolves the sort key to a less function. Blank means the
// default order: departureDate ascending with ids breaking ties, so listing
// stays deterministic for same-date flights.
func (s *FlightService) comparator(sortBy string) (func(a, b domain.Flight) bool, error) {
	switch strings.TrimSpace(sortBy) {
	case "":
		return func(a, b domain.Flight) bool {
			if !a.DepartureDate.Equal(b.DepartureDate) {
				return a.DepartureDate.Before(b.DepartureDate)
			}
			return a.ID < b.ID
		}, nil
	case "departureDate":
		return func(a, b domain.Flight) bool {
			return a.DepartureDate.Before(b.DepartureDate)
		}, nil
	case "company":
		return func(a, b domain.Flight) bool {
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		}, nil
	case "arrivalPlace":
		return func(a, b domain.Flight) bool {
			return strings.ToLower(a.ArrivalPlace) < strings.ToLower(b.ArrivalPlace)
		}, nil
	}
	return nil, domain.BadInput("invalid sortBy, use company, arrivalPlace or departureDate")
}

func (s *FlightService) sortFlights(flights []domain.Flight, less func(a, b domain.Flight) bool) {
	sort.SliceStable(flights, func(i, j int) bool {
		return less(flights[i], flights[j])
	})
}
