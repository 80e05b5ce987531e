// Package dates is the single authority for the calendar date format used
// across query parameters, request bodies and responses.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/vkarpenko/flightdesk/internal/domain"
)

// Layout is the wire format for all date fields.
const Layout = "2006-01-02"

// Parse converts value to a date. Blank input is not an error: it returns
// the zero time so optional parameters stay optional. Malformed input fails
// with a bad-input error naming the field.
func Parse(value, field string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(Layout, trimmed)
	if err != nil {
		return time.Time{}, domain.BadInput(fmt.Sprintf("invalid format for %s, use YYYY-MM-DD", field))
	}
	return t, nil
}

// ValidateRange rejects a departure strictly after the arrival. Either date
// being absent is a no-op; required-ness is checked by the service.
func ValidateRange(departure, arrival time.Time) error {
	if !departure.IsZero() && !arrival.IsZero() && departure.After(arrival) {
		return domain.BadInput("departureDate cannot be after arrivalDate")
	}
	return nil
}
