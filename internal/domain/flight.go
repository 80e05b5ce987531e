package domain

import "time"

// Flight is one scheduled flight. Dates carry no time of day: they are
// normalized to midnight UTC by the parsing layer.
type Flight struct {
	ID             int64
	FlightName     string
	Company        string
	DeparturePlace string
	ArrivalPlace   string
	DepartureDate  time.Time
	ArrivalDate    time.Time
}

// DurationDays is the whole-day span between departure and arrival.
// It is derived on every call and never stored.
func (f Flight) DurationDays() int64 {
	return int64(f.ArrivalDate.Sub(f.DepartureDate).Hours() / 24)
}
