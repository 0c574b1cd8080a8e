package kernel

import (
	"fmt"
	"time"

	"travelorders/internal/pkg/errs"
)

// ErrTravelPeriodIsNotConstructed indicates that a TravelPeriod was not
// created through NewTravelPeriod. This error is returned when validating a
// zero-value period.
var ErrTravelPeriodIsNotConstructed = errs.NewValueIsRequiredError(
	"TravelPeriod must be created via NewTravelPeriod",
)

// TravelPeriod is a value object representing the date range of a travel
// order: the departure date and the return date.
//
// Invariant: the return date is never before the departure date. The
// invariant is checked at construction, which is the only way to obtain a
// TravelPeriod, so every instance flowing through the system is valid. The
// same rule therefore holds both at order creation and after any partial
// date edit, because edits rebuild the period from the merged final state.
//
// Dates are compared at day granularity; equal departure and return dates
// describe a valid single-day trip.
//
// Example:
//
//	period, err := kernel.NewTravelPeriod(departure, departure.AddDate(0, 0, 10))
//	if err != nil {
//	    // return date precedes departure date
//	}
type TravelPeriod struct {
	departure time.Time
	returning time.Time

	isConstructed bool
}

// NewTravelPeriod creates a validated TravelPeriod.
// Returns a ValueIsInvalidError when the return date precedes the departure
// date. Time-of-day components are truncated; only the calendar dates matter.
func NewTravelPeriod(departure, returning time.Time) (TravelPeriod, error) {
	departure = truncateToDate(departure)
	returning = truncateToDate(returning)

	if departure.IsZero() {
		return TravelPeriod{}, errs.NewValueIsRequiredError("departure date")
	}
	if returning.IsZero() {
		return TravelPeriod{}, errs.NewValueIsRequiredError("return date")
	}
	if returning.Before(departure) {
		return TravelPeriod{}, errs.NewValueIsInvalidErrorWithCause(
			"travel period",
			fmt.Errorf("return date %s is before departure date %s",
				returning.Format(time.DateOnly), departure.Format(time.DateOnly)),
		)
	}

	return TravelPeriod{
		departure:     departure,
		returning:     returning,
		isConstructed: true,
	}, nil
}

// Departure returns the departure date.
func (p TravelPeriod) Departure() time.Time {
	return p.departure
}

// Return returns the return date.
func (p TravelPeriod) Return() time.Time {
	return p.returning
}

// IsEqual compares two periods by their dates.
func (p TravelPeriod) IsEqual(other TravelPeriod) bool {
	return p.departure.Equal(other.departure) && p.returning.Equal(other.returning)
}

// Validate ensures the period was created via NewTravelPeriod.
func (p TravelPeriod) Validate() error {
	if !p.isConstructed {
		return ErrTravelPeriodIsNotConstructed
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
