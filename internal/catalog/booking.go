package catalog

import (
	"errors"
	"time"
)

// ErrInvalidBookingInput blocks a submission before any network call is made.
var ErrInvalidBookingInput = errors.New("invalid booking input")

// ClampHours normalizes a requested hour count to the minimum of 1.
func ClampHours(hours int) int {
	if hours < 1 {
		return 1
	}
	return hours
}

// BuildDraft derives a pending booking from a provider, a local date-time,
// and a requested hour count. Hours are clamped to >= 1 before the total is
// computed; the raw user input never reaches the cost calculation. The
// booking carries no ID until the server confirms it.
func BuildDraft(p Provider, when time.Time, hours int, userID int64) (Booking, error) {
	if p.ID == 0 || when.IsZero() {
		return Booking{}, ErrInvalidBookingInput
	}

	h := ClampHours(hours)
	if h < 1 {
		return Booking{}, ErrInvalidBookingInput
	}

	return Booking{
		ProviderID: p.ID,
		UserID:     userID,
		Date:       when.Format("2006-01-02"),
		Time:       when.Format("15:04"),
		Hours:      h,
		TotalCost:  p.PricePerHour * float64(h),
		Status:     StatusPending,
	}, nil
}
