// Package expiry derives shelf-life status from a medicine's expiry date.
// All functions take the evaluation instant explicitly so callers stay
// deterministic under test.
package expiry

import (
	"math"
	"time"
)

// NearWindowDays is the inclusive number of days before expiry during which
// a medicine counts as near-expiry.
const NearWindowDays = 90

// Status classifies a medicine's shelf life at a point in time.
type Status string

const (
	StatusExpired Status = "expired"
	StatusNear    Status = "near_expiry"
	StatusOK      Status = "ok"
)

// DaysUntil returns the number of whole days until the expiry date, rounding
// up partial days. The result is negative once the date has passed and zero
// on the day of expiry.
func DaysUntil(expiryDate, now time.Time) int {
	diff := expiryDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// IsExpired reports whether the expiry date lies in the past.
func IsExpired(expiryDate, now time.Time) bool {
	return DaysUntil(expiryDate, now) < 0
}

// IsNear reports whether the expiry date falls within the near-expiry window.
// Expired dates are never near-expiry; the two are mutually exclusive.
func IsNear(expiryDate, now time.Time) bool {
	days := DaysUntil(expiryDate, now)
	return days >= 0 && days <= NearWindowDays
}

// Evaluate returns the status together with the remaining days.
func Evaluate(expiryDate, now time.Time) (Status, int) {
	days := DaysUntil(expiryDate, now)
	switch {
	case days < 0:
		return StatusExpired, days
	case days <= NearWindowDays:
		return StatusNear, days
	default:
		return StatusOK, days
	}
}
