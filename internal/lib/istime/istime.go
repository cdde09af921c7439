// Package istime normalizes timestamps into the studio's canonical time zone
// (IST, Asia/Kolkata) and classifies them as past or future.
package istime

import (
	"fmt"
	"time"
)

// layoutNaive covers client input without a zone offset. Such timestamps are
// taken as already being IST rather than shifted, so studio-entered local
// times survive the round trip unchanged.
const layoutNaive = "2006-01-02T15:04:05"

var ist = mustLoadIST()

func mustLoadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic("istime: load Asia/Kolkata: " + err.Error())
	}
	return loc
}

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(ist)
}

// Normalize converts t into IST. Idempotent.
func Normalize(t time.Time) time.Time {
	return t.In(ist)
}

// Parse accepts RFC3339 timestamps (offset respected and converted to IST)
// and the offsetless layout "2006-01-02T15:04:05" interpreted as IST.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Normalize(t), nil
	}

	t, err := time.ParseInLocation(layoutNaive, s, ist)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q", s)
	}

	return t, nil
}

// IsPast reports whether t is strictly before the current IST time. A class
// starting exactly now is not past.
func IsPast(t time.Time) bool {
	return Normalize(t).Before(Now())
}
