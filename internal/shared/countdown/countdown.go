// Package countdown computes the time left on a hot deal. The value is
// derived from scratch on every tick; nothing is persisted.
package countdown

import (
	"fmt"
	"time"
)

// Remaining is the hour-capped form used by the deals table: hours wrap
// at 24 and the day count is not shown.
type Remaining struct {
	Hours   int
	Minutes int
	Seconds int
}

// RemainingDays is the card form: whole days plus an hour component
// below 24.
type RemainingDays struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Until returns the time left before end, hours capped at 24. An end in
// the past yields all zeros, never a negative component.
func Until(end, now time.Time) Remaining {
	d := end.Sub(now)
	if d <= 0 {
		return Remaining{}
	}
	total := int(d.Seconds())
	return Remaining{
		Hours:   (total / 3600) % 24,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}

// UntilWithDays returns the time left before end with an explicit day
// component, hours below 24.
func UntilWithDays(end, now time.Time) RemainingDays {
	d := end.Sub(now)
	if d <= 0 {
		return RemainingDays{}
	}
	total := int(d.Seconds())
	return RemainingDays{
		Days:    total / 86400,
		Hours:   (total / 3600) % 24,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}

func (r Remaining) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
}

func (r RemainingDays) String() string {
	if r.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", r.Days, r.Hours, r.Minutes, r.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
}
