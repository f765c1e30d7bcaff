package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestUntil(t *testing.T) {
	r := Until(base.Add(2*time.Hour+30*time.Minute+5*time.Second), base)
	assert.Equal(t, Remaining{Hours: 2, Minutes: 30, Seconds: 5}, r)
	assert.Equal(t, "02:30:05", r.String())
}

func TestUntilCapsHoursAtTwentyFour(t *testing.T) {
	// 26h from now: the table variant wraps the hour component.
	r := Until(base.Add(26*time.Hour), base)
	assert.Equal(t, Remaining{Hours: 2, Minutes: 0, Seconds: 0}, r)
}

func TestUntilWithDays(t *testing.T) {
	r := UntilWithDays(base.Add(26*time.Hour+15*time.Second), base)
	assert.Equal(t, RemainingDays{Days: 1, Hours: 2, Minutes: 0, Seconds: 15}, r)
	assert.Equal(t, "1d 02:00:15", r.String())
}

func TestPastEndIsZeroNeverNegative(t *testing.T) {
	assert.Equal(t, Remaining{}, Until(base.Add(-time.Hour), base))
	assert.Equal(t, Remaining{}, Until(base, base))
	assert.Equal(t, RemainingDays{}, UntilWithDays(base.Add(-time.Second), base))
}
