package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderFilter(t *testing.T) {
	q := url.Values{}
	q.Set("status", "shipped")
	q.Set("from", "2025-01-01")
	q.Set("to", "2025-01-31")
	q.Set("q", "mug")
	q.Set("injection", "1; DROP TABLE") // unrecognized keys are dropped

	f, err := ParseOrderFilter(q)
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, f.Status)
	assert.Equal(t, "mug", f.Search)
	require.NotNil(t, f.From)
	assert.Equal(t, "2025-01-01", f.From.Format("2006-01-02"))

	out := f.Query()
	assert.Empty(t, out.Get("injection"))
	assert.Equal(t, "shipped", out.Get("status"))
}

func TestParseOrderFilterRejectsUnknownStatus(t *testing.T) {
	q := url.Values{}
	q.Set("status", "teleported")
	_, err := ParseOrderFilter(q)
	assert.Error(t, err)
}

func TestParseOrderFilterRejectsBadDates(t *testing.T) {
	q := url.Values{}
	q.Set("from", "01/02/2025")
	_, err := ParseOrderFilter(q)
	assert.Error(t, err)
}
