package guestid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDShape(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "guest-"))
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3, "guest-<timestamp>-<suffix>")
	assert.NotEqual(t, id, NewID(), "ids are unique")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New([]byte("secret"), "nexa_guest", false)
	id := NewID()

	v := c.Encode(id)
	got, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("secret"), "nexa_guest", false)
	v := c.Encode(NewID())

	_, err := c.Decode("guest-1-aa." + strings.Split(v, ".")[1])
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("not-a-guest-id")
	assert.ErrorIs(t, err, ErrInvalid)

	other := New([]byte("other-secret"), "nexa_guest", false)
	_, err = other.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}
