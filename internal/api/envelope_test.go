package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
)

func TestDecodeDataSuccess(t *testing.T) {
	env := &Envelope{
		Success:    true,
		Data:       json.RawMessage(`{"id":"p1","name":"Mug"}`),
		StatusCode: 200,
	}
	p, err := DecodeData[Product](env)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Mug", p.Name)
}

func TestDecodeDataNullOnSuccessIsZeroValue(t *testing.T) {
	// Empty result: success with null data must not error.
	env := &Envelope{Success: true, Data: json.RawMessage(`null`), StatusCode: 200}

	list, err := DecodeData[[]Product](env)
	require.NoError(t, err)
	assert.Empty(t, list)

	env.Data = nil
	page, err := DecodeData[Page[Product]](env)
	require.NoError(t, err)
	assert.Zero(t, page.TotalItems)
}

func TestDecodeDataFailureNeverYieldsData(t *testing.T) {
	env := &Envelope{
		Success:    false,
		Message:    "Product not found",
		Data:       json.RawMessage(`{"id":"stale"}`),
		StatusCode: 404,
	}
	p, err := DecodeData[Product](env)
	require.Error(t, err)
	assert.Empty(t, p.ID, "data must be unusable when success is false")

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
	assert.Equal(t, "Product not found", ae.PublicMsg)
}

func TestEnvelopeErrStatusMapping(t *testing.T) {
	cases := map[int]apperr.Kind{
		400: apperr.Invalid,
		401: apperr.Unauthorized,
		403: apperr.Forbidden,
		404: apperr.NotFound,
		409: apperr.Conflict,
		500: apperr.Internal,
	}
	for status, kind := range cases {
		env := &Envelope{Success: false, Message: "nope", StatusCode: status}
		ae, ok := apperr.As(env.Err())
		require.True(t, ok, "status %d", status)
		assert.Equal(t, kind, ae.Kind, "status %d", status)
	}
}
