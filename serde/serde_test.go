package serde_test

import (
	"testing"

	"github.com/katalvlaran/cssel/serde"
	"github.com/katalvlaran/cssel/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToJSON_Rectangle verifies the encode wrapper emits the expected
// compact payload with lowercase field names.
func TestToJSON_Rectangle(t *testing.T) {
	got, err := serde.ToJSON(shapes.NewRectangle(10, 20))
	require.NoError(t, err)
	assert.Equal(t, `{"width":10,"height":20}`, got)
}

// TestFromJSON_RevivesBehavior is the core property: the decoded value is
// a concrete Rectangle, so its computed properties work immediately.
func TestFromJSON_RevivesBehavior(t *testing.T) {
	r, err := serde.FromJSON[shapes.Rectangle](`{"width":10,"height":20}`)
	require.NoError(t, err)
	assert.Equal(t, 200.0, r.Area(), "revived value must carry its method set")
	assert.Equal(t, 60.0, r.Perimeter())
}

// TestFromJSON_RoundTrip checks encode→decode is the identity on plain
// records.
func TestFromJSON_RoundTrip(t *testing.T) {
	orig := shapes.NewRectangle(3.5, 7.25)

	payload, err := serde.ToJSON(orig)
	require.NoError(t, err)

	back, err := serde.FromJSON[shapes.Rectangle](payload)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

// TestFromJSON_BadPayload ensures malformed input surfaces ErrDecode and
// the zero value.
func TestFromJSON_BadPayload(t *testing.T) {
	r, err := serde.FromJSON[shapes.Rectangle](`{"width":`)
	assert.ErrorIs(t, err, serde.ErrDecode)
	assert.Equal(t, shapes.Rectangle{}, r, "failed decode must return the zero value")
}
