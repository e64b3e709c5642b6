package shapes_test

import (
	"testing"

	"github.com/katalvlaran/cssel/shapes"
	"github.com/stretchr/testify/assert"
)

// TestRectangle_Area verifies the computed area for plain and degenerate
// dimensions.
func TestRectangle_Area(t *testing.T) {
	r := shapes.NewRectangle(10, 20)
	assert.Equal(t, 10.0, r.Width)
	assert.Equal(t, 20.0, r.Height)
	assert.Equal(t, 200.0, r.Area())

	assert.Equal(t, 0.0, shapes.NewRectangle(0, 5).Area(), "zero side yields zero area")
}

// TestRectangle_Perimeter verifies the derived perimeter.
func TestRectangle_Perimeter(t *testing.T) {
	assert.Equal(t, 14.0, shapes.NewRectangle(3, 4).Perimeter())
}

// TestRectangle_ValueSemantics ensures methods never mutate the receiver.
func TestRectangle_ValueSemantics(t *testing.T) {
	r := shapes.NewRectangle(2, 3)
	_ = r.Area()
	_ = r.Perimeter()
	assert.Equal(t, shapes.Rectangle{Width: 2, Height: 3}, r)
}
