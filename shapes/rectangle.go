package shapes

// Rectangle is an axis-aligned rectangle described by its side lengths.
// The JSON field names are the lowercase of the Go fields, so a payload
// like {"width":10,"height":20} round-trips through serde unchanged.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a Rectangle with the given side lengths.
// Dimensions are not validated; negative or zero sides simply yield the
// corresponding degenerate area.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width × Height. Complexity: O(1).
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns 2 × (Width + Height). Complexity: O(1).
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}
