package serde_test

import (
	"fmt"

	"github.com/katalvlaran/cssel/serde"
	"github.com/katalvlaran/cssel/shapes"
)

// ExampleFromJSON demonstrates the encode→decode round trip and that the
// revived value carries its computed properties.
func ExampleFromJSON() {
	payload, _ := serde.ToJSON(shapes.NewRectangle(10, 20))
	fmt.Println(payload)

	r, _ := serde.FromJSON[shapes.Rectangle](payload)
	fmt.Println(r.Area())
	// Output:
	// {"width":10,"height":20}
	// 200
}
