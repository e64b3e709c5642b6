package selector_test

import (
	"testing"

	"github.com/katalvlaran/cssel/selector"
)

// BenchmarkBuilder_Compound measures a full six-part compound selector
// built from the zero value each iteration.
func BenchmarkBuilder_Compound(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = selector.Element("div").
			ID("app").
			Class("wide").
			Attr("lang=en").
			PseudoClass("hover").
			PseudoElement("after").
			String()
	}
}

// BenchmarkBuilder_Combine measures composing two prebuilt leaves; the
// leaves are built once outside the loop since they are reusable values.
func BenchmarkBuilder_Combine(b *testing.B) {
	left := selector.Element("div").ID("main")
	right := selector.Element("table").ID("data")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = selector.Combine(left, "+", right).String()
	}
}
