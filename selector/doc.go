// Package selector builds CSS selector strings from typed parts with
// strict ordering and uniqueness validation.
//
// 🚀 What is selector?
//
//	An immutable Builder value that accumulates compound-selector parts:
//	  • element        — "div"
//	  • id             — "#main"
//	  • class          — ".container" (repeatable)
//	  • attribute      — `[href$=".png"]` (repeatable)
//	  • pseudo-class   — ":hover" (repeatable)
//	  • pseudo-element — "::first-line"
//	plus Combine for joining two selectors with a combinator
//	(" ", "+", "~", ">") into a complex selector.
//
// ✨ Key guarantees:
//   - Immutability: every append returns a NEW Builder; the receiver is
//     never touched, so builders can be shared, reused as prefixes, and
//     passed between goroutines without synchronization.
//   - Ordering: parts must arrive in canonical CSS order — element, id,
//     class, attribute, pseudo-class, pseudo-element. A lower-ranked part
//     after a higher-ranked one fails with ErrPartOrder.
//   - Uniqueness: element, id and pseudo-element may occur at most once
//     per lineage; a repeat fails with ErrDuplicatePart.
//   - First-failure semantics: the first violation is carried through the
//     rest of the chain untouched and surfaced by Build() / Err(); the
//     builder that existed before the failing call remains fully valid.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cssel/selector"
//
//	// fluent compound selector
//	s, err := selector.ID("main").Class("container").Class("editable").Build()
//	// s == "#main.container.editable"
//
//	// complex selector via combinators
//	left := selector.Element("div").ID("main")
//	right := selector.Element("table").ID("data")
//	fmt.Println(selector.Combine(left, "+", right)) // div#main + table#data
//
// Validation scope: only part ORDER and part UNIQUENESS are enforced.
// Part values and combinator strings are opaque — no CSS parsing, no
// escaping, no specificity, no DOM semantics.
//
// See example_test.go for runnable walkthroughs.
package selector
