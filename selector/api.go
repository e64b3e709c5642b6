// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// api.go - thin public entry-points for the selector package.
//
// Design contract (strict):
//   - Each free function starts a fresh lineage from the zero Builder and
//     delegates to the corresponding method in builder.go (single place
//     to read the per-part docs).
//   - No global state: every call yields an independent value.
//   - Determinism: the same call sequence always renders the same string.

package selector

// Element starts a new selector with a type part: Element("a") → "a".
func Element(value string) Builder {
	return Builder{}.Element(value)
}

// ID starts a new selector with an id part: ID("main") → "#main".
func ID(value string) Builder {
	return Builder{}.ID(value)
}

// Class starts a new selector with a class part: Class("row") → ".row".
func Class(value string) Builder {
	return Builder{}.Class(value)
}

// Attr starts a new selector with an attribute part:
// Attr("checked") → "[checked]".
func Attr(value string) Builder {
	return Builder{}.Attr(value)
}

// PseudoClass starts a new selector with a pseudo-class part:
// PseudoClass("hover") → ":hover".
func PseudoClass(value string) Builder {
	return Builder{}.PseudoClass(value)
}

// PseudoElement starts a new selector with a pseudo-element part:
// PseudoElement("after") → "::after".
func PseudoElement(value string) Builder {
	return Builder{}.PseudoElement(value)
}

// Combine joins two built selectors with a combinator:
// Combine(l, "+", r) renders "<l> + <r>". See Builder.Combine for the
// tracking-state and error-propagation contract.
func Combine(left Builder, combinator string, right Builder) Builder {
	return left.Combine(combinator, right)
}
