// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// types.go — the PartKind enum and the immutable Builder value.
//
// Design contract (strict):
//   - PartKind numeric values ARE the canonical CSS ranks; KindNone is 0
//     and ranks below every real part, so the zero Builder accepts any
//     first part.
//   - Builder is a plain value: copying it is cloning it. No pointers, no
//     shared backing state, nothing for two goroutines to race on.

package selector

// PartKind identifies one typed fragment of a compound CSS selector.
//
// The declaration order fixes the canonical rank used by the order check:
// element(1) < id(2) < class(3) < attribute(4) < pseudo-class(5) <
// pseudo-element(6). KindNone(0) marks "no part placed yet" and compares
// below everything.
type PartKind uint8

const (
	// KindNone is the rank of an empty lineage; every part may follow it.
	KindNone PartKind = iota
	// KindElement is a type selector, e.g. "div". At most one per lineage.
	KindElement
	// KindID is an id selector, rendered "#value". At most one per lineage.
	KindID
	// KindClass is a class selector, rendered ".value". Repeatable.
	KindClass
	// KindAttribute is an attribute selector, rendered "[value]". Repeatable.
	KindAttribute
	// KindPseudoClass is a pseudo-class, rendered ":value". Repeatable.
	KindPseudoClass
	// KindPseudoElement is a pseudo-element, rendered "::value".
	// At most one per lineage; nothing may rank after it.
	KindPseudoElement
)

// partKindNames maps PartKind to its canonical CSS name, indexed by rank.
var partKindNames = [...]string{
	KindNone:          "none",
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

// String returns the canonical CSS name of the part kind ("element", "id",
// "class", "attribute", "pseudo-class", "pseudo-element"); out-of-range
// values render as "unknown". Complexity: O(1).
func (k PartKind) String() string {
	if int(k) < len(partKindNames) {
		return partKindNames[k]
	}

	return "unknown"
}

// Builder is an immutable, partially or fully built compound CSS selector.
//
// The zero value is the empty selector and is ready to use. Every append
// method (Element, ID, Class, Attr, PseudoClass, PseudoElement) and
// Combine returns a NEW Builder; the receiver is never mutated, so any
// Builder may be kept and reused as a shared prefix for several larger
// selectors (see §Concurrency in doc.go).
//
// A Builder produced by Combine carries only rendered text: its part
// tracking state is reset, so order/uniqueness rules restart from empty
// for anything appended afterwards. Only leaf selectors enforce CSS part
// ordering.
//
// Fields (all private; the type is opaque by design):
//   - text: the accumulated selector string.
//   - last: kind of the most recently appended part (order check input).
//   - seenElement / seenID / seenPseudoElement: at-most-once flags.
//   - err: first validation failure in this lineage, carried unchanged
//     through every later call and surfaced by Build() / Err().
type Builder struct {
	text              string
	last              PartKind
	seenElement       bool
	seenID            bool
	seenPseudoElement bool
	err               error
}
