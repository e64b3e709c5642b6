// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// builder.go — the append, combine and stringify operations of Builder.
//
// Design contract (strict):
//   - Value receivers everywhere: an append mutates its LOCAL copy and
//     returns it; the caller's Builder is untouched.
//   - Check order inside every append: carried error → order → duplicate.
//     The order check runs first so an out-of-order duplicate reports the
//     order violation; an in-order duplicate (equal rank) still reports
//     the duplicate violation.
//   - A failed append contributes NOTHING to the text: the returned
//     Builder keeps the pre-call text and tracking state plus the error.
//   - Combine zeroes all tracking state on the result; validation rules
//     restart from empty. Combination is terminal for part ordering.

package selector

// append is the shared tail of every part method: it runs the order check
// against the previous part, then the at-most-once check for the limited
// kinds, and on success concatenates fragment and advances the tracking
// state. Complexity: O(len(text)+len(fragment)) per call for the string
// copy; O(1) extra space beyond the result.
func (b Builder) append(method string, kind PartKind, fragment string) Builder {
	// A lineage that already failed stays failed; later calls are no-ops.
	if b.err != nil {
		return b
	}
	// Order: a strictly lower rank than the previous part is a violation.
	if kind < b.last {
		b.err = wrapOrder(method, kind, b.last)

		return b
	}
	// Uniqueness: element, id and pseudo-element may appear once.
	switch kind {
	case KindElement:
		if b.seenElement {
			b.err = wrapDuplicate(method, kind)

			return b
		}
		b.seenElement = true
	case KindID:
		if b.seenID {
			b.err = wrapDuplicate(method, kind)

			return b
		}
		b.seenID = true
	case KindPseudoElement:
		if b.seenPseudoElement {
			b.err = wrapDuplicate(method, kind)

			return b
		}
		b.seenPseudoElement = true
	}
	b.text += fragment
	b.last = kind

	return b
}

// Element appends a type selector, e.g. Element("div") → "div".
//
// Rank 1: only valid as the first part of a lineage. Fails with
// ErrPartOrder after any other part and with ErrDuplicatePart on a
// repeat. Returns a new Builder; the receiver is unchanged.
func (b Builder) Element(value string) Builder {
	return b.append(MethodElement, KindElement, value)
}

// ID appends an id selector, e.g. ID("main") → "#main".
//
// Rank 2, at most once per lineage.
func (b Builder) ID(value string) Builder {
	return b.append(MethodID, KindID, idPrefix+value)
}

// Class appends a class selector, e.g. Class("container") → ".container".
//
// Rank 3, repeatable; consecutive Class calls accumulate in call order.
func (b Builder) Class(value string) Builder {
	return b.append(MethodClass, KindClass, classPrefix+value)
}

// Attr appends an attribute selector, e.g. Attr(`href$=".png"`) →
// `[href$=".png"]`. The value is NOT escaped or validated.
//
// Rank 4, repeatable.
func (b Builder) Attr(value string) Builder {
	return b.append(MethodAttr, KindAttribute, attrOpen+value+attrClose)
}

// PseudoClass appends a pseudo-class, e.g. PseudoClass("hover") → ":hover".
//
// Rank 5, repeatable.
func (b Builder) PseudoClass(value string) Builder {
	return b.append(MethodPseudoClass, KindPseudoClass, pseudoClassPrefix+value)
}

// PseudoElement appends a pseudo-element, e.g. PseudoElement("first-line")
// → "::first-line".
//
// Rank 6, at most once per lineage. It holds the highest rank, so any
// further part append fails the order check; only Combine and stringify
// remain meaningful afterwards.
func (b Builder) PseudoElement(value string) Builder {
	return b.append(MethodPseudoElement, KindPseudoElement, pseudoElementPrefix+value)
}

// Combine joins the receiver and right into one complex selector:
// "<left> <combinator> <right>", with a single space on each side of the
// combinator. The combinator is an opaque string (typically "+", "~", ">"
// or " ") and is not validated.
//
// The result carries ONLY the rendered text: part tracking state is reset,
// so order and uniqueness rules do not extend across a combination. If
// either operand carries an error (left checked first), the result carries
// it instead of combined text; on valid operands Combine never fails.
//
// Complexity: O(len(left)+len(right)) for the concatenation.
func (b Builder) Combine(combinator string, right Builder) Builder {
	if b.err != nil {
		return Builder{err: b.err}
	}
	if right.err != nil {
		return Builder{err: right.err}
	}

	return Builder{text: b.text + combinatorSep + combinator + combinatorSep + right.text}
}

// String returns the accumulated selector text. Pure and idempotent: it
// may be called any number of times with identical results and no side
// effects. The zero Builder renders as "". A Builder carrying an error
// renders the text accumulated before the failing call.
func (b Builder) String() string {
	return b.text
}

// Build returns the rendered selector, or the first violation recorded in
// this lineage. Callers branch on the error with errors.Is against
// ErrDuplicatePart / ErrPartOrder.
func (b Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	return b.text, nil
}

// Err returns the first violation carried by this Builder, or nil.
func (b Builder) Err() error {
	return b.err
}
