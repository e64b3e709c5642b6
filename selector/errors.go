// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Append methods attach method + part context via %w wrapping.
//   • The package MUST NOT panic: every violation surfaces as a carried
//     error on the returned Builder, retrievable via Err() / Build().

package selector

import (
	"errors"
	"fmt"
)

// ErrDuplicatePart indicates that Element, ID or PseudoElement was invoked
// on a lineage that already contains that part kind. Those three kinds are
// limited to a single occurrence per selector; class, attribute and
// pseudo-class parts are repeatable and never trigger this error.
// Usage: if errors.Is(err, ErrDuplicatePart) { /* drop the repeat */ }.
var ErrDuplicatePart = errors.New(
	"selector: element, id and pseudo-element should not occur more than once inside the selector")

// ErrPartOrder indicates that a part was appended out of canonical order,
// i.e. its rank is lower than the rank of the immediately preceding part.
// The wrapped context names both the attempted and the preceding part.
// Usage: if errors.Is(err, ErrPartOrder) { /* reorder the calls */ }.
var ErrPartOrder = errors.New(
	"selector: parts should be arranged in the following order: " + canonicalOrder)

// wrapDuplicate builds the carried error for an at-most-once violation.
// Form: "<Method>: duplicate <kind> part: <sentinel>". Preserves
// ErrDuplicatePart for errors.Is. Complexity: O(1).
func wrapDuplicate(method string, kind PartKind) error {
	return fmt.Errorf("%s: duplicate %s part: %w", method, kind, ErrDuplicatePart)
}

// wrapOrder builds the carried error for an order violation.
// Form: "<Method>: <attempted> part cannot follow <previous> part: <sentinel>".
// Preserves ErrPartOrder for errors.Is. Complexity: O(1).
func wrapOrder(method string, attempted, previous PartKind) error {
	return fmt.Errorf("%s: %s part cannot follow %s part: %w", method, attempted, previous, ErrPartOrder)
}
