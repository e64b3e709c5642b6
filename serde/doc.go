// Package serde provides generic JSON serialize/deserialize helpers that
// revive behavior on parsed plain data.
//
// The classic pitfall with deserialization is ending up with a bag of
// fields and no methods. serde sidesteps it with a type parameter:
// FromJSON[T] decodes straight into a concrete T, and T's method set —
// the behavior — attaches by construction. No tagging, no dispatch table,
// no post-parse fixups:
//
//	r, err := serde.FromJSON[shapes.Rectangle](`{"width":10,"height":20}`)
//	// r.Area() == 200 — the revived value has its methods back
//
// ToJSON is the matching encode wrapper. Both helpers are pure functions
// over their inputs; decode failures wrap ErrDecode for errors.Is.
package serde
