// Package shapes provides simple geometric value types with computed
// properties, used as companion fixtures for the serde round-trip helpers.
//
// Rectangle is a plain two-field record: construct it with NewRectangle
// (or a struct literal), read Area() and Perimeter() on demand. Values
// are immutable in practice — no method mutates the receiver — so they
// share the same copy-and-go semantics as selector.Builder.
package shapes
