// Package cssel is a tiny toolkit for composing CSS selector strings from
// typed, validated parts — plus a couple of self-contained companions for
// teaching value semantics and JSON round-trips.
//
// 🚀 What is cssel?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• selector/ — an immutable SelectorBuilder: element, id, class,
//		  attribute, pseudo-class and pseudo-element parts with strict
//		  ordering and uniqueness validation, plus combinators (" ", "+",
//		  "~", ">") for composing complex selectors
//		• shapes/   — a Rectangle value type with computed area/perimeter
//		• serde/    — generic JSON serialize / deserialize helpers that
//		  revive behavior on parsed plain data
//
// ✨ Why choose cssel?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable builders, sentinel errors, errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every builder is a reusable value; share freely across
//     goroutines without synchronization
//
// Quick example:
//
//	s, err := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Build()
//	// s == `a[href$=".png"]:focus`
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/cssel/selector
package cssel
