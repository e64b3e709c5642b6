// Package selector defines shared constants used by the builder, ensuring
// consistent selector fragments and uniform error context across methods.
package selector

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the method name for context.
//-----------------------------------------------------------------------------

const (
	// MethodElement is the canonical name for the Element append.
	MethodElement = "Element"
	// MethodID is the canonical name for the ID append.
	MethodID = "ID"
	// MethodClass is the canonical name for the Class append.
	MethodClass = "Class"
	// MethodAttr is the canonical name for the Attr append.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name for the PseudoClass append.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name for the PseudoElement append.
	MethodPseudoElement = "PseudoElement"
)

//-----------------------------------------------------------------------------
// Selector Fragment Literals
//   one place for the CSS punctuation each part contributes.
//-----------------------------------------------------------------------------

const (
	// idPrefix introduces an id part: "#main".
	idPrefix = "#"
	// classPrefix introduces a class part: ".container".
	classPrefix = "."
	// attrOpen and attrClose wrap an attribute part: `[href$=".png"]`.
	attrOpen  = "["
	attrClose = "]"
	// pseudoClassPrefix introduces a pseudo-class part: ":hover".
	pseudoClassPrefix = ":"
	// pseudoElementPrefix introduces a pseudo-element part: "::first-line".
	pseudoElementPrefix = "::"
	// combinatorSep pads both sides of a combinator: "div + span".
	combinatorSep = " "
)

// canonicalOrder is the required part order, quoted verbatim in
// ErrPartOrder wrapping so callers see the full rule, not just the pair
// that violated it.
const canonicalOrder = "element, id, class, attribute, pseudo-class, pseudo-element"
