// Package component provides the interactive component tree attached to
// messages: action rows, buttons, select menus, and text inputs.
//
// # Tagged union
//
// Components are a tagged union selected by the integer "type" field, which
// is read before the rest of the document is parsed. Decode returns one of
// the concrete variants (ActionRow, Button, SelectMenu, TextInput) or, for a
// discriminant outside the recognized set, an Unknown value carrying the raw
// document verbatim so that re-encoding loses nothing.
//
// # Recursion and bounds
//
// Action rows nest child components recursively. The wire format is a tree
// (children are owned values, no back-references), and Decode bounds nesting
// at DecodeOptions.MaxDepth, failing with a DepthExceeded error rather than
// recursing unbounded on pathological input.
//
// # Strict and lenient policy
//
// Under the default lenient policy unrecognized discriminants produce
// Unknown. With DecodeOptions.Strict they fail with a schema error naming the
// discriminant and its structural path:
//
//	c, err := component.Decode(raw, component.DecodeOptions{Strict: true})
//	// err: "components[1].type: unrecognized discriminant 99"
package component
