// Package pandoc provides Pandoc-flavored inline markup elements that render
// themselves to Markdown text.
//
// Inline elements are the constructs that live inside a line of text, as
// opposed to block-level structures like paragraphs or lists. The package
// models them as a closed set of immutable value types; rendering is a pure
// projection of a value's fields with no I/O and no shared state, so values
// may be rendered concurrently without coordination.
//
// # Inline Elements
//
//   - Inlines: an ordered sequence of inline content
//   - Str: plain text
//   - Span: bracketed span with attributes, [content]{attr}
//   - Link: hyperlink, [content](target "title"){attr}
//   - Code: inline code, `text`{attr}
//   - CodeTag: inline code rendered as an HTML <code> element
//   - Strong: strong emphasis, **content**
//   - Emph: emphasis, *content*
//
// # Content
//
// Wherever an element nests content, it accepts the Content union: a plain
// string, a single Inline, or a slice of either, without pre-flattening.
// ContentString is the single normalization point; it is also the only
// operation in the package that can fail, and only when handed a value
// outside the union.
//
// # Attributes
//
// Elements that carry attributes hold them behind the two-method Attributes
// interface. The concrete attribute bag lives in core/components; this
// package only consumes the bare and HTML renderings.
//
// # Example
//
//	ref := pandoc.Link{
//	    Content: pandoc.Code{Text: "Corpus"},
//	    Target:  "ir.html#corpus",
//	}
//	text, err := pandoc.ContentString([]pandoc.Content{
//	    "defined by",
//	    pandoc.Strong{Content: ref},
//	})
//	// text == "defined by **[`Corpus`](ir.html#corpus)**"
package pandoc
