package pandoc

import (
	"reflect"
	"strings"

	qerrors "github.com/FocuswithJustin/quill/core/errors"
)

// content.go - Content normalization helpers
// Note: Inline element definitions are in inline.go

// Content is nested inline content in any accepted shape: nil, a plain
// string, a single Inline element, or a slice whose elements are
// themselves valid Content. It is the field type everywhere inline
// elements nest, so callers never pre-flatten mixed sequences.
type Content = any

// sep joins sibling inline renderings.
const sep = " "

// contentShapes describes the accepted Content shapes for error reporting.
const contentShapes = "string, pandoc.Inline, or a sequence of either"

// ContentString converts inline content to its text form.
//
// Nil and the empty string convert to ""; a string converts to itself;
// an Inline converts via its String method; a sequence is joined with
// Join. Any other value is a type mismatch, the only error condition in
// this package.
func ContentString(content Content) (string, error) {
	switch c := content.(type) {
	case nil:
		return "", nil
	case string:
		return c, nil
	case Inline:
		return c.String(), nil
	}

	// A sequence of any element kind counts: []Content, []Inline,
	// []string, or a slice of one concrete variant.
	rv := reflect.ValueOf(content)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elements := make([]Content, rv.Len())
		for i := range elements {
			elements[i] = rv.Index(i).Interface()
		}
		return Join(elements)
	}

	return "", qerrors.NewTypeMismatch(contentShapes, content)
}

// Join renders a sequence of inline content as one string. Every element
// is rendered with ContentString, elements that render empty are
// discarded, and the surviving renderings are joined with a single
// space, preserving order.
func Join(elements []Content) (string, error) {
	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		s, err := ContentString(el)
		if err != nil {
			return "", err
		}
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// contentString renders nested content inside a String method, which
// cannot report an error. Values outside the content model render as
// the empty string.
func contentString(content Content) string {
	s, err := ContentString(content)
	if err != nil {
		return ""
	}
	return s
}
