// Package components provides attribute bags attachable to markup elements.
//
// An Attr renders in two syntaxes: the bare form placed inside {...} in
// markdown output, and the HTML attribute form used when an element is
// emitted as an HTML tag. Both renderings skip absent parts, so the zero
// Attr renders as the empty string.
package components

import (
	"strings"

	"github.com/FocuswithJustin/quill/core/encoding"
)

// KeyVal is a single key="value" attribute pair.
type KeyVal struct {
	Key string
	Val string
}

// Attr is an attribute bag: an identifier, classes, and key-value pairs.
// Pairs render in declaration order. Attr performs no validation of
// identifier or class syntax.
type Attr struct {
	ID      string
	Classes []string
	KeyVals []KeyVal
}

// String returns the bare attribute syntax, e.g. `#id .cls key="val"`.
func (a Attr) String() string {
	var parts []string
	if a.ID != "" {
		parts = append(parts, "#"+a.ID)
	}
	for _, c := range a.Classes {
		if c == "" {
			continue
		}
		parts = append(parts, "."+c)
	}
	for _, kv := range a.KeyVals {
		parts = append(parts, kv.Key+`="`+kv.Val+`"`)
	}
	return strings.Join(parts, " ")
}

// HTML returns the HTML attribute syntax, e.g. `id="x" class="y z"
// key="val"`. Values are escaped for double-quoted HTML attributes.
func (a Attr) HTML() string {
	var parts []string
	if a.ID != "" {
		parts = append(parts, `id="`+encoding.EscapeHTMLAttr(a.ID)+`"`)
	}
	if classes := a.classList(); classes != "" {
		parts = append(parts, `class="`+encoding.EscapeHTMLAttr(classes)+`"`)
	}
	for _, kv := range a.KeyVals {
		parts = append(parts, kv.Key+`="`+encoding.EscapeHTMLAttr(kv.Val)+`"`)
	}
	return strings.Join(parts, " ")
}

// classList joins the non-empty classes with single spaces.
func (a Attr) classList() string {
	var classes []string
	for _, c := range a.Classes {
		if c == "" {
			continue
		}
		classes = append(classes, c)
	}
	return strings.Join(classes, " ")
}
