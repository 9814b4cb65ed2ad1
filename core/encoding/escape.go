// Package encoding provides shared text escaping utilities.
package encoding

import "strings"

// EscapeHTMLText escapes only the basic entities for HTML text content.
// Escapes: & < >
func EscapeHTMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// EscapeHTMLAttr escapes text for use in double-quoted HTML attribute values.
// Includes quote escaping in addition to the basic entities.
func EscapeHTMLAttr(s string) string {
	s = EscapeHTMLText(s)
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
