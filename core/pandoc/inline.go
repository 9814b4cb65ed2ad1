package pandoc

import "fmt"

// inline.go - Inline element type definitions
// Note: Content normalization helpers are in content.go

// Attributes supplies the two renderings of an attribute bag consumed by
// inline elements. A nil Attributes means the element has no attributes.
type Attributes interface {
	// String returns the bare attribute syntax placed inside {...},
	// e.g. `#id .class key="val"`.
	String() string

	// HTML returns the HTML attribute syntax, e.g. `id="x" class="y z"`.
	HTML() string
}

// Inline is a markup construct that renders within a line of text.
// The set of implementations is closed; every variant renders itself
// through String with no side effects.
type Inline interface {
	fmt.Stringer

	// inline marks the closed set of inline element types.
	inline()
}

// Interface checks for all inline variants.
var (
	_ Inline = Inlines{}
	_ Inline = Str{}
	_ Inline = Span{}
	_ Inline = Link{}
	_ Inline = Code{}
	_ Inline = CodeTag{}
	_ Inline = Strong{}
	_ Inline = Emph{}
)

// Inlines is an ordered sequence of inline content.
type Inlines struct {
	Elements []Content
}

func (in Inlines) inline() {}

// String joins the rendered elements with single spaces.
func (in Inlines) String() string {
	if len(in.Elements) == 0 {
		return ""
	}
	return contentString(in.Elements)
}

// Str is a plain text string.
type Str struct {
	Text string
}

func (s Str) inline() {}

func (s Str) String() string {
	return s.Text
}

// Span is inline content wrapped in a bracketed span.
type Span struct {
	Content Content
	Attr    Attributes
}

func (s Span) inline() {}

// String returns the span as markdown, [content]{attr}. The braces are
// always present; absent attributes render empty.
func (s Span) String() string {
	var attr string
	if s.Attr != nil {
		attr = s.Attr.String()
	}
	return fmt.Sprintf("[%s]{%s}", contentString(s.Content), attr)
}

// Link is a hyperlink.
type Link struct {
	Content Content
	Target  string
	Title   string
	Attr    Attributes
}

func (l Link) inline() {}

// String returns the link as markdown, [content](target "title"){attr}.
// The quoted title and the attribute clause are omitted when absent.
func (l Link) String() string {
	var title string
	if l.Title != "" {
		title = ` "` + l.Title + `"`
	}
	var attr string
	if l.Attr != nil {
		attr = "{" + l.Attr.String() + "}"
	}
	return fmt.Sprintf("[%s](%s%s)%s", contentString(l.Content), l.Target, title, attr)
}

// Code is inline code.
type Code struct {
	Text string
	Attr Attributes
}

func (c Code) inline() {}

// String returns the code as markdown, `text`{attr}. The attribute
// clause is omitted when absent.
func (c Code) String() string {
	var attr string
	if c.Attr != nil {
		attr = "{" + c.Attr.String() + "}"
	}
	return "`" + c.Text + "`" + attr
}

// CodeTag is inline code rendered as an HTML <code> element instead of
// markdown backticks.
type CodeTag struct {
	Text string
	Attr Attributes
}

func (c CodeTag) inline() {}

// String returns the code as an HTML fragment, <code attrs>text</code>.
// A single space separates the tag name from the attribute string, and
// only when attributes are present.
func (c CodeTag) String() string {
	var attr string
	if c.Attr != nil {
		attr = " " + c.Attr.HTML()
	}
	return fmt.Sprintf("<code%s>%s</code>", attr, c.Text)
}

// Strong is strongly emphasized text.
type Strong struct {
	Content Content
}

func (s Strong) inline() {}

// String returns the content as markdown, **content**.
func (s Strong) String() string {
	return "**" + contentString(s.Content) + "**"
}

// Emph is emphasized text.
type Emph struct {
	Content Content
}

func (e Emph) inline() {}

// String returns the content as markdown, *content*.
func (e Emph) String() string {
	return "*" + contentString(e.Content) + "*"
}
