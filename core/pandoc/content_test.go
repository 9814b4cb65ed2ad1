package pandoc

import (
	"strings"
	"testing"

	qerrors "github.com/FocuswithJustin/quill/core/errors"
)

func TestContentString(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"string", "hello", "hello"},
		{"string keeps inner whitespace", "a  b\tc", "a  b\tc"},
		{"inline value", Str{Text: "hi"}, "hi"},
		{"inline pointer", &Strong{Content: "x"}, "**x**"},
		{"nested element", Emph{Content: "b"}, "*b*"},
		{"empty sequence", []Content{}, ""},
		{"mixed sequence", []Content{"a", Emph{Content: "b"}}, "a *b*"},
		{"string slice", []string{"a", "b"}, "a b"},
		{"inline slice", []Inline{Str{Text: "a"}, Code{Text: "b"}}, "a `b`"},
		{"concrete variant slice", []Emph{{Content: "a"}, {Content: "b"}}, "*a* *b*"},
		{"nested sequence", []Content{"a", []Content{"b", "c"}}, "a b c"},
		{"empty elements dropped", []Content{"a", "", "b"}, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContentString(tt.content)
			if err != nil {
				t.Fatalf("ContentString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ContentString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentStringTypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		content Content
	}{
		{"map", map[string]int{"a": 1}},
		{"int", 42},
		{"struct", struct{ X int }{X: 1}},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ContentString(tt.content)
			if err == nil {
				t.Fatal("ContentString() error = nil, want type mismatch")
			}
			var tmErr *qerrors.TypeMismatchError
			if !qerrors.As(err, &tmErr) {
				t.Fatalf("ContentString() error = %v, want *TypeMismatchError", err)
			}
			if !qerrors.Is(err, qerrors.ErrInvalidInput) {
				t.Errorf("ContentString() error does not unwrap to ErrInvalidInput")
			}
		})
	}

	// The error names the offending runtime type.
	_, err := ContentString(map[string]int{"a": 1})
	if err == nil || !strings.Contains(err.Error(), "map[string]int") {
		t.Errorf("error = %v, want mention of map[string]int", err)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		elements []Content
		want     string
	}{
		{"nil", nil, ""},
		{"empty", []Content{}, ""},
		{"single", []Content{"a"}, "a"},
		{"strings", []Content{"a", "b", "c"}, "a b c"},
		{"empty strings dropped", []Content{"a", "", "b"}, "a b"},
		{"nil elements dropped", []Content{nil, "a", nil}, "a"},
		{"empty renderings dropped", []Content{"a", Str{}, Inlines{}, "b"}, "a b"},
		{"empty sequences dropped", []Content{"a", []Content{}, "b"}, "a b"},
		{"order preserved", []Content{Strong{Content: "1"}, "2", Emph{Content: "3"}}, "**1** 2 *3*"},
		{"no trimming inside elements", []Content{" a ", "b"}, " a  b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join(tt.elements)
			if err != nil {
				t.Fatalf("Join() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinPropagatesTypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		elements []Content
	}{
		{"top level", []Content{"a", 42}},
		{"nested", []Content{"a", []Content{map[string]int{"b": 2}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Join(tt.elements)
			if !qerrors.Is(err, qerrors.ErrInvalidInput) {
				t.Errorf("Join() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

// Rendering is a pure projection: the same value renders identically
// every time.
func TestRenderIdempotent(t *testing.T) {
	tree := Inlines{Elements: []Content{
		"see",
		Strong{Content: Link{
			Content: Code{Text: "Corpus"},
			Target:  "ir.html#corpus",
			Title:   "Corpus",
		}},
	}}

	first := tree.String()
	for i := 0; i < 3; i++ {
		if got := tree.String(); got != first {
			t.Fatalf("render %d = %q, want %q", i, got, first)
		}
	}
}
