package hxpage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"
)

// Fragment is a self-contained piece of HTML that is already safe to emit.
//
// Fragments are closed values: once built they are written verbatim and never
// re-escaped, so composing fragments is plain concatenation. Every constructor
// that takes caller-supplied strings escapes them, except Raw, which is the
// explicit trusted-markup escape hatch.
//
// The zero Fragment is empty. Fragment implements templ.Component, so it can be
// used anywhere templ expects a component:
//
//	@hxpage.StylesheetLink("/app.css")
type Fragment struct {
	html string
}

// Attr is a single HTML attribute. Attributes are written in slice order so that
// output is deterministic. Attributes whose name is empty or contains
// whitespace, quotes, '<', '>', '&', '/', '=' or control characters are
// skipped.
type Attr struct {
	Name  string
	Value string
}

// Raw wraps trusted markup without escaping it.
//
// Use Raw only for markup produced by a safe templating step or written by
// hand; untrusted input must go through Text or an attribute value instead.
func Raw(html string) Fragment {
	return Fragment{html: html}
}

// Text returns an escaped text node.
func Text(s string) Fragment {
	return Fragment{html: templ.EscapeString(s)}
}

// Join concatenates fragments in order.
func Join(fragments ...Fragment) Fragment {
	switch len(fragments) {
	case 0:
		return Fragment{}
	case 1:
		return fragments[0]
	}
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(f.html)
	}
	return Fragment{html: sb.String()}
}

// Element builds <tag attrs...>children</tag>. Attribute names and values are
// escaped; children are written as-is.
//
// Element panics if tag is not a valid element name (an ASCII letter followed
// by ASCII letters, digits or '-'). Tag names come from code, not input.
func Element(tag string, attrs []Attr, children ...Fragment) Fragment {
	var sb strings.Builder
	writeOpenTag(&sb, tag, attrs)
	for _, c := range children {
		sb.WriteString(c.html)
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
	return Fragment{html: sb.String()}
}

// Void builds an element with no content and no closing tag, such as <link> or
// <meta>. It panics on an invalid tag name, like Element.
func Void(tag string, attrs ...Attr) Fragment {
	var sb strings.Builder
	writeOpenTag(&sb, tag, attrs)
	return Fragment{html: sb.String()}
}

// StylesheetLink returns <link rel="stylesheet" type="text/css" href="...">.
func StylesheetLink(href string) Fragment {
	return Void("link",
		Attr{Name: "rel", Value: "stylesheet"},
		Attr{Name: "type", Value: "text/css"},
		Attr{Name: "href", Value: href},
	)
}

// IconLink returns <link rel="icon" type="text/x-icon" href="...">.
func IconLink(href string) Fragment {
	return Void("link",
		Attr{Name: "rel", Value: "icon"},
		Attr{Name: "type", Value: "text/x-icon"},
		Attr{Name: "href", Value: href},
	)
}

// BodyElement wraps children in a <body> element, for use with Document.Body,
// which expects the fragment to carry its own wrapper.
func BodyElement(attrs []Attr, children ...Fragment) Fragment {
	return Element("body", attrs, children...)
}

// FromComponent renders a templ component into a Fragment.
//
// Rendering happens once, here, so that documents built from the result stay
// error-free when rendered. The component is trusted to escape its own output,
// as templ-generated components do.
func FromComponent(ctx context.Context, c templ.Component) (Fragment, error) {
	if c == nil {
		return Fragment{}, nil
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return Fragment{}, fmt.Errorf("%w: %w", ErrComponentRender, err)
	}
	return Fragment{html: buf.String()}, nil
}

// String returns the fragment's HTML.
func (f Fragment) String() string {
	return f.html
}

// IsZero reports whether the fragment is empty.
func (f Fragment) IsZero() bool {
	return f.html == ""
}

// Render implements templ.Component.
func (f Fragment) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, f.html)
	return err
}

func writeOpenTag(sb *strings.Builder, tag string, attrs []Attr) {
	if !validTagName(tag) {
		panic(fmt.Sprintf("hxpage: invalid tag name %q", tag))
	}
	ordered := make(templ.OrderedAttributes, 0, len(attrs))
	for _, a := range attrs {
		if !validAttrName(a.Name) {
			continue
		}
		ordered = append(ordered, templ.KeyValue[string, any]{Key: a.Name, Value: a.Value})
	}

	sb.WriteByte('<')
	sb.WriteString(tag)
	// Writes to a strings.Builder don't fail.
	_ = templ.RenderAttributes(context.Background(), sb, ordered)
	sb.WriteByte('>')
}

func validTagName(tag string) bool {
	if tag == "" || !isASCIILetter(tag[0]) {
		return false
	}
	for i := 1; i < len(tag); i++ {
		c := tag[i]
		if !isASCIILetter(c) && !(c >= '0' && c <= '9') && c != '-' {
			return false
		}
	}
	return true
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch r {
		case '"', '\'', '>', '/', '=', '<', '&':
			return false
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == utf8.RuneError {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

var _ templ.Component = Fragment{}
