package hxpage

import "slices"

// BodyPlacement controls where the body fragment is written relative to the
// closing </html> tag.
type BodyPlacement int

const (
	// BodyAfterHTML writes the body after </html>, as a sibling of the html
	// element. Browsers move it back inside during parsing. This is the default
	// and keeps output byte-compatible with earlier releases.
	BodyAfterHTML BodyPlacement = iota

	// BodyInsideHTML writes the body between </head> and </html>.
	BodyInsideHTML
)

// Document is an HTML page under construction: a fixed title, an ordered list of
// head fragments and an optional body.
//
// Document is an immutable value. Every configuration method returns a new
// Document and leaves the receiver untouched, so a base document can be shared
// between handlers and goroutines:
//
//	base := hxpage.New("Docs").Stylesheet("/app.css").Icon("/favicon.ico")
//	page := base.Body(hxpage.Raw("<body><p>hi</p></body>"))
//	html := page.Render()
//
// base is unaffected by the Body call and still renders without a body.
type Document struct {
	title     string
	head      []Fragment
	body      Fragment
	hasBody   bool
	placement BodyPlacement
}

// New creates a document with the given title, no head fragments and no body.
//
// The title is not validated. It is written as escaped text inside <title>, so
// it cannot inject markup.
func New(title string) Document {
	return Document{title: title}
}

// Stylesheet appends a stylesheet link to the head.
//
//	<link rel="stylesheet" type="text/css" href="(href)">
func (d Document) Stylesheet(href string) Document {
	return d.Link(StylesheetLink(href))
}

// Icon appends an icon link to the head.
//
//	<link rel="icon" type="text/x-icon" href="(href)">
func (d Document) Icon(href string) Document {
	return d.Link(IconLink(href))
}

// Link appends an arbitrary fragment to the head, after any links already added.
//
// Use this when Stylesheet and Icon don't cover what you need (scripts, meta
// tags, preload hints). The fragment is written verbatim.
func (d Document) Link(f Fragment) Document {
	// Clip so append never writes into a backing array shared with d.
	d.head = append(slices.Clip(d.head), f)
	return d
}

// Body sets the body fragment, replacing any previous one.
//
// The fragment must include its own <body> wrapper (see BodyElement); nothing
// is added around it.
func (d Document) Body(f Fragment) Document {
	d.body = f
	d.hasBody = true
	return d
}

// PlaceBody sets where the body is written. See BodyPlacement.
func (d Document) PlaceBody(p BodyPlacement) Document {
	d.placement = p
	return d
}

// Title returns the document title.
func (d Document) Title() string {
	return d.title
}

// Head returns a copy of the head fragments in insertion order.
func (d Document) Head() []Fragment {
	return slices.Clone(d.head)
}

// HasBody reports whether Body has been called.
func (d Document) HasBody() bool {
	return d.hasBody
}

// Placement returns the body placement.
func (d Document) Placement() BodyPlacement {
	return d.placement
}
