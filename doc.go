// Package hxpage composes complete HTML documents from a title, an ordered set
// of head links and an optional body, on top of Templ's escaping primitives.
//
// Every page shares the same boilerplate skeleton: the HTML5 doctype, a UTF-8
// charset declaration, a responsive viewport and an X-UA-Compatible meta tag.
// hxpage owns that skeleton so handlers only describe what differs.
//
// # Documents
//
// A Document is an immutable value built fluently:
//
//	page := hxpage.New("Dashboard").
//	    Stylesheet("/static/app.css").
//	    Icon("/favicon.ico").
//	    Link(hxpage.Raw(`<script src="/static/app.js" defer></script>`)).
//	    Body(hxpage.BodyElement(nil, content))
//
//	html := page.Render()
//
// Each method returns a new Document, so a shared base can be extended per
// request without copying or locking. Head fragments render in the order they
// were added; duplicates are kept.
//
// # Fragments
//
// A Fragment is a piece of HTML that is already safe to write. Constructors
// that take caller strings (Text, Element, Void, StylesheetLink, IconLink)
// escape them with templ.EscapeString. Raw is the trusted escape hatch, and
// FromComponent renders any templ.Component into a Fragment. Fragments are
// never escaped twice.
//
// The title is always written as escaped text and hrefs as escaped attribute
// values, so neither can introduce markup.
//
// # Body placement
//
// The body fragment carries its own <body> wrapper. By default it is written
// after </html>, which browsers fold back into the html element while parsing.
// Use PlaceBody(BodyInsideHTML) for strictly nested output.
//
// # Serving
//
// Serve and Handler write a document with a text/html content type. Because
// Document.Fragment returns a templ.Component, templ.Handler works too:
//
//	http.Handle("/", templ.Handler(page.Fragment()))
//
// The adapters/echo module provides the same for Echo.
//
// # Manifests and code generation
//
// lib/manifest describes documents in YAML or msgpack, and lib/generator turns
// a manifest into Go source. The hxpage command wraps both:
//
//	hxpage render -o index.html page.yaml
//	hxpage generate --package site page.yaml page_page.go
package hxpage
