// Package manifest describes documents declaratively so pages can be kept in
// configuration files instead of Go code.
//
// A manifest is stored as YAML or msgpack:
//
//	title: My Page
//	head:
//	  - stylesheet: /style.css
//	  - icon: /favicon.ico
//	  - raw: <meta name="description" content="demo">
//	body: <body><p>hi</p></body>
//
// Raw head entries and the body are trusted markup, written verbatim.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm/hxpage"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a manifest serialization format.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Manifest is the serializable description of a Document.
//
// Body and the head entry fields are pointers so that an explicitly empty
// value ("" in YAML) is distinct from an absent one: body: "" yields a
// document with an empty body, while omitting body yields none.
type Manifest struct {
	Title          string      `yaml:"title" msgpack:"title"`
	Head           []HeadEntry `yaml:"head,omitempty" msgpack:"head,omitempty"`
	Body           *string     `yaml:"body,omitempty" msgpack:"body,omitempty"`
	BodyInsideHTML bool        `yaml:"body_inside_html,omitempty" msgpack:"body_inside_html,omitempty"`
}

// HeadEntry is one head fragment. Exactly one field must be set; an empty
// string counts as set.
type HeadEntry struct {
	Stylesheet *string `yaml:"stylesheet,omitempty" msgpack:"stylesheet,omitempty"`
	Icon       *string `yaml:"icon,omitempty" msgpack:"icon,omitempty"`
	Raw        *string `yaml:"raw,omitempty" msgpack:"raw,omitempty"`
}

// StylesheetEntry returns a head entry for a stylesheet link.
func StylesheetEntry(href string) HeadEntry {
	return HeadEntry{Stylesheet: &href}
}

// IconEntry returns a head entry for an icon link.
func IconEntry(href string) HeadEntry {
	return HeadEntry{Icon: &href}
}

// RawEntry returns a head entry written verbatim.
func RawEntry(html string) HeadEntry {
	return HeadEntry{Raw: &html}
}

// WithBody returns a copy of m with the body set to html.
func (m Manifest) WithBody(html string) Manifest {
	m.Body = &html
	return m
}

// Kind returns which field of the entry is set: "stylesheet", "icon" or "raw".
// It returns "" when none or more than one is set.
func (e HeadEntry) Kind() string {
	kind := ""
	n := 0
	if e.Stylesheet != nil {
		kind, n = "stylesheet", n+1
	}
	if e.Icon != nil {
		kind, n = "icon", n+1
	}
	if e.Raw != nil {
		kind, n = "raw", n+1
	}
	if n != 1 {
		return ""
	}
	return kind
}

// Validate checks that every head entry sets exactly one field. The title is
// not required to be non-empty.
func (m Manifest) Validate() error {
	var errs []error
	for i, e := range m.Head {
		if e.Kind() == "" {
			errs = append(errs, fmt.Errorf("%w: head[%d] must set exactly one of stylesheet, icon, raw", hxpage.ErrInvalidManifest, i))
		}
	}
	return errors.Join(errs...)
}

// Document builds the Document described by the manifest.
func (m Manifest) Document() (hxpage.Document, error) {
	if err := m.Validate(); err != nil {
		return hxpage.Document{}, err
	}

	doc := hxpage.New(m.Title)
	for _, e := range m.Head {
		switch e.Kind() {
		case "stylesheet":
			doc = doc.Stylesheet(*e.Stylesheet)
		case "icon":
			doc = doc.Icon(*e.Icon)
		case "raw":
			doc = doc.Link(hxpage.Raw(*e.Raw))
		}
	}
	if m.Body != nil {
		doc = doc.Body(hxpage.Raw(*m.Body))
	}
	if m.BodyInsideHTML {
		doc = doc.PlaceBody(hxpage.BodyInsideHTML)
	}
	return doc, nil
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("%w: %q", hxpage.ErrUnknownFormat, filepath.Ext(path))
}

// Load reads and validates a manifest file.
func Load(path string) (Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Manifest{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Decode(data, format)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode parses and validates a manifest. Unknown fields are rejected in both
// formats.
func Decode(data []byte, format Format) (Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return Manifest{}, fmt.Errorf("%w: %w", hxpage.ErrInvalidManifest, err)
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields(true)
		if err := dec.Decode(&m); err != nil {
			return Manifest{}, fmt.Errorf("%w: %w", hxpage.ErrInvalidManifest, err)
		}
	default:
		return Manifest{}, fmt.Errorf("%w: %q", hxpage.ErrUnknownFormat, format)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Encode serializes a manifest.
func Encode(m Manifest, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(m)
	case FormatMsgpack:
		return msgpack.Marshal(m)
	}
	return nil, fmt.Errorf("%w: %q", hxpage.ErrUnknownFormat, format)
}
