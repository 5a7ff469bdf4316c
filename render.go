package hxpage

import (
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Skeleton markup written on every render.
const (
	doctype     = "<!DOCTYPE html>"
	htmlOpen    = `<html lang="en">`
	htmlClose   = "</html>"
	headOpen    = "<head>"
	headClose   = "</head>"
	charsetMeta = `<meta charset="UTF-8">`
	viewport    = `<meta name="viewport" content="width=device-width, initial-scale=1.0">`
	compatMeta  = `<meta http-equiv="X-UA-Compatible" content="ie=edge">`
)

// Render returns the complete HTML document.
//
// The output is, with no whitespace between tags:
//
//	<!DOCTYPE html><html lang="en"><head>
//	<meta charset> <meta viewport> <meta X-UA-Compatible> <title>
//	head fragments in insertion order
//	</head></html> body
//
// With BodyInsideHTML the body is written before </html> instead. Render never
// fails and is deterministic: equal documents give byte-identical output.
func (d Document) Render() string {
	var sb strings.Builder
	sb.Grow(d.size())
	d.render(&sb)
	return sb.String()
}

// WriteTo writes the rendered document to w.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

// Fragment returns the rendered document as a Fragment, which implements
// templ.Component:
//
//	http.Handle("/", templ.Handler(doc.Fragment()))
func (d Document) Fragment() Fragment {
	return Fragment{html: d.Render()}
}

// String implements fmt.Stringer.
func (d Document) String() string {
	return d.Render()
}

func (d Document) render(sb *strings.Builder) {
	sb.WriteString(doctype)
	sb.WriteString(htmlOpen)

	sb.WriteString(headOpen)
	sb.WriteString(charsetMeta)
	sb.WriteString(viewport)
	sb.WriteString(compatMeta)
	sb.WriteString("<title>")
	sb.WriteString(templ.EscapeString(d.title))
	sb.WriteString("</title>")
	for _, f := range d.head {
		sb.WriteString(f.html)
	}
	sb.WriteString(headClose)

	if d.placement == BodyInsideHTML {
		d.writeBody(sb)
		sb.WriteString(htmlClose)
		return
	}
	sb.WriteString(htmlClose)
	d.writeBody(sb)
}

func (d Document) writeBody(sb *strings.Builder) {
	if d.hasBody {
		sb.WriteString(d.body.html)
	}
}

// size estimates the rendered length to size the buffer in one allocation.
func (d Document) size() int {
	n := len(doctype) + len(htmlOpen) + len(htmlClose) + len(headOpen) + len(headClose) +
		len(charsetMeta) + len(viewport) + len(compatMeta) + len("<title></title>") +
		len(d.title) + len(d.body.html)
	for _, f := range d.head {
		n += len(f.html)
	}
	return n
}
