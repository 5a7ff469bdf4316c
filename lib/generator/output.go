package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"github.com/pthm/hxpage/lib/manifest"
)

const header = "// Code generated by hxpage generate. DO NOT EDIT.\n"

var pageTemplate = template.Must(template.New("page").Parse(header + `
package {{.Package}}

import "github.com/pthm/hxpage"

// {{.Func}} returns the {{printf "%q" .Title}} document.
func {{.Func}}() hxpage.Document {
	return hxpage.New({{printf "%q" .Title}}){{range .Calls}}.
		{{.}}{{end}}
}
`))

// Source renders gofmt-ed Go source defining a function that builds the
// manifest's document.
func (g *Generator) Source(m manifest.Manifest) ([]byte, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	data := struct {
		Package string
		Func    string
		Title   string
		Calls   []string
	}{
		Package: g.opts.Package,
		Func:    g.opts.Func,
		Title:   m.Title,
		Calls:   builderCalls(m),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return formatted, nil
}

// builderCalls returns the chained Document method calls, in manifest order.
func builderCalls(m manifest.Manifest) []string {
	var calls []string
	for _, e := range m.Head {
		switch e.Kind() {
		case "stylesheet":
			calls = append(calls, "Stylesheet("+strconv.Quote(*e.Stylesheet)+")")
		case "icon":
			calls = append(calls, "Icon("+strconv.Quote(*e.Icon)+")")
		case "raw":
			calls = append(calls, "Link(hxpage.Raw("+strconv.Quote(*e.Raw)+"))")
		}
	}
	if m.Body != nil {
		calls = append(calls, "Body(hxpage.Raw("+strconv.Quote(*m.Body)+"))")
	}
	if m.BodyInsideHTML {
		calls = append(calls, "PlaceBody(hxpage.BodyInsideHTML)")
	}
	return calls
}
