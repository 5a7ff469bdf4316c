package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pthm/hxpage"
	"github.com/pthm/hxpage/lib/generator"
	"github.com/pthm/hxpage/lib/manifest"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Manifest       string `arg:"" type:"existingfile" help:"Manifest file (.yaml, .yml, .msgpack, .mp)"`
	Output         string `short:"o" help:"Write the document to this file instead of stdout" env:"HXPAGE_OUTPUT"`
	BodyInsideHTML bool   `name:"body-inside-html" help:"Write the body before </html> instead of after it"`
}

func (c *RenderCmd) Run(g *Global) error {
	m, err := manifest.Load(c.Manifest)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	doc, err := m.Document()
	if err != nil {
		return err
	}
	if c.BodyInsideHTML {
		doc = doc.PlaceBody(hxpage.BodyInsideHTML)
	}
	g.Logger.Debug("Loaded manifest",
		"path", c.Manifest,
		"title", doc.Title(),
		"head", len(doc.Head()),
		"body", doc.HasBody())

	if c.Output == "" {
		if _, err := doc.WriteTo(g.Stdout); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		return nil
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	n, err := writeAndClose(doc, f)
	if err != nil {
		return err
	}
	g.Logger.Info("Rendered document", "output", c.Output, "bytes", n)
	return nil
}

// writeAndClose writes doc to w and closes it. A failed Close is reported,
// since buffered data may not have reached the file.
func writeAndClose(doc hxpage.Document, w io.WriteCloser) (n int64, err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	n, err = doc.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write document: %w", err)
	}
	return n, nil
}

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Manifest string `arg:"" type:"existingfile" help:"Manifest file"`
	Out      string `arg:"" optional:"" help:"Output Go file (default: <manifest>_page.go)"`
	Package  string `help:"Package name of the generated file" default:"main" env:"HXPAGE_PACKAGE"`
	Func     string `help:"Name of the generated function" default:"Page" env:"HXPAGE_FUNC"`
	DryRun   bool   `name:"dry-run" help:"Show what would be generated without writing files"`
}

func (c *GenerateCmd) Run(g *Global) error {
	gen := generator.New(generator.Options{
		DryRun:  c.DryRun,
		Package: c.Package,
		Func:    c.Func,
		Out:     g.Stdout,
	})
	if err := gen.Generate(c.Manifest, c.Out); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	g.Logger.Debug("Generated page", "manifest", c.Manifest, "package", c.Package, "func", c.Func)
	return nil
}

// CleanCmd implements the 'clean' command.
type CleanCmd struct {
	Patterns []string `arg:"" optional:"" help:"Package patterns (default ./...)"`
	DryRun   bool     `name:"dry-run" help:"Show what would be removed without deleting"`
}

func (c *CleanCmd) Run(g *Global) error {
	patterns := c.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	gen := generator.New(generator.Options{DryRun: c.DryRun, Out: g.Stdout})
	return gen.Clean(patterns...)
}

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Global) error {
	_, err := fmt.Fprintf(g.Stdout, "hxpage version %s\n", version)
	return err
}
