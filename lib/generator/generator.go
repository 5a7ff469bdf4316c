// Package generator turns document manifests into Go source, so a page can be
// compiled into a binary instead of loaded at runtime.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm/hxpage/lib/manifest"
)

// Suffix is the file name suffix of generated files.
const Suffix = "_page.go"

// ErrNotGenerated is returned by Generate when the output path holds a file
// that was not written by the generator.
var ErrNotGenerated = errors.New("generator: refusing to overwrite file without generated-code header")

// Options configures the generator.
type Options struct {
	DryRun  bool
	Package string    // package clause of generated files, default "main"
	Func    string    // name of the generated constructor, default "Page"
	Out     io.Writer // progress messages, default os.Stdout
}

// Generator generates hxpage code.
type Generator struct {
	opts Options
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "main"
	}
	if opts.Func == "" {
		opts.Func = "Page"
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Generator{opts: opts}
}

// Generate reads the manifest at manifestPath and writes Go source to outPath.
// An empty outPath derives the name from the manifest: page.yaml -> page_page.go
// in the same directory.
//
// An existing file at outPath is replaced only if it carries the
// generated-code header; otherwise Generate returns ErrNotGenerated.
func (g *Generator) Generate(manifestPath, outPath string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = OutputPath(manifestPath)
	}

	generated, err := isGenerated(outPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	case !generated:
		return fmt.Errorf("%w: %s", ErrNotGenerated, outPath)
	}

	fmt.Fprintf(g.opts.Out, "generating %s\n", outPath)

	if g.opts.DryRun {
		return nil
	}

	code, err := g.Source(m)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, code, 0644)
}

// OutputPath returns the default generated file path for a manifest.
func OutputPath(manifestPath string) string {
	base := strings.TrimSuffix(manifestPath, filepath.Ext(manifestPath))
	return base + Suffix
}

// Clean removes generated files for the given package patterns. Only files
// carrying the generated-code header are removed.
func (g *Generator) Clean(patterns ...string) error {
	packages, err := findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.cleanPackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

func (g *Generator) validate() error {
	if !token.IsIdentifier(g.opts.Package) || g.opts.Package == "_" {
		return fmt.Errorf("invalid package name %q", g.opts.Package)
	}
	if !token.IsIdentifier(g.opts.Func) {
		return fmt.Errorf("invalid function name %q", g.opts.Func)
	}
	// main and init can't be declared with a return value, and _ can't be called.
	switch g.opts.Func {
	case "main", "init", "_":
		return fmt.Errorf("reserved function name %q", g.opts.Func)
	}
	return nil
}

// findPackages resolves package patterns to directory paths.
func findPackages(patterns []string) ([]string, error) {
	var packages []string

	for _, pattern := range patterns {
		// Handle ./... pattern
		if !strings.HasSuffix(pattern, "/...") {
			packages = append(packages, pattern)
			continue
		}

		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "."
		}

		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			// Skip hidden directories and vendor
			base := filepath.Base(path)
			if path != root && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == "vendor" || base == "testdata") {
				return filepath.SkipDir
			}
			packages = append(packages, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return packages, nil
}

// cleanPackage removes generated files from a single directory.
func (g *Generator) cleanPackage(pkgPath string) error {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Suffix) {
			continue
		}
		path := filepath.Join(pkgPath, entry.Name())
		generated, err := isGenerated(path)
		if err != nil {
			return err
		}
		if !generated {
			continue
		}
		fmt.Fprintf(g.opts.Out, "removing %s\n", path)
		if !g.opts.DryRun {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}

	return nil
}

func isGenerated(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.HasPrefix(data, []byte(header)), nil
}
