package generator

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/hxpage/lib/manifest"
)

func sampleManifest() manifest.Manifest {
	return manifest.Manifest{
		Title: `My "Page"`,
		Head: []manifest.HeadEntry{
			manifest.StylesheetEntry("/style.css"),
			manifest.IconEntry("/favicon.ico"),
			manifest.RawEntry(`<meta name="x" content="y">`),
		},
		BodyInsideHTML: true,
	}.WithBody("<body><p>hi</p></body>")
}

func TestSource(t *testing.T) {
	g := New(Options{Package: "site", Func: "Home", Out: &bytes.Buffer{}})

	code, err := g.Source(sampleManifest())
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "home_page.go", code, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}
	if file.Name.Name != "site" {
		t.Errorf("package = %q, want site", file.Name.Name)
	}

	src := string(code)
	if !strings.HasPrefix(src, header) {
		t.Error("generated code should start with the generated header")
	}

	// Calls appear in manifest order.
	order := []string{
		"func Home() hxpage.Document",
		`hxpage.New("My \"Page\"")`,
		`Stylesheet("/style.css")`,
		`Icon("/favicon.ico")`,
		`Link(hxpage.Raw("<meta name=\"x\" content=\"y\">"))`,
		`Body(hxpage.Raw("<body><p>hi</p></body>"))`,
		"PlaceBody(hxpage.BodyInsideHTML)",
	}
	rest := src
	for _, want := range order {
		i := strings.Index(rest, want)
		if i == -1 {
			t.Fatalf("missing or out of order %s in\n%s", want, src)
		}
		rest = rest[i+len(want):]
	}
}

func TestSourceMinimal(t *testing.T) {
	g := New(Options{Out: &bytes.Buffer{}})

	code, err := g.Source(manifest.Manifest{Title: "t"})
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}
	src := string(code)
	if !strings.Contains(src, "package main") || !strings.Contains(src, "func Page() hxpage.Document") {
		t.Errorf("unexpected defaults in\n%s", src)
	}
	if !strings.Contains(src, `return hxpage.New("t")`+"\n") {
		t.Errorf("minimal manifest should produce a bare New call:\n%s", src)
	}
}

func TestSourceInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad package", Options{Package: "my-site"}},
		{"bad func", Options{Func: "1Page"}},
		{"blank package", Options{Package: "_"}},
		{"func main", Options{Func: "main"}},
		{"func init", Options{Func: "init"}},
		{"blank func", Options{Func: "_"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Out = &bytes.Buffer{}
			if _, err := New(tt.opts).Source(manifest.Manifest{Title: "t"}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSourceInvalidManifest(t *testing.T) {
	g := New(Options{Out: &bytes.Buffer{}})
	m := manifest.Manifest{Title: "t", Head: []manifest.HeadEntry{{}}}

	if _, err := g.Source(m); err == nil {
		t.Error("expected error for empty head entry")
	}
}

func TestSourceEmptyBody(t *testing.T) {
	g := New(Options{Out: &bytes.Buffer{}})

	code, err := g.Source(manifest.Manifest{Title: "t"}.WithBody(""))
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}
	if !strings.Contains(string(code), `Body(hxpage.Raw(""))`) {
		t.Errorf("explicit empty body should be generated:\n%s", code)
	}
}

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	data, err := manifest.Encode(sampleManifest(), manifest.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "home.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)
	var out bytes.Buffer

	g := New(Options{Package: "site", Out: &out})
	if err := g.Generate(path, ""); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	outPath := filepath.Join(dir, "home_page.go")
	if !strings.Contains(out.String(), "generating "+outPath) {
		t.Errorf("progress output = %q", out.String())
	}
	code, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	if !strings.Contains(string(code), "package site") {
		t.Errorf("unexpected generated code:\n%s", code)
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	g := New(Options{DryRun: true, Out: &bytes.Buffer{}})
	if err := g.Generate(path, ""); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "home_page.go")); !os.IsNotExist(err) {
		t.Error("dry run should not write files")
	}
}

func TestGenerateRefusesHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)
	outPath := filepath.Join(dir, "home_page.go")
	handWritten := []byte("package site\n\nfunc keep() {}\n")
	if err := os.WriteFile(outPath, handWritten, 0o644); err != nil {
		t.Fatal(err)
	}

	g := New(Options{Package: "site", Out: &bytes.Buffer{}})
	err := g.Generate(path, "")
	if !errors.Is(err, ErrNotGenerated) {
		t.Fatalf("Generate() error = %v, want ErrNotGenerated", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, handWritten) {
		t.Errorf("hand-written file was modified:\n%s", got)
	}
}

func TestGenerateReplacesGeneratedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)
	outPath := filepath.Join(dir, "home_page.go")
	if err := os.WriteFile(outPath, []byte(header+"\npackage old\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New(Options{Package: "site", Out: &bytes.Buffer{}})
	if err := g.Generate(path, ""); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	code, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "package site") {
		t.Errorf("generated file was not replaced:\n%s", code)
	}
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	generated := filepath.Join(sub, "home_page.go")
	handWritten := filepath.Join(sub, "other_page.go")
	if err := os.WriteFile(generated, []byte(header+"\npackage main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(handWritten, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New(Options{Out: &bytes.Buffer{}})
	if err := g.Clean(dir + "/..."); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if _, err := os.Stat(generated); !os.IsNotExist(err) {
		t.Error("generated file should be removed")
	}
	if _, err := os.Stat(handWritten); err != nil {
		t.Error("hand-written file should be kept")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"page.yaml", "page_page.go"},
		{"dir/home.msgpack", "dir/home_page.go"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
