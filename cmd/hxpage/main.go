package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const version = "0.1.0"

// Global carries shared state into command Run methods.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI is the hxpage command line.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging" env:"HXPAGE_VERBOSE"`

	Render   RenderCmd   `cmd:"" help:"Render a manifest to an HTML document"`
	Generate GenerateCmd `cmd:"" help:"Generate Go source that builds a manifest's document"`
	Clean    CleanCmd    `cmd:"" help:"Remove generated files (*_page.go)"`
	Version  VersionCmd  `cmd:"" help:"Print version"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Values already in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "error: load .env: %v\n", err)
		return 1
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("hxpage"),
		kong.Description("Compose boilerplate HTML documents from manifests."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := ctx.Run(&Global{Logger: logger, Stdout: stdout}); err != nil {
		logger.Error("Command failed", "command", ctx.Command(), "error", err)
		return 1
	}
	return 0
}
