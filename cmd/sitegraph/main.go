package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/extract"
	"github.com/fwojciec/sitegraph/goquery"
	"github.com/fwojciec/sitegraph/htmltomarkdown"
	sgslog "github.com/fwojciec/sitegraph/slog"
	"github.com/fwojciec/sitegraph/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the search index when one is requested.
	DB *sqlite.DB

	// Services overridable for end-to-end testing. Nil fields are wired
	// with the real implementations in Run.
	Extractor sitegraph.MetadataExtractor
	Index     sitegraph.SearchIndex
	Content   sitegraph.ContentSelector
	Converter sitegraph.Converter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitegraph"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitegraph --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Extractor = m.Extractor
	if deps.Extractor == nil {
		deps.Extractor = sgslog.NewLoggingExtractor(extract.NewExtractor(), deps.Logger)
	}
	deps.Content = m.Content
	if deps.Content == nil {
		deps.Content = goquery.NewContentSelector()
	}
	deps.Converter = m.Converter
	if deps.Converter == nil {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	// The search index is only wired when a command asks for a database.
	deps.Index = m.Index
	if deps.Index == nil {
		if dbPath := indexDBPath(kongCtx.Command(), cli); dbPath != "" {
			m.DB = sqlite.NewDB(dbPath)
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
			}
			defer m.Close()
			deps.Index = sqlite.NewRecordService(m.DB)
		}
	}

	return kongCtx.Run(deps)
}

// indexDBPath returns the database path the selected command needs, or ""
// when the command runs without one. command is kong's resolved command
// string ("index", "search <query>", ...), not a raw argument.
func indexDBPath(command string, cli *CLI) string {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "index":
		return cli.Index.DB
	case "search":
		return cli.Search.DB
	}
	return ""
}
