package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitegraph"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor sitegraph.MetadataExtractor
	Index     sitegraph.SearchIndex
	Content   sitegraph.ContentSelector
	Converter sitegraph.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Build   BuildCmd   `cmd:"" help:"Build the graph snapshot from categories and documents"`
	Search  SearchCmd  `cmd:"" help:"Search documents by keyword"`
	Index   IndexCmd   `cmd:"" help:"Write graph documents into a SQLite search index"`
	Export  ExportCmd  `cmd:"" help:"Export documents as Markdown files"`
	Sitemap SitemapCmd `cmd:"" help:"Generate a sitemap.xml for graph documents"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Categories  string `arg:"" help:"Categories text file"`
	Docs        string `short:"d" default:"docs" help:"Document tree root"`
	Output      string `short:"o" default:"graph.json" help:"Graph snapshot path (also read for owner carry-over)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Query terms"`
	Graph string   `short:"g" default:"graph.json" help:"Graph snapshot path"`
	DB    string   `help:"Search a SQLite index instead of the graph snapshot"`
	Limit int      `short:"n" default:"10" help:"Maximum number of results"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Graph string `short:"g" default:"graph.json" help:"Graph snapshot path"`
	DB    string `default:"index.db" help:"SQLite index path"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Graph string `short:"g" default:"graph.json" help:"Graph snapshot path"`
	Docs  string `short:"d" default:"docs" help:"Document tree root"`
	Out   string `short:"o" default:"export" help:"Output directory for Markdown files"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	BaseURL string `arg:"" help:"Absolute base URL of the published site"`
	Graph   string `short:"g" default:"graph.json" help:"Graph snapshot path"`
	Output  string `short:"o" help:"Write to a file instead of stdout"`
}
