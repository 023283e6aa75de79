package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitegraph/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	g, err := fs.ReadGraph(c.Graph)
	if err != nil {
		return err
	}

	writer := fs.NewWriter(c.Out)

	var exported, skipped int
	for _, doc := range g.Documents() {
		html, err := os.ReadFile(filepath.Join(c.Docs, filepath.FromSlash(doc.Path)))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", doc.Path, err)
			skipped++
			continue
		}

		content, err := deps.Content.Select(string(html))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", doc.Path, err)
			skipped++
			continue
		}

		markdown, err := deps.Converter.Convert(content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", doc.Path, err)
			skipped++
			continue
		}

		if err := writer.WriteDocument(&doc, markdown); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", doc.Path, err)
			skipped++
			continue
		}
		exported++
	}

	fmt.Fprintf(deps.Stdout, "OK: exported %d documents to %s (%d skipped)\n", exported, c.Out, skipped)
	return nil
}
