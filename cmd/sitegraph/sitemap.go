package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/etree"
	"github.com/fwojciec/sitegraph/fs"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	g, err := fs.ReadGraph(c.Graph)
	if err != nil {
		return err
	}

	var w io.Writer = deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.Output, err)
		}
		defer f.Close()
		w = f
	}

	if err := etree.WriteSitemap(w, c.BaseURL, g.Documents()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegraph.ErrorMessage(err))
		return err
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stdout, "OK: wrote %s\n", c.Output)
	}
	return nil
}
