package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/fs"
	"github.com/fwojciec/sitegraph/synth"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Categories)
	if err != nil {
		if os.IsNotExist(err) {
			err = sitegraph.Errorf(sitegraph.ENOTFOUND, "categories file not found: %s", c.Categories)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegraph.ErrorMessage(err))
		return err
	}

	cats := sitegraph.ParseCategories(string(data))
	if len(cats) == 0 {
		err := sitegraph.Errorf(sitegraph.EINVALID, "no categories declared in %s", c.Categories)
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegraph.ErrorMessage(err))
		return err
	}

	// The previous snapshot only contributes the owner node; a missing or
	// malformed file reads as an empty graph.
	prev, err := fs.ReadGraph(c.Output)
	if err != nil {
		return err
	}

	s := &synth.Synthesizer{
		Extractor:   deps.Extractor,
		Logger:      deps.Logger,
		Concurrency: c.Concurrency,
	}

	g, err := s.Synthesize(deps.Ctx, prev, cats, c.Docs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegraph.ErrorMessage(err))
		return err
	}

	if err := fs.WriteGraph(c.Output, g); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "OK: wrote %s (nodes: %d, links: %d)\n", c.Output, len(g.Nodes), len(g.Links))
	return nil
}
