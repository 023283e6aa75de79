package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/fs"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	g, err := fs.ReadGraph(c.Graph)
	if err != nil {
		return err
	}

	records := sitegraph.FlattenDocuments(g)

	if err := deps.Index.ReplaceAll(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegraph.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "OK: indexed %d documents into %s\n", len(records), c.DB)
	return nil
}
