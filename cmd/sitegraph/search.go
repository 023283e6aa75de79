package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/fs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	var (
		results []sitegraph.SearchRecord
		err     error
	)
	if deps.Index != nil {
		results, err = deps.Index.Search(deps.Ctx, query, c.Limit)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitegraph.ErrorMessage(err))
			return err
		}
	} else {
		g, readErr := fs.ReadGraph(c.Graph)
		if readErr != nil {
			return readErr
		}
		results = sitegraph.SearchRecords(sitegraph.FlattenDocuments(g), query, c.Limit)
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Title, r.URL)
	}

	return nil
}
