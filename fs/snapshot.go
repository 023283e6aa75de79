// Package fs provides file-based persistence for the site graph: the JSON
// snapshot read/written each run and the markdown export writer.
package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitegraph"
)

// ReadGraph reads a graph snapshot. A missing or malformed snapshot yields
// an empty graph rather than an error: the snapshot is derived state that
// the next build rewrites wholesale, and the only thing recovered from it is
// the authored owner node.
func ReadGraph(path string) (*sitegraph.Graph, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &sitegraph.Graph{}, nil
	}
	if err != nil {
		return nil, err
	}

	var g sitegraph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return &sitegraph.Graph{}, nil
	}
	return &g, nil
}

// WriteGraph persists a graph snapshot atomically: the JSON is written to a
// temporary file in the target directory and renamed into place, so either
// the full graph is written or the previous snapshot survives untouched.
func WriteGraph(path string, g *sitegraph.Graph) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".graph-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// CreateTemp makes the file 0600; the snapshot is a published artifact.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
