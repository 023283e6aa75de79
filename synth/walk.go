package synth

import (
	"context"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitegraph"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// document is one walked file with its extraction result. Meta is nil when
// the document carries no recognizable metadata.
type document struct {
	RelPath string
	Meta    *sitegraph.Metadata
	Hash    string
}

// collectDocuments enumerates every .htm/.html file under root in sorted
// walk order and extracts metadata for each. Extraction runs in parallel;
// each file produces an isolated result slot, so no shared state is touched
// until the sequential aggregation afterwards. An unreadable file is skipped
// with a warning; a missing root yields an empty document set.
func (s *Synthesizer) collectDocuments(ctx context.Context, root string) ([]document, error) {
	logger := s.logger()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				logger.Warn("document root not readable", "path", root, "error", err)
				return filepath.SkipAll
			}
			logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !isHTML(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]*document, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, rel := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				logger.Warn("skipping unreadable document", "path", rel, "error", err)
				return nil
			}
			results[i] = &document{
				RelPath: rel,
				Meta:    s.Extractor.Extract(string(data)),
				Hash:    hashContent(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Single aggregation pass preserving walk order.
	docs := make([]document, 0, len(results))
	for _, r := range results {
		if r != nil {
			docs = append(docs, *r)
		}
	}
	return docs, nil
}

func isHTML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}

// hashContent computes the xxHash of a document's content as a hex string.
func hashContent(data []byte) string {
	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// defaultTitle derives a display title from a file name: extension stripped,
// separator runs replaced with spaces, each word capitalized.
func defaultTitle(relPath string) string {
	base := relPath
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if ext := strings.ToLower(filepath.Ext(base)); ext == ".html" || ext == ".htm" {
		base = base[:len(base)-len(ext)]
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
