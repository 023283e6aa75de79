package mock

import (
	"context"

	"github.com/fwojciec/sitegraph"
)

var _ sitegraph.SearchIndex = (*SearchIndex)(nil)

// SearchIndex is a mock implementation of sitegraph.SearchIndex.
type SearchIndex struct {
	ReplaceAllFn func(ctx context.Context, records []sitegraph.SearchRecord) error
	SearchFn     func(ctx context.Context, query string, limit int) ([]sitegraph.SearchRecord, error)
}

func (s *SearchIndex) ReplaceAll(ctx context.Context, records []sitegraph.SearchRecord) error {
	return s.ReplaceAllFn(ctx, records)
}

func (s *SearchIndex) Search(ctx context.Context, query string, limit int) ([]sitegraph.SearchRecord, error) {
	return s.SearchFn(ctx, query, limit)
}
