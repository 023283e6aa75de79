// Package mock provides hand-written mocks for sitegraph interfaces.
package mock

import "github.com/fwojciec/sitegraph"

var _ sitegraph.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of sitegraph.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(doc string) *sitegraph.Metadata
}

func (e *MetadataExtractor) Extract(doc string) *sitegraph.Metadata {
	return e.ExtractFn(doc)
}
