// Package slog provides logging decorators for sitegraph services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitegraph"
)

// Ensure LoggingExtractor implements sitegraph.MetadataExtractor.
var _ sitegraph.MetadataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MetadataExtractor with debug logging.
type LoggingExtractor struct {
	next   sitegraph.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitegraph.MetadataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc string) *sitegraph.Metadata {
	begin := time.Now()
	meta := e.next.Extract(doc)

	if meta == nil {
		e.logger.Debug("extract",
			slog.Bool("found", false),
			slog.Duration("duration", time.Since(begin)))
		return nil
	}

	e.logger.Debug("extract",
		slog.Bool("found", true),
		slog.String("category", meta.Category),
		slog.String("subcategory", meta.Subcategory),
		slog.Int("tags", len(meta.Tags)),
		slog.Duration("duration", time.Since(begin)))
	return meta
}
