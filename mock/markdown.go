package mock

import "github.com/fwojciec/sitegraph"

var _ sitegraph.ContentSelector = (*ContentSelector)(nil)

// ContentSelector is a mock implementation of sitegraph.ContentSelector.
type ContentSelector struct {
	SelectFn func(html string) (string, error)
}

func (s *ContentSelector) Select(html string) (string, error) {
	return s.SelectFn(html)
}

var _ sitegraph.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitegraph.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
