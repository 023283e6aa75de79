package sitegraph

// ContentSelector picks the main content out of a full HTML page, dropping
// chrome such as navigation, headers and scripts. Used by the export
// pipeline, not by metadata extraction.
type ContentSelector interface {
	// Select returns the main content as an HTML fragment.
	Select(html string) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}
