package sitegraph

// Metadata holds the fields a document may declare about itself. Any field
// may be empty; a nil *Metadata means no strategy found anything, which is a
// legitimate outcome rather than an error.
type Metadata struct {
	Title       string
	Category    string
	Subcategory string
	Tags        []string
}

// Empty reports whether no field is populated.
func (m *Metadata) Empty() bool {
	return m.Title == "" && m.Category == "" && m.Subcategory == "" && len(m.Tags) == 0
}

// MetadataExtractor extracts declared metadata from a document's raw text.
// Implementations examine only a bounded prefix of the document and must not
// build a DOM; they return nil when no strategy yields a single field.
type MetadataExtractor interface {
	Extract(doc string) *Metadata
}
