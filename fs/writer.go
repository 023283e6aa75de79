package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitegraph"
)

// MarkdownPath converts a document's relative HTML path to the relative
// markdown path used by the export tree.
// Example: dev/tool.html → dev/tool.md
func MarkdownPath(relPath string) string {
	ext := strings.ToLower(filepath.Ext(relPath))
	if ext == ".html" || ext == ".htm" {
		relPath = relPath[:len(relPath)-len(ext)]
	}
	return relPath + ".md"
}

// FormatDocument formats an exported document with YAML frontmatter carrying
// the graph-derived identity (source path, title, category, tags).
func FormatDocument(doc *sitegraph.Node, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.Path)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Label)
	b.WriteString("\ncategoria: ")
	b.WriteString(doc.Category)
	if doc.Subcategory != "" {
		b.WriteString("\nsubcategoria: ")
		b.WriteString(doc.Subcategory)
	}
	if len(doc.Tags) > 0 {
		b.WriteString("\ntags: ")
		b.WriteString(strings.Join(doc.Tags, ", "))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// Writer writes exported documents as markdown files mirroring the document
// tree under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes under the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes one document node's markdown rendition to disk,
// creating parent directories as needed.
func (w *Writer) WriteDocument(doc *sitegraph.Node, markdown string) error {
	if doc.Path == "" {
		return sitegraph.Errorf(sitegraph.EINVALID, "document node %q has no path", doc.ID)
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(MarkdownPath(doc.Path)))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatDocument(doc, markdown)), 0o644)
}
