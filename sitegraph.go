// Package sitegraph indexes a personal site's content into a navigable
// node/edge graph. It parses a category definition file, extracts metadata
// from a tree of HTML documents using layered fallback strategies, and
// synthesizes a graph of owner, category, subcategory and document nodes
// connected by typed edges. The graph is persisted as a JSON snapshot and
// consumed downstream by a keyword search index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., extract/, synth/, sqlite/).
package sitegraph
