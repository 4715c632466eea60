// Package catalog reads template metadata from each template's index.md and
// derives the documents served by the catalog site: the search index, the
// tag list and per-template detail.
package catalog
