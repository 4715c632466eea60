package catalog

import (
	"slices"

	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/pkg/fileutil"
)

// SearchDoc is one document of the search index.
type SearchDoc struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
	LogoURL     *string  `json:"logoUrl"`
}

// Detail is the full description of a template, compose text included.
type Detail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Logo        *string  `json:"logo"`
	LogoURL     *string  `json:"logoUrl"`
	URL         string   `json:"url"`
	Compose     string   `json:"compose"`
}

// SearchDocs builds the search index documents, one per entry.
func SearchDocs(entries []*Entry) []SearchDoc {
	docs := make([]SearchDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, SearchDoc{
			ID:          e.Slug,
			Name:        e.Name,
			Description: e.Description,
			Tags:        e.Tags,
			URL:         e.URL(),
			LogoURL:     optional(e.LogoURL),
		})
	}
	return docs
}

// Tags returns every tag used in the catalog, sorted and de-duplicated.
func Tags(entries []*Entry) []string {
	tags := []string{}
	for _, e := range entries {
		tags = append(tags, e.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// NewDetail reads the entry's compose document and builds its Detail.
func NewDetail(e *Entry) (*Detail, error) {
	data, err := fileutil.ReadFileWithLimit(e.ComposePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading compose document of %s", e.Slug)
	}

	return &Detail{
		ID:          e.Slug,
		Name:        e.Name,
		Description: e.Description,
		Tags:        e.Tags,
		Logo:        optional(e.Logo),
		LogoURL:     optional(e.LogoURL),
		URL:         e.URL(),
		Compose:     string(data),
	}, nil
}

// optional maps "" to a JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
