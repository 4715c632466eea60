package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/logging"
	"github.com/zaneops/templates/internal/paths"
	"github.com/zaneops/templates/internal/template"
	"github.com/zaneops/templates/pkg/frontmatter"
)

// ErrMissingName indicates index.md frontmatter without a name.
var ErrMissingName = errors.New("frontmatter is missing 'name'")

// Metadata is the frontmatter of a template's index.md.
type Metadata struct {
	Name        string   `yaml:"name" toml:"name"`
	Slug        string   `yaml:"slug" toml:"slug"`
	Description string   `yaml:"description" toml:"description"`
	Tags        []string `yaml:"tags" toml:"tags"`
	Logo        string   `yaml:"logo" toml:"logo"`
	LogoURL     string   `yaml:"logoUrl" toml:"logoUrl"`
	GithubURL   string   `yaml:"githubUrl" toml:"githubUrl"`
	DocsURL     string   `yaml:"docsUrl" toml:"docsUrl"`
	WebsiteURL  string   `yaml:"websiteUrl" toml:"websiteUrl"`
}

// Entry is a template that has catalog metadata.
type Entry struct {
	Metadata
	// Dir is the template's directory name under the root.
	Dir string
	// ComposePath is the path to the template's compose.yml.
	ComposePath string
}

// URL is the site path of the template page.
func (e *Entry) URL() string {
	return "/templates/" + e.Slug
}

// Load reads the metadata of every template under root, in directory order.
// Templates without an index.md are skipped. A template whose frontmatter
// cannot be decoded fails the whole load.
func Load(ctx context.Context, root string) ([]*Entry, error) {
	logger := logging.FromContext(ctx)

	names, err := template.Enumerate(root)
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for _, name := range names {
		if info, err := os.Stat(paths.TemplateDir(root, name)); err != nil || !info.IsDir() {
			continue
		}
		entry, err := LoadEntry(root, name)
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("skipping template without index", "template", name)
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadEntry reads the metadata of a single template.
func LoadEntry(root, name string) (*Entry, error) {
	path := paths.IndexFile(root, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "template %s", name)
	}
	defer f.Close()

	var meta Metadata
	if _, err := frontmatter.MustParse(f, &meta); err != nil {
		return nil, errors.Wrapf(err, "template %s: %s", name, filepath.Base(path))
	}

	meta.Name = strings.TrimSpace(meta.Name)
	if meta.Name == "" {
		return nil, errors.Wrapf(ErrMissingName, "template %s", name)
	}
	if meta.Slug == "" {
		meta.Slug = name
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}

	return &Entry{
		Metadata:    meta,
		Dir:         name,
		ComposePath: paths.ComposeFile(root, name),
	}, nil
}

// Find returns the entry with the given slug.
func Find(entries []*Entry, slug string) (*Entry, error) {
	for _, e := range entries {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "%s", slug)
}
