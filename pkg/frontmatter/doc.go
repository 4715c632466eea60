// Package frontmatter parses the metadata block at the top of Markdown
// files, such as a template's index.md.
//
// Two delimiters are recognized on the first line of the file:
//
//	---            YAML (gopkg.in/yaml.v3)
//	+++            TOML (github.com/pelletier/go-toml/v2)
//
// The block ends at the next line consisting only of the same delimiter.
// Everything after it is returned as the body. LF and CRLF line endings are
// both accepted.
//
//	var meta struct {
//		Name string `yaml:"name" toml:"name"`
//	}
//	body, err := frontmatter.MustParse(f, &meta)
//	if errors.Is(err, frontmatter.ErrMissingFrontmatter) {
//		// plain markdown
//	}
package frontmatter
