package frontmatter

import (
	"bytes"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/zaneops/templates/internal/errors"
)

// Format identifies the encoding of a frontmatter block.
type Format int

const (
	// FormatNone means the content has no frontmatter.
	FormatNone Format = iota
	// FormatYAML is a block delimited by "---".
	FormatYAML
	// FormatTOML is a block delimited by "+++".
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "none"
	}
}

var (
	// ErrMissingFrontmatter is returned by MustParse when no frontmatter is found.
	ErrMissingFrontmatter = errors.New("missing frontmatter")
	// ErrUnterminated indicates an opening delimiter without a closing one.
	ErrUnterminated = errors.New("missing closing frontmatter delimiter")
)

var delimiters = map[string]Format{
	"---": FormatYAML,
	"+++": FormatTOML,
}

// Parse extracts frontmatter into matter and returns the body.
// Content without frontmatter is returned unchanged as the body.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but returns ErrMissingFrontmatter if no
// frontmatter is found.
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading frontmatter")
	}

	format, block, body, err := Split(content)
	if err != nil {
		return nil, err
	}
	if format == FormatNone {
		if required {
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(block, matter); err != nil {
			return nil, errors.Wrap(err, "decoding TOML frontmatter")
		}
	default:
		if err := yaml.Unmarshal(block, matter); err != nil {
			return nil, errors.Wrap(err, "decoding YAML frontmatter")
		}
	}

	return body, nil
}

// Split separates content into its frontmatter block and body without
// decoding the block. Content that does not open with a delimiter line
// yields FormatNone and the whole content as body.
func Split(content []byte) (format Format, block, body []byte, err error) {
	first, rest, _ := cutLine(content)
	format, ok := delimiters[string(bytes.TrimSpace(first))]
	if !ok {
		return FormatNone, nil, content, nil
	}
	delim := bytes.TrimSpace(first)

	start := len(content) - len(rest)
	offset := start
	for len(rest) > 0 {
		line, next, _ := cutLine(rest)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return format, content[start:offset], next, nil
		}
		offset += len(rest) - len(next)
		rest = next
	}

	return FormatNone, nil, nil, ErrUnterminated
}

// cutLine returns the first line of b without its terminator, and the
// remainder after the terminator.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, rest, found
}
