package compose

import (
	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/validator"
)

// Check runs the loader, the schema and the rules over the compose file at
// path. Loader and schema failures stop the pipeline; rule findings are all
// collected.
func Check(path string) *validator.Result {
	result := &validator.Result{}

	raw, err := Load(path)
	if err != nil {
		result.Add(loadIssue(err))
		return result
	}

	doc, issues := Decode(raw)
	if len(issues) > 0 {
		result.Add(issues...)
		return result
	}

	result.Add(Evaluate(doc)...)
	return result
}

func loadIssue(err error) validator.Issue {
	var parseErr *ParseError
	switch {
	case errors.Is(err, ErrMissingFile):
		return validator.Errorf("", "missing compose.yml")
	case errors.As(err, &parseErr):
		return validator.Errorf("", "%s", parseErr.Error())
	default:
		return validator.Errorf("", "%s", err.Error())
	}
}
