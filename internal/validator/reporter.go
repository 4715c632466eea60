package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/zaneops/templates/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Newf("unknown format %q (valid: text, json)", s)
	}
}

// Reporter formats and writes validation reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// jsonReport is the wire shape of a JSON report.
type jsonReport struct {
	Valid     bool                 `json:"valid"`
	Templates int                  `json:"templates"`
	Failed    int                  `json:"failed"`
	Errors    map[string]jsonEntry `json:"errors,omitempty"`
}

type jsonEntry struct {
	Path   string   `json:"path"`
	Errors []string `json:"errors"`
}

// Report writes the report to the output.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	default:
		return r.reportText(report)
	}
}

// Pass echoes a single passing template. JSON output has no incremental
// form, so Pass is a no-op there.
func (r *Reporter) Pass(name string) {
	if r.format == FormatJSON {
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", color.GreenString("✓"), name)
}

func (r *Reporter) reportJSON(report *Report) error {
	out := jsonReport{
		Valid:     report.Empty(),
		Templates: report.Checked(),
		Failed:    report.Len(),
	}
	if !report.Empty() {
		out.Errors = make(map[string]jsonEntry, report.Len())
		for _, e := range report.Entries() {
			out.Errors[e.Name] = jsonEntry{Path: e.Path, Errors: e.Result.Messages()}
		}
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(out), "encoding JSON report")
}

func (r *Reporter) reportText(report *Report) error {
	if report.Empty() {
		fmt.Fprintln(r.out, color.GreenString("Validated %d templates, all good.", report.Checked()))
		return nil
	}

	fmt.Fprintf(r.out, "Validation failed: %s in %s\n\n",
		color.RedString("%d error(s)", report.ErrorCount()),
		color.RedString("%d template(s)", report.Len()))

	name := color.New(color.FgRed, color.Bold).SprintFunc()
	path := color.New(color.FgHiBlack).SprintFunc()
	for _, e := range report.Entries() {
		fmt.Fprintf(r.out, "[%s] %s\n", name(e.Name), path(e.Path))
		for _, msg := range e.Result.Messages() {
			fmt.Fprintf(r.out, "  • %s\n", msg)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}
