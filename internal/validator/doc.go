// Package validator holds the vocabulary shared by every check ztpl runs.
//
// # Core Concepts
//
//   - [Issue]: a single finding, optionally anchored to a dotted field path
//     such as "services.web.image".
//   - [Result]: the ordered findings for one template.
//   - [Report]: the findings of a whole run, keyed by template name. Only
//     templates with at least one error have an entry.
//   - [Reporter]: renders a Report as grouped text or JSON.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	result.AddError("services.web", "must be an object", nil)
//
//	report := validator.NewReport()
//	report.Add("foo", "/templates/foo/compose.yml", result)
//	if !report.Empty() {
//		_ = validator.NewReporter(os.Stdout, validator.FormatText).Report(report)
//	}
//
// A Report is safe for concurrent use; a template's Result is added in a
// single call so findings of different templates never interleave.
package validator
