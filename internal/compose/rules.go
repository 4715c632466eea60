package compose

import (
	"fmt"
	"strings"

	"github.com/zaneops/templates/internal/validator"
)

// Rule inspects a decoded document and reports what it finds.
// Rules must not modify the document.
type Rule func(doc *Document) []validator.Issue

// DefaultRules is the rule set applied to every template, in order.
var DefaultRules = []Rule{
	CheckBindMounts,
	CheckConfigTargets,
	CheckConfigContent,
	CheckRouteLabels,
}

// Evaluate runs rules over doc and concatenates their findings.
// DefaultRules is used when no rules are given.
func Evaluate(doc *Document, rules ...Rule) []validator.Issue {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	var issues []validator.Issue
	for _, rule := range rules {
		issues = append(issues, rule(doc)...)
	}
	return issues
}

// CheckBindMounts reports every bind mount whose host path is relative.
func CheckBindMounts(doc *Document) []validator.Issue {
	var issues []validator.Issue
	for _, svc := range doc.Services {
		for _, vol := range svc.Volumes {
			if !vol.IsBind() || !vol.HasSource || isPlaceholder(vol.Source) {
				continue
			}
			if IsAbsolute(vol.Source) {
				continue
			}
			issue := validator.Errorf("",
				"service '%s' has a bind volume with relative source path '%s'. Only absolute paths are supported for bind mounts.",
				svc.Name, vol.Source)
			issue.Context = map[string]string{"service": svc.Name, "target": vol.Target}
			issues = append(issues, issue)
		}
	}
	return issues
}

// CheckConfigTargets reports configs of the same service mounted on the
// same target. Each clashing target is reported once, in the order it was
// first seen.
func CheckConfigTargets(doc *Document) []validator.Issue {
	var issues []validator.Issue
	for _, svc := range doc.Services {
		var order []string
		sources := map[string][]string{}
		for _, ref := range svc.Configs {
			if _, seen := sources[ref.Target]; !seen {
				order = append(order, ref.Target)
			}
			sources[ref.Target] = append(sources[ref.Target], ref.Source)
		}

		for _, target := range order {
			names := sources[target]
			if len(names) < 2 {
				continue
			}
			quoted := make([]string, len(names))
			for i, n := range names {
				quoted[i] = "'" + n + "'"
			}
			issue := validator.Errorf("",
				"service '%s' has configs %s pointing to the same target '%s'.",
				svc.Name, strings.Join(quoted, " and "), target)
			issue.Context = map[string]string{"service": svc.Name, "target": target}
			issues = append(issues, issue)
		}
	}
	return issues
}

// CheckConfigContent rejects top-level configs that point at a file.
// Templates must inline the config with "content".
func CheckConfigContent(doc *Document) []validator.Issue {
	var issues []validator.Issue
	for _, name := range sortedKeys(doc.Configs) {
		cfg, ok := asMap(doc.Configs[name])
		if !ok {
			continue
		}
		if _, hasFile := cfg["file"]; hasFile {
			issues = append(issues, validator.Errorf(
				fmt.Sprintf("%s.%s", keyConfigs, name),
				"Additional property 'file' is not allowed, please use 'content' instead."))
		}
	}
	return issues
}
