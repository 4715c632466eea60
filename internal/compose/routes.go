package compose

import (
	"slices"
	"strconv"
	"strings"

	"github.com/zaneops/templates/internal/validator"
)

// RouteLabelPrefix starts every HTTP route label.
const RouteLabelPrefix = "zane.http.routes."

// Route is the set of properties declared for one route index.
type Route struct {
	Index int
	Props map[string]string
}

// ParseRoutes groups route labels by index, ascending. Labels that are not
// of the form zane.http.routes.<N>.<prop>, with N written without leading
// zeros, are ignored.
func ParseRoutes(labels map[string]string) []Route {
	byIndex := map[int]map[string]string{}
	for key, value := range labels {
		idx, prop, ok := parseRouteKey(key)
		if !ok {
			continue
		}
		if byIndex[idx] == nil {
			byIndex[idx] = map[string]string{}
		}
		byIndex[idx][prop] = value
	}

	routes := make([]Route, 0, len(byIndex))
	for idx, props := range byIndex {
		routes = append(routes, Route{Index: idx, Props: props})
	}
	slices.SortFunc(routes, func(a, b Route) int { return a.Index - b.Index })
	return routes
}

func parseRouteKey(key string) (int, string, bool) {
	rest, ok := strings.CutPrefix(key, RouteLabelPrefix)
	if !ok {
		return 0, "", false
	}
	num, prop, ok := strings.Cut(rest, ".")
	if !ok || num == "" || prop == "" {
		return 0, "", false
	}
	if len(num) > 1 && num[0] == '0' {
		return 0, "", false
	}
	for _, c := range num {
		if c < '0' || c > '9' {
			return 0, "", false
		}
	}
	idx, err := strconv.Atoi(num)
	if err != nil {
		return 0, "", false
	}
	return idx, prop, true
}

// CheckRouteLabels validates the zane.http.routes.* labels of every service.
func CheckRouteLabels(doc *Document) []validator.Issue {
	var issues []validator.Issue
	for _, svc := range doc.Services {
		issues = append(issues, checkRoutes(svc.Name, ParseRoutes(svc.Labels))...)
	}
	return issues
}

func checkRoutes(service string, routes []Route) []validator.Issue {
	if len(routes) == 0 {
		return nil
	}

	var issues []validator.Issue
	if !sequential(routes) {
		indices := make([]string, len(routes))
		for i, r := range routes {
			indices[i] = strconv.Itoa(r.Index)
		}
		issues = append(issues, validator.Errorf("",
			"service '%s' has non-sequential route indices [%s]. Route indices must start at 0 and increase by 1.",
			service, strings.Join(indices, ", ")))
	}

	for _, r := range routes {
		if strings.TrimSpace(r.Props["domain"]) == "" {
			issues = append(issues, validator.Errorf("",
				"service '%s': route %d is missing required 'domain'", service, r.Index))
		}

		port, hasPort := r.Props["port"]
		switch {
		case !hasPort:
			issues = append(issues, validator.Errorf("",
				"service '%s': route %d is missing required 'port'", service, r.Index))
		case !validPort(port):
			issues = append(issues, validator.Errorf("",
				"service '%s': route %d has invalid 'port' value '%s'. Port must be an integer.",
				service, r.Index, port))
		}

		if sp, ok := r.Props["strip_prefix"]; ok && sp != "true" && sp != "false" {
			issues = append(issues, validator.Errorf("",
				"service '%s': route %d has invalid 'strip_prefix' value '%s'. Must be 'true' or 'false'.",
				service, r.Index, sp))
		}
	}
	return issues
}

// sequential reports whether sorted routes are numbered 0..n-1.
func sequential(routes []Route) bool {
	for i, r := range routes {
		if r.Index != i {
			return false
		}
	}
	return true
}

// validPort accepts unsigned integers, optionally with "_" digit
// separators, and unexpanded placeholders.
func validPort(v string) bool {
	if isPlaceholder(v) {
		return true
	}
	digits := strings.ReplaceAll(v, "_", "")
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
