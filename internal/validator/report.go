package validator

import (
	"sort"
	"sync"
)

// Entry holds the findings recorded for one template.
type Entry struct {
	// Name is the template directory name.
	Name string
	// Path is the compose document the findings refer to.
	Path string
	// Result holds the findings in the order they were produced.
	Result *Result
}

// Report is the outcome of one validation run.
type Report struct {
	mu      sync.Mutex
	entries map[string]*Entry
	checked int
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{entries: make(map[string]*Entry)}
}

// Add records the result of checking one template and reports whether the
// template failed. Results without errors leave no entry.
func (r *Report) Add(name, path string, result *Result) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.checked++
	if !result.HasErrors() {
		return false
	}
	r.entries[name] = &Entry{Name: name, Path: path, Result: result}
	return true
}

// Checked returns how many templates have been added, passing or not.
func (r *Report) Checked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checked
}

// Empty reports whether no template failed.
func (r *Report) Empty() bool {
	return r.Len() == 0
}

// Len returns the number of failed templates.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Entry returns the entry for name, if the template failed.
func (r *Report) Entry(name string) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	return e, ok
}

// Entries returns the failed templates sorted by name.
func (r *Report) Entries() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ErrorCount returns the total number of errors across all templates.
func (r *Report) ErrorCount() int {
	n := 0
	for _, e := range r.Entries() {
		n += len(e.Result.Errors())
	}
	return n
}
