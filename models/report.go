package models

import "time"

// CategoryResult holds the outcome of a single audit category. Findings are
// ordered: existence checks first, then length/quality checks, then auxiliary
// checks. Recommendations are only rendered in verbose mode.
type CategoryResult struct {
	Key             Category `json:"-" yaml:"-"`
	Name            string   `json:"name" yaml:"name"`
	Score           int      `json:"score" yaml:"score"`
	Findings        []string `json:"findings" yaml:"findings"`
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Comment         string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	// Context is an extra category-specific quip, roast mode only.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// AuditReport is the sole output artifact of an audit run. Results always
// contains exactly one entry per category, in CategoryOrder.
type AuditReport struct {
	URL            string
	FetchedAt      time.Time
	Duration       time.Duration
	Results        []CategoryResult
	OverallScore   int
	OverallGrade   string
	OverallComment string
}

// Result returns the entry for the given category, or nil if absent.
func (r *AuditReport) Result(key Category) *CategoryResult {
	for i := range r.Results {
		if r.Results[i].Key == key {
			return &r.Results[i]
		}
	}
	return nil
}
