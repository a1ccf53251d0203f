// Package render turns an AuditReport into terminal, Markdown, JSON, or YAML
// output. Renderers never mutate the report.
package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/siteroast/siteroast/models"
)

// CategoryDocument is the per-category entry of the machine-readable report.
type CategoryDocument struct {
	Name            string   `json:"name" yaml:"name"`
	Score           int      `json:"score" yaml:"score"`
	Findings        []string `json:"findings" yaml:"findings"`
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Comment         string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Document is the machine-readable report layout. The key set and the
// category keys are an external contract; downstream tooling parses them.
type Document struct {
	URL            string                      `json:"url" yaml:"url"`
	DurationMS     int64                       `json:"duration_ms" yaml:"duration_ms"`
	OverallScore   int                         `json:"overall_score" yaml:"overall_score"`
	OverallGrade   string                      `json:"overall_grade" yaml:"overall_grade"`
	OverallComment string                      `json:"overall_comment,omitempty" yaml:"overall_comment,omitempty"`
	Categories     map[string]CategoryDocument `json:"categories" yaml:"categories"`
}

// NewDocument flattens an AuditReport into the wire layout.
func NewDocument(rep *models.AuditReport) Document {
	doc := Document{
		URL:            rep.URL,
		DurationMS:     rep.Duration.Milliseconds(),
		OverallScore:   rep.OverallScore,
		OverallGrade:   rep.OverallGrade,
		OverallComment: rep.OverallComment,
		Categories:     make(map[string]CategoryDocument, len(rep.Results)),
	}
	for _, res := range rep.Results {
		findings := res.Findings
		if findings == nil {
			findings = []string{}
		}
		doc.Categories[string(res.Key)] = CategoryDocument{
			Name:            res.Name,
			Score:           res.Score,
			Findings:        findings,
			Recommendations: res.Recommendations,
			Comment:         res.Comment,
		}
	}
	return doc
}

// JSON renders the report as indented JSON.
func JSON(rep *models.AuditReport) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(rep), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// YAML renders the report with the same layout as JSON, YAML-encoded.
func YAML(rep *models.AuditReport) ([]byte, error) {
	data, err := yaml.Marshal(NewDocument(rep))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// ParseDocument decodes a JSON report back into its document form.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse report: %w", err)
	}
	return doc, nil
}
