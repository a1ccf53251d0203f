package rules

import (
	"fmt"
	"strings"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
)

// Schema audits JSON-LD structured data. The score is keyed to the number of
// blocks that actually parse; unparsable blocks count as zero valid entries.
func Schema(doc document.Model, _ *models.Target) models.CategoryResult {
	blocks, total := doc.JSONLD()

	findings := []string{fmt.Sprintf("Found %d JSON-LD script(s)", total)}

	if total == 0 {
		return models.CategoryResult{
			Score:    0,
			Findings: append(findings, "No structured data found"),
			Recommendations: []string{
				"Add JSON-LD structured data for better search visibility",
				"Consider Organization, WebSite, or Article schema types",
			},
		}
	}

	if len(blocks) == 0 {
		return models.CategoryResult{
			Score:           0,
			Findings:        append(findings, "No JSON-LD block contains valid JSON"),
			Recommendations: []string{"Fix the JSON syntax in your ld+json script tags"},
		}
	}

	score := 40 + len(blocks)*20
	if score > 100 {
		score = 100
	}

	var types []string
	for _, b := range blocks {
		types = append(types, b.Types...)
	}
	if len(types) > 0 {
		if len(types) > 5 {
			types = types[:5]
		}
		findings = append(findings, fmt.Sprintf("Schema types found: %s", strings.Join(types, ", ")))
	}

	if n := doc.MicrodataCount(); n > 0 {
		findings = append(findings, fmt.Sprintf("Also found %d microdata element(s)", n))
	}

	var recs []string
	if total < 2 {
		recs = append(recs, "Consider adding more structured data types (BreadcrumbList, Article, etc.)")
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
