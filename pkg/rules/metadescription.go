package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

var genericDescriptionPhrases = []string{"this is a website", "welcome to", "click here", "learn more"}

// MetaDescription audits the description meta tag: presence and length
// against the 150-160 character sweet spot.
func MetaDescription(doc document.Model, _ *models.Target) models.CategoryResult {
	content, ok := doc.Meta("description")
	if !ok {
		return models.CategoryResult{
			Score:           0,
			Findings:        []string{"No meta description found"},
			Recommendations: []string{"Add a meta description: <meta name='description' content='...'>"},
		}
	}

	content = strings.TrimSpace(content)
	length := utf8.RuneCountInString(content)
	findings := []string{
		"Meta description found",
		fmt.Sprintf("Description length: %d characters", length),
	}

	if content == "" {
		return models.CategoryResult{
			Score:           10,
			Findings:        append(findings, "Meta description is empty"),
			Recommendations: []string{"Add meaningful content to your meta description"},
		}
	}

	var recs []string
	var score int
	switch {
	case length >= 150 && length <= 160:
		score = 100
		findings = append(findings, "Description length is optimal")
	case (length >= 120 && length < 150) || (length > 160 && length <= 170):
		score = 85
		findings = append(findings, "Description length is good")
		recs = append(recs, "Aim for 150-160 characters for optimal display")
	case length < 120:
		score = 60
		findings = append(findings, "Description is too short")
		recs = append(recs, "Expand your description to 150-160 characters")
	default:
		score = 70
		findings = append(findings, "Description is too long and may be truncated")
		recs = append(recs, "Shorten your description to 150-160 characters")
	}

	lower := strings.ToLower(content)
	for _, phrase := range genericDescriptionPhrases {
		if strings.Contains(lower, phrase) {
			score = scoring.Penalty(score, 20)
			findings = append(findings, "Description appears to be generic")
			recs = append(recs, "Write a compelling, unique description that entices clicks")
			break
		}
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
