package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

var genericTitleWords = []string{"home", "untitled", "index", "page", "website"}

// Title audits the page title: presence, length against the 50-60 character
// sweet spot, and genericness.
func Title(doc document.Model, _ *models.Target) models.CategoryResult {
	title := doc.Title()
	if title == "" {
		return models.CategoryResult{
			Score:           0,
			Findings:        []string{"No title tag found"},
			Recommendations: []string{"Add a <title> tag to your <head> section"},
		}
	}

	length := utf8.RuneCountInString(title)
	findings := []string{
		fmt.Sprintf("Title found: '%s'", title),
		fmt.Sprintf("Title length: %d characters", length),
	}
	var recs []string

	var score int
	switch {
	case length >= 50 && length <= 60:
		score = 100
		findings = append(findings, "Title length is optimal for search engines")
	case (length >= 30 && length < 50) || (length > 60 && length <= 70):
		score = 80
		findings = append(findings, "Title length is acceptable but could be improved")
		recs = append(recs, "Aim for 50-60 characters for optimal display")
	case length < 30:
		score = 50
		findings = append(findings, "Title is too short")
		recs = append(recs, "Expand your title to 50-60 characters")
	default:
		score = 60
		findings = append(findings, "Title is too long and may be truncated in search results")
		recs = append(recs, "Shorten your title to 50-60 characters")
	}

	lower := strings.ToLower(title)
	for _, word := range genericTitleWords {
		if strings.Contains(lower, word) {
			score = scoring.Penalty(score, 30)
			findings = append(findings, "Title appears to be generic")
			recs = append(recs, "Use a descriptive, unique title that describes your page content")
			break
		}
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
