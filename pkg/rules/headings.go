package rules

import (
	"fmt"
	"strings"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Headings audits the heading structure: exactly one H1, supporting H2/H3,
// and a hierarchy without skipped levels.
func Headings(doc document.Model, _ *models.Target) models.CategoryResult {
	headings := doc.Headings()

	var h1s []document.Heading
	var h2Count, h3Count int
	for _, h := range headings {
		switch h.Level {
		case 1:
			h1s = append(h1s, h)
		case 2:
			h2Count++
		case 3:
			h3Count++
		}
	}

	findings := []string{fmt.Sprintf("Found %d H1, %d H2, %d H3 tags", len(h1s), h2Count, h3Count)}
	var recs []string
	score := 100

	switch {
	case len(h1s) == 0:
		score = scoring.Penalty(score, 40)
		findings = append(findings, "No H1 tag found - every page needs one main heading")
		recs = append(recs, "Add an H1 tag that describes your main content")
	case len(h1s) > 1:
		score = scoring.Penalty(score, 20)
		findings = append(findings, fmt.Sprintf("Multiple H1 tags found (%d). Use only one H1 per page.", len(h1s)))
		recs = append(recs, "Consolidate to a single H1 tag")
	default:
		if text := h1s[0].Text; text != "" {
			findings = append(findings, fmt.Sprintf("H1 content: '%s...'", truncate(text, 50)))
		} else {
			score = scoring.Penalty(score, 15)
			findings = append(findings, "H1 tag is empty")
			recs = append(recs, "Add text content to your H1 tag")
		}
	}

	var skipped []string
	prev := 0
	for _, h := range headings {
		if h.Level > prev+1 {
			skipped = append(skipped, fmt.Sprintf("H%d -> H%d", prev, h.Level))
		}
		prev = h.Level
	}
	if len(skipped) > 0 {
		score = scoring.Penalty(score, 10)
		if len(skipped) > 3 {
			skipped = skipped[:3]
		}
		findings = append(findings, fmt.Sprintf("Skipped heading levels detected: %s", strings.Join(skipped, ", ")))
		recs = append(recs, "Maintain proper heading hierarchy (don't skip from H1 to H3)")
	}

	if len(headings) == 0 {
		score = 0
		findings = append(findings, "No heading tags found at all")
		recs = append(recs, "Structure your content with proper heading tags (H1-H6)")
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
