package rules

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Widths of four or more digits in inline styles break small screens.
var largeFixedWidth = regexp.MustCompile(`(?i)width\s*:\s*\d{4,}px`)

// Mobile audits mobile responsiveness: viewport meta presence and content,
// media-query hints, and large fixed-width indicators in the raw HTML.
func Mobile(doc document.Model, target *models.Target) models.CategoryResult {
	var findings, recs []string
	score := 100

	viewport, ok := doc.Meta("viewport")
	if !ok {
		score = scoring.Penalty(score, 40)
		findings = append(findings, "No viewport meta tag found")
		recs = append(recs, "Add: <meta name='viewport' content='width=device-width, initial-scale=1'>")
	} else {
		findings = append(findings, fmt.Sprintf("Viewport found: %s", viewport))
		if !strings.Contains(viewport, "width=device-width") {
			score = scoring.Penalty(score, 20)
			findings = append(findings, "Viewport missing 'width=device-width'")
			recs = append(recs, "Add width=device-width to viewport content")
		}
	}

	if n := bytes.Count(target.Body, []byte("@media")); n > 0 {
		findings = append(findings, fmt.Sprintf("Found %d media query references", n))
	}

	if largeFixedWidth.Match(target.Body) {
		score = scoring.Penalty(score, 15)
		findings = append(findings, "Fixed widths >1000px detected - may cause horizontal scrolling on mobile")
		recs = append(recs, "Use relative units (%, vw, rem) instead of large fixed pixel widths")
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
