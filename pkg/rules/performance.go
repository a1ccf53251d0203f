package rules

import (
	"fmt"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Performance audits page weight and the number of external resources. Both
// reduce the score monotonically through fixed thresholds.
func Performance(doc document.Model, target *models.Target) models.CategoryResult {
	var findings, recs []string
	score := 100

	sizeKB := float64(len(target.Body)) / 1024
	findings = append(findings, fmt.Sprintf("Page size: %.1f KB", sizeKB))

	switch {
	case sizeKB > 2000:
		score = scoring.Penalty(score, 30)
		findings = append(findings, "Page is very large (>2MB)")
		recs = append(recs, "Optimize images and minify CSS/JS to reduce page size")
	case sizeKB > 1000:
		score = scoring.Penalty(score, 15)
		findings = append(findings, "Page is quite large (>1MB)")
		recs = append(recs, "Consider compressing images and lazy loading")
	case sizeKB > 500:
		score = scoring.Penalty(score, 5)
		findings = append(findings, "Page is moderately large")
	}

	cssCount := len(doc.Stylesheets())
	jsCount := len(doc.ScriptSources())
	imgCount := len(doc.Images())
	findings = append(findings, fmt.Sprintf("External resources: %d CSS, %d JS, %d images", cssCount, jsCount, imgCount))

	totalExternal := cssCount + jsCount
	switch {
	case totalExternal > 20:
		score = scoring.Penalty(score, 15)
		findings = append(findings, fmt.Sprintf("Excessive external resources (%d)", totalExternal))
		recs = append(recs, "Combine and minify CSS/JS files to reduce HTTP requests")
	case totalExternal > 10:
		score = scoring.Penalty(score, 5)
		findings = append(findings, "Many external resources")
		recs = append(recs, "Consider combining some CSS/JS files")
	}

	var blockingCSS int
	for _, s := range doc.Stylesheets() {
		if s.Media != "print" {
			blockingCSS++
		}
	}
	if blockingCSS > 3 {
		recs = append(recs, "Consider loading non-critical CSS asynchronously")
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
