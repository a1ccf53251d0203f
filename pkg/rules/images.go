package rules

import (
	"fmt"
	"strings"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Images audits alt-text coverage plus lazy-loading and modern-format hints.
// A page without images scores 100: there is nothing to violate.
func Images(doc document.Model, _ *models.Target) models.CategoryResult {
	images := doc.Images()
	total := len(images)

	findings := []string{fmt.Sprintf("Found %d image(s)", total)}

	if total == 0 {
		findings = append(findings, "No images on page - no image requirements apply")
		return models.CategoryResult{Score: 100, Findings: findings}
	}

	var missingAlt, emptyAlt, lazyLoaded, modernFormat int
	for _, img := range images {
		switch {
		case !img.HasAlt:
			missingAlt++
		case strings.TrimSpace(img.Alt) == "":
			emptyAlt++
		}
		if img.Loading == "lazy" {
			lazyLoaded++
		}
		src := strings.ToLower(img.Src)
		if strings.Contains(src, ".webp") || strings.Contains(src, ".avif") {
			modernFormat++
		}
	}
	withAlt := total - missingAlt - emptyAlt

	findings = append(findings, fmt.Sprintf("Images with alt text: %d/%d", withAlt, total))
	if missingAlt > 0 {
		findings = append(findings, fmt.Sprintf("Missing alt attributes: %d", missingAlt))
	}
	if emptyAlt > 0 {
		findings = append(findings, fmt.Sprintf("Empty alt attributes: %d", emptyAlt))
	}

	score := withAlt * 100 / total

	var recs []string
	if missingAlt > 0 {
		score = scoring.Penalty(score, 10)
		recs = append(recs, fmt.Sprintf("Add alt attributes to %d image(s)", missingAlt))
	}
	if emptyAlt > 0 {
		score = scoring.Penalty(score, 5)
		recs = append(recs, fmt.Sprintf("Add descriptive alt text to %d image(s)", emptyAlt))
	}

	if lazyLoaded > 0 {
		findings = append(findings, fmt.Sprintf("Lazy-loaded images: %d/%d", lazyLoaded, total))
	}
	if lazyLoaded*2 < total && total > 5 {
		recs = append(recs, "Consider adding loading='lazy' to images below the fold")
	}

	if modernFormat > 0 {
		findings = append(findings, fmt.Sprintf("Modern image formats (WebP/AVIF): %d/%d", modernFormat, total))
	} else {
		recs = append(recs, "Consider using WebP format for better compression")
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
