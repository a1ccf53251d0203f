package rules

import (
	"fmt"
	"strings"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
)

// The five essential Open Graph tags, in reporting order.
var ogTags = []struct {
	name string
	desc string
}{
	{"og:title", "Title for social sharing"},
	{"og:description", "Description for social sharing"},
	{"og:image", "Image displayed when shared"},
	{"og:url", "Canonical URL"},
	{"og:type", "Content type (website, article, etc.)"},
}

// OpenGraph audits social sharing tags. The score is the fraction of the
// five reference tags present with non-empty content.
func OpenGraph(doc document.Model, _ *models.Target) models.CategoryResult {
	var found int
	var recs []string
	for _, tag := range ogTags {
		if content, ok := doc.Meta(tag.name); ok && strings.TrimSpace(content) != "" {
			found++
		} else if len(recs) < 3 {
			recs = append(recs, fmt.Sprintf("Add %s: %s", tag.name, tag.desc))
		}
	}

	findings := []string{fmt.Sprintf("Open Graph tags found: %d/%d", found, len(ogTags))}
	score := found * 100 / len(ogTags)

	if _, ok := doc.Meta("twitter:card"); ok {
		findings = append(findings, "Twitter Card tags also present ✓")
	} else {
		recs = append(recs, "Consider adding Twitter Card meta tags for better X/Twitter sharing")
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
