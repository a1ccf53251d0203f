package rules

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/siteroast/siteroast/internal/common"
	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Links audits the link structure: total count, internal/external split by
// registrable domain, and rel attributes on external links.
func Links(doc document.Model, target *models.Target) models.CategoryResult {
	links := doc.Links()
	total := len(links)

	findings := []string{fmt.Sprintf("Found %d link(s)", total)}

	if total == 0 {
		return models.CategoryResult{
			Score:           30,
			Findings:        append(findings, "No links found on page"),
			Recommendations: []string{"Add navigation links to help users explore your site"},
		}
	}

	baseDomain := common.RegistrableDomain(target.ParsedURL().Hostname())

	var internal, external, nofollow, sponsored, externalNoOpener int
	for _, link := range links {
		href := link.Href
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			parsed, err := url.Parse(href)
			if err != nil {
				continue
			}
			if common.RegistrableDomain(parsed.Hostname()) == baseDomain {
				internal++
				continue
			}
			external++
			if hasRel(link.Rel, "nofollow") {
				nofollow++
			}
			if hasRel(link.Rel, "sponsored") {
				sponsored++
			}
			if !hasRel(link.Rel, "noopener") {
				externalNoOpener++
			}
		} else if !strings.HasPrefix(href, "#") &&
			!strings.HasPrefix(href, "javascript:") &&
			!strings.HasPrefix(href, "mailto:") &&
			!strings.HasPrefix(href, "tel:") {
			// Relative URL, same site.
			internal++
		}
	}

	findings = append(findings,
		fmt.Sprintf("Internal links: %d", internal),
		fmt.Sprintf("External links: %d", external),
	)
	if nofollow+sponsored > 0 {
		findings = append(findings, fmt.Sprintf("External links with rel=nofollow/sponsored: %d", nofollow+sponsored))
	}

	score := 100
	var recs []string

	if total < 3 {
		score = scoring.Penalty(score, 30)
		findings = append(findings, "Very few links on page")
		recs = append(recs, "Add more navigation links to improve site structure")
	}

	if external > 0 && externalNoOpener > 0 {
		score = scoring.Penalty(score, 10)
		findings = append(findings, fmt.Sprintf("%d external links missing rel='noopener noreferrer'", externalNoOpener))
		recs = append(recs, "Add rel='noopener noreferrer' to external links for security")
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}

func hasRel(rel []string, token string) bool {
	for _, r := range rel {
		if r == token {
			return true
		}
	}
	return false
}
