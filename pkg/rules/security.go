package rules

import (
	"fmt"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// The reference set of security headers, in reporting order.
var securityHeaders = []struct {
	name string
	desc string
}{
	{"Strict-Transport-Security", "HSTS - forces HTTPS connections"},
	{"Content-Security-Policy", "CSP - prevents XSS attacks"},
	{"X-Frame-Options", "Prevents clickjacking"},
	{"X-Content-Type-Options", "Prevents MIME sniffing"},
	{"Referrer-Policy", "Controls referrer information leakage"},
}

// SSLSecurity audits the transport scheme and the presence of the reference
// security headers. Plain HTTP costs a large fixed penalty regardless of
// which headers are set.
func SSLSecurity(_ document.Model, target *models.Target) models.CategoryResult {
	var findings, recs []string
	score := 100

	if !target.IsHTTPS() {
		score = scoring.Penalty(score, 50)
		findings = append(findings, "Site is not using HTTPS")
		recs = append(recs, "Enable HTTPS - it's free with Let's Encrypt and essential for security")
	} else {
		findings = append(findings, "HTTPS is enabled ✓")
	}

	var found int
	var missing []string
	for _, h := range securityHeaders {
		if target.Header.Get(h.name) != "" {
			found++
		} else {
			missing = append(missing, fmt.Sprintf("Add %s header: %s", h.name, h.desc))
		}
	}

	findings = append(findings, fmt.Sprintf("Security headers found: %d/%d", found, len(securityHeaders)))

	if len(missing) > 0 {
		penalty := len(missing) * 6
		if penalty > 30 {
			penalty = 30
		}
		score = scoring.Penalty(score, penalty)
		if len(missing) > 3 {
			missing = missing[:3]
		}
		recs = append(recs, missing...)
	}

	return models.CategoryResult{Score: score, Findings: findings, Recommendations: recs}
}
