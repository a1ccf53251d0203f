package render

import (
	"fmt"
	"strings"

	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Markdown renders the report as a human-readable Markdown document,
// mirroring the terminal layout and category order.
func Markdown(rep *models.AuditReport) string {
	var b strings.Builder

	b.WriteString("# 🔥 Site Roast Report\n\n")
	fmt.Fprintf(&b, "**Target:** `%s`  \n", rep.URL)
	fmt.Fprintf(&b, "**Audited:** %s  \n", rep.FetchedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Duration:** %dms\n\n", rep.Duration.Milliseconds())

	fmt.Fprintf(&b, "## %s Overall Grade: **%s** (%d/100)\n\n",
		gradeEmoji(rep.OverallGrade), rep.OverallGrade, rep.OverallScore)
	fmt.Fprintf(&b, "*%s*\n\n", scoring.Describe(rep.OverallGrade))
	fmt.Fprintf(&b, "> %s\n\n", rep.OverallComment)

	b.WriteString("## 📊 Category Summary\n\n")
	b.WriteString("| Category | Score | Grade | Status |\n")
	b.WriteString("|----------|-------|-------|--------|\n")
	for _, res := range rep.Results {
		fmt.Fprintf(&b, "| %s | %d/100 | %s | %s |\n",
			res.Name, res.Score, miniGrade(res.Score), scoreStatus(res.Score))
	}
	b.WriteString("\n")

	b.WriteString("## 🔍 Detailed Analysis\n\n")
	for _, res := range rep.Results {
		writeCategoryMarkdown(&b, res)
	}

	b.WriteString("---\n\n")
	b.WriteString("*Generated by siteroast*\n")

	return b.String()
}

func writeCategoryMarkdown(b *strings.Builder, res models.CategoryResult) {
	fmt.Fprintf(b, "### %s: %d/100\n\n", res.Name, res.Score)
	fmt.Fprintf(b, "*%s*\n\n", res.Comment)
	if res.Context != "" {
		fmt.Fprintf(b, "*%s*\n\n", res.Context)
	}

	if len(res.Findings) > 0 {
		b.WriteString("**Findings:**\n")
		for _, f := range res.Findings {
			fmt.Fprintf(b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("**Recommendations:**\n")
		for _, r := range res.Recommendations {
			fmt.Fprintf(b, "- %s\n", r)
		}
		b.WriteString("\n")
	}
}

func gradeEmoji(grade string) string {
	switch grade[0] {
	case 'A':
		return "🌟"
	case 'B':
		return "✅"
	case 'C':
		return "⚠️"
	case 'D':
		return "🔧"
	default:
		return "💀"
	}
}

func scoreStatus(score int) string {
	switch {
	case score >= 80:
		return "✅ Good"
	case score >= 60:
		return "⚠️ Needs Work"
	default:
		return "🔴 Poor"
	}
}

func miniGrade(score int) string {
	switch {
	case score >= 93:
		return "A"
	case score >= 85:
		return "B"
	case score >= 75:
		return "C"
	case score >= 65:
		return "D"
	default:
		return "F"
	}
}
