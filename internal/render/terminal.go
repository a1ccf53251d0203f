package render

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"

	"github.com/siteroast/siteroast/models"
)

const barWidth = 20

// Terminal renders the report for a color-capable terminal: ASCII banner,
// per-category score bars and findings, and the final grade block.
func Terminal(rep *models.AuditReport) string {
	var b strings.Builder

	b.WriteString(banner())

	fmt.Fprintf(&b, "\n%s %s\n", color.New(color.Bold).Sprint("Target:"), color.CyanString(rep.URL))
	fmt.Fprintf(&b, "%s\n", color.New(color.Faint).Sprintf("Audit completed in %dms", rep.Duration.Milliseconds()))

	for _, res := range rep.Results {
		writeCategory(&b, res)
	}

	writeGrade(&b, rep)

	return b.String()
}

func banner() string {
	lines := figure.NewFigure("SITE ROAST", "doom", true).Slicify()
	return color.RedString(strings.Join(lines, "\n")) + "\n"
}

func writeCategory(b *strings.Builder, res models.CategoryResult) {
	fmt.Fprintf(b, "\n%s %s\n", color.CyanString("▶"), color.New(color.Bold).Sprint(res.Name))
	fmt.Fprintf(b, "  Score: %s %s\n",
		scoreColor(res.Score).Sprintf("%d/100", res.Score), progressBar(res.Score))

	fmt.Fprintf(b, "  %s %s\n", color.MagentaString("💬"), res.Comment)
	if res.Context != "" {
		fmt.Fprintf(b, "  %s %s\n", color.MagentaString("💬"), res.Context)
	}

	if len(res.Findings) > 0 {
		fmt.Fprintf(b, "  %s\n", color.New(color.Faint).Sprint("Findings:"))
		for i, f := range res.Findings {
			if i == 4 {
				break
			}
			fmt.Fprintf(b, "    %s %s\n", color.BlueString("•"), f)
		}
	}

	if len(res.Recommendations) > 0 {
		fmt.Fprintf(b, "  %s Recommendations:\n", color.YellowString("💡"))
		for i, r := range res.Recommendations {
			if i == 3 {
				break
			}
			fmt.Fprintf(b, "    %s %s\n", color.GreenString("→"), r)
		}
	}
}

func writeGrade(b *strings.Builder, rep *models.AuditReport) {
	rule := color.RedString(strings.Repeat("═", 64))

	fmt.Fprintf(b, "\n%s\n\n", rule)
	fmt.Fprintf(b, "                    %s\n\n", color.New(color.Bold).Sprint("FINAL GRADE"))
	fmt.Fprintf(b, "                         %s\n", gradeColor(rep.OverallGrade).Add(color.Bold).Sprint(rep.OverallGrade))
	fmt.Fprintf(b, "                       %s\n\n", color.New(color.Faint).Sprintf("(%d/100)", rep.OverallScore))
	fmt.Fprintf(b, "           %s\n\n", color.CyanString(rep.OverallComment))
	fmt.Fprintf(b, "%s\n", rule)
}

func progressBar(score int) string {
	filled := barWidth * score / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return scoreColor(score).Sprint(bar)
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen)
	case score >= 60:
		return color.New(color.FgYellow)
	case score >= 40:
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgRed)
	}
}

func gradeColor(grade string) *color.Color {
	switch grade[0] {
	case 'A':
		return color.New(color.FgGreen)
	case 'B':
		return color.New(color.FgCyan)
	case 'C':
		return color.New(color.FgYellow)
	case 'D':
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgRed)
	}
}
