// Package audit wires the CLI to the audit pipeline: fetch, parse, evaluate,
// assemble, render.
package audit

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/siteroast/siteroast/internal/common"
	"github.com/siteroast/siteroast/internal/render"
	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/fetcher"
	"github.com/siteroast/siteroast/pkg/report"
	"github.com/siteroast/siteroast/pkg/rules"
)

// Output formats, in flag priority order.
const (
	formatTerminal = "terminal"
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatYAML     = "yaml"
)

// Action runs one complete audit. Exit code is 0 for any successful audit
// regardless of score, 1 on invalid input, fetch failure, or output failure.
func Action(c *cli.Context) error {
	logLevel := slog.LevelError
	if c.Bool("verbose") {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	rawURL := c.Args().First()
	if rawURL == "" {
		fmt.Fprintln(os.Stderr, "Error: no URL provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  siteroast https://example.com")
		fmt.Fprintln(os.Stderr, "  siteroast example.com --json --no-roast")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: siteroast --help")
		return cli.Exit("", 1)
	}

	targetURL, err := common.NormalizeURL(rawURL)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: invalid URL %q: %v", rawURL, err), 1)
	}

	timeout := time.Duration(c.Int("timeout")) * time.Second
	f := fetcher.New(timeout, c.String("user-agent"))

	logger.Info("fetching page", "url", targetURL, "timeout", timeout.String())
	target, err := f.Fetch(c.Context, targetURL)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Audit failed: %v", err), 1)
	}
	if target.StatusCode >= 400 {
		logger.Warn("non-success status, auditing returned body anyway", "status", target.StatusCode)
	}
	logger.Info("page fetched", "status", target.StatusCode, "bytes", len(target.Body), "elapsed_ms", target.Elapsed.Milliseconds())

	doc, err := document.Parse(target.Body)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Audit failed: could not read page body: %v", err), 1)
	}

	results := rules.Evaluate(doc, target)
	rep := report.Build(target, results, report.Options{
		Roast:   !c.Bool("no-roast"),
		Verbose: c.Bool("verbose"),
	})
	logger.Info("audit complete", "overall_score", rep.OverallScore, "grade", rep.OverallGrade)

	out, err := renderReport(rep, pickFormat(c))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	if path := c.String("output"); path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return cli.Exit(fmt.Sprintf("Error: failed to write %s: %v", path, err), 1)
		}
		fmt.Printf("Report saved to: %s\n", path)
		return nil
	}

	fmt.Println(string(out))
	return nil
}

// pickFormat resolves the output format from flags, falling back to the
// --output file extension, then to terminal.
func pickFormat(c *cli.Context) string {
	switch {
	case c.Bool("json"):
		return formatJSON
	case c.Bool("markdown"):
		return formatMarkdown
	case c.Bool("yaml"):
		return formatYAML
	}

	path := strings.ToLower(c.String("output"))
	switch {
	case strings.HasSuffix(path, ".json"):
		return formatJSON
	case strings.HasSuffix(path, ".md"), strings.HasSuffix(path, ".markdown"):
		return formatMarkdown
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return formatYAML
	}
	return formatTerminal
}

func renderReport(rep *models.AuditReport, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		return render.JSON(rep)
	case formatYAML:
		return render.YAML(rep)
	case formatMarkdown:
		return []byte(render.Markdown(rep)), nil
	default:
		return []byte(render.Terminal(rep)), nil
	}
}
