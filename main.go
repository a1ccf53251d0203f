package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/siteroast/siteroast/internal/audit"
	"github.com/siteroast/siteroast/pkg/fetcher"
)

var version = "1.0.0"

func main() {
	// -v belongs to --verbose here, so the version flag loses its alias.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := &cli.App{
		Name:      "siteroast",
		Usage:     "🔥 Roast any website's SEO, performance, and security",
		UsageText: "siteroast [options] <url>",
		Version:   version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output results as JSON (machine-readable)",
			},
			&cli.BoolFlag{
				Name:    "markdown",
				Aliases: []string{"md"},
				Usage:   "output results as Markdown report",
			},
			&cli.BoolFlag{
				Name:  "yaml",
				Usage: "output results as YAML (same layout as JSON)",
			},
			&cli.BoolFlag{
				Name:  "no-roast",
				Usage: "serious mode: output scores without jokes",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show detailed recommendations for each category",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Value: 30,
				Usage: "request timeout in seconds",
			},
			&cli.StringFlag{
				Name:  "user-agent",
				Value: fetcher.DefaultUserAgent,
				Usage: "custom User-Agent string for the request",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "save output to file (format auto-detected from .json/.md/.yaml)",
			},
		},
		Action: audit.Action,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
