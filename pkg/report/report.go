// Package report assembles category results into the final audit report.
// The assembler performs no I/O; rendering is someone else's job.
package report

import (
	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/roast"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Options control comment selection and recommendation visibility.
type Options struct {
	Roast   bool
	Verbose bool
	// Picker overrides the roast pool selection, for deterministic tests.
	Picker func(n int) int
}

// Build combines the target metadata and the ten category results, in their
// fixed order, into a single AuditReport with overall score, grade, and
// comments attached.
func Build(target *models.Target, results []models.CategoryResult, opts Options) *models.AuditReport {
	var roaster *roast.Roaster
	if opts.Picker != nil {
		roaster = roast.NewWithPicker(!opts.Roast, opts.Picker)
	} else {
		roaster = roast.New(!opts.Roast)
	}

	scores := make([]int, 0, len(results))
	for i := range results {
		results[i].Comment = roaster.Comment(results[i].Score)
		results[i].Context = roaster.CategoryContext(results[i].Key, results[i].Score)
		if !opts.Verbose {
			results[i].Recommendations = nil
		}
		scores = append(scores, results[i].Score)
	}

	overall := scoring.Average(scores)
	grade := scoring.Grade(overall)

	return &models.AuditReport{
		URL:            target.URL,
		FetchedAt:      target.FetchedAt,
		Duration:       target.Elapsed,
		Results:        results,
		OverallScore:   overall,
		OverallGrade:   grade,
		OverallComment: roaster.OverallComment(grade, overall),
	}
}
