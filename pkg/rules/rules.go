// Package rules implements the ten audit evaluators. Each evaluator is a pure
// function over the document model and the fetched target: same input, same
// score and findings. Evaluators never fail; any internal problem degrades
// the category score instead of aborting the audit.
package rules

import (
	"github.com/siteroast/siteroast/models"
	"github.com/siteroast/siteroast/pkg/document"
	"github.com/siteroast/siteroast/pkg/scoring"
)

// Evaluator inspects the document and response metadata and produces one
// category result. Implementations must be deterministic and independent.
type Evaluator func(doc document.Model, target *models.Target) models.CategoryResult

var evaluators = []struct {
	key models.Category
	fn  Evaluator
}{
	{models.CategoryTitle, Title},
	{models.CategoryMetaDescription, MetaDescription},
	{models.CategoryHeadings, Headings},
	{models.CategoryImages, Images},
	{models.CategoryMobile, Mobile},
	{models.CategorySSLSecurity, SSLSecurity},
	{models.CategoryPerformance, Performance},
	{models.CategoryLinks, Links},
	{models.CategoryOpenGraph, OpenGraph},
	{models.CategorySchema, Schema},
}

// Evaluate runs every evaluator sequentially in the fixed category order and
// returns exactly ten results with clamped scores.
func Evaluate(doc document.Model, target *models.Target) []models.CategoryResult {
	results := make([]models.CategoryResult, 0, len(evaluators))
	for _, ev := range evaluators {
		res := run(ev.fn, doc, target)
		res.Key = ev.key
		res.Name = ev.key.DisplayName()
		res.Score = scoring.Clamp(res.Score)
		if res.Findings == nil {
			res.Findings = []string{}
		}
		results = append(results, res)
	}
	return results
}

// run shields the pipeline from evaluator panics: a category that blows up
// scores zero with a descriptive finding instead of killing the audit.
func run(fn Evaluator, doc document.Model, target *models.Target) (res models.CategoryResult) {
	defer func() {
		if r := recover(); r != nil {
			res = models.CategoryResult{
				Score:    0,
				Findings: []string{"Category could not be evaluated"},
			}
		}
	}()
	return fn(doc, target)
}
