// Package changelog implements the rule-based engine that turns merged pull
// requests into report entries: a relevance filter, a category classifier, a
// title rewriter, and a grouper. Every stage is a pure function of its input;
// the rule tables in tables.go are the only shared state and are read-only.
package changelog

import "github.com/joescharf/whatsnew/internal/models"

// Classify runs the filter, classifier, and title rewriter over raw changes,
// preserving input order. Changes that are not user-facing are dropped.
func Classify(changes []models.ChangeRequest) []models.ClassifiedChange {
	var out []models.ClassifiedChange
	for _, cr := range changes {
		if !IsUserFacing(cr) {
			continue
		}
		out = append(out, models.ClassifiedChange{
			ChangeRequest: cr,
			Category:      Categorize(cr),
			CleanTitle:    CleanTitle(cr.Title),
			Explanation:   Explain(cr.Title),
		})
	}
	return out
}

// Group partitions classified changes by category. All categories are always
// present as keys, possibly empty; within a category the input relative order
// is preserved.
func Group(changes []models.ClassifiedChange) map[models.Category][]models.ClassifiedChange {
	grouped := make(map[models.Category][]models.ClassifiedChange, len(models.Categories))
	for _, cat := range models.Categories {
		grouped[cat] = []models.ClassifiedChange{}
	}
	for _, cc := range changes {
		grouped[cc.Category] = append(grouped[cc.Category], cc)
	}
	return grouped
}
