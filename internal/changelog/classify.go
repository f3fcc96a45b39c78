package changelog

import (
	"strings"

	"github.com/joescharf/whatsnew/internal/models"
)

// Categorize assigns exactly one category to a change. Bug-fix signals are
// checked first: a title like "feat: fix crash on startup" is a regression
// fix, not a feature. Anything matching neither bug nor feature signals is
// an improvement.
func Categorize(cr models.ChangeRequest) models.Category {
	lower := strings.ToLower(cr.Title)

	if fixPrefixRe.MatchString(cr.Title) ||
		containsAny(lower, bugWords) ||
		hasAnyLabel(cr.Labels, bugLabels) {
		return models.CategoryBugFix
	}

	if featPrefixRe.MatchString(cr.Title) ||
		addPrefixRe.MatchString(cr.Title) ||
		newPrefixRe.MatchString(cr.Title) ||
		containsAny(lower, featureWords) ||
		hasAnyLabel(cr.Labels, featureLabels) {
		return models.CategoryNewFeature
	}

	return models.CategoryImprovement
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func hasAnyLabel(labels []string, set map[string]bool) bool {
	for _, label := range labels {
		if set[strings.ToLower(label)] {
			return true
		}
	}
	return false
}
