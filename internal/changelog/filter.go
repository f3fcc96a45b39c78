package changelog

import (
	"strings"

	"github.com/joescharf/whatsnew/internal/models"
)

// IsUserFacing reports whether a merged PR belongs in the report. Labels are
// checked before the title; any single skip match excludes the PR. A PR with
// no labels and no skip-pattern title is user-facing by default.
func IsUserFacing(cr models.ChangeRequest) bool {
	for _, label := range cr.Labels {
		if skipLabels[strings.ToLower(label)] {
			return false
		}
	}
	for _, re := range skipTitlePatterns {
		if re.MatchString(cr.Title) {
			return false
		}
	}
	return true
}
