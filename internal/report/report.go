// Package report renders grouped changes as a Markdown document. The layout
// is a compatibility contract: downstream consumers diff generated reports,
// so lines and spacing must not change between releases.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/joescharf/whatsnew/internal/models"
)

// Window labels the reporting period.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) String() string {
	return fmt.Sprintf("%s to %s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}

// Render serializes grouped changes into the report document. Sections appear
// in category display order and only when non-empty; if nothing survived
// filtering, a single notice replaces the sections.
func Render(grouped map[models.Category][]models.ClassifiedChange, window Window, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("# What's New\n\n")
	fmt.Fprintf(&sb, "Changes from %s\n\n", window)
	sb.WriteString("---\n\n")

	total := 0
	for _, cat := range models.Categories {
		total += len(grouped[cat])
	}

	if total == 0 {
		sb.WriteString("No user-facing changes in this window.\n\n")
	} else {
		for _, cat := range models.Categories {
			changes := grouped[cat]
			if len(changes) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "## %s\n\n", cat.Heading())
			for _, cc := range changes {
				fmt.Fprintf(&sb, "- **%s** (#%d, %s) by @%s\n", cc.CleanTitle, cc.Number, cc.URL, cc.Author)
				if cc.Explanation != "" {
					fmt.Fprintf(&sb, "  What this means: %s\n", cc.Explanation)
				}
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "Generated at %s\n", generatedAt.Format(time.RFC3339))

	return sb.String()
}
