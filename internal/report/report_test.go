package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/whatsnew/internal/models"
)

func emptyGroups() map[models.Category][]models.ClassifiedChange {
	grouped := make(map[models.Category][]models.ClassifiedChange)
	for _, cat := range models.Categories {
		grouped[cat] = []models.ClassifiedChange{}
	}
	return grouped
}

func testWindow() Window {
	return Window{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestRender_FullLayout(t *testing.T) {
	grouped := emptyGroups()
	grouped[models.CategoryNewFeature] = []models.ClassifiedChange{
		{
			ChangeRequest: models.ChangeRequest{Number: 12, URL: "https://github.com/acme/app/pull/12", Author: "alice"},
			Category:      models.CategoryNewFeature,
			CleanTitle:    "Add dark mode",
		},
	}
	grouped[models.CategoryBugFix] = []models.ClassifiedChange{
		{
			ChangeRequest: models.ChangeRequest{Number: 15, URL: "https://github.com/acme/app/pull/15", Author: "bob"},
			Category:      models.CategoryBugFix,
			CleanTitle:    "Remove overly broad gh api permission from dedupe command",
			Explanation:   "The tool now asks for only the access it actually needs, which is safer for your account.",
		},
	}

	generatedAt := time.Date(2025, 6, 8, 12, 30, 0, 0, time.UTC)
	doc := Render(grouped, testWindow(), generatedAt)

	expected := `# What's New

Changes from 2025-06-01 to 2025-06-08

---

## New Features

- **Add dark mode** (#12, https://github.com/acme/app/pull/12) by @alice

## Bug Fixes

- **Remove overly broad gh api permission from dedupe command** (#15, https://github.com/acme/app/pull/15) by @bob
  What this means: The tool now asks for only the access it actually needs, which is safer for your account.

---

Generated at 2025-06-08T12:30:00Z
`
	assert.Equal(t, expected, doc)
}

func TestRender_SkipsEmptySections(t *testing.T) {
	grouped := emptyGroups()
	grouped[models.CategoryImprovement] = []models.ClassifiedChange{
		{
			ChangeRequest: models.ChangeRequest{Number: 3, URL: "https://example.com/3", Author: "carol"},
			Category:      models.CategoryImprovement,
			CleanTitle:    "Polish onboarding copy",
		},
	}

	doc := Render(grouped, testWindow(), time.Now())
	assert.Contains(t, doc, "## Improvements")
	assert.NotContains(t, doc, "## New Features")
	assert.NotContains(t, doc, "## Bug Fixes")
}

func TestRender_NoChanges(t *testing.T) {
	doc := Render(emptyGroups(), testWindow(), time.Now())
	assert.Contains(t, doc, "No user-facing changes in this window.")
	assert.NotContains(t, doc, "##")
}

func TestRender_SectionOrder(t *testing.T) {
	grouped := emptyGroups()
	for _, cat := range models.Categories {
		grouped[cat] = []models.ClassifiedChange{
			{
				ChangeRequest: models.ChangeRequest{Number: 1, URL: "https://example.com/1", Author: "x"},
				Category:      cat,
				CleanTitle:    "Entry",
			},
		}
	}

	doc := Render(grouped, testWindow(), time.Now())
	features := strings.Index(doc, "## New Features")
	improvements := strings.Index(doc, "## Improvements")
	bugs := strings.Index(doc, "## Bug Fixes")
	require.True(t, features >= 0 && improvements >= 0 && bugs >= 0)
	assert.Less(t, features, improvements)
	assert.Less(t, improvements, bugs)
}

func TestWindow_String(t *testing.T) {
	assert.Equal(t, "2025-06-01 to 2025-06-08", testWindow().String())
}
