package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/whatsnew/internal/models"
)

func sampleChanges() []models.ChangeRequest {
	return []models.ChangeRequest{
		{Number: 1, Title: "feat: dark mode", Author: "alice"},
		{Number: 2, Title: "chore: bump linters", Author: "bot"},
		{Number: 3, Title: "Fix crash on startup", Author: "bob"},
		{Number: 4, Title: "Add CSV export", Author: "alice"},
		{Number: 5, Title: "Polish onboarding copy", Author: "carol"},
		{Number: 6, Title: "fix(auth): expired sessions", Author: "bob"},
		{Number: 7, Title: "Update the sidebar", Labels: []string{"internal"}, Author: "dave"},
	}
}

func TestClassify_FiltersAndOrders(t *testing.T) {
	classified := Classify(sampleChanges())
	require.Len(t, classified, 5)

	// Input order is preserved across the surviving items.
	numbers := make([]int, len(classified))
	for i, cc := range classified {
		numbers[i] = cc.Number
	}
	assert.Equal(t, []int{1, 3, 4, 5, 6}, numbers)
}

func TestGroup_AllCategoriesPresent(t *testing.T) {
	grouped := Group(nil)
	require.Len(t, grouped, 3)
	for _, cat := range models.Categories {
		changes, ok := grouped[cat]
		assert.True(t, ok)
		assert.Empty(t, changes)
	}
}

func TestGroup_PreservesOrderWithinCategory(t *testing.T) {
	grouped := Group(Classify(sampleChanges()))

	bugs := grouped[models.CategoryBugFix]
	require.Len(t, bugs, 2)
	assert.Equal(t, 3, bugs[0].Number)
	assert.Equal(t, 6, bugs[1].Number)

	features := grouped[models.CategoryNewFeature]
	require.Len(t, features, 2)
	assert.Equal(t, 1, features[0].Number)
	assert.Equal(t, 4, features[1].Number)

	improvements := grouped[models.CategoryImprovement]
	require.Len(t, improvements, 1)
	assert.Equal(t, 5, improvements[0].Number)
}

// The pipeline is pure: running it twice over the same input yields
// identical output.
func TestPipeline_Idempotent(t *testing.T) {
	changes := sampleChanges()
	first := Group(Classify(changes))
	second := Group(Classify(changes))
	assert.Equal(t, first, second)
}

// A record with a missing title degrades to the default category with no
// explanation instead of failing the batch.
func TestClassify_EmptyTitle(t *testing.T) {
	classified := Classify([]models.ChangeRequest{{Number: 9}})
	require.Len(t, classified, 1)
	assert.Equal(t, models.CategoryImprovement, classified[0].Category)
	assert.Empty(t, classified[0].CleanTitle)
	assert.Empty(t, classified[0].Explanation)
}
