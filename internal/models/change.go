package models

import "time"

// Category represents the kind of user-facing change a pull request delivers.
type Category string

const (
	CategoryNewFeature  Category = "new_feature"
	CategoryImprovement Category = "improvement"
	CategoryBugFix      Category = "bug_fix"
)

// Categories lists all categories in report display order.
var Categories = []Category{CategoryNewFeature, CategoryImprovement, CategoryBugFix}

// Heading returns the report section heading for the category.
func (c Category) Heading() string {
	switch c {
	case CategoryNewFeature:
		return "New Features"
	case CategoryImprovement:
		return "Improvements"
	case CategoryBugFix:
		return "Bug Fixes"
	default:
		return string(c)
	}
}

// ChangeRequest represents a merged pull request as fetched from GitHub.
// Labels may be empty; matching against them is case-insensitive.
type ChangeRequest struct {
	Number   int
	Title    string
	Labels   []string
	Author   string
	URL      string
	MergedAt time.Time
}

// ClassifiedChange is a ChangeRequest that survived the relevance filter,
// together with its category, rewritten title, and optional plain-language
// explanation (empty string = no explanation).
type ClassifiedChange struct {
	ChangeRequest
	Category    Category
	CleanTitle  string
	Explanation string
}
