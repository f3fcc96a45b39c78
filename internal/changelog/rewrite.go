package changelog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanTitle turns a raw PR title into a display title: strip one leading
// conventional-commit prefix (`word:` or `word(scope):`), strip one trailing
// period, uppercase the first letter. Internal casing and punctuation are
// left alone.
func CleanTitle(title string) string {
	t := conventionalPrefixRe.ReplaceAllString(title, "")
	t = strings.TrimSuffix(t, ".")
	if t == "" {
		return t
	}
	r, size := utf8.DecodeRuneInString(t)
	return string(unicode.ToUpper(r)) + t[size:]
}

// Explain decides whether a change needs a plain-language annotation and
// returns it, or "" when the title speaks for itself. Evaluation order is a
// contract: the simple-pattern allowlist runs before the technical tables so
// "Fix typo in webhook docs" stays unannotated even though it mentions a
// webhook.
func Explain(title string) string {
	for _, re := range simplePatterns {
		if re.MatchString(title) {
			return ""
		}
	}
	for _, rule := range explanationRules {
		if rule.pattern.MatchString(title) {
			return rule.text
		}
	}
	lower := strings.ToLower(title)
	for _, tok := range jargonTokens {
		if strings.Contains(lower, tok) {
			return genericExplanation
		}
	}
	return ""
}
