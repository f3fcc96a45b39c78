package changelog

import "regexp"

// The rule tables below drive every decision stage. They are built once at
// startup and never mutated. Where a table is a slice, order matters: entries
// are evaluated top to bottom and the first match wins.

// skipLabels marks a PR as internal/process work regardless of its title.
var skipLabels = map[string]bool{
	"internal":     true,
	"ci":           true,
	"tests":        true,
	"infra":        true,
	"chore":        true,
	"dependencies": true,
	"tooling":      true,
	"refactor":     true,
}

// skipTitlePatterns exclude PRs whose titles follow internal conventions:
// chore/ci/test/refactor/internal/infra/dep/build commit prefixes, dependency
// and version bumps, branch merges, and explicit changelog opt-outs.
var skipTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^chore(\([^)]*\))?!?:`),
	regexp.MustCompile(`(?i)^ci(\([^)]*\))?:`),
	regexp.MustCompile(`(?i)^tests?(\([^)]*\))?:`),
	regexp.MustCompile(`(?i)^refactor(\([^)]*\))?!?:`),
	regexp.MustCompile(`(?i)^internal(\([^)]*\))?:`),
	regexp.MustCompile(`(?i)^infra(\([^)]*\))?:`),
	regexp.MustCompile(`(?i)^deps?(\([^)]*\))?:`),
	regexp.MustCompile(`(?i)^build(\([^)]*\))?:`),
	regexp.MustCompile(`(?i)\bbump\b.*\bfrom\b.*\bto\b`),
	regexp.MustCompile(`(?i)\bupdate dependenc`),
	regexp.MustCompile(`(?i)\b(bump (the )?version|version bump)\b`),
	regexp.MustCompile(`(?i)^merge (branch|pull request|remote-tracking branch)\b`),
	regexp.MustCompile(`(?i)\[(skip|no) changelog\]`),
}

// Classifier keyword tables. Bug signals are checked before feature signals
// so that titles like "feat: fix crash on startup" land in Bug Fixes.
var (
	fixPrefixRe  = regexp.MustCompile(`(?i)^([a-z]+(\([^)]*\))?!?:\s*)?fix(es|ed|ing)?\b`)
	featPrefixRe = regexp.MustCompile(`(?i)^feat(ure)?(\([^)]*\))?!?:`)
	addPrefixRe  = regexp.MustCompile(`(?i)^([a-z]+(\([^)]*\))?!?:\s*)?add\b`)
	newPrefixRe  = regexp.MustCompile(`(?i)^new\b`)

	bugWords      = []string{"bug", "broken", "issue", "crash", "error"}
	bugLabels     = map[string]bool{"bug": true, "fix": true, "bugfix": true, "hotfix": true}
	featureWords  = []string{"support for", "introduce", "implement"}
	featureLabels = map[string]bool{"feature": true, "enhancement": true, "new": true}
)

// conventionalPrefixRe matches a leading `word:` or `word(scope):` commit
// prefix, stripped by CleanTitle.
var conventionalPrefixRe = regexp.MustCompile(`^[A-Za-z]+(\([^)]*\))?!?:\s*`)

// simplePatterns allowlist titles that are already self-explanatory. Checked
// before the technical tables so a typo fix never picks up a jargon
// explanation just because the title mentions a webhook or an API.
var simplePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfix(es|ed|ing)?\b.*\blinks?\b`),
	regexp.MustCompile(`(?i)\breadme\b`),
	regexp.MustCompile(`(?i)\btypos?\b`),
	regexp.MustCompile(`(?i)\b(docs?|documentation)\b`),
	regexp.MustCompile(`(?i)\bimprove[sd]?\b.*\berror messages?\b`),
}

// explanationRule pairs a content pattern with the fixed sentence shown under
// the change as "What this means: ...".
type explanationRule struct {
	pattern *regexp.Regexp
	text    string
}

// explanationRules is evaluated in order; the security/permission entry comes
// first so a permission change mentioning an API or a glossary term still
// gets the security sentence.
var explanationRules = []explanationRule{
	{
		regexp.MustCompile(`(?i)\b(permissions?|security|vulnerabilit|credentials?)\b`),
		"The tool now asks for only the access it actually needs, which is safer for your account.",
	},
	{
		regexp.MustCompile(`(?i)\b(mov\w*|relocat\w*|migrat\w*)\b.*\b(setup|config\w*|settings)\b|\b(setup|config\w*|settings)\b.*\b(mov\w*|relocat\w*|migrat\w*)\b`),
		"Setup and configuration now live in a different place; existing settings keep working.",
	},
	{
		regexp.MustCompile(`(?i)\bmulti-?line\b.*\b(shell|command|script)`),
		"Commands that span multiple lines are now handled correctly.",
	},
	{
		regexp.MustCompile(`(?i)\b(api|integration)\b`),
		"Changes how the tool talks to external services behind the scenes.",
	},
	{
		regexp.MustCompile(`(?i)\b(performance|faster|speed\w*|optimi[sz]\w*)\b`),
		"Things should feel faster; no action needed on your part.",
	},
	{
		regexp.MustCompile(`(?i)\bcach(e[sd]?|ing)\b`),
		"Previously fetched data is reused so repeated operations finish sooner.",
	},
	{
		regexp.MustCompile(`(?i)\b(crash\w*|hang\w*|freez\w*|error handling)\b`),
		"A situation that could make the tool stop working is now handled gracefully.",
	},
	{
		regexp.MustCompile(`(?i)\bdedup\w*\b`),
		"Duplicate entries are detected and collapsed so you only see each item once.",
	},
	{
		regexp.MustCompile(`(?i)\bregex\w*\b`),
		"Improves the text-matching rules the tool uses internally.",
	},
	{
		regexp.MustCompile(`(?i)\bwebhooks?\b`),
		"Affects the automatic notifications sent between services.",
	},
	{
		regexp.MustCompile(`(?i)\btokens?\b`),
		"Relates to the credentials the tool uses to authenticate; you may not notice any difference.",
	},
}

// genericExplanation is the fallback when the title contains technical jargon
// but no specific rule matched.
const genericExplanation = "Technical change that improves internal behavior; no visible difference expected."

// jargonTokens trigger the generic fallback explanation. Matched as plain
// substrings of the lower-cased title, embedded occurrences included.
var jargonTokens = []string{
	"api", "cli", "bash", "shell", "regex", "webhook", "token", "endpoint",
	"config", "env", "param", "arg", "init", "auth", "permission", "scope",
	"stdin", "stdout", "stderr", "async", "sync", "callback", "handler",
	"dedupe", "cache", "buffer", "stream", "pipe", "fork", "spawn",
}
