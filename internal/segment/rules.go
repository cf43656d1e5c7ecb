package segment

import "regexp"

// rewriteRule is a single pattern substitution applied to the whole text.
// Rules carry no state and never depend on each other's internals; only the
// application order matters.
type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rewriteRules strip annotation markup before line splitting. The order
// mirrors reading order of the markup: bracketed labels first, then glyphs,
// line numbers, and finally separator and blank lines.
var rewriteRules = []rewriteRule{
	// Section labels such as [Verse 1] and full-width 【桥段】.
	{regexp.MustCompile(`\[[^\[\]]*\]`), ""},
	{regexp.MustCompile(`【[^【】]*】`), ""},
	// Parenthetical asides such as (x2), ASCII and full-width.
	{regexp.MustCompile(`\([^()]*\)`), ""},
	{regexp.MustCompile(`（[^（）]*）`), ""},
	// Decorative music glyphs.
	{regexp.MustCompile(`[★☆♪♫♬♩♭♮♯]`), ""},
	// Leading numeric line markers.
	{regexp.MustCompile(`[0-9]+\.`), ""},
	// Dash/tilde separator lines and whitespace-only lines.
	{regexp.MustCompile(`(?m)^\s*[-—~⸻]+\s*$`), ""},
	{regexp.MustCompile(`(?m)^[ \t]+$`), ""},
}

// stripAnnotations applies every rewrite rule in order across the whole text.
// Applying it to already-stripped text is a no-op.
func stripAnnotations(text string) string {
	for _, rule := range rewriteRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
