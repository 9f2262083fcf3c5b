// Package format normalizes and enriches fragments of model-produced
// recommendation reports: second-person rewriting, list and table parsing,
// and template padding when the source text is sparse. Every function is
// best-effort and total; malformed input degrades to defaults instead of
// failing.
package format

import (
	"regexp"

	"github.com/ideabunch/reportkit/internal/memo"
)

// Rule rewrites every match of Pattern with Replacement.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultRules rewrites third-person report phrasing into direct address.
// Order matters: specific phrases run before the bare "user" patterns so the
// generic rules cannot consume part of a longer phrase first. No replacement
// reintroduces a matchable phrase, which keeps PersonalizeCopy idempotent.
var DefaultRules = []Rule{
	{regexp.MustCompile(`(?i)\bthe user's\b`), "your"},
	{regexp.MustCompile(`(?i)\bthe user is\b`), "you are"},
	{regexp.MustCompile(`(?i)\bthe user has\b`), "you have"},
	{regexp.MustCompile(`(?i)\bthe user\b`), "you"},
	{regexp.MustCompile(`(?i)\bthis user\b`), "you"},
	{regexp.MustCompile(`(?i)\buser's\b`), "your"},
	{regexp.MustCompile(`(?i)\busers?\b`), "you"},
	{regexp.MustCompile(`(?i)\bhe or she\b`), "you"},
	{regexp.MustCompile(`(?i)\bhis or her\b`), "your"},
}

// PersonalizeCopy applies DefaultRules left to right over text. Empty input
// yields an empty string.
func PersonalizeCopy(text string) string {
	return applyRules(DefaultRules, text)
}

func applyRules(rules []Rule, text string) string {
	if text == "" {
		return ""
	}
	for _, r := range rules {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	return text
}

// Personalizer memoizes rule application through a caller-owned cache so the
// same report fragment is rewritten once per process. The cache is a pure
// optimization: a miss recomputes the identical result.
type Personalizer struct {
	rules []Rule
	cache *memo.Cache
}

// NewPersonalizer builds a Personalizer over rules (DefaultRules when nil)
// backed by cache. A nil cache disables memoization.
func NewPersonalizer(rules []Rule, cache *memo.Cache) *Personalizer {
	if rules == nil {
		rules = DefaultRules
	}
	return &Personalizer{rules: rules, cache: cache}
}

// Apply rewrites text under the personalizer's rules.
func (p *Personalizer) Apply(text string) string {
	if p == nil {
		return PersonalizeCopy(text)
	}
	if out, ok := p.cache.Get(text); ok {
		return out
	}
	out := applyRules(p.rules, text)
	p.cache.Put(text, out)
	return out
}
