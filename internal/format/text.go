package format

import (
	"regexp"
	"strings"
)

var (
	bulletItemRe   = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	numberedItemRe = regexp.MustCompile(`^\s*\d{1,3}[.)]\s+(.+)$`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// rawListItems returns the text of every bullet or numbered list item in
// text, in order, without personalization.
func rawListItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		if m := bulletItemRe.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}
		if m := numberedItemRe.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}

// splitSentences naively splits prose on sentence-final punctuation followed
// by a space. Used as a fallback when no list markers exist at all.
func splitSentences(text string) []string {
	t := strings.TrimSpace(collapseWhitespace(text))
	if t == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i+1 < len(t); i++ {
		if (t[i] == '.' || t[i] == '!' || t[i] == '?') && t[i+1] == ' ' {
			if s := strings.TrimSpace(t[start : i+1]); s != "" {
				out = append(out, s)
			}
			start = i + 2
		}
	}
	if s := strings.TrimSpace(t[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ExtractListFromText collects bullet and numbered list items from text,
// falling back to sentence splitting when no list markers are present
// anywhere. Every returned item is personalized.
func ExtractListFromText(text string) []string {
	items := rawListItems(text)
	if len(items) == 0 {
		items = splitSentences(text)
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if p := strings.TrimSpace(PersonalizeCopy(it)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DedupeStrings removes case-insensitive duplicates while preserving order
// and the first occurrence's casing. Blank entries are dropped.
func DedupeStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		trimmed := strings.TrimSpace(it)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
