// Package ideas extracts a ranked list of startup ideas from model-produced
// markdown. Upstream reports follow no single convention, so extraction runs
// a cascade of increasingly permissive strategies and stops at the first one
// that finds anything.
package ideas

import (
	"regexp"
	"strings"
)

// Idea is one candidate recommendation pulled out of a report.
type Idea struct {
	// Index comes from the source numbering when present and may be
	// non-contiguous; otherwise it is assigned sequentially from 1.
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	FullText string `json:"fullText"`
}

// Extract scans markdown for ranked ideas, trying each strategy in order and
// returning at most limit results from the first strategy that matches. It
// never panics, never mutates its input, and returns nil for empty or
// unparseable input or a non-positive limit.
func Extract(markdown string, limit int) []Idea {
	if limit <= 0 || strings.TrimSpace(markdown) == "" {
		return nil
	}
	for _, s := range Strategies() {
		if matches := s.Try(markdown, limit); len(matches) > 0 {
			return assemble(markdown, matches, limit)
		}
	}
	return nil
}

// assemble turns heading matches into Ideas. Each match's body runs from the
// end of its heading line to the start of the next match (or end of input).
func assemble(md string, matches []Match, limit int) []Idea {
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Idea, 0, len(matches))
	for i, m := range matches {
		end := len(md)
		if i+1 < len(matches) {
			end = matches[i+1].Start
		}
		body := strings.TrimSpace(md[m.End:end])
		title := cleanTitle(m.Title)
		out = append(out, Idea{
			Index:    m.Index,
			Title:    title,
			Summary:  summarize(body, title),
			Body:     body,
			FullText: strings.TrimSpace(md[m.Start:end]),
		})
	}
	return out
}

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	firstSentenceRe = regexp.MustCompile(`^(.*?[.!?])(\s|$)`)
	whyFitsRe       = regexp.MustCompile(`(?i)^why (?:it|this) fits(?: (?:you|now))?\s*[:.\-]*\s*`)
)

// summarize returns the first sentence of the whitespace-collapsed body with
// any leading "why it fits now" phrase stripped. Without a sentence boundary
// the title stands in for the summary.
func summarize(body, title string) string {
	s := strings.TrimSpace(whitespaceRe.ReplaceAllString(body, " "))
	s = whyFitsRe.ReplaceAllString(s, "")
	if m := firstSentenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return title
}

// cleanTitle strips heading and emphasis markers from a matched title.
func cleanTitle(title string) string {
	t := strings.TrimSpace(title)
	t = strings.TrimLeft(t, "# ")
	t = strings.Trim(t, "*")
	t = strings.TrimSuffix(strings.TrimSpace(t), ":")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
}

func atoiSafe(s string) int {
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return n
		}
		n = n*10 + int(ch-'0')
	}
	return n
}
