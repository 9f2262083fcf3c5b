// Package section splits flat report markdown into a two-level document
// model: sections with free-text intros and titled subsections. Upstream
// reports mix heading conventions (ATX, bold lines, colon-terminated
// labels), so recognition is heuristic and a paragraph fallback covers
// markdown that matches none of them.
package section

// Section groups narrative content under one report heading.
type Section struct {
	Title       string       `json:"title"`
	Level       int          `json:"level"`
	Intro       string       `json:"intro,omitempty"`
	Subsections []Subsection `json:"subsections,omitempty"`
}

// Subsection is one titled block inside a Section.
type Subsection struct {
	Title   string `json:"title"`
	Level   int    `json:"level"`
	Content string `json:"content,omitempty"`
}
