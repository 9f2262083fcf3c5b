package format

import (
	"regexp"
	"strings"
)

// MatrixRow compares one idea against the founder-fit dimensions. Missing
// attributes are filled with the canned values in matrixDefaults so existing
// consumers keep rendering non-empty cells; Defaulted records which fields
// were absent from the source so a renderer can mark them as unknown instead.
type MatrixRow struct {
	Order     int      `json:"order"`
	Idea      string   `json:"idea"`
	Goal      string   `json:"goal"`
	Time      string   `json:"time"`
	Budget    string   `json:"budget"`
	Skill     string   `json:"skill"`
	WorkStyle string   `json:"workStyle"`
	Notes     string   `json:"notes,omitempty"`
	Defaulted []string `json:"defaulted,omitempty"`
}

const matrixNotesLimit = 160

var (
	matrixTopRe = regexp.MustCompile(`^[-*]\s+\*\*([^*]+?)\*\*:?\s*(.*)$`)
	matrixSubRe = regexp.MustCompile(`^\s+[-*]\s+(.+)$`)
)

// ParseRecommendationMatrix reads a bold-bulleted comparison list: each
// top-level "- **Idea**: ..." starts a row, and indented bullets (or inline
// pipe-separated segments) carry fit attributes recognized by their label.
// Unrecognized attribute text accumulates in Notes.
func ParseRecommendationMatrix(text string) []MatrixRow {
	var rows []MatrixRow
	var cur *MatrixRow
	flush := func() {
		if cur == nil {
			return
		}
		fillMatrixDefaults(cur)
		rows = append(rows, *cur)
		cur = nil
	}
	for _, line := range strings.Split(text, "\n") {
		if m := matrixTopRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &MatrixRow{
				Order: len(rows) + 1,
				Idea:  strings.TrimSuffix(strings.TrimSpace(m[1]), ":"),
			}
			for _, seg := range strings.Split(m[2], "|") {
				applyMatrixAttribute(cur, seg)
			}
			continue
		}
		if cur == nil {
			continue
		}
		if m := matrixSubRe.FindStringSubmatch(line); m != nil {
			applyMatrixAttribute(cur, m[1])
		}
	}
	flush()
	return rows
}

// applyMatrixAttribute assigns a labeled segment ("Goal fit: Strong") to the
// matching row field, or appends it to Notes when the label is unrecognized.
func applyMatrixAttribute(row *MatrixRow, segment string) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return
	}
	label, value := splitAttributeLabel(segment)
	if value != "" {
		switch {
		case strings.Contains(label, "goal"):
			row.Goal = PersonalizeCopy(value)
			return
		case strings.Contains(label, "time"):
			row.Time = PersonalizeCopy(value)
			return
		case strings.Contains(label, "budget"), strings.Contains(label, "cost"):
			row.Budget = PersonalizeCopy(value)
			return
		case strings.Contains(label, "skill"):
			row.Skill = PersonalizeCopy(value)
			return
		case strings.Contains(label, "work"):
			row.WorkStyle = PersonalizeCopy(value)
			return
		}
	}
	appendMatrixNote(row, segment)
}

// splitAttributeLabel splits "Label: value" or "Label - value"; label comes
// back lower-cased, value empty when no delimiter is present.
func splitAttributeLabel(segment string) (label, value string) {
	if idx := strings.Index(segment, ":"); idx >= 0 {
		return strings.ToLower(strings.TrimSpace(segment[:idx])), strings.TrimSpace(segment[idx+1:])
	}
	if idx := strings.Index(segment, " - "); idx >= 0 {
		return strings.ToLower(strings.TrimSpace(segment[:idx])), strings.TrimSpace(segment[idx+3:])
	}
	return "", ""
}

func appendMatrixNote(row *MatrixRow, text string) {
	note := strings.TrimSpace(PersonalizeCopy(text))
	if note == "" {
		return
	}
	if row.Notes != "" {
		note = row.Notes + " " + note
	}
	if runes := []rune(note); len(runes) > matrixNotesLimit {
		note = string(runes[:matrixNotesLimit]) + "…"
	}
	row.Notes = note
}

func fillMatrixDefaults(row *MatrixRow) {
	set := func(field *string, name, fallback string) {
		if *field == "" {
			*field = fallback
			row.Defaulted = append(row.Defaulted, name)
		}
	}
	set(&row.Goal, "goal", "Strong")
	set(&row.Time, "time", "Aligned")
	set(&row.Budget, "budget", "Within range")
	set(&row.Skill, "skill", "Good match")
	set(&row.WorkStyle, "workStyle", "Compatible")
}
