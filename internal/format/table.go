package format

import (
	"regexp"
	"strings"
)

var separatorCellRe = regexp.MustCompile(`^:?-+:?$`)

// pipeRows returns the trimmed cells of every line containing at least two
// pipe characters, in document order. Separator rows are included; callers
// skip them with isSeparatorRow.
func pipeRows(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.Count(line, "|") < 2 {
			continue
		}
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimPrefix(trimmed, "|")
		trimmed = strings.TrimSuffix(trimmed, "|")
		parts := strings.Split(trimmed, "|")
		cells := make([]string, 0, len(parts))
		for _, p := range parts {
			cells = append(cells, strings.TrimSpace(p))
		}
		rows = append(rows, cells)
	}
	return rows
}

// isSeparatorRow reports whether cells form a markdown header separator like
// |---|:---:|---|.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if c == "" {
			continue
		}
		if !separatorCellRe.MatchString(c) {
			return false
		}
	}
	return true
}

// dataRows strips the header and any separator rows, leaving body rows only.
func dataRows(rows [][]string) [][]string {
	var out [][]string
	for i, cells := range rows {
		if i == 0 || isSeparatorRow(cells) {
			continue
		}
		out = append(out, cells)
	}
	return out
}
