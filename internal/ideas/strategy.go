package ideas

import (
	"fmt"
	"regexp"
	"strings"
)

// Match is one candidate idea heading located in the source: its parsed or
// assigned rank, raw title text, and the byte span of the heading line.
type Match struct {
	Index int
	Title string
	Start int
	End   int
}

// Strategy is one pattern family for locating idea headings. Try returns nil
// when the markdown carries nothing the strategy recognizes; limit lets
// expensive scans stop early and is advisory only, since Extract truncates
// the final list anyway.
type Strategy interface {
	Name() string
	Try(markdown string, limit int) []Match
}

// Strategies returns the cascade in priority order, strictest first.
func Strategies() []Strategy {
	return []Strategy{
		numberedBold{},
		numberedPlain{},
		subheading{},
		boldLine{},
		titleLine{},
		paragraphBlock{},
	}
}

// fillerWords lead sentences, not titles. Lower-cased for comparison.
var fillerWords = map[string]struct{}{
	"the": {}, "this": {}, "and": {}, "but": {}, "however": {}, "it": {},
	"a": {}, "an": {}, "in": {}, "as": {}, "if": {}, "for": {}, "with": {},
	"note": {}, "also": {}, "these": {}, "those": {}, "you": {}, "your": {},
	"we": {}, "they": {}, "there": {}, "here": {},
}

func startsWithFiller(s string) bool {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return true
	}
	_, ok := fillerWords[strings.TrimRight(fields[0], ",.:;")]
	return ok
}

// numberedBold matches "1. **Title**" lines, optionally behind a heading
// marker, and takes the rank from the source numbering.
type numberedBold struct{}

var numberedBoldRe = regexp.MustCompile(`(?m)^(?:#{1,4}\s*)?(\d{1,3})\.\s+\*\*([^*\n]+)\*\*[^\n]*$`)

func (numberedBold) Name() string { return "numbered-bold" }

func (numberedBold) Try(md string, _ int) []Match {
	var out []Match
	for _, loc := range numberedBoldRe.FindAllStringSubmatchIndex(md, -1) {
		if len(loc) < 6 || loc[2] < 0 || loc[4] < 0 {
			continue
		}
		out = append(out, Match{
			Index: atoiSafe(md[loc[2]:loc[3]]),
			Title: md[loc[4]:loc[5]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return out
}

// numberedPlain matches "1. Title text" lines without bold markers.
type numberedPlain struct{}

var numberedPlainRe = regexp.MustCompile(`(?m)^(\d{1,3})\.\s+([^\n]+)$`)

func (numberedPlain) Name() string { return "numbered-plain" }

func (numberedPlain) Try(md string, _ int) []Match {
	var out []Match
	for _, loc := range numberedPlainRe.FindAllStringSubmatchIndex(md, -1) {
		if len(loc) < 6 || loc[2] < 0 || loc[4] < 0 {
			continue
		}
		out = append(out, Match{
			Index: atoiSafe(md[loc[2]:loc[3]]),
			Title: md[loc[4]:loc[5]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return out
}

// subheading matches level 2-3 ATX headings, ranked by position since the
// source carries no explicit numbering.
type subheading struct{}

var subheadingRe = regexp.MustCompile(`(?m)^#{2,3}\s+([^\n]+)$`)

func (subheading) Name() string { return "subheading" }

func (subheading) Try(md string, _ int) []Match {
	var out []Match
	for _, loc := range subheadingRe.FindAllStringSubmatchIndex(md, -1) {
		if len(loc) < 4 || loc[2] < 0 {
			continue
		}
		out = append(out, Match{
			Index: len(out) + 1,
			Title: md[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return out
}

// boldLine matches a standalone "**Title**" line, filtered to plausible
// title lengths and non-filler openings.
type boldLine struct{}

var boldLineRe = regexp.MustCompile(`(?m)^\*\*([^*\n]+)\*\*\s*$`)

func (boldLine) Name() string { return "bold-line" }

func (boldLine) Try(md string, _ int) []Match {
	var out []Match
	for _, loc := range boldLineRe.FindAllStringSubmatchIndex(md, -1) {
		if len(loc) < 4 || loc[2] < 0 {
			continue
		}
		title := strings.TrimSpace(md[loc[2]:loc[3]])
		if len(title) <= 3 || len(title) >= 100 || startsWithFiller(title) {
			continue
		}
		out = append(out, Match{
			Index: len(out) + 1,
			Title: title,
			Start: loc[0],
			End:   loc[1],
		})
	}
	return out
}

// titleLine heuristically spots unmarked title lines: a short capitalized
// line that is not a list or heading marker, does not open with filler, and
// is immediately followed by a substantial content line.
type titleLine struct{}

func (titleLine) Name() string { return "title-line" }

func (titleLine) Try(md string, limit int) []Match {
	lines := strings.Split(md, "\n")
	offsets := lineOffsets(md, lines)
	var out []Match
	for i, line := range lines {
		if limit > 0 && len(out) >= limit {
			break
		}
		t := strings.TrimSpace(line)
		if len(t) < 10 || len(t) > 80 {
			continue
		}
		if t[0] < 'A' || t[0] > 'Z' {
			continue
		}
		if looksLikeMarker(t) || startsWithFiller(t) {
			continue
		}
		if i+1 >= len(lines) || len(strings.TrimSpace(lines[i+1])) <= 20 {
			continue
		}
		out = append(out, Match{
			Index: len(out) + 1,
			Title: t,
			Start: offsets[i],
			End:   offsets[i] + len(lines[i]),
		})
	}
	return out
}

func looksLikeMarker(t string) bool {
	if strings.HasPrefix(t, "#") || strings.HasPrefix(t, "-") ||
		strings.HasPrefix(t, "*") || strings.HasPrefix(t, "+") ||
		strings.HasPrefix(t, ">") || strings.HasPrefix(t, "|") {
		return true
	}
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	return i > 0 && i < len(t) && (t[i] == '.' || t[i] == ')')
}

func lineOffsets(md string, lines []string) []int {
	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1
	}
	return offsets
}

// paragraphBlock is the last resort: split on blank lines, keep substantial
// blocks, and promote each block's first line to a title when it is short
// enough, else label the block "Idea N".
type paragraphBlock struct{}

var blockSepRe = regexp.MustCompile(`\n[ \t]*\n+`)

func (paragraphBlock) Name() string { return "paragraph-block" }

func (paragraphBlock) Try(md string, _ int) []Match {
	seps := blockSepRe.FindAllStringIndex(md, -1)
	bounds := make([][2]int, 0, len(seps)+1)
	start := 0
	for _, sep := range seps {
		bounds = append(bounds, [2]int{start, sep[0]})
		start = sep[1]
	}
	bounds = append(bounds, [2]int{start, len(md)})

	var out []Match
	for _, b := range bounds {
		block := md[b[0]:b[1]]
		if len(strings.TrimSpace(block)) <= 50 {
			continue
		}
		// Advance past leading whitespace so the body slice starts clean.
		blockStart := b[0] + (len(block) - len(strings.TrimLeft(block, " \t\r\n")))
		firstLineEnd := b[1]
		if idx := strings.IndexByte(md[blockStart:b[1]], '\n'); idx >= 0 {
			firstLineEnd = blockStart + idx
		}
		first := strings.TrimSpace(md[blockStart:firstLineEnd])
		m := Match{Index: len(out) + 1, Start: blockStart}
		if first != "" && len(first) <= 80 {
			m.Title = first
			m.End = firstLineEnd
		} else {
			m.Title = fmt.Sprintf("Idea %d", len(out)+1)
			m.End = blockStart
		}
		out = append(out, m)
	}
	return out
}
