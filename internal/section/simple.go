package section

import "strings"

// SplitHeadings is the simple variant: only ATX headings of level 2+ start a
// section and everything beneath one becomes its intro, with no subsection
// parsing. It returns nil when no heading is found so the caller can render
// the raw markdown instead.
func SplitHeadings(markdown string) []Section {
	var sections []Section
	var cur *Section
	var buf []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Intro = strings.TrimSpace(strings.Join(buf, "\n"))
		sections = append(sections, *cur)
		cur = nil
		buf = nil
	}

	for _, raw := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(raw)
		if docTitleRe.MatchString(trimmed) {
			continue
		}
		if m := atxHeadingRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			cur = &Section{Title: trimTitle(m[2]), Level: len(m[1])}
			continue
		}
		if cur != nil {
			if trimmed == "" && len(buf) == 0 {
				continue
			}
			buf = append(buf, raw)
		}
	}
	flush()
	return sections
}
