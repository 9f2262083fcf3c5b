package section

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	docTitleRe    = regexp.MustCompile(`(?i)(profile summary document|intake profile)`)
	boldHeadingRe = regexp.MustCompile(`^\*\*(?:\d{1,3}\.\s*)?([^*]+?)\*\*:?\s*$`)
	atxHeadingRe  = regexp.MustCompile(`^(#{2,6})\s+(.+?)\s*$`)
	titleColonRe  = regexp.MustCompile(`^[A-Z][A-Za-z0-9 ,&/()'-]{0,90}:$`)
	numberedSubRe = regexp.MustCompile(`^\d{1,3}\.\s+\*\*([^*]+?)\*\*:?\s*(.*)$`)
	bulletSubRe   = regexp.MustCompile(`^\s*[-*]\s+\*\*([^*]+?)\*\*:?\s*(.*)$`)
)

// Split parses markdown into nested sections. Heading recognition per line,
// first match wins: document-title lines are discarded; standalone bold
// lines and ATX headings (level 2+) start a section; a short colon-terminated
// title-case line starts a section only once the current one has substantial
// content; numbered or bulleted items with a bold lead-in start a subsection.
// Everything else is content for the open subsection or section intro.
// If nothing structured is found, non-empty input is re-split on paragraph
// boundaries into synthesized sections.
func Split(markdown string) []Section {
	s := &splitter{}
	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)

		if docTitleRe.MatchString(trimmed) {
			continue
		}
		if m := boldHeadingRe.FindStringSubmatch(trimmed); m != nil {
			s.startSection(trimTitle(m[1]), 2)
			continue
		}
		if m := atxHeadingRe.FindStringSubmatch(trimmed); m != nil {
			s.startSection(trimTitle(m[2]), len(m[1]))
			continue
		}
		if s.cur != nil && titleColonRe.MatchString(trimmed) && len(trimmed) < 100 &&
			!strings.ContainsAny(trimmed, "*_`#|") && s.hasSubstantialContent() {
			s.startSection(strings.TrimSuffix(trimmed, ":"), 2)
			continue
		}
		if m := numberedSubRe.FindStringSubmatch(trimmed); m != nil {
			s.startSubsection(trimTitle(m[1]), 3, m[2])
			continue
		}
		if m := bulletSubRe.FindStringSubmatch(line); m != nil {
			s.startSubsection(trimTitle(m[1]), 3, m[2])
			continue
		}
		s.appendContent(line)
	}
	s.flushSection()

	if len(s.sections) == 0 && strings.TrimSpace(markdown) != "" {
		return fallbackSections(markdown)
	}
	return s.sections
}

type splitter struct {
	sections []Section
	cur      *Section
	sub      *Subsection
	intro    []string
	content  []string
	// lines buffered into the current section, intro and subsections
	// combined; drives the colon-heading heuristic.
	bufferedLines int
}

func (s *splitter) startSection(title string, level int) {
	s.flushSection()
	s.cur = &Section{Title: title, Level: level}
}

func (s *splitter) startSubsection(title string, level int, first string) {
	if s.cur == nil {
		// A subsection heading before any section heading: open an
		// untitled container so the content is not lost.
		s.cur = &Section{Title: "", Level: 2}
	}
	s.flushSubsection()
	s.sub = &Subsection{Title: title, Level: level}
	if strings.TrimSpace(first) != "" {
		s.content = append(s.content, strings.TrimSpace(first))
		s.bufferedLines++
	}
}

func (s *splitter) appendContent(line string) {
	blank := strings.TrimSpace(line) == ""
	switch {
	case s.sub != nil:
		if blank && len(s.content) == 0 {
			return
		}
		s.content = append(s.content, line)
		s.bufferedLines++
	case s.cur != nil:
		if blank && len(s.intro) == 0 {
			return
		}
		s.intro = append(s.intro, line)
		s.bufferedLines++
	}
	// No section open yet: the line is discarded.
}

func (s *splitter) hasSubstantialContent() bool {
	return s.bufferedLines > 5 || len(strings.TrimSpace(strings.Join(s.intro, "\n"))) > 50
}

func (s *splitter) flushSubsection() {
	if s.sub == nil {
		return
	}
	s.sub.Content = strings.TrimSpace(strings.Join(s.content, "\n"))
	s.cur.Subsections = append(s.cur.Subsections, *s.sub)
	s.sub = nil
	s.content = nil
}

func (s *splitter) flushSection() {
	s.flushSubsection()
	if s.cur != nil {
		s.cur.Intro = strings.TrimSpace(strings.Join(s.intro, "\n"))
		s.sections = append(s.sections, *s.cur)
	}
	s.cur = nil
	s.intro = nil
	s.bufferedLines = 0
}

func trimTitle(t string) string {
	return strings.TrimSuffix(strings.TrimSpace(t), ":")
}

var paragraphSepRe = regexp.MustCompile(`\n[ \t]*\n+`)

// fallbackSections synthesizes sections from paragraph blocks when no
// structured heading form was recognized anywhere.
func fallbackSections(markdown string) []Section {
	var out []Section
	for _, block := range paragraphSepRe.Split(markdown, -1) {
		text := strings.TrimSpace(block)
		if text == "" {
			continue
		}
		title := fmt.Sprintf("Section %d", len(out)+1)
		body := text
		first, rest, _ := strings.Cut(text, "\n")
		first = strings.TrimSpace(first)
		if first != "" && len(first) <= 80 && !strings.ContainsAny(first[:1], "-*+>|") {
			title = strings.TrimSuffix(first, ":")
			body = strings.TrimSpace(rest)
		}
		out = append(out, Section{Title: title, Level: 2, Intro: body})
	}
	return out
}
