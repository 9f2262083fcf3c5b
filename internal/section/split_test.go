package section

import (
	"strings"
	"testing"
)

func TestSplit_SectionWithSubsection(t *testing.T) {
	got := Split("## Section A\nIntro line.\n- **Sub One:** content")
	if len(got) != 1 {
		t.Fatalf("sections: got %d", len(got))
	}
	sec := got[0]
	if sec.Title != "Section A" || sec.Level != 2 {
		t.Fatalf("section: got title=%q level=%d", sec.Title, sec.Level)
	}
	if sec.Intro != "Intro line." {
		t.Fatalf("intro: got %q", sec.Intro)
	}
	if len(sec.Subsections) != 1 {
		t.Fatalf("subsections: got %d", len(sec.Subsections))
	}
	sub := sec.Subsections[0]
	if sub.Title != "Sub One" {
		t.Fatalf("subsection title: got %q", sub.Title)
	}
	if sub.Content != "content" {
		t.Fatalf("subsection content: got %q", sub.Content)
	}
}

func TestSplit_BoldHeadings(t *testing.T) {
	md := "**1. Market Overview**\nDemand is strong.\n**Competition**:\nThree incumbents."
	got := Split(md)
	if len(got) != 2 {
		t.Fatalf("sections: got %d", len(got))
	}
	if got[0].Title != "Market Overview" {
		t.Fatalf("first title: got %q", got[0].Title)
	}
	if got[0].Intro != "Demand is strong." {
		t.Fatalf("first intro: got %q", got[0].Intro)
	}
	if got[1].Title != "Competition" {
		t.Fatalf("second title: got %q", got[1].Title)
	}
}

func TestSplit_DiscardsDocumentTitles(t *testing.T) {
	md := "Intake Profile\n## Goals\nEarn extra income."
	got := Split(md)
	if len(got) != 1 {
		t.Fatalf("sections: got %d", len(got))
	}
	if got[0].Title != "Goals" {
		t.Fatalf("title: got %q", got[0].Title)
	}
	for _, sec := range got {
		if strings.Contains(sec.Intro, "Intake Profile") {
			t.Fatalf("document title leaked into intro: %q", sec.Intro)
		}
	}
}

func TestSplit_ColonHeadingNeedsSubstantialContent(t *testing.T) {
	// With only a short intro, a colon-terminated line is ordinary content.
	thin := "## Overview\nShort.\nKey Points:\nmore text"
	got := Split(thin)
	if len(got) != 1 {
		t.Fatalf("thin: got %d sections", len(got))
	}
	if !strings.Contains(got[0].Intro, "Key Points:") {
		t.Fatalf("colon line should stay in intro: %q", got[0].Intro)
	}

	// Once the current section has substance, the same line starts a new one.
	fat := "## Overview\n" + strings.Repeat("A line of ordinary narrative content sits here.\n", 6) + "Key Points:\nfirst point"
	got = Split(fat)
	if len(got) != 2 {
		t.Fatalf("fat: got %d sections", len(got))
	}
	if got[1].Title != "Key Points" {
		t.Fatalf("fat second title: got %q", got[1].Title)
	}
}

func TestSplit_NumberedSubsections(t *testing.T) {
	md := "## Plan\nOverview text.\n1. **Research**: talk to people\nkeep notes\n2. **Build**: ship weekly"
	got := Split(md)
	if len(got) != 1 {
		t.Fatalf("sections: got %d", len(got))
	}
	subs := got[0].Subsections
	if len(subs) != 2 {
		t.Fatalf("subsections: got %d", len(subs))
	}
	if subs[0].Title != "Research" {
		t.Fatalf("first sub title: got %q", subs[0].Title)
	}
	if !strings.Contains(subs[0].Content, "talk to people") || !strings.Contains(subs[0].Content, "keep notes") {
		t.Fatalf("first sub content: got %q", subs[0].Content)
	}
	if subs[1].Title != "Build" || subs[1].Content != "ship weekly" {
		t.Fatalf("second sub: got %+v", subs[1])
	}
}

func TestSplit_ContentBeforeAnySectionIsDropped(t *testing.T) {
	md := "stray preamble line\n## Real Section\nreal content"
	got := Split(md)
	if len(got) != 1 {
		t.Fatalf("sections: got %d", len(got))
	}
	if strings.Contains(got[0].Intro, "stray preamble") {
		t.Fatalf("preamble leaked: %q", got[0].Intro)
	}
}

func TestSplit_FallbackSynthesizesSections(t *testing.T) {
	md := "A Short Title\nthe first paragraph goes on about one idea in some detail.\n\nthe second paragraph is a single long line describing another idea entirely."
	got := Split(md)
	if len(got) != 2 {
		t.Fatalf("sections: got %d", len(got))
	}
	if got[0].Title != "A Short Title" {
		t.Fatalf("first title: got %q", got[0].Title)
	}
	if !strings.Contains(got[0].Intro, "first paragraph") {
		t.Fatalf("first intro: got %q", got[0].Intro)
	}
	if got[1].Intro != "" && got[1].Title == "" {
		t.Fatalf("second section malformed: %+v", got[1])
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Fatalf("empty: got %d sections", len(got))
	}
	if got := Split("  \n \n"); len(got) != 0 {
		t.Fatalf("whitespace: got %d sections", len(got))
	}
}

func TestSplitHeadings_Simple(t *testing.T) {
	md := "# Report\n## First\nalpha text\n\nbeta text\n### Second\ngamma"
	got := SplitHeadings(md)
	if len(got) != 2 {
		t.Fatalf("sections: got %d", len(got))
	}
	if got[0].Title != "First" || got[0].Level != 2 {
		t.Fatalf("first: got %+v", got[0])
	}
	if !strings.Contains(got[0].Intro, "alpha text") || !strings.Contains(got[0].Intro, "beta text") {
		t.Fatalf("first intro: got %q", got[0].Intro)
	}
	if got[1].Title != "Second" || got[1].Level != 3 {
		t.Fatalf("second: got %+v", got[1])
	}
}

func TestSplitHeadings_NilWhenUnstructured(t *testing.T) {
	if got := SplitHeadings("plain prose with no headings at all"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
