// Package report assembles the typed recommendation report from raw
// markdown: sections, ranked ideas, risk and recommendation matrices,
// validation questions, a financial outlook and the 90-day launch plan.
package report

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ideabunch/reportkit/internal/format"
	"github.com/ideabunch/reportkit/internal/ideas"
	"github.com/ideabunch/reportkit/internal/profile"
	"github.com/ideabunch/reportkit/internal/section"
	"github.com/ideabunch/reportkit/internal/source"
)

// Report is the full document model handed to the presentation layer. Every
// slice may be empty; consumers are expected to fall back to the raw
// markdown when a part parsed to nothing.
type Report struct {
	Title      string                        `json:"title"`
	Sections   []section.Section             `json:"sections,omitempty"`
	Ideas      []ideas.Idea                  `json:"ideas,omitempty"`
	Risks      []format.RiskRow              `json:"risks,omitempty"`
	Matrix     []format.MatrixRow            `json:"matrix,omitempty"`
	Questions  []format.ValidationQuestion   `json:"validationQuestions,omitempty"`
	Financials []format.FinancialSnapshotRow `json:"financialOutlook,omitempty"`
	Timeline   [3]string                     `json:"timeline"`
	NextSteps  []string                      `json:"nextSteps,omitempty"`
	Conclusion string                        `json:"conclusion,omitempty"`
}

// Options tunes Build. Zero values select the defaults.
type Options struct {
	// MaxIdeas bounds the extracted idea list; defaults to 3.
	MaxIdeas int
	// Random drives synthesized numeric ranges; defaults to a time-seeded
	// source. Inject a seeded source for reproducible output.
	Random format.RandomSource
}

const defaultMaxIdeas = 3

var titleHeadingRe = regexp.MustCompile(`(?m)^#{1,3}\s+(.+)$`)

// Build parses markdown (or an HTML paste of it) into a Report, enriching
// sparse parts from the founder profile. It never fails: unparseable parts
// come back empty or template-padded.
func Build(markdown string, prof profile.Profile, opts Options) Report {
	maxIdeas := opts.MaxIdeas
	if maxIdeas <= 0 {
		maxIdeas = defaultMaxIdeas
	}

	md := source.Normalize(markdown)
	sections := section.Split(md)
	ideaList := ideas.Extract(md, maxIdeas)

	topIdea := ""
	if len(ideaList) > 0 {
		topIdea = ideaList[0].Title
	}

	riskText := sectionText(sections, "risk")
	matrixText := sectionText(sections, "recommendation matrix", "comparison")
	questionText := sectionText(sections, "validation", "question")
	financialText := sectionText(sections, "financial", "outlook")
	timelineText := sectionText(sections, "plan", "timeline", "roadmap", "90-day")
	if timelineText == "" {
		timelineText = md
	}

	r := Report{
		Title:      reportTitle(md),
		Sections:   sections,
		Ideas:      ideaList,
		Risks:      format.ParseRiskRows(riskText),
		Matrix:     format.ParseRecommendationMatrix(matrixText),
		Questions:  format.BuildValidationQuestions(questionText, topIdea, prof.Audience(), prof.Goal()),
		Financials: format.BuildFinancialSnapshots(financialText, topIdea, opts.Random),
		NextSteps:  format.BuildExecutionSteps(sectionText(sections, "next steps", "execution", "action"), topIdea),
		Conclusion: format.BuildFinalConclusion(sectionText(sections, "conclusion", "summary"), topIdea),
	}
	for i := range r.Timeline {
		r.Timeline[i] = format.ExtractTimelineSlice(timelineText, i)
	}

	log.Debug().
		Int("sections", len(r.Sections)).
		Int("ideas", len(r.Ideas)).
		Int("risks", len(r.Risks)).
		Int("matrixRows", len(r.Matrix)).
		Msg("report assembled")
	return r
}

// reportTitle takes the first prominent heading, cleaned up, defaulting to a
// generic title.
func reportTitle(md string) string {
	if m := titleHeadingRe.FindStringSubmatch(md); m != nil {
		if t := format.FormatSectionHeading(m[1]); t != "" {
			return t
		}
	}
	return "Startup Recommendation Report"
}

// sectionText returns the combined text of the first section whose title
// contains any of the keywords, case-insensitively. Subsection titles and
// contents are folded in so table and list parsing sees the whole block.
func sectionText(sections []section.Section, keywords ...string) string {
	for _, sec := range sections {
		title := strings.ToLower(sec.Title)
		for _, kw := range keywords {
			if !strings.Contains(title, kw) {
				continue
			}
			var b strings.Builder
			b.WriteString(sec.Intro)
			for _, sub := range sec.Subsections {
				b.WriteString("\n- **")
				b.WriteString(sub.Title)
				b.WriteString("**: ")
				b.WriteString(sub.Content)
			}
			return strings.TrimSpace(b.String())
		}
	}
	return ""
}
