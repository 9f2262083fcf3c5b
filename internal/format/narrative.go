package format

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headingMarkerRe = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	// Opening discourse connectives signal a lead-in sentence that reads as
	// redundant when narrative fragments from several sections are stitched
	// together.
	connectiveRe = regexp.MustCompile(`(?i)^(given|overall|in summary|in conclusion)\b`)
)

// minExecutionSteps is the floor BuildExecutionSteps pads up to.
const minExecutionSteps = 5

var stepBank = []string{
	"Write a one-sentence pitch for {{idea}} and test it on five people in {{audience}}.",
	"Interview at least ten potential customers before building anything.",
	"Sketch the smallest version of {{idea}} that could earn its first dollar.",
	"Set a four-week deadline for a testable prototype and hold to it.",
	"Pick one acquisition channel and run it for thirty days before adding another.",
	"Review progress against {{goal}} at the end of each month and cut what is not working.",
}

// BuildExecutionSteps extracts list items from text as concrete next steps
// and pads them to minExecutionSteps from the step bank, de-duplicated
// case-insensitively.
func BuildExecutionSteps(text, ideaTitle string) []string {
	steps := ExtractListFromText(text)
	for _, tpl := range stepBank {
		if len(steps) >= minExecutionSteps {
			break
		}
		steps = append(steps, substitutePlaceholders(tpl, ideaTitle, "", ""))
	}
	return DedupeStrings(steps)
}

// BuildFinalConclusion cleans the source narrative into a closing paragraph,
// synthesizing one from the idea title when the source is too thin.
func BuildFinalConclusion(text, ideaTitle string) string {
	cleaned := CleanNarrativeMarkdown(text)
	if len(cleaned) >= 40 {
		return cleaned
	}
	title := strings.TrimSpace(ideaTitle)
	if title == "" {
		title = "This idea"
	}
	return fmt.Sprintf("%s fits the profile you shared: start small, validate with real customers, and revisit the plan every thirty days.", title)
}

// FormatSectionHeading strips markdown noise from a heading and title-cases
// it when the source casing is flat (all lower or all upper). Mixed-case
// headings are assumed intentional and left alone.
func FormatSectionHeading(title string) string {
	t := strings.TrimSpace(title)
	t = strings.TrimLeft(t, "# ")
	t = strings.Trim(t, "*_` ")
	t = strings.TrimSuffix(t, ":")
	t = collapseWhitespace(t)
	if t == "" {
		return ""
	}
	lower := strings.ToLower(t)
	if t == lower || t == strings.ToUpper(t) {
		return cases.Title(language.AmericanEnglish).String(lower)
	}
	return t
}

// CleanNarrativeMarkdown flattens a narrative fragment to plain prose:
// heading and emphasis markers are removed, whitespace collapsed, and an
// opening connective sentence dropped. The result is personalized.
func CleanNarrativeMarkdown(text string) string {
	t := headingMarkerRe.ReplaceAllString(text, "")
	t = strings.ReplaceAll(t, "**", "")
	t = strings.ReplaceAll(t, "__", "")
	t = strings.ReplaceAll(t, "`", "")
	t = collapseWhitespace(t)
	if connectiveRe.MatchString(t) {
		if idx := strings.Index(t, ". "); idx >= 0 {
			t = strings.TrimSpace(t[idx+2:])
		}
	}
	return PersonalizeCopy(t)
}
