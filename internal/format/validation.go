package format

import "strings"

// ValidationQuestion is one customer-discovery prompt with coaching on what
// to listen for in answers and how to act on them.
type ValidationQuestion struct {
	Question  string `json:"question"`
	ListenFor string `json:"listenFor"`
	ActOn     string `json:"actOn"`
}

// minValidationQuestions is the floor the question list is padded up to.
const minValidationQuestions = 6

type questionTemplate struct {
	question  string
	listenFor string
	actOn     string
}

var questionBank = []questionTemplate{
	{
		question:  "How do {{audience}} currently solve the problem {{idea}} addresses?",
		listenFor: "Concrete workarounds and what they cost in time or money.",
		actOn:     "If nobody has a workaround today, question whether the pain is real before building.",
	},
	{
		question:  "What would make {{audience}} switch from their current solution?",
		listenFor: "Specific triggers and deal-breakers, not polite encouragement.",
		actOn:     "Fold the top two switch triggers into your first pitch.",
	},
	{
		question:  "How much do {{audience}} spend on this problem today?",
		listenFor: "Actual numbers and who signs off on the spend.",
		actOn:     "Anchor your pricing below the cost of the status quo.",
	},
	{
		question:  "Would {{idea}} help you reach {{goal}} faster than what you do now?",
		listenFor: "Hesitation or hedging around the word faster.",
		actOn:     "Sharpen the time-to-value story if answers are lukewarm.",
	},
	{
		question:  "Who else should I talk to about {{idea}}?",
		listenFor: "Whether referrals come quickly and enthusiastically.",
		actOn:     "Slow or reluctant referrals usually mean weak interest; revisit the problem framing.",
	},
	{
		question:  "What nearly stopped you from trying solutions like {{idea}} before?",
		listenFor: "Objections about trust, setup effort, or hidden cost.",
		actOn:     "Remove the most common objection from your onboarding before launch.",
	},
	{
		question:  "If {{idea}} disappeared in a month, what would you miss?",
		listenFor: "Whether the answer names a specific outcome or nothing at all.",
		actOn:     "Double down on the outcome people say they would miss most.",
	},
}

const (
	extractedListenFor = "Specific, recent examples rather than general enthusiasm."
	extractedActOn     = "If answers stay vague, refine the offer before investing further."
)

// BuildValidationQuestions extracts question-shaped list items from text and
// pads the result to minValidationQuestions entries from the template bank,
// substituting the idea title, audience and goal into placeholders. Questions
// are de-duplicated case-insensitively so a source question that happens to
// match a template is not doubled.
func BuildValidationQuestions(text, ideaTitle, audience, goal string) []ValidationQuestion {
	seen := make(map[string]struct{})
	var out []ValidationQuestion
	add := func(q ValidationQuestion) {
		key := strings.ToLower(strings.TrimSpace(q.Question))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}

	for _, item := range rawListItems(text) {
		if !strings.Contains(item, "?") {
			continue
		}
		add(ValidationQuestion{
			Question:  PersonalizeCopy(item),
			ListenFor: extractedListenFor,
			ActOn:     extractedActOn,
		})
	}

	for _, tpl := range questionBank {
		if len(out) >= minValidationQuestions {
			break
		}
		add(ValidationQuestion{
			Question:  substitutePlaceholders(tpl.question, ideaTitle, audience, goal),
			ListenFor: substitutePlaceholders(tpl.listenFor, ideaTitle, audience, goal),
			ActOn:     substitutePlaceholders(tpl.actOn, ideaTitle, audience, goal),
		})
	}
	return out
}

// substitutePlaceholders fills {{idea}}, {{audience}} and {{goal}} markers,
// falling back to generic filler when a value is empty.
func substitutePlaceholders(s, ideaTitle, audience, goal string) string {
	if strings.TrimSpace(ideaTitle) == "" {
		ideaTitle = "your idea"
	}
	if strings.TrimSpace(audience) == "" {
		audience = "your target customers"
	}
	if strings.TrimSpace(goal) == "" {
		goal = "your goal"
	}
	s = strings.ReplaceAll(s, "{{idea}}", ideaTitle)
	s = strings.ReplaceAll(s, "{{audience}}", audience)
	s = strings.ReplaceAll(s, "{{goal}}", goal)
	return s
}
