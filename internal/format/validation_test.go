package format

import (
	"strings"
	"testing"
)

func TestBuildValidationQuestions_PadsToMinimum(t *testing.T) {
	qs := BuildValidationQuestions("", "X", "Y", "Z")
	if len(qs) != minValidationQuestions {
		t.Fatalf("count: got %d", len(qs))
	}
	seen := map[string]struct{}{}
	for i, q := range qs {
		if q.Question == "" || q.ListenFor == "" || q.ActOn == "" {
			t.Fatalf("entry %d has empty field: %+v", i, q)
		}
		key := strings.ToLower(q.Question)
		if _, ok := seen[key]; ok {
			t.Fatalf("duplicate question: %q", q.Question)
		}
		seen[key] = struct{}{}
	}
}

func TestBuildValidationQuestions_SubstitutesPlaceholders(t *testing.T) {
	qs := BuildValidationQuestions("", "Dog Walking", "busy commuters", "extra income")
	joined := ""
	for _, q := range qs {
		joined += q.Question + " " + q.ListenFor + " " + q.ActOn + " "
	}
	if strings.Contains(joined, "{{") {
		t.Fatalf("unsubstituted placeholder in %q", joined)
	}
	if !strings.Contains(joined, "Dog Walking") {
		t.Fatalf("idea title missing from questions")
	}
	if !strings.Contains(joined, "busy commuters") {
		t.Fatalf("audience missing from questions")
	}
}

func TestBuildValidationQuestions_KeepsSourceQuestions(t *testing.T) {
	text := "- How do you find clients today?\n- Not a question item\n- What would you pay for this?"
	qs := BuildValidationQuestions(text, "X", "Y", "Z")
	if len(qs) != minValidationQuestions {
		t.Fatalf("count: got %d", len(qs))
	}
	if qs[0].Question != "How do you find clients today?" {
		t.Fatalf("first question: got %q", qs[0].Question)
	}
	if qs[1].Question != "What would you pay for this?" {
		t.Fatalf("second question: got %q", qs[1].Question)
	}
}

func TestBuildValidationQuestions_DedupesAgainstTemplates(t *testing.T) {
	// A source question identical to a filled-in template must not appear
	// twice.
	source := "- How do busy parents currently solve the problem Meal Prep addresses?"
	qs := BuildValidationQuestions(source, "Meal Prep", "busy parents", "income")
	count := 0
	for _, q := range qs {
		if strings.EqualFold(q.Question, "How do busy parents currently solve the problem Meal Prep addresses?") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("question duplicated %d times", count)
	}
}
