package format

import (
	"strings"
	"testing"
)

func TestParseRecommendationMatrix_RowsAndAttributes(t *testing.T) {
	md := `- **Coffee Cart**: Goal fit: Strong | Budget: Low cost
  - Time: 10 hrs/week
  - Needs a vendor permit
- **Tutoring Service**: Skill match: Excellent`

	rows := ParseRecommendationMatrix(md)
	if len(rows) != 2 {
		t.Fatalf("rows: got %d", len(rows))
	}

	first := rows[0]
	if first.Order != 1 || first.Idea != "Coffee Cart" {
		t.Fatalf("first row: got order=%d idea=%q", first.Order, first.Idea)
	}
	if first.Goal != "Strong" {
		t.Fatalf("goal: got %q", first.Goal)
	}
	if first.Budget != "Low cost" {
		t.Fatalf("budget: got %q", first.Budget)
	}
	if first.Time != "10 hrs/week" {
		t.Fatalf("time: got %q", first.Time)
	}
	if !strings.Contains(first.Notes, "vendor permit") {
		t.Fatalf("notes: got %q", first.Notes)
	}

	second := rows[1]
	if second.Order != 2 || second.Idea != "Tutoring Service" {
		t.Fatalf("second row: got order=%d idea=%q", second.Order, second.Idea)
	}
	if second.Skill != "Excellent" {
		t.Fatalf("skill: got %q", second.Skill)
	}
}

func TestParseRecommendationMatrix_DefaultsTracked(t *testing.T) {
	rows := ParseRecommendationMatrix("- **Plant Shop**: Goal: Strong")
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	row := rows[0]
	if row.Goal != "Strong" {
		t.Fatalf("goal: got %q", row.Goal)
	}
	if row.Time != "Aligned" || row.Budget != "Within range" ||
		row.Skill != "Good match" || row.WorkStyle != "Compatible" {
		t.Fatalf("canned defaults missing: %+v", row)
	}
	for _, name := range []string{"time", "budget", "skill", "workStyle"} {
		found := false
		for _, d := range row.Defaulted {
			if d == name {
				found = true
			}
		}
		if !found {
			t.Fatalf("defaulted should record %q: got %v", name, row.Defaulted)
		}
	}
	for _, d := range row.Defaulted {
		if d == "goal" {
			t.Fatalf("goal was present in source, should not be marked defaulted")
		}
	}
}

func TestParseRecommendationMatrix_NotesTruncated(t *testing.T) {
	long := strings.Repeat("word ", 60)
	rows := ParseRecommendationMatrix("- **Idea**: something\n  - " + long)
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	notes := []rune(rows[0].Notes)
	if len(notes) > matrixNotesLimit+1 {
		t.Fatalf("notes too long: %d runes", len(notes))
	}
	if !strings.HasSuffix(rows[0].Notes, "…") {
		t.Fatalf("expected truncation ellipsis, got %q", rows[0].Notes)
	}
}

func TestParseRecommendationMatrix_Empty(t *testing.T) {
	if rows := ParseRecommendationMatrix("no bullets here at all"); len(rows) != 0 {
		t.Fatalf("empty: got %d rows", len(rows))
	}
}
