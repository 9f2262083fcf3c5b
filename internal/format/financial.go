package format

import (
	"fmt"
	"strings"
)

// FinancialSnapshotRow is one line of a first-year financial outlook.
type FinancialSnapshotRow struct {
	Focus    string `json:"focus"`
	Estimate string `json:"estimate"`
	Metric   string `json:"metric"`
}

// minFinancialSnapshots is the floor the snapshot list is padded up to.
const minFinancialSnapshots = 5

// BuildFinancialSnapshots extracts "Label: value" list items that carry a
// number or dollar figure, then pads the result to minFinancialSnapshots
// entries from templates whose numeric ranges are drawn from rng. Rows are
// de-duplicated by focus text. A nil rng falls back to DefaultRandom, so only
// callers that inject a seeded source get reproducible padding.
func BuildFinancialSnapshots(text, ideaTitle string, rng RandomSource) []FinancialSnapshotRow {
	if rng == nil {
		rng = DefaultRandom()
	}
	seen := make(map[string]struct{})
	var out []FinancialSnapshotRow
	add := func(row FinancialSnapshotRow) {
		key := strings.ToLower(strings.TrimSpace(row.Focus))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}

	for _, item := range rawListItems(text) {
		focus, value := splitFocusValue(item)
		if focus == "" || value == "" {
			continue
		}
		if !strings.ContainsAny(value, "$0123456789") {
			continue
		}
		add(FinancialSnapshotRow{
			Focus:    PersonalizeCopy(focus),
			Estimate: value,
			Metric:   "Compare actuals against this figure monthly.",
		})
	}

	for _, synth := range synthesizeSnapshots(rng) {
		if len(out) >= minFinancialSnapshots {
			break
		}
		add(synth)
	}
	return out
}

// splitFocusValue splits "Label: value" or "Label - value" keeping the
// label's original casing.
func splitFocusValue(item string) (focus, value string) {
	if idx := strings.Index(item, ":"); idx >= 0 {
		return strings.TrimSpace(item[:idx]), strings.TrimSpace(item[idx+1:])
	}
	if idx := strings.Index(item, " - "); idx >= 0 {
		return strings.TrimSpace(item[:idx]), strings.TrimSpace(item[idx+3:])
	}
	return "", ""
}

// synthesizeSnapshots builds the template rows with randomized ranges. Kept
// separate so the draw order from rng is stable regardless of how many rows
// were extracted from the source.
func synthesizeSnapshots(rng RandomSource) []FinancialSnapshotRow {
	startupLow := rng.IntBetween(15, 35) * 100
	startupHigh := startupLow + rng.IntBetween(25, 45)*100
	monthlyLow := rng.IntBetween(3, 8) * 100
	monthlyHigh := monthlyLow + rng.IntBetween(4, 12)*100
	breakEven := rng.IntBetween(4, 12)
	revenueLow := rng.IntBetween(12, 30)
	revenueHigh := revenueLow + rng.IntBetween(15, 40)
	marketingShare := rng.IntBetween(10, 25)

	return []FinancialSnapshotRow{
		{
			Focus:    "Startup costs",
			Estimate: fmt.Sprintf("$%s - $%s", comma(startupLow), comma(startupHigh)),
			Metric:   "Keep one-time spend inside this range before first revenue.",
		},
		{
			Focus:    "Monthly operating costs",
			Estimate: fmt.Sprintf("$%s - $%s", comma(monthlyLow), comma(monthlyHigh)),
			Metric:   "Review recurring spend at the end of each month.",
		},
		{
			Focus:    "Break-even timeline",
			Estimate: fmt.Sprintf("%d months", breakEven),
			Metric:   "Track cumulative revenue against cumulative cost.",
		},
		{
			Focus:    "First-year revenue",
			Estimate: fmt.Sprintf("$%s,000 - $%s,000", comma(revenueLow), comma(revenueHigh)),
			Metric:   "Measure against paying-customer count, not signups.",
		},
		{
			Focus:    "Marketing budget",
			Estimate: fmt.Sprintf("%d%% of revenue", marketingShare),
			Metric:   "Watch customer acquisition cost per channel.",
		},
	}
}

// comma formats n with thousands separators; inputs here are small and
// non-negative.
func comma(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
