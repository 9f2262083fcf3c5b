package format

import (
	"regexp"
	"strings"
)

// Severity grades a risk row.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// RiskRow is one entry of a risk matrix.
type RiskRow struct {
	Risk       string   `json:"risk"`
	Severity   Severity `json:"severity"`
	Mitigation string   `json:"mitigation"`
}

// fallbackMitigation fills in when the source offers no mitigation text.
const fallbackMitigation = "No mitigation was suggested for this risk; review it with a mentor or advisor before committing."

var (
	highSeverityRe   = regexp.MustCompile(`(?i)\b(severe|critical|extreme|high)\b`)
	mediumSeverityRe = regexp.MustCompile(`(?i)\b(medium|moderate)\b`)
	lowSeverityRe    = regexp.MustCompile(`(?i)\b(low|minor)\b`)
	mitigationRe     = regexp.MustCompile(`(?i)\bmitigation\s*[:\-]\s*`)
)

// ParseRiskRows parses a risk block into rows. A markdown table is preferred
// when at least two pipe rows exist; otherwise list items are parsed with
// keyword severity detection. Both paths degrade instead of failing.
func ParseRiskRows(text string) []RiskRow {
	if rows := riskRowsFromTable(text); len(rows) > 0 {
		return rows
	}
	return riskRowsFromList(text)
}

func riskRowsFromTable(text string) []RiskRow {
	rows := pipeRows(text)
	if len(rows) < 2 {
		return nil
	}
	var out []RiskRow
	for _, cells := range dataRows(rows) {
		if len(cells) == 0 {
			continue
		}
		risk := cells[0]
		if len(cells) > 1 && cells[1] != "" {
			risk += ": " + cells[1]
		}
		mitigation := ""
		if len(cells) > 2 {
			mitigation = cells[2]
		}
		if strings.TrimSpace(risk) == "" && mitigation == "" {
			continue
		}
		if mitigation == "" {
			mitigation = fallbackMitigation
		}
		out = append(out, RiskRow{
			Risk:       PersonalizeCopy(risk),
			Severity:   detectSeverity(strings.Join(cells, " ")),
			Mitigation: PersonalizeCopy(mitigation),
		})
	}
	return out
}

func riskRowsFromList(text string) []RiskRow {
	var out []RiskRow
	for _, item := range rawListItems(text) {
		risk, mitigation := splitRiskMitigation(item)
		if risk == "" {
			continue
		}
		if mitigation == "" {
			mitigation = fallbackMitigation
		}
		out = append(out, RiskRow{
			Risk:       PersonalizeCopy(risk),
			Severity:   detectSeverity(item),
			Mitigation: PersonalizeCopy(mitigation),
		})
	}
	return out
}

func detectSeverity(text string) Severity {
	switch {
	case highSeverityRe.MatchString(text):
		return SeverityHigh
	case mediumSeverityRe.MatchString(text):
		return SeverityMedium
	case lowSeverityRe.MatchString(text):
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// splitRiskMitigation separates an item into risk and mitigation text,
// preferring an explicit "Mitigation:" label, then an em/en dash, then a
// spaced hyphen. Hyphenated words never split, but a dash inside the risk
// description itself can still misattribute text; free-form prose has no
// grammar to lean on.
func splitRiskMitigation(item string) (risk, mitigation string) {
	item = strings.TrimSpace(item)
	if loc := mitigationRe.FindStringIndex(item); loc != nil {
		return trimRiskText(item[:loc[0]]), strings.TrimSpace(item[loc[1]:])
	}
	for _, dash := range []string{"—", "–", " - "} {
		if idx := strings.Index(item, dash); idx >= 0 {
			return trimRiskText(item[:idx]), strings.TrimSpace(item[idx+len(dash):])
		}
	}
	return trimRiskText(item), ""
}

func trimRiskText(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), " :;,.-—–")
}
