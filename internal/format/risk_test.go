package format

import (
	"strings"
	"testing"
)

func TestParseRiskRows_Table(t *testing.T) {
	md := `| Risk Category | Risk Description | Mitigation Strategies |
|-------|-------|-------|
| Market Competition | Established players | Build local partnerships |`

	rows := ParseRiskRows(md)
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if !strings.Contains(rows[0].Risk, "Market Competition") {
		t.Fatalf("risk: got %q", rows[0].Risk)
	}
	if !strings.Contains(rows[0].Mitigation, "Build local partnerships") {
		t.Fatalf("mitigation: got %q", rows[0].Mitigation)
	}
}

func TestParseRiskRows_SeverityDefault(t *testing.T) {
	rows := ParseRiskRows("- Some risk: some mitigation")
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if rows[0].Severity != SeverityMedium {
		t.Fatalf("severity: got %q", rows[0].Severity)
	}
	if rows[0].Mitigation == "" {
		t.Fatalf("expected fallback mitigation, got empty")
	}
}

func TestParseRiskRows_SeverityKeywords(t *testing.T) {
	rows := ParseRiskRows("- Critical churn early on — add an onboarding call\n- Minor paperwork delays — file early")
	if len(rows) != 2 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if rows[0].Severity != SeverityHigh {
		t.Fatalf("first severity: got %q", rows[0].Severity)
	}
	if rows[1].Severity != SeverityLow {
		t.Fatalf("second severity: got %q", rows[1].Severity)
	}
}

func TestParseRiskRows_MitigationLabelPreferred(t *testing.T) {
	rows := ParseRiskRows("- Cash-flow gap in winter. Mitigation: line up two retainer clients")
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if !strings.Contains(rows[0].Risk, "Cash-flow gap") {
		t.Fatalf("risk: got %q", rows[0].Risk)
	}
	if rows[0].Mitigation != "line up two retainer clients" {
		t.Fatalf("mitigation: got %q", rows[0].Mitigation)
	}
}

func TestParseRiskRows_EmDashSplit(t *testing.T) {
	rows := ParseRiskRows("- Funding gap — raise a small angel round")
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if rows[0].Risk != "Funding gap" {
		t.Fatalf("risk: got %q", rows[0].Risk)
	}
	if rows[0].Mitigation != "raise a small angel round" {
		t.Fatalf("mitigation: got %q", rows[0].Mitigation)
	}
}

func TestParseRiskRows_Empty(t *testing.T) {
	if rows := ParseRiskRows(""); len(rows) != 0 {
		t.Fatalf("empty input: got %d rows", len(rows))
	}
}
