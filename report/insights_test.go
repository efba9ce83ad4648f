package report

import (
	"strings"
	"testing"
)

func TestScanInsights(t *testing.T) {
	text := strings.Join([]string{
		"Finding 1: SQL injection (Critical)",
		"Finding 2: weak TLS configuration (medium)",
		"Finding 3: verbose banner (Informational)",
		"Finding 4: default creds, critical and HIGH impact",
		"Nothing severe here",
	}, "\n")

	in := ScanInsights(text)

	want := map[string]int{
		"Critical":      2,
		"High":          1,
		"Medium":        1,
		"Low":           0,
		"Informational": 1,
	}
	for level, count := range want {
		if in.Counts[level] != count {
			t.Errorf("Counts[%s] = %d, want %d", level, in.Counts[level], count)
		}
	}
	if in.Total != 5 {
		t.Errorf("Total = %d, want 5", in.Total)
	}
}

func TestScanInsightsEmpty(t *testing.T) {
	in := ScanInsights("")
	if in.Total != 0 {
		t.Errorf("Total = %d, want 0", in.Total)
	}
	for _, level := range severityLevels {
		if in.Counts[level] != 0 {
			t.Errorf("Counts[%s] = %d, want 0", level, in.Counts[level])
		}
	}
}

func TestInsightsString(t *testing.T) {
	in := ScanInsights("one critical issue\none low issue")
	got := in.String()

	if !strings.HasPrefix(got, "Total Defects: 2") {
		t.Errorf("String() = %q, want Total Defects first", got)
	}
	for _, want := range []string{"Critical: 1", "High: 0", "Medium: 0", "Low: 1", "Informational: 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q: %q", want, got)
		}
	}
}
