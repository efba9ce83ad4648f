package report

import (
	"fmt"
	"strings"
)

// severityLevels are scanned for in the order they are reported.
var severityLevels = []string{"Critical", "High", "Medium", "Low", "Informational"}

// Insights is a defect-severity breakdown scanned out of a report.
type Insights struct {
	Total  int
	Counts map[string]int
}

// ScanInsights counts the lines of text that mention each severity level.
// A line mentioning two levels counts once for each.
func ScanInsights(text string) Insights {
	counts := make(map[string]int, len(severityLevels))
	for _, level := range severityLevels {
		counts[level] = 0
	}

	total := 0
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, level := range severityLevels {
			if strings.Contains(lower, strings.ToLower(level)) {
				counts[level]++
				total++
			}
		}
	}

	return Insights{Total: total, Counts: counts}
}

// String renders the breakdown as the block included in summary emails.
func (in Insights) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Defects: %d", in.Total)
	for _, level := range severityLevels {
		fmt.Fprintf(&b, "\n%s: %d", level, in.Counts[level])
	}
	return b.String()
}
