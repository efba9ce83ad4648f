package report

import (
	"strings"
)

// DefaultSummaryBudget is the summary length cap in runes when the caller
// does not supply one.
const DefaultSummaryBudget = 1200

// summarySections are the headings whose content is preferred as the summary.
var summarySections = []string{
	"Executive Summary",
	"Summary of Findings",
	"Conclusion",
	"Summary",
}

// previewParagraphs is how many leading paragraphs the fallback preview uses.
const previewParagraphs = 3

// Summarize produces a short representative string for text.
//
// Text that already fits the budget is returned unchanged (after trimming
// surrounding whitespace), so summarizing a summary is a no-op. Longer text
// is reduced to the content under a summary-section heading when one
// exists, otherwise to a preview of the leading paragraphs, and truncated
// to the budget.
func Summarize(text string, budget int) string {
	if budget <= 0 {
		budget = DefaultSummaryBudget
	}

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) <= budget {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")

	if section := summarySection(lines); section != "" {
		return truncateRunes(section, budget)
	}

	preview := firstParagraphs(lines, previewParagraphs)
	return truncateRunes("No summary section found. Preview:\n"+preview, budget)
}

// summarySection returns the text under the first summary-section heading,
// capturing until the next summary-style heading or end of document.
// Returns "" when no heading matches.
func summarySection(lines []string) string {
	var captured []string
	capturing := false

	for _, line := range lines {
		if isSectionHeading(line) {
			if capturing && len(captured) > 0 {
				break
			}
			capturing = true
			continue // skip the heading itself
		}
		if !capturing {
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			captured = append(captured, trimmed)
		}
	}

	return strings.Join(captured, "\n")
}

// isSectionHeading reports whether a line is one of the recognized
// summary-section headings, ignoring case and surrounding punctuation.
func isSectionHeading(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.Trim(trimmed, ":. ")
	for _, section := range summarySections {
		if trimmed == strings.ToLower(section) {
			return true
		}
	}
	return false
}

// firstParagraphs joins the first n non-empty lines.
func firstParagraphs(lines []string, n int) string {
	var out []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
			if len(out) == n {
				break
			}
		}
	}
	return strings.Join(out, "\n")
}

// truncateRunes caps s at budget runes, appending an ellipsis when cut.
func truncateRunes(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	if budget <= 3 {
		return string(runes[:budget])
	}
	return string(runes[:budget-3]) + "..."
}
