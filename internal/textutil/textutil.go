// Package textutil holds the small pure string helpers shared by the
// composer and the preview simulator.
package textutil

import "strings"

// Ellipsis is the single rune appended by TruncateToWordLimit.
const Ellipsis = "…"

// SanitizeOrFallback returns the trimmed value if it is non-empty after
// trimming, otherwise the fallback verbatim.
func SanitizeOrFallback(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

// SplitDelimitedList splits free text on ';', ',' or newlines, trims each
// piece and drops empty ones. Order follows first occurrence in the source.
// Empty input yields an empty (nil) slice.
func SplitDelimitedList(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ',' || r == '\n'
	})

	var items []string
	for _, piece := range pieces {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// CyclicPick returns list[index mod len(list)]. The fixed tables this is
// used with are non-empty by construction; an empty list is a programmer
// error and panics like any out-of-range index would.
func CyclicPick(list []string, index int) string {
	return list[index%len(list)]
}

// TruncateToWordLimit splits text on whitespace runs and, when the word
// count exceeds maxWords, joins the first max(3, maxWords) words with single
// spaces and appends a single ellipsis rune. Limits below 3 are silently
// raised to 3; this floor is part of the contract.
func TruncateToWordLimit(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}

	keep := maxWords
	if keep < 3 {
		keep = 3
	}
	if keep > len(words) {
		keep = len(words)
	}
	return strings.Join(words[:keep], " ") + Ellipsis
}
