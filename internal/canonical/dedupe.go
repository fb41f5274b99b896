package canonical

import "strings"

// optionKey normalizes an option for duplicate detection: surrounding
// whitespace and trailing punctuation are ignored, comparison is
// case-insensitive.
func optionKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "!?.,;:")
	return strings.ToLower(s)
}

// DedupeOptions collapses options that differ only by case or trailing
// punctuation, keeping the first-seen spelling, and recomputes the correct
// option's index inside the reduced list. An out-of-range correctIndex is
// treated as 0. On non-empty input the result is never empty; as a safety
// fallback the input is returned unchanged if it would be.
func DedupeOptions(options []string, correctIndex int) ([]string, int) {
	if len(options) == 0 {
		return options, correctIndex
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		correctIndex = 0
	}
	correctKey := optionKey(options[correctIndex])

	seen := make(map[string]bool, len(options))
	var out []string
	for _, o := range options {
		key := optionKey(o)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, o)
	}
	if len(out) == 0 {
		return options, correctIndex
	}

	newIndex := 0
	for i, o := range out {
		if optionKey(o) == correctKey {
			newIndex = i
			break
		}
	}
	return out, newIndex
}
