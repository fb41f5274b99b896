package canonical

import (
	"regexp"
	"strings"

	"oyan-content/internal/kazakh"
	"oyan-content/internal/models"
)

// Example strings look like "Сәлем — Hi!". Either an em dash or a plain
// hyphen may separate the two sides.
var exampleSeparator = regexp.MustCompile(`\s*[—\-]\s*`)

// CollectDistractors harvests up to four wrong-answer candidates for a
// question from its sibling quiz entries and the lesson's example strings.
// wantKazakh selects which script the candidates must be written in;
// exclude is the correct answer and is filtered case-insensitively.
// Candidates keep first-seen order and are deduplicated by lower-cased
// text. An empty result is valid; callers supply their own fallback pool.
func CollectDistractors(siblings []models.QuizQuestion, examples []string, wantKazakh bool, exclude string) []string {
	var candidates []string
	excludeLower := strings.ToLower(strings.TrimSpace(exclude))

	keep := func(s string) bool {
		if s == "" || strings.ToLower(s) == excludeLower {
			return false
		}
		return kazakh.ContainsKazakh(s) == wantKazakh
	}

	for _, item := range siblings {
		if ca := strings.TrimSpace(item.CorrectAnswer); keep(ca) {
			candidates = append(candidates, ca)
		}
		for _, o := range item.Options {
			o = strings.TrimSpace(o)
			if o == "—" {
				continue
			}
			if keep(o) {
				candidates = append(candidates, o)
			}
		}
	}

	for _, ex := range examples {
		if !strings.Contains(ex, "—") && !strings.Contains(ex, " - ") {
			continue
		}
		parts := exampleSeparator.Split(ex, 2)
		if len(parts) != 2 {
			continue
		}
		kz, en := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if wantKazakh {
			if kz != "" && strings.ToLower(kz) != excludeLower {
				candidates = append(candidates, kz)
			}
		} else {
			if en != "" && strings.ToLower(en) != excludeLower {
				candidates = append(candidates, en)
			}
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, c := range candidates {
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
		if len(out) >= 4 {
			break
		}
	}
	return out
}
