// Package canonical repairs generated quiz questions into the strict shape
// the app renderer expects: a question string, at least three deduplicated
// options for answerable types, and an in-range correct index. Questions
// that cannot be repaired are dropped, never emitted half-valid.
package canonical

import (
	"strings"

	"oyan-content/internal/models"
)

// Canonicalize returns the renderable form of q, or ok=false when the
// question is irreparable and must be omitted from the lesson. The input
// is never mutated; siblings and examples come from the same lesson and
// feed distractor collection.
//
// The repair order is fixed: pair-type conversion, type-specific rewrites,
// question-text reconstruction, option seeding, deduplication, distractor
// top-up, final padding. Later steps assume the earlier ones ran.
func Canonicalize(q models.QuizQuestion, siblings []models.QuizQuestion, examples []string) (models.QuizQuestion, bool) {
	// Connect-by-sound survives as-is only with a supported syllable set;
	// matching is always converted.
	if q.IsConnect() && !hasValidSyllables(q.Options) || q.Type == models.TypeMatching {
		converted, ok := convertPairsToMultipleChoice(q)
		if !ok {
			return models.QuizQuestion{}, false
		}
		q = converted
	}

	switch q.Type {
	case models.TypeFillInTheBlank:
		q = rewriteBlankSuffixes(q)
	case models.TypeTrueFalse:
		q = normalizeTrueFalse(q)
	}

	q = reconstructQuestionText(q)
	q = seedOptions(q)

	opts, index := DedupeOptions(q.Options, q.CorrectIndex)

	if len(opts) < 3 {
		if rebuilt, ok := rebuildWithDistractors(q, siblings, examples); ok {
			opts, index = rebuilt, 0
		}
	}

	opts = padOptions(opts)
	if index < 0 || index >= len(opts) {
		index = 0
	}

	out := q
	out.Options = opts
	out.CorrectIndex = index
	return out, true
}

// seedOptions builds the initial option list: existing options are kept,
// an empty list is seeded from the correct answer (or the Yes/No pair when
// none is known), placeholder dashes and blanks are stripped, and a known
// correct answer missing from the list is prepended.
func seedOptions(q models.QuizQuestion) models.QuizQuestion {
	out := q
	opts := q.Options
	correct := strings.TrimSpace(q.CorrectAnswer)

	if len(opts) == 0 {
		if correct != "" {
			opts = []string{correct}
		} else {
			opts = []string{"Yes", "No"}
		}
		out.CorrectIndex = 0
	}

	var filtered []string
	for _, o := range opts {
		t := strings.TrimSpace(o)
		if t == "" || t == "—" {
			continue
		}
		filtered = append(filtered, o)
	}

	if correct != "" && !containsString(filtered, correct) {
		filtered = append([]string{correct}, filtered...)
		out.CorrectIndex = 0
	}

	out.Options = filtered
	return out
}

// rebuildWithDistractors assembles a correct-first option list for the
// translate and fill-in-the-blank types using sibling questions, lesson
// examples, and the fixed fallback vocabulary. Other types are left with
// fewer options on purpose. Returns ok=false when the question type does
// not qualify or fewer than three options could be assembled.
func rebuildWithDistractors(q models.QuizQuestion, siblings []models.QuizQuestion, examples []string) ([]string, bool) {
	var wantKazakh bool
	switch q.Type {
	case models.TypeTranslateToKazakh, models.TypeFillInTheBlank:
		wantKazakh = true
	case models.TypeTranslateToEnglish:
		wantKazakh = false
	default:
		return nil, false
	}

	correct := strings.TrimSpace(q.CorrectAnswer)
	if correct == "" {
		return nil, false
	}

	distractors := CollectDistractors(siblings, examples, wantKazakh, correct)

	fallback := fallbackEnglish
	if wantKazakh {
		fallback = fallbackKazakh
	}
	for _, f := range fallback {
		if len(distractors) >= 3 {
			break
		}
		if f != correct && !containsString(distractors, f) {
			distractors = append(distractors, f)
		}
	}

	opts := []string{correct}
	seen := map[string]bool{optionKey(correct): true}
	for _, d := range distractors {
		if len(opts) >= 4 {
			break
		}
		key := optionKey(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		opts = append(opts, d)
	}

	if len(opts) < 3 {
		return nil, false
	}
	return opts, true
}

// padOptions tops a degenerate list up to at least two entries with the
// Yes/No pair so the renderer always has something to show.
func padOptions(opts []string) []string {
	if len(opts) >= 2 {
		return opts
	}
	for _, p := range []string{"Yes", "No"} {
		dup := false
		for _, o := range opts {
			if optionKey(o) == optionKey(p) {
				dup = true
				break
			}
		}
		if !dup {
			opts = append(opts, p)
		}
	}
	return opts
}
