package canonical

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"oyan-content/internal/models"
)

// Syllable sets the app's connect-by-sound renderer supports. A connect
// question keeps its type only when its option set matches one of these
// exactly; anything else is converted to multiple choice.
var validConnectSyllables = [][]string{
	{"Жү", "Мы", "сық", "рек"},
	{"Мы", "Тү", "йе", "сық"},
	{"Ал", "Сә", "мұрт", "біз"},
}

// Meanings for connect-by-sound questions that carry only a
// "Connect by sound: X" phrase and no pairs.
var connectMeanings = map[string]string{
	"Сау бол":      "Goodbye! (informal)",
	"Сау болыңыз":  "Goodbye! (formal)",
	"Сәлем":        "Hi!",
	"Сәлеметсіз бе": "Hello! (formal)",
	"Мен":          "I",
	"Сен":          "You (informal)",
	"Оқушы":        "Student",
	"Мұғалім":      "Teacher",
}

var (
	// Distractor pools for converted questions. Matching questions get
	// their own pool so a conversion can never degrade to the Yes/No seed.
	connectDistractors  = []string{"Student", "Teacher", "Hello", "Goodbye"}
	matchingDistractors = []string{"I", "You", "Student", "Teacher"}

	// Fallback vocabulary when the lesson itself yields too few distractors.
	fallbackKazakh  = []string{"Мен", "Сен", "Ол", "Оқушы", "Мұғалім", "Сәлем", "Сау бол"}
	fallbackEnglish = []string{"I", "You", "He/She", "Student", "Teacher", "Hello", "Goodbye"}
)

var connectPhrasePattern = regexp.MustCompile(`Connect by sound:\s*(.+)`)

// hasValidSyllables reports whether the option set matches one of the
// supported syllable sets exactly.
func hasValidSyllables(options []string) bool {
	if len(options) == 0 {
		return false
	}
	set := make(map[string]bool, len(options))
	for _, o := range options {
		set[o] = true
	}
	for _, valid := range validConnectSyllables {
		if len(set) != len(valid) {
			continue
		}
		match := true
		for _, s := range valid {
			if !set[s] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// convertPairsToMultipleChoice rewrites a connect-by-sound or matching
// question into a multiple-choice question built from its first pair. The
// source word drives the question text; the gloss becomes the correct
// option, topped up from the remaining pairs and the fixed pool. Returns
// ok=false when no usable Kazakh/English pair can be extracted, in which
// case the question must be dropped.
func convertPairsToMultipleChoice(q models.QuizQuestion) (models.QuizQuestion, bool) {
	var kz, en string
	if len(q.Pairs) > 0 {
		kz, en = q.Pairs[0].Kazakh, q.Pairs[0].English
	} else if m := connectPhrasePattern.FindStringSubmatch(q.Question); m != nil {
		kz = strings.TrimSpace(m[1])
		en = connectMeanings[kz]
	}
	if kz == "" || en == "" {
		return models.QuizQuestion{}, false
	}

	pool := connectDistractors
	if q.Type == models.TypeMatching {
		pool = matchingDistractors
	}
	distractors := append([]string(nil), pool...)
	if len(q.Pairs) > 1 {
		for _, p := range q.Pairs[1:] {
			o := p.English
			if o == "" || o == en {
				continue
			}
			if !containsString(distractors, o) {
				distractors = append([]string{o}, distractors...)
			}
		}
	}

	opts := []string{en}
	for _, d := range distractors {
		if len(opts) >= 4 {
			break
		}
		if d != en && !containsString(opts, d) {
			opts = append(opts, d)
		}
	}

	points := q.Points
	if points == nil {
		two := 2
		points = &two
	}
	return models.QuizQuestion{
		Question:      fmt.Sprintf("What does %s mean?", kz),
		Type:          models.TypeMultipleChoice,
		Options:       opts,
		CorrectIndex:  0,
		CorrectAnswer: en,
		Points:        points,
	}, true
}

// blankStemPattern matches fill-in-the-blank questions of the form
// "<prefix> ... (<stem>)".
var blankStemPattern = regexp.MustCompile(`^(.*?)\s*\.\.\.\s*\((.+)\)\s*$`)

// rewriteBlankSuffixes turns a "<prefix> ... (<stem>)" fill-in-the-blank
// question whose options all extend the stem by a short morphological
// ending into a suffix-only question. The rewrite only applies when every
// option starts with the stem and every ending is 1-6 runes; otherwise the
// question is returned unchanged.
func rewriteBlankSuffixes(q models.QuizQuestion) models.QuizQuestion {
	m := blankStemPattern.FindStringSubmatch(q.Question)
	if m == nil || len(q.Options) == 0 {
		return q
	}
	prefix, stem := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if stem == "" {
		return q
	}

	suffixes := make([]string, len(q.Options))
	for i, o := range q.Options {
		if !strings.HasPrefix(o, stem) {
			return q
		}
		suffix := o[len(stem):]
		n := utf8.RuneCountInString(suffix)
		if n == 0 || n > 6 {
			return q
		}
		suffixes[i] = suffix
	}

	index := q.CorrectIndex
	if index < 0 || index >= len(suffixes) {
		index = 0
	}

	out := q
	out.Question = fmt.Sprintf("Complete the sentence: %s %s____.", prefix, stem)
	out.Options = suffixes
	out.CorrectIndex = index
	out.CorrectAnswer = suffixes[index]
	return out
}

// isFalseAnswer interprets the authoritative boolean of a true/false
// question: the correct_answer text when it parses, else the text of the
// currently marked option, else the pre-existing index.
func isFalseAnswer(q models.QuizQuestion) bool {
	switch strings.ToLower(strings.TrimSpace(q.CorrectAnswer)) {
	case "no", "false", "жоқ":
		return true
	case "yes", "true", "иә":
		return false
	}
	if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
		switch strings.ToLower(strings.TrimSpace(q.Options[q.CorrectIndex])) {
		case "no", "false", "жоқ":
			return true
		case "yes", "true", "иә":
			return false
		}
	}
	return q.CorrectIndex == 1
}

// normalizeTrueFalse forces the canonical binary form regardless of any
// pre-existing options.
func normalizeTrueFalse(q models.QuizQuestion) models.QuizQuestion {
	out := q
	out.Options = []string{"Yes", "No"}
	if isFalseAnswer(q) {
		out.CorrectIndex = 1
	} else {
		out.CorrectIndex = 0
	}
	out.CorrectAnswer = out.Options[out.CorrectIndex]
	return out
}

// reconstructQuestionText fills in a missing or placeholder ("?") question
// string from the question type and its subject text.
func reconstructQuestionText(q models.QuizQuestion) models.QuizQuestion {
	if text := strings.TrimSpace(q.Question); text != "" && text != "?" {
		return q
	}

	out := q
	switch {
	case q.Type == models.TypeTranslateToKazakh && q.Text != "":
		out.Question = fmt.Sprintf("Translate to Kazakh: %s", q.Text)
	case q.Type == models.TypeTranslateToEnglish && q.Text != "":
		out.Question = fmt.Sprintf("What does %s mean?", q.Text)
	case q.Type == models.TypeFillInTheBlank && q.Text != "":
		out.Question = fmt.Sprintf("Fill in the blank: %s", q.Text)
	case q.IsConnect() || q.Type == models.TypeMatching:
		if len(q.Pairs) > 0 && q.Pairs[0].Kazakh != "" {
			out.Question = fmt.Sprintf("Connect by sound: %s", q.Pairs[0].Kazakh)
		} else {
			out.Question = "Connect by sound"
		}
	default:
		out.Question = "Choose the correct answer"
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
