package models

import "encoding/json"

// Question type tags as they appear in generated lesson JSON. The generator
// occasionally emits "connect-by-sound" with hyphens; both spellings are
// accepted wherever the type is inspected.
const (
	TypeMultipleChoice     = "multiple_choice"
	TypeTranslateToKazakh  = "translate_to_kazakh"
	TypeTranslateToEnglish = "translate_to_english"
	TypeFillInTheBlank     = "fill_in_the_blank"
	TypeTrueFalse          = "true_false"
	TypeConnectBySound     = "connect_by_sound"
	TypeConnectBySoundAlt  = "connect-by-sound"
	TypeMatching           = "matching"
	TypeListening          = "listening"
)

// Pair is one Kazakh/English pairing of a matching or connect-by-sound
// question. The first pair is authoritative when the question has to be
// converted to multiple choice.
type Pair struct {
	Kazakh  string `json:"kazakh"`
	English string `json:"english"`
}

// QuizQuestion is one quiz entry from a generated lesson record. Fields may
// be missing or malformed; the canonical package repairs or drops them.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Type          string   `json:"question_type"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Points        *int     `json:"points,omitempty"`
	AudioText     string   `json:"audio_text,omitempty"`
	Pairs         []Pair   `json:"pairs,omitempty"`
	Text          string   `json:"text,omitempty"`
}

// UnmarshalJSON accepts the alternate key names the generator sometimes
// produces: "answers" for the option list and camel-case "correctIndex" for
// the correct option. A non-string correct_answer is ignored rather than
// failing the whole lesson.
func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	type alias QuizQuestion
	aux := struct {
		*alias
		CorrectIndex    *int            `json:"correct_index"`
		AltCorrectIndex *int            `json:"correctIndex"`
		CorrectAnswer   json.RawMessage `json:"correct_answer"`
		Answers         []string        `json:"answers"`
	}{alias: (*alias)(q)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch {
	case aux.CorrectIndex != nil:
		q.CorrectIndex = *aux.CorrectIndex
	case aux.AltCorrectIndex != nil:
		q.CorrectIndex = *aux.AltCorrectIndex
	default:
		q.CorrectIndex = 0
	}

	if len(q.Options) == 0 && len(aux.Answers) > 0 {
		q.Options = aux.Answers
	}

	q.CorrectAnswer = ""
	if len(aux.CorrectAnswer) > 0 {
		var s string
		if err := json.Unmarshal(aux.CorrectAnswer, &s); err == nil {
			q.CorrectAnswer = s
		}
	}

	return nil
}

// IsConnect reports whether the question is tagged connect-by-sound in
// either spelling.
func (q *QuizQuestion) IsConnect() bool {
	return q.Type == TypeConnectBySound || q.Type == TypeConnectBySoundAlt
}

// Lesson is one generated lesson record (cloud<id>.json).
type Lesson struct {
	Title             string         `json:"title"`
	ExplanationSlides []string       `json:"explanation_slides"`
	Examples          []string       `json:"examples"`
	Quiz              []QuizQuestion `json:"quiz"`
}
