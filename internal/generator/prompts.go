package generator

import (
	"fmt"
	"strings"
)

// unit1Ref pins the generator to the format of the hand-written Unit 1
// lessons so generated units render the same way.
const unit1Ref = `
Unit 1 format (FOLLOW EXACTLY):
- explanation_slides: 2-3 short paragraphs
- examples: 0-4 items, format "Kazakh — English"
- quiz: mix of multiple_choice, listening (audio_text for Kazakh to play), match (Connect by sound with syllables)
- Use points: 0 for intro/listening "Do you hear?", 1 for standard MC, 2 for connect-by-sound
- For listening: question like "Сәлем  -  [Sälem]", options: ["Do you hear? ..."], correct_index: 0, points: 0, question_type: "listening", audio_text: "Сәлем"
- Every multiple-choice, translate, and fill-in question MUST have at least 3 options (preferably 4). Never use 2 options.
`

type lessonBrief struct {
	Summary string
	Prior   string
}

// lessonBriefs maps each generated lesson id to its content summary and
// the prior material the questions may draw on.
var lessonBriefs = map[int]lessonBrief{
	5: {
		"Unit 2, Lesson 1: Greeting and farewell (Сәлем, сәлеметсіз бе. Сау бол, сау болыңыз).",
		"Unit 1: synharmonism, sounds, first law. бас, доп, қыз, кет, көз, сәт.",
	},
	6: {
		"Unit 2, Lesson 2: First vocabulary (мұғалім, сыныптасы). Usage: teacher → Сәлеметсіз бе, classmate → Сәлем.",
		"Unit 1 + Unit 2 Lesson 1 (greetings, farewells).",
	},
	7: {
		"Unit 2 Test: Greeting, farewell, vocabulary (мұғалім, сыныптасы), when Сәлем vs Сәлеметсіз бе.",
		"Unit 1 + Unit 2 Lessons 1-2.",
	},
	8: {
		"Unit 3, Lesson 1: Me and you (мен, сен) + vocabulary (оқушы). Personal endings coming next.",
		"Unit 1 + Unit 2.",
	},
	9: {
		"Unit 3, Lesson 2: Personal endings (мен: -мың/-мін; сен: -сың/-сің). Examples: Мен мұғаліммін, Сен оқушысың.",
		"Unit 1 + Unit 2 + Unit 3 Lesson 1.",
	},
	10: {
		"Unit 3, Lesson 3: Usage (Мен мұғаліммін, сен оқушысың). Put it together.",
		"Unit 1 + Unit 2 + Unit 3 Lessons 1-2.",
	},
	11: {
		"Unit 3 Test: мен/сен, оқушы, personal endings, sentences Мен мұғаліммін, Сен оқушысың.",
		"All prior units.",
	},
}

func buildLessonPrompt(id int) (string, error) {
	brief, ok := lessonBriefs[id]
	if !ok {
		return "", fmt.Errorf("no lesson brief for lesson %d", id)
	}

	var b strings.Builder
	b.WriteString("You are a Kazakh language lesson generator for OYAN app. Generate lesson content in JSON.\n\n")
	b.WriteString(unit1Ref)
	b.WriteString(fmt.Sprintf("\nPrior lessons: %s\n\n", brief.Prior))
	b.WriteString(fmt.Sprintf("Current lesson summary: %s\n\n", brief.Summary))
	b.WriteString(`Output ONLY valid JSON (no markdown):
{
  "title": "Short title",
  "explanation_slides": ["para1", "para2"],
  "examples": ["Kazakh — English", ...],
  "quiz": [
    {"question": "...", "options": ["A","B","C","D"], "correct_index": 0, "points": 1, "question_type": "multiple_choice", "audio_text": null},
    ... for listening: {"question": "X  -  [X]", "options": ["Do you hear? ..."], "correct_index": 0, "points": 0, "question_type": "listening", "audio_text": "X"}
  ]
}

Use correct_index 0-based. All Kazakh must be grammatically correct. Output ONLY the JSON object.`)

	return b.String(), nil
}
