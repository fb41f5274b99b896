// Package swiftgen serializes canonical lessons into the Swift literal
// blocks bundled in CourseStructure.swift and splices them into the file
// at their case markers.
package swiftgen

import (
	"fmt"
	"strings"

	"oyan-content/internal/canonical"
	"oyan-content/internal/models"
)

// EscapeSwift escapes a string for use inside a double-quoted Swift
// literal. Backslashes first, then quotes, then newlines; any other order
// would double-escape.
func EscapeSwift(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// quizItemLiteral renders one GeneratedQuizItem constructor call. The
// question, options and correctIndex arguments are always present; points,
// type and audioText only when the question carries them.
func quizItemLiteral(q models.QuizQuestion) string {
	quoted := make([]string, len(q.Options))
	for i, o := range q.Options {
		quoted[i] = `"` + EscapeSwift(o) + `"`
	}

	args := []string{
		fmt.Sprintf(`question: "%s"`, EscapeSwift(q.Question)),
		fmt.Sprintf("options: [%s]", strings.Join(quoted, ", ")),
		fmt.Sprintf("correctIndex: %d", q.CorrectIndex),
	}
	if q.Points != nil {
		args = append(args, fmt.Sprintf("points: %d", *q.Points))
	}
	if q.Type != "" {
		args = append(args, fmt.Sprintf(`type: "%s"`, q.Type))
	}
	if q.AudioText != "" {
		args = append(args, fmt.Sprintf(`audioText: "%s"`, EscapeSwift(q.AudioText)))
	}
	return fmt.Sprintf("GeneratedQuizItem(%s)", strings.Join(args, ", "))
}

// Assemble canonicalizes every quiz entry of the lesson and serializes the
// result as the full "case <id>:" block, newline-prefixed so it can replace
// a marker span verbatim. Dropped is the number of irreparable questions
// omitted from the quiz.
func Assemble(id int, lesson models.Lesson) (block string, dropped int) {
	quiz := make([]models.QuizQuestion, 0, len(lesson.Quiz))
	for _, q := range lesson.Quiz {
		cq, ok := canonical.Canonicalize(q, lesson.Quiz, lesson.Examples)
		if !ok {
			dropped++
			continue
		}
		quiz = append(quiz, cq)
	}

	slides := make([]string, len(lesson.ExplanationSlides))
	for i, s := range lesson.ExplanationSlides {
		slides[i] = `"` + EscapeSwift(s) + `"`
	}
	examples := make([]string, len(lesson.Examples))
	for i, e := range lesson.Examples {
		examples[i] = `"` + EscapeSwift(e) + `"`
	}
	items := make([]string, len(quiz))
	for i, q := range quiz {
		items[i] = quizItemLiteral(q)
	}

	title := lesson.Title
	if title == "" {
		title = "Lesson"
	}

	block = fmt.Sprintf(`
        case %d:
            return GeneratedLessonContent(
                title: "%s",
                explanationSlides: [
                    %s
                ],
                examples: [%s],
                quiz: [
                    %s
                ]
            )`,
		id,
		EscapeSwift(title),
		strings.Join(slides, ",\n                "),
		strings.Join(examples, ", "),
		strings.Join(items, ",\n                    "),
	)
	return block, dropped
}
