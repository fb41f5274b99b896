package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"oyan-content/internal/models"
)

// LoadLesson reads one generated lesson record (cloud<id>.json). Escaped
// "\n" sequences left in explanation slides by the generator are expanded
// to literal line breaks before the lesson is used.
func LoadLesson(path string) (models.Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Lesson{}, err
	}

	var lesson models.Lesson
	if err := json.Unmarshal(data, &lesson); err != nil {
		return models.Lesson{}, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, s := range lesson.ExplanationSlides {
		if strings.Contains(s, `\n`) {
			lesson.ExplanationSlides[i] = strings.ReplaceAll(s, `\n`, "\n")
		}
	}
	return lesson, nil
}
