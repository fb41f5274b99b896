package generator

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"bare object",
			`{"title":"Lesson"}`,
			`{"title":"Lesson"}`,
		},
		{
			"markdown fence",
			"```json\n{\"title\":\"Lesson\"}\n```",
			`{"title":"Lesson"}`,
		},
		{
			"prose around the object",
			`Here is your lesson: {"title":"Lesson"} Enjoy!`,
			`{"title":"Lesson"}`,
		},
		{
			"nested braces take the outermost span",
			`{"quiz":[{"question":"Q?"}]}`,
			`{"quiz":[{"question":"Q?"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSON(tc.input)
			if err != nil {
				t.Fatalf("ExtractJSON failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("ExtractJSON = %s, want %s", got, tc.want)
			}
			if !json.Valid(got) {
				t.Errorf("extracted text is not valid JSON: %s", got)
			}
		})
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	for _, input := range []string{"", "no json here", "} backwards {"} {
		if _, err := ExtractJSON(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestBuildLessonPrompt(t *testing.T) {
	prompt, err := buildLessonPrompt(9)
	if err != nil {
		t.Fatalf("buildLessonPrompt failed: %v", err)
	}
	for _, want := range []string{
		"Kazakh language lesson generator",
		"Personal endings",
		"Unit 1 format (FOLLOW EXACTLY)",
		"Output ONLY the JSON object.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildLessonPrompt_UnknownLesson(t *testing.T) {
	if _, err := buildLessonPrompt(42); err == nil {
		t.Error("expected error for lesson without a brief")
	}
}
