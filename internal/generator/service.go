// Package generator produces raw lesson records by prompting Gemini with
// per-lesson unit summaries. Output is unvalidated beyond being a parseable
// lesson object; the canonical package owns all repair.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"oyan-content/internal/models"
)

type Service struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewService(ctx context.Context, apiKey, modelName string) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(4096)
	model.ResponseMIMEType = "application/json"

	return &Service{client: client, model: model}, nil
}

func (s *Service) Close() {
	s.client.Close()
}

// GenerateLesson makes a single one-shot request for one lesson id and
// returns the lesson record as indented JSON with canonical key names.
// There are no retries; a failed lesson is reported and the batch moves on.
func (s *Service) GenerateLesson(ctx context.Context, id int) ([]byte, error) {
	prompt, err := buildLessonPrompt(id)
	if err != nil {
		return nil, err
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	rawText := extractText(resp)
	if rawText == "" {
		return nil, fmt.Errorf("empty Gemini response")
	}

	raw, err := ExtractJSON(rawText)
	if err != nil {
		return nil, err
	}

	// Round-tripping through the lesson model rewrites alternate key names
	// (answers, correctIndex) to the canonical ones.
	var lesson models.Lesson
	if err := json.Unmarshal(raw, &lesson); err != nil {
		return nil, fmt.Errorf("invalid lesson JSON: %w", err)
	}

	out, err := json.MarshalIndent(&lesson, "", "  ")
	if err != nil {
		return nil, err
	}
	return out, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
