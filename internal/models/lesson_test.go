package models

import (
	"encoding/json"
	"testing"
)

func TestQuizQuestionUnmarshal_AlternateKeys(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantOptions []string
		wantIndex   int
	}{
		{
			"canonical keys",
			`{"question":"Q?","options":["A","B","C"],"correct_index":2}`,
			[]string{"A", "B", "C"},
			2,
		},
		{
			"answers renamed to options",
			`{"question":"Q?","answers":["A","B"],"correct_index":1}`,
			[]string{"A", "B"},
			1,
		},
		{
			"camel case correctIndex",
			`{"question":"Q?","options":["A","B"],"correctIndex":1}`,
			[]string{"A", "B"},
			1,
		},
		{
			"snake case wins over camel case",
			`{"question":"Q?","options":["A","B"],"correct_index":0,"correctIndex":1}`,
			[]string{"A", "B"},
			0,
		},
		{
			"options win over answers",
			`{"question":"Q?","options":["A"],"answers":["X","Y"],"correct_index":0}`,
			[]string{"A"},
			0,
		},
		{
			"missing index defaults to zero",
			`{"question":"Q?","options":["A","B"]}`,
			[]string{"A", "B"},
			0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var q QuizQuestion
			if err := json.Unmarshal([]byte(tc.input), &q); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if q.CorrectIndex != tc.wantIndex {
				t.Errorf("CorrectIndex = %d, want %d", q.CorrectIndex, tc.wantIndex)
			}
			if len(q.Options) != len(tc.wantOptions) {
				t.Fatalf("Options = %v, want %v", q.Options, tc.wantOptions)
			}
			for i := range q.Options {
				if q.Options[i] != tc.wantOptions[i] {
					t.Errorf("Options[%d] = %q, want %q", i, q.Options[i], tc.wantOptions[i])
				}
			}
		})
	}
}

func TestQuizQuestionUnmarshal_NonStringCorrectAnswer(t *testing.T) {
	var q QuizQuestion
	input := `{"question":"Q?","options":["A","B","C"],"correct_index":1,"correct_answer":2}`
	if err := json.Unmarshal([]byte(input), &q); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if q.CorrectAnswer != "" {
		t.Errorf("expected non-string correct_answer to be dropped, got %q", q.CorrectAnswer)
	}
}

func TestQuizQuestionUnmarshal_Pairs(t *testing.T) {
	var q QuizQuestion
	input := `{"question_type":"matching","pairs":[{"kazakh":"Сәлем","english":"Hi!"},{"kazakh":"Оқушы","english":"Student"}]}`
	if err := json.Unmarshal([]byte(input), &q); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(q.Pairs) != 2 || q.Pairs[0].Kazakh != "Сәлем" || q.Pairs[0].English != "Hi!" {
		t.Fatalf("unexpected pairs: %+v", q.Pairs)
	}
	if q.IsConnect() {
		t.Error("matching question should not report as connect-by-sound")
	}

	q.Type = TypeConnectBySoundAlt
	if !q.IsConnect() {
		t.Error("hyphenated connect tag should report as connect-by-sound")
	}
}
