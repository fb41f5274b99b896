package swiftgen

import (
	"errors"
	"strings"
	"testing"
)

const sampleCourse = `import Foundation

extension CourseStructure {
    static func generatedLesson(for cloud: Int) -> GeneratedLessonContent? {
        switch cloud {
        case 5:
            return GeneratedLessonContent(
                title: "Old five",
                explanationSlides: [],
                examples: [],
                quiz: []
            )
        case 6:
            return GeneratedLessonContent(
                title: "Old six",
                explanationSlides: [],
                examples: [],
                quiz: []
            )
        default:
            return nil
        }
    }
}
`

func TestParseDocument_Roundtrip(t *testing.T) {
	doc := ParseDocument(sampleCourse)
	if got := doc.String(); got != sampleCourse {
		t.Errorf("roundtrip changed the document:\n%s", got)
	}
}

func TestDocumentReplace(t *testing.T) {
	doc := ParseDocument(sampleCourse)
	block := "\n        case 5:\n            return GeneratedLessonContent(\n                title: \"New five\",\n                explanationSlides: [],\n                examples: [],\n                quiz: []\n            )"

	if err := doc.Replace(5, block); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	out := doc.String()

	if !strings.Contains(out, `title: "New five"`) {
		t.Error("new block missing from output")
	}
	if strings.Contains(out, `title: "Old five"`) {
		t.Error("old case 5 block still present")
	}
	if !strings.Contains(out, `title: "Old six"`) {
		t.Error("case 6 block was disturbed")
	}
	if !strings.Contains(out, "default:\n            return nil") {
		t.Error("default arm was disturbed")
	}
}

func TestDocumentReplace_MissingMarker(t *testing.T) {
	doc := ParseDocument(sampleCourse)
	err := doc.Replace(9, "\n        case 9: whatever")
	if !errors.Is(err, ErrMarkerNotFound) {
		t.Fatalf("expected ErrMarkerNotFound, got %v", err)
	}
	if got := doc.String(); got != sampleCourse {
		t.Error("failed replace must not mutate the document")
	}
}

func TestDocumentReplace_Idempotent(t *testing.T) {
	block := "\n        case 6:\n            return GeneratedLessonContent(\n                title: \"Replacement\",\n                explanationSlides: [],\n                examples: [],\n                quiz: []\n            )"

	once := ParseDocument(sampleCourse)
	if err := once.Replace(6, block); err != nil {
		t.Fatalf("first replace failed: %v", err)
	}

	twice := ParseDocument(once.String())
	if err := twice.Replace(6, block); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}

	if once.String() != twice.String() {
		t.Errorf("patching twice diverged from patching once:\n%s\n---\n%s", once.String(), twice.String())
	}
}

func TestParseDocument_NoMarkers(t *testing.T) {
	content := "no switch here at all\n"
	doc := ParseDocument(content)
	if doc.String() != content {
		t.Error("markerless document must roundtrip unchanged")
	}
	if err := doc.Replace(5, "x"); !errors.Is(err, ErrMarkerNotFound) {
		t.Errorf("expected ErrMarkerNotFound, got %v", err)
	}
}
