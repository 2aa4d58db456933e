package generator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/corelearn/internal/llm"
)

const validCourseJSON = `{
	"title": "Rust from Zero",
	"certificateTitle": "Certificate in Systems Programming with Rust",
	"description": "A practical introduction to Rust.",
	"targetAudience": "Developers new to Rust",
	"difficulty": "Beginner",
	"estimatedTotalDuration": "6 hours",
	"modules": [
		{
			"title": "Getting Started",
			"description": "Tooling and first programs.",
			"lessons": [
				{
					"title": "Installing the Toolchain",
					"duration": "15 min",
					"content": "Install rustup and cargo.",
					"keyTakeaways": ["rustup manages toolchains"],
					"assignment": "Install Rust and run cargo new.",
					"resources": [
						{"title": "The Rust Book", "url": "https://doc.rust-lang.org/book/", "type": "book"}
					],
					"quiz": [
						{
							"question": "What tool manages Rust toolchains?",
							"options": ["rustup", "cargo", "rustc"],
							"correctAnswerIndex": 0,
							"explanation": "rustup installs and updates toolchains."
						}
					]
				}
			]
		}
	],
	"finalExam": {
		"title": "Final Exam",
		"questions": [
			{"id": 1, "text": "Which command builds a project?", "options": ["cargo build", "rustup build"], "correctAnswerIndex": 0}
		]
	}
}`

func newTestService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewService(mock, DefaultConfig()), mock
}

func TestGenerateCourse(t *testing.T) {
	svc, mock := newTestService(
		llm.MockResponse{Content: json.RawMessage(validCourseJSON)},
	)

	crs, err := svc.GenerateCourse(context.Background(), "rust", "Rust from Zero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crs.Title != "Rust from Zero" {
		t.Errorf("title = %q, want 'Rust from Zero'", crs.Title)
	}
	if len(crs.Modules) != 1 || len(crs.Modules[0].Lessons) != 1 {
		t.Fatalf("unexpected course shape: %d modules", len(crs.Modules))
	}
	if crs.FinalExam.Questions[0].ID != 1 {
		t.Errorf("exam question id = %d, want 1", crs.FinalExam.Questions[0].ID)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != CourseSchema {
		t.Error("expected course schema on request")
	}
	if req.System != courseSystemPrompt {
		t.Error("expected course system prompt on request")
	}
}

func TestGenerateCourseError(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)

	_, err := svc.GenerateCourse(context.Background(), "rust", "")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateCourseMalformedJSON(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Content: json.RawMessage(`{"title": `)},
	)

	_, err := svc.GenerateCourse(context.Background(), "rust", "")
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestGenerateCourseRejectsInvalidStructure(t *testing.T) {
	// Valid JSON, but no modules.
	svc, _ := newTestService(
		llm.MockResponse{Content: json.RawMessage(`{
			"title": "Empty",
			"modules": [],
			"finalExam": {"title": "Exam", "questions": [{"id": 1, "text": "q", "options": ["a", "b"], "correctAnswerIndex": 0}]}
		}`)},
	)

	_, err := svc.GenerateCourse(context.Background(), "rust", "")
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGenerateCourseDemoTopic(t *testing.T) {
	svc, mock := newTestService()

	crs, err := svc.GenerateCourse(context.Background(), "Demo", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crs == nil || len(crs.Modules) == 0 {
		t.Fatal("expected built-in demo course")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls for demo topic, got %d", mock.CallCount())
	}
}

func TestGenerateTitle(t *testing.T) {
	svc, mock := newTestService(
		llm.MockResponse{Content: json.RawMessage(`"Systems Programming with Rust"`)},
	)

	title := svc.GenerateTitle(context.Background(), "rust")
	if title != "Systems Programming with Rust" {
		t.Errorf("title = %q, want 'Systems Programming with Rust'", title)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != nil {
		t.Error("title request should not carry a schema")
	}
}

func TestGenerateTitleFallsBackOnError(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)

	title := svc.GenerateTitle(context.Background(), "rust")
	if title != "rust" {
		t.Errorf("title = %q, want fallback 'rust'", title)
	}
}

func TestGenerateTitleFallsBackOnEmpty(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Content: json.RawMessage(`  `)},
	)

	title := svc.GenerateTitle(context.Background(), "rust")
	if title != "rust" {
		t.Errorf("title = %q, want fallback 'rust'", title)
	}
}
