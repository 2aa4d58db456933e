package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/corelearn/internal/llm"
)

func TestAsk(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("A goroutine is a lightweight thread managed by the Go runtime.")},
	)
	svc := NewService(mock)

	answer := svc.Ask(context.Background(), "Concurrency", "Lesson content here.", "What is a goroutine?", nil)
	if !strings.Contains(answer, "lightweight thread") {
		t.Errorf("unexpected answer: %q", answer)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Title: Concurrency") {
		t.Error("expected lesson title in prompt")
	}
	if !strings.Contains(prompt, `STUDENT QUESTION: "What is a goroutine?"`) {
		t.Error("expected question in prompt")
	}
}

func TestAskIncludesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Channels let goroutines communicate.")},
	)
	svc := NewService(mock)

	history := []Message{
		{Role: "user", Text: "What is a goroutine?"},
		{Role: "assistant", Text: "A lightweight thread."},
	}
	svc.Ask(context.Background(), "Concurrency", "Content.", "And channels?", history)

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Student: What is a goroutine?") {
		t.Error("expected student turn in history")
	}
	if !strings.Contains(prompt, "AI Tutor: A lightweight thread.") {
		t.Error("expected tutor turn in history")
	}
}

func TestAskTruncatesLongContent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("ok")},
	)
	svc := NewService(mock)

	long := strings.Repeat("x", maxLessonContext+5000)
	svc.Ask(context.Background(), "Long Lesson", long, "Question?", nil)

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Count(prompt, "x") > maxLessonContext {
		t.Errorf("content not truncated: %d x's", strings.Count(prompt, "x"))
	}
}

func TestAskFallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock)

	answer := svc.Ask(context.Background(), "Lesson", "Content.", "Question?", nil)
	if answer != FallbackMessage {
		t.Errorf("answer = %q, want fallback", answer)
	}
}

func TestAskFallbackOnEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("  ")},
	)
	svc := NewService(mock)

	answer := svc.Ask(context.Background(), "Lesson", "Content.", "Question?", nil)
	if answer == "" || answer == "  " {
		t.Errorf("expected fallback text, got %q", answer)
	}
}
