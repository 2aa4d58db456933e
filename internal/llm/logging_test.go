package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/corelearn/internal/store"
)

// recordingEventRepo captures appended LLM request events.
type recordingEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}
func (r *recordingEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (r *recordingEventRepo) AppendCourseEvent(_ context.Context, _ store.CourseEventData) error {
	return nil
}
func (r *recordingEventRepo) QueryCourseEvents(_ context.Context, _ store.QueryOpts) ([]store.CourseEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) AppendExamEvent(_ context.Context, _ store.ExamEventData) error {
	return nil
}
func (r *recordingEventRepo) QueryExamEvents(_ context.Context, _ store.QueryOpts) ([]store.ExamEventRecord, error) {
	return nil, nil
}

func TestLoggingCapturesBodies(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"title":"Go"}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	})
	p := WithLogging(mock, repo)

	req := Request{
		System: "You are a course designer.",
		Messages: []Message{
			{Role: RoleUser, Content: "Create a course on Go."},
		},
		Schema: &Schema{
			Name:       "course-curriculum",
			Definition: map[string]any{"type": "object"},
		},
	}
	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]

	if !strings.Contains(ev.RequestBody, "You are a course designer.") {
		t.Errorf("request body missing system prompt: %q", ev.RequestBody)
	}
	if !strings.Contains(ev.RequestBody, "[user]") || !strings.Contains(ev.RequestBody, "Create a course on Go.") {
		t.Errorf("request body missing user message: %q", ev.RequestBody)
	}
	if !strings.Contains(ev.RequestBody, "[schema: course-curriculum]") {
		t.Errorf("request body missing schema section: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"title":"Go"}` {
		t.Errorf("response body = %q, want the raw content", ev.ResponseBody)
	}
}

func TestLoggingOmitsResponseBodyOnFailure(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider() // empty queue fails every call
	p := WithLogging(mock, repo)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}
	if _, err := p.Generate(context.Background(), req); err == nil {
		t.Fatal("expected an error from the exhausted provider")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected a failure event")
	}
	if ev.RequestBody == "" {
		t.Error("request body should be captured even on failure")
	}
	if ev.ResponseBody != "" {
		t.Errorf("response body should be empty on failure, got %q", ev.ResponseBody)
	}
}
