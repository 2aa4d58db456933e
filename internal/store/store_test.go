package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "course-gen",
			InputTokens:  100 + i,
			OutputTokens: 2000,
			LatencyMs:    int64(500 + i),
			Success:      true,
			RequestBody:  "[user]\nbuild a course\n",
			ResponseBody: `{"title":"t"}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].RequestBody != "[user]\nbuild a course\n" {
		t.Errorf("request body not persisted: %q", events[0].RequestBody)
	}
	if events[0].ResponseBody != `{"title":"t"}` {
		t.Errorf("response body not persisted: %q", events[0].ResponseBody)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events, got %d", len(limited))
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	e, err := repo.GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "m", Purpose: "course-gen", InputTokens: 10, OutputTokens: 100, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "course-gen", InputTokens: 20, OutputTokens: 200, LatencyMs: 400, Success: false, ErrorMessage: "boom"},
		{Provider: "gemini", Model: "m", Purpose: "tutor", InputTokens: 5, OutputTokens: 50, LatencyMs: 100, Success: true},
	}
	for i, d := range appends {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(stats))
	}

	// Sorted by purpose: course-gen first.
	gen := stats[0]
	if gen.Purpose != "course-gen" {
		t.Fatalf("expected course-gen first, got %q", gen.Purpose)
	}
	if gen.Requests != 2 || gen.Failures != 1 {
		t.Errorf("course-gen requests/failures = %d/%d, want 2/1", gen.Requests, gen.Failures)
	}
	if gen.InputTokens != 30 || gen.OutputTokens != 300 {
		t.Errorf("course-gen tokens = %d/%d, want 30/300", gen.InputTokens, gen.OutputTokens)
	}
	if gen.AvgLatencyMs != 300 {
		t.Errorf("course-gen avg latency = %d, want 300", gen.AvgLatencyMs)
	}
}

func TestAppendAndQueryCourseEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendCourseEvent(ctx, CourseEventData{
		Topic:             "rust",
		Title:             "Rust from Zero",
		Difficulty:        "Beginner",
		ModuleCount:       4,
		LessonCount:       16,
		ExamQuestionCount: 15,
		Model:             "gemini-2.5-flash",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryCourseEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Topic != "rust" || events[0].ModuleCount != 4 {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestAppendAndQueryExamEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	submissions := []ExamEventData{
		{CourseTitle: "Rust from Zero", Score: 10, Total: 15, Percentage: 67, Passed: false, Attempt: 1},
		{CourseTitle: "Rust from Zero", Score: 13, Total: 15, Percentage: 87, Passed: true, Attempt: 2},
	}
	for i, d := range submissions {
		if err := repo.AppendExamEvent(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryExamEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first: the passing attempt.
	if !events[0].Passed || events[0].Attempt != 2 {
		t.Errorf("unexpected first event: %+v", events[0])
	}
}

func TestCourseSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	// No snapshot yet.
	saved, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if saved != nil {
		t.Fatal("expected nil when no courses saved")
	}

	data := json.RawMessage(`{"title":"Rust from Zero","modules":[]}`)
	err = repo.Save(ctx, &SavedCourse{
		Topic: "rust",
		Title: "Rust from Zero",
		Data:  data,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	saved, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if saved == nil {
		t.Fatal("expected non-nil saved course")
	}
	if saved.Topic != "rust" || saved.Title != "Rust from Zero" {
		t.Errorf("unexpected saved course: %+v", saved)
	}

	var parsed map[string]any
	if err := json.Unmarshal(saved.Data, &parsed); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if parsed["title"] != "Rust from Zero" {
		t.Errorf("data title = %v, want 'Rust from Zero'", parsed["title"])
	}
}

func TestCourseSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &SavedCourse{
			Topic:     "go",
			Title:     "Go Course",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      json.RawMessage(`{"title":"Go Course"}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().CourseSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !latest.Timestamp.Equal(base.Add(6 * time.Minute)) {
		t.Errorf("latest timestamp = %v, want %v", latest.Timestamp, base.Add(6*time.Minute))
	}
}

func TestCourseSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &SavedCourse{
		Topic: "go",
		Title: "Go Course",
		Data:  json.RawMessage(`{"title":"Go Course"}`),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().CourseSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("remaining snapshots = %d, want 1", count)
	}
}
