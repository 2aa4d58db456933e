package loading

import (
	"context"
	"testing"

	"github.com/abhisek/corelearn/internal/acquire"
	"github.com/abhisek/corelearn/internal/course"
	"github.com/abhisek/corelearn/internal/generator"
	"github.com/abhisek/corelearn/internal/llm"
	"github.com/abhisek/corelearn/internal/router"
	"github.com/abhisek/corelearn/internal/screens/dashboard"
	"github.com/abhisek/corelearn/internal/store"
)

// mockEventRepo captures appended course events.
type mockEventRepo struct {
	courseEvents []store.CourseEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendCourseEvent(_ context.Context, data store.CourseEventData) error {
	m.courseEvents = append(m.courseEvents, data)
	return nil
}
func (m *mockEventRepo) QueryCourseEvents(_ context.Context, _ store.QueryOpts) ([]store.CourseEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendExamEvent(_ context.Context, _ store.ExamEventData) error {
	return nil
}
func (m *mockEventRepo) QueryExamEvents(_ context.Context, _ store.QueryOpts) ([]store.ExamEventRecord, error) {
	return nil, nil
}

// mockCourseRepo captures saved courses.
type mockCourseRepo struct {
	saved []*store.SavedCourse
}

func (m *mockCourseRepo) Save(_ context.Context, sc *store.SavedCourse) error {
	m.saved = append(m.saved, sc)
	return nil
}
func (m *mockCourseRepo) Latest(_ context.Context) (*store.SavedCourse, error) { return nil, nil }
func (m *mockCourseRepo) Prune(_ context.Context, _ int) error                 { return nil }

func testScreen() (*LoadingScreen, *mockEventRepo, *mockCourseRepo) {
	gen := generator.NewService(llm.NewMockProvider(), generator.DefaultConfig())
	eventRepo := &mockEventRepo{}
	courseRepo := &mockCourseRepo{}
	return New(gen, nil, eventRepo, courseRepo, acquire.New(), "go"), eventRepo, courseRepo
}

func TestCourseReadyRecordsEventAndOpensDashboard(t *testing.T) {
	l, eventRepo, courseRepo := testScreen()
	crs := course.Demo()

	_, cmd := l.Update(courseReadyMsg{Session: l.session, Course: crs})
	if cmd == nil {
		t.Fatal("expected a command after the course arrived")
	}
	msg := cmd()

	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*dashboard.DashboardScreen); !ok {
		t.Fatalf("expected dashboard screen, got %T", replace.Screen)
	}

	if len(eventRepo.courseEvents) != 1 {
		t.Fatalf("expected 1 course event, got %d", len(eventRepo.courseEvents))
	}
	ev := eventRepo.courseEvents[0]
	if ev.Topic != "go" || ev.Title != crs.Title {
		t.Errorf("unexpected event identity: %+v", ev)
	}
	if ev.Difficulty != string(crs.Difficulty) {
		t.Errorf("event difficulty = %q, want %q", ev.Difficulty, crs.Difficulty)
	}
	if ev.ModuleCount != len(crs.Modules) || ev.LessonCount != crs.TotalLessons() {
		t.Errorf("unexpected event shape: %+v", ev)
	}

	if len(courseRepo.saved) != 1 {
		t.Fatalf("expected 1 saved course, got %d", len(courseRepo.saved))
	}
	if courseRepo.saved[0].Title != crs.Title {
		t.Errorf("saved title = %q, want %q", courseRepo.saved[0].Title, crs.Title)
	}
}

func TestStaleCourseResultIgnored(t *testing.T) {
	l, eventRepo, _ := testScreen()

	_, cmd := l.Update(courseReadyMsg{Session: l.session + 1, Course: course.Demo()})
	if cmd != nil {
		t.Error("expected no command for a stale session result")
	}
	if len(eventRepo.courseEvents) != 0 {
		t.Errorf("expected no course events, got %d", len(eventRepo.courseEvents))
	}
}
