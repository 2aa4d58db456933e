package dashboard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/corelearn/internal/course"
	"github.com/abhisek/corelearn/internal/progress"
	"github.com/abhisek/corelearn/internal/router"
	"github.com/abhisek/corelearn/internal/screens/certificate"
	"github.com/abhisek/corelearn/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	examEvents []store.ExamEventData
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
func (m *mockEventRepo) AppendCourseEvent(_ context.Context, _ store.CourseEventData) error {
	return nil
}
func (m *mockEventRepo) QueryCourseEvents(_ context.Context, _ store.QueryOpts) ([]store.CourseEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendExamEvent(_ context.Context, data store.ExamEventData) error {
	m.examEvents = append(m.examEvents, data)
	return nil
}
func (m *mockEventRepo) QueryExamEvents(_ context.Context, _ store.QueryOpts) ([]store.ExamEventRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCourse() *course.Course {
	return &course.Course{
		Title:       "Go Fundamentals",
		Description: "A short course used in tests.",
		Difficulty:  "Beginner",
		Modules: []course.Module{
			{
				Title: "Basics",
				Lessons: []course.Lesson{
					{
						Title:    "Variables",
						Duration: "10 min",
						Content:  "Variables hold values.",
						Quiz: []course.QuizQuestion{
							{
								Question:           "Which keyword declares a variable?",
								Options:            []string{"def", "var", "let", "dim"},
								CorrectAnswerIndex: 1,
							},
						},
					},
					{
						Title:    "Functions",
						Duration: "10 min",
						Content:  "Functions group behavior.",
					},
				},
			},
		},
		FinalExam: course.FinalExam{
			Title: "Final Exam",
			Questions: []course.Question{
				{ID: 1, Text: "Which keyword declares a function?", Options: []string{"func", "fn", "def", "fun"}, CorrectAnswerIndex: 0},
			},
		},
	}
}

func testDashboard() (*DashboardScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	return New(testCourse(), "go", nil, repo), repo
}

// send runs one Update and executes any returned command so async side
// effects (event appends, navigation messages) land synchronously.
func send(d *DashboardScreen, msg tea.Msg) tea.Msg {
	_, cmd := d.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestInitialState(t *testing.T) {
	d, _ := testDashboard()

	if got := d.HeaderProgress(); got != "0/2 lessons · 0%" {
		t.Errorf("expected initial progress header, got %q", got)
	}
	if d.tracker.ActiveView() != progress.ViewContent {
		t.Error("expected content view on a fresh dashboard")
	}
	if d.BlocksEscape() {
		t.Error("content view must allow esc to leave the course")
	}
}

func TestLockedLessonRejectedFromSidebar(t *testing.T) {
	d, _ := testDashboard()

	send(d, specialKey(tea.KeyTab)) // focus sidebar
	send(d, specialKey(tea.KeyDown))
	send(d, specialKey(tea.KeyEnter))

	if d.notice == "" {
		t.Error("expected a notice when selecting a locked lesson")
	}
	if _, l := d.tracker.Active(); l != 0 {
		t.Errorf("expected to stay on lesson 0, got %d", l)
	}
}

func TestQuizPassUnlocksNextLesson(t *testing.T) {
	d, _ := testDashboard()

	send(d, keyPress('s')) // start quiz
	if d.tracker.ActiveView() != progress.ViewLessonQuiz {
		t.Fatal("expected quiz view after pressing s")
	}

	send(d, specialKey(tea.KeyDown)) // cursor to the correct option
	send(d, specialKey(tea.KeyEnter))
	send(d, keyPress('s')) // submit

	if !d.tracker.QuizPassed() {
		t.Fatal("expected quiz to pass with the correct answer")
	}
	if got := d.HeaderProgress(); got != "1/2 lessons · 50%" {
		t.Errorf("expected progress after quiz pass, got %q", got)
	}

	send(d, keyPress('n')) // continue to next lesson
	if m, l := d.tracker.Active(); m != 0 || l != 1 {
		t.Errorf("expected lesson (0,1), got (%d,%d)", m, l)
	}
	if d.tracker.ActiveView() != progress.ViewContent {
		t.Error("expected content view after advancing")
	}
}

func TestAdvanceBlockedByUnpassedQuiz(t *testing.T) {
	d, _ := testDashboard()

	send(d, keyPress('n'))

	if d.notice == "" {
		t.Error("expected a notice when advancing past an unpassed quiz")
	}
	if m, l := d.tracker.Active(); m != 0 || l != 0 {
		t.Errorf("expected to stay on lesson (0,0), got (%d,%d)", m, l)
	}
}

// completeAllLessons drives the dashboard to the exam view.
func completeAllLessons(d *DashboardScreen) {
	send(d, keyPress('s'))
	send(d, specialKey(tea.KeyDown))
	send(d, specialKey(tea.KeyEnter))
	send(d, keyPress('s'))
	send(d, keyPress('n')) // lesson 2 (no quiz)
	send(d, keyPress('n')) // completes lesson 2, opens the exam
}

func TestExamFlow(t *testing.T) {
	d, repo := testDashboard()
	completeAllLessons(d)

	if d.tracker.ActiveView() != progress.ViewFinalExam {
		t.Fatal("expected exam view after finishing every lesson")
	}
	if got := d.HeaderProgress(); got != "2/2 lessons · 100%" {
		t.Errorf("expected full lesson progress, got %q", got)
	}
	if !d.BlocksEscape() {
		t.Error("exam view must handle esc internally")
	}

	send(d, specialKey(tea.KeyEnter)) // choose option 0 (correct)
	send(d, keyPress('s'))            // submit

	if !d.tracker.ExamPassed() {
		t.Fatal("expected exam to pass")
	}
	if len(repo.examEvents) != 1 {
		t.Fatalf("expected 1 exam event, got %d", len(repo.examEvents))
	}
	ev := repo.examEvents[0]
	if !ev.Passed || ev.Percentage != 100 || ev.Attempt != 1 {
		t.Errorf("unexpected exam event: %+v", ev)
	}
}

func TestExamRetryRecordsSecondAttempt(t *testing.T) {
	d, repo := testDashboard()
	completeAllLessons(d)

	send(d, specialKey(tea.KeyDown)) // cursor to a wrong option
	send(d, specialKey(tea.KeyEnter))
	send(d, keyPress('s'))

	if d.tracker.ExamPassed() {
		t.Fatal("expected exam to fail with the wrong answer")
	}

	send(d, keyPress('r')) // retry
	if d.tracker.ExamSubmitted() {
		t.Fatal("expected a fresh attempt after retry")
	}

	send(d, specialKey(tea.KeyEnter)) // option 0, correct
	send(d, keyPress('s'))

	if len(repo.examEvents) != 2 {
		t.Fatalf("expected 2 exam events, got %d", len(repo.examEvents))
	}
	if repo.examEvents[1].Attempt != 2 {
		t.Errorf("expected attempt 2, got %d", repo.examEvents[1].Attempt)
	}
	if !repo.examEvents[1].Passed {
		t.Error("expected second attempt to pass")
	}
}

func TestCertificateIssuedWithName(t *testing.T) {
	d, _ := testDashboard()
	completeAllLessons(d)

	send(d, specialKey(tea.KeyEnter))
	send(d, keyPress('s'))
	send(d, keyPress('c')) // claim certificate

	if !d.showNameEntry {
		t.Fatal("expected name entry after pressing c on a passed exam")
	}

	for _, r := range "Ada" {
		send(d, keyPress(r))
	}
	msg := send(d, specialKey(tea.KeyEnter))

	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*certificate.CertificateScreen); !ok {
		t.Fatalf("expected certificate screen, got %T", push.Screen)
	}
	cert := d.tracker.Certificate()
	if cert == nil || cert.LearnerName != "Ada" {
		t.Errorf("expected certificate for Ada, got %+v", cert)
	}
}

func TestTutorBlockedDuringExam(t *testing.T) {
	d, _ := testDashboard()
	completeAllLessons(d)

	send(d, keyPress('t'))

	if d.notice == "" {
		t.Error("expected a notice when opening the tutor mid-exam")
	}
}
