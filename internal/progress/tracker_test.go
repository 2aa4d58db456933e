package progress

import (
	"testing"

	"github.com/abhisek/corelearn/internal/course"
)

// testCourse builds 1 module, 2 lessons: lesson A has no quiz, lesson B has
// a 2-question quiz. Final exam has 3 questions.
func testCourse() *course.Course {
	return &course.Course{
		Title: "Test Course",
		Modules: []course.Module{
			{
				Title: "Module 1",
				Lessons: []course.Lesson{
					{Title: "A"},
					{Title: "B", Quiz: []course.QuizQuestion{
						{Question: "q0", Options: []string{"x", "y"}, CorrectAnswerIndex: 0},
						{Question: "q1", Options: []string{"x", "y"}, CorrectAnswerIndex: 1},
					}},
				},
			},
		},
		FinalExam: course.FinalExam{
			Title: "Exam",
			Questions: []course.Question{
				{ID: 1, Text: "e1", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
				{ID: 2, Text: "e2", Options: []string{"a", "b"}, CorrectAnswerIndex: 1},
				{ID: 3, Text: "e3", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
			},
		},
	}
}

// multiModuleCourse builds 2 modules × 2 lessons, all without quizzes.
func multiModuleCourse() *course.Course {
	return &course.Course{
		Title: "Multi",
		Modules: []course.Module{
			{Title: "M0", Lessons: []course.Lesson{{Title: "0-0"}, {Title: "0-1"}}},
			{Title: "M1", Lessons: []course.Lesson{{Title: "1-0"}, {Title: "1-1"}}},
		},
		FinalExam: course.FinalExam{Questions: []course.Question{
			{ID: 1, Text: "e", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
		}},
	}
}

func TestNewTracker_InitialState(t *testing.T) {
	tr := NewTracker(testCourse())

	m, l := tr.Active()
	if m != 0 || l != 0 {
		t.Errorf("initial position = (%d,%d), want (0,0)", m, l)
	}
	if tr.ActiveView() != ViewContent {
		t.Errorf("initial view = %v, want ViewContent", tr.ActiveView())
	}
	if tr.CompletedCount() != 0 {
		t.Errorf("CompletedCount = %d, want 0", tr.CompletedCount())
	}
}

func TestLocked_FirstLessonAlwaysOpen(t *testing.T) {
	tr := NewTracker(testCourse())

	if tr.Locked(0, 0) {
		t.Error("lesson (0,0) must never be locked")
	}
	if !tr.Locked(0, 1) {
		t.Error("lesson (0,1) should be locked before (0,0) completes")
	}
}

func TestLocked_OutOfRangePositions(t *testing.T) {
	tr := NewTracker(multiModuleCourse())

	// Nonexistent positions report locked instead of panicking.
	cases := [][2]int{{7, 0}, {2, 0}, {0, 9}, {-1, 0}, {0, -1}}
	for _, c := range cases {
		if !tr.Locked(c[0], c[1]) {
			t.Errorf("Locked(%d,%d) = false, want true for a nonexistent lesson", c[0], c[1])
		}
	}
}

func TestLocked_PredecessorRule(t *testing.T) {
	tr := NewTracker(multiModuleCourse())

	// Walk the course in flattened order; at each step exactly the next
	// lesson unlocks.
	positions := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, pos := range positions {
		if tr.Locked(pos[0], pos[1]) {
			t.Fatalf("step %d: (%d,%d) should be unlocked", i, pos[0], pos[1])
		}
		for _, later := range positions[i+1:] {
			if !tr.Locked(later[0], later[1]) {
				t.Fatalf("step %d: (%d,%d) should still be locked", i, later[0], later[1])
			}
		}
		tr.SelectLesson(pos[0], pos[1])
		tr.AdvanceToNextLesson() // no quiz → completes the lesson
	}
}

func TestSelectLesson_LockedIsNoOp(t *testing.T) {
	tr := NewTracker(testCourse())

	tr.SelectLesson(0, 1)

	m, l := tr.Active()
	if m != 0 || l != 0 {
		t.Errorf("position = (%d,%d), want (0,0): locked selection must be a no-op", m, l)
	}
}

func TestAdvance_EmptyQuizCompletesLesson(t *testing.T) {
	tr := NewTracker(testCourse())

	tr.AdvanceToNextLesson()

	if !tr.Completed(0, 0) {
		t.Error("lesson A (no quiz) should be completed after advancing")
	}
	if m, l := tr.Active(); m != 0 || l != 1 {
		t.Errorf("position = (%d,%d), want (0,1)", m, l)
	}
	if tr.Locked(0, 1) {
		t.Error("lesson B should be unlocked after A completes")
	}
}

func TestSubmitLessonQuiz_RequiresAllAnswers(t *testing.T) {
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()

	tr.AnswerLessonQuiz(0, 0)
	tr.SubmitLessonQuiz() // question 1 unanswered

	if tr.QuizSubmitted() {
		t.Error("partial submission must be rejected")
	}
}

func TestSubmitLessonQuiz_OneWrongFails(t *testing.T) {
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()

	tr.AnswerLessonQuiz(0, 0) // correct
	tr.AnswerLessonQuiz(1, 0) // wrong
	tr.SubmitLessonQuiz()

	if !tr.QuizSubmitted() {
		t.Fatal("expected submitted")
	}
	if tr.QuizPassed() {
		t.Error("one wrong answer must fail the quiz")
	}
	if tr.Completed(0, 1) {
		t.Error("failed quiz must not complete the lesson")
	}
	if !tr.ExamLocked() {
		t.Error("exam must stay locked")
	}
}

func TestSubmitLessonQuiz_AllCorrectPasses(t *testing.T) {
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()

	tr.AnswerLessonQuiz(0, 0)
	tr.AnswerLessonQuiz(1, 1)
	tr.SubmitLessonQuiz()

	if !tr.QuizPassed() {
		t.Fatal("expected pass")
	}
	if !tr.Completed(0, 1) {
		t.Error("passing quiz must complete the lesson")
	}
	if tr.ExamLocked() {
		t.Error("exam should unlock once the last lesson completes")
	}
}

func TestAnswerLessonQuiz_LockedAfterSubmission(t *testing.T) {
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()
	tr.AnswerLessonQuiz(0, 0)
	tr.AnswerLessonQuiz(1, 0)
	tr.SubmitLessonQuiz() // fails

	tr.AnswerLessonQuiz(1, 1)

	if tr.QuizAnswer(1) != 0 {
		t.Error("answers must be locked for review after a failed submission")
	}

	tr.RetryLessonQuiz()
	tr.AnswerLessonQuiz(1, 1)
	if tr.QuizAnswer(1) != 1 {
		t.Error("answers should be editable again after retry")
	}
}

func TestAnswerLessonQuiz_LockedAfterPass(t *testing.T) {
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()
	tr.AnswerLessonQuiz(0, 0)
	tr.AnswerLessonQuiz(1, 1)
	tr.SubmitLessonQuiz()

	tr.AnswerLessonQuiz(0, 1)

	if tr.QuizAnswer(0) != 0 {
		t.Error("answers must be locked after a passing submission")
	}
}

func TestRetryLessonQuiz_OnlyAfterFailedSubmission(t *testing.T) {
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()

	tr.RetryLessonQuiz() // not submitted yet
	if tr.QuizRetryCount() != 0 {
		t.Error("retry before submission must be a no-op")
	}

	tr.AnswerLessonQuiz(0, 1)
	tr.AnswerLessonQuiz(1, 0)
	tr.SubmitLessonQuiz()
	tr.RetryLessonQuiz()

	if tr.QuizRetryCount() != 1 {
		t.Errorf("retryCount = %d, want 1", tr.QuizRetryCount())
	}
	if tr.QuizSubmitted() {
		t.Error("retry must clear the submitted flag")
	}
	if tr.QuizAnswer(0) != -1 {
		t.Error("retry must clear recorded answers")
	}
}

func TestCompletion_IsMonotone(t *testing.T) {
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()
	tr.AnswerLessonQuiz(0, 0)
	tr.AnswerLessonQuiz(1, 1)
	tr.SubmitLessonQuiz()

	// Revisit, retry-ish operations, navigate around: nothing may remove
	// completions.
	tr.SelectLesson(0, 0)
	tr.SelectLesson(0, 1)
	tr.RetryLessonQuiz()
	tr.StartLessonQuiz()

	if !tr.Completed(0, 0) || !tr.Completed(0, 1) {
		t.Error("completed lessons must never be un-completed")
	}
	if !tr.QuizPassed() {
		t.Error("re-entering a completed lesson must keep passed=true")
	}
	if tr.ExamLocked() {
		t.Error("exam must stay unlocked after earlier lessons are revisited")
	}
}

func TestSelectLesson_BlockedMidExam(t *testing.T) {
	tr := completeAllLessons(t)
	tr.SelectFinalExam()

	tr.SelectLesson(0, 0)

	if tr.ActiveView() != ViewFinalExam {
		t.Error("lesson navigation must be blocked during an unsubmitted exam")
	}

	tr.AnswerExam(1, 0)
	tr.AnswerExam(2, 1)
	tr.AnswerExam(3, 0)
	tr.SubmitExam()
	tr.SelectLesson(0, 0)

	if tr.ActiveView() != ViewContent {
		t.Error("lesson navigation should work again after submission")
	}
}

func TestSelectFinalExam_LockedIsNoOp(t *testing.T) {
	tr := NewTracker(testCourse())

	tr.SelectFinalExam()

	if tr.ActiveView() != ViewContent {
		t.Error("selecting a locked exam must be a no-op")
	}
}

// completeAllLessons drives the test course to the point where the exam is
// unlocked.
func completeAllLessons(t *testing.T) *Tracker {
	t.Helper()
	tr := NewTracker(testCourse())
	tr.AdvanceToNextLesson()
	tr.StartLessonQuiz()
	tr.AnswerLessonQuiz(0, 0)
	tr.AnswerLessonQuiz(1, 1)
	tr.SubmitLessonQuiz()
	if tr.ExamLocked() {
		t.Fatal("setup: exam should be unlocked")
	}
	return tr
}

func TestProgressPercent(t *testing.T) {
	tr := NewTracker(testCourse())
	if tr.ProgressPercent() != 0 {
		t.Errorf("ProgressPercent = %d, want 0", tr.ProgressPercent())
	}

	tr.AdvanceToNextLesson()
	if tr.ProgressPercent() != 50 {
		t.Errorf("ProgressPercent = %d, want 50", tr.ProgressPercent())
	}
}

// TestFullScenario walks the end-to-end flow: empty-quiz completion unlocks
// the gated lesson, a failed quiz blocks the exam, retry passes, a 2/3 exam
// fails at 67%, and a 3/3 retake earns the certificate.
func TestFullScenario(t *testing.T) {
	tr := NewTracker(testCourse())

	tr.AdvanceToNextLesson()
	if tr.Locked(0, 1) {
		t.Fatal("B should be unlocked")
	}

	tr.StartLessonQuiz()
	tr.AnswerLessonQuiz(0, 0)
	tr.AnswerLessonQuiz(1, 0) // one wrong
	tr.SubmitLessonQuiz()
	if !tr.QuizSubmitted() || tr.QuizPassed() || tr.Completed(0, 1) || !tr.ExamLocked() {
		t.Fatal("failed quiz: expected submitted, not passed, not completed, exam locked")
	}

	tr.RetryLessonQuiz()
	tr.AnswerLessonQuiz(0, 0)
	tr.AnswerLessonQuiz(1, 1)
	tr.SubmitLessonQuiz()
	if !tr.QuizPassed() || !tr.Completed(0, 1) || tr.ExamLocked() {
		t.Fatal("retried quiz: expected passed, completed, exam unlocked")
	}

	tr.SelectFinalExam()
	tr.AnswerExam(1, 0)
	tr.AnswerExam(2, 1)
	tr.AnswerExam(3, 1) // wrong
	tr.SubmitExam()
	if tr.ExamScore() != 2 {
		t.Fatalf("score = %d, want 2", tr.ExamScore())
	}
	if tr.ExamPercent() != 67 {
		t.Fatalf("percentage = %d, want 67", tr.ExamPercent())
	}
	if tr.ExamPassed() {
		t.Fatal("67%% must fail")
	}

	tr.RetryExam()
	tr.AnswerExam(1, 0)
	tr.AnswerExam(2, 1)
	tr.AnswerExam(3, 0)
	tr.SubmitExam()
	if tr.ExamPercent() != 100 || !tr.ExamPassed() {
		t.Fatalf("expected 100%% pass, got %d%%", tr.ExamPercent())
	}

	cert := tr.IssueCertificate("A. Learner")
	if cert == nil {
		t.Fatal("expected certificate")
	}
	if cert.LearnerName != "A. Learner" {
		t.Errorf("LearnerName = %q", cert.LearnerName)
	}
	if cert.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", cert.Percentage)
	}
	if cert.ID == "" {
		t.Error("certificate ID should be set")
	}
}
