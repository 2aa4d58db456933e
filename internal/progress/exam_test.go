package progress

import (
	"fmt"
	"testing"

	"github.com/abhisek/corelearn/internal/course"
)

// examCourse builds a single no-quiz lesson plus an exam with n questions
// whose correct answer is always option 0.
func examCourse(n int) *course.Course {
	questions := make([]course.Question, n)
	for i := range questions {
		questions[i] = course.Question{
			ID:                 i + 1,
			Text:               fmt.Sprintf("q%d", i+1),
			Options:            []string{"right", "wrong"},
			CorrectAnswerIndex: 0,
		}
	}
	return &course.Course{
		Title:     "Exam Course",
		Modules:   []course.Module{{Title: "M", Lessons: []course.Lesson{{Title: "L"}}}},
		FinalExam: course.FinalExam{Title: "Exam", Questions: questions},
	}
}

func readyTracker(n int) *Tracker {
	tr := NewTracker(examCourse(n))
	tr.AdvanceToNextLesson() // completes the lone lesson and opens the exam
	return tr
}

func answerAll(tr *Tracker, correct int) {
	for i, q := range tr.Course().FinalExam.Questions {
		opt := 1
		if i < correct {
			opt = 0
		}
		tr.AnswerExam(q.ID, opt)
	}
}

func TestSubmitExam_RequiresFullAnswerSet(t *testing.T) {
	tr := readyTracker(3)
	tr.SelectFinalExam()
	tr.AnswerExam(1, 0)

	tr.SubmitExam()

	if tr.ExamSubmitted() {
		t.Error("partial exam submission must be rejected")
	}
}

func TestSubmitExam_PercentageBoundary(t *testing.T) {
	tests := []struct {
		total, correct, percent int
		passed                  bool
	}{
		{10, 8, 80, true},  // exactly at threshold
		{10, 7, 70, false}, // below
		{3, 2, 67, false},  // rounding
		{3, 3, 100, true},
		{15, 12, 80, true},
		{14, 11, 79, false}, // 78.57 rounds to 79 → fail
	}
	for _, tt := range tests {
		tr := readyTracker(tt.total)
		tr.SelectFinalExam()
		answerAll(tr, tt.correct)
		tr.SubmitExam()

		if tr.ExamPercent() != tt.percent {
			t.Errorf("%d/%d: percent = %d, want %d", tt.correct, tt.total, tr.ExamPercent(), tt.percent)
		}
		if tr.ExamPassed() != tt.passed {
			t.Errorf("%d/%d: passed = %v, want %v", tt.correct, tt.total, tr.ExamPassed(), tt.passed)
		}
	}
}

func TestAnswerExam_RejectedAfterSubmission(t *testing.T) {
	tr := readyTracker(2)
	tr.SelectFinalExam()
	answerAll(tr, 2)
	tr.SubmitExam()

	tr.AnswerExam(1, 1)

	if tr.ExamAnswer(1) != 0 {
		t.Error("answers must be frozen after submission")
	}
}

func TestSubmitExam_NoDoubleSubmission(t *testing.T) {
	tr := readyTracker(2)
	tr.SelectFinalExam()
	answerAll(tr, 1)
	tr.SubmitExam()
	first := tr.ExamPercent()

	tr.SubmitExam() // must be a no-op

	if tr.ExamPercent() != first {
		t.Error("re-submission without retry must not regrade")
	}
}

func TestRetryExam_ClearsState(t *testing.T) {
	tr := readyTracker(2)
	tr.SelectFinalExam()
	answerAll(tr, 0)
	tr.SubmitExam()

	tr.RetryExam()

	if tr.ExamSubmitted() {
		t.Error("retry must clear the submitted flag")
	}
	if tr.ExamAnswer(1) != -1 {
		t.Error("retry must clear answers")
	}
	if tr.ExamScore() != 0 || tr.ExamPercent() != 0 {
		t.Error("retry must clear the frozen score")
	}
}

func TestRetryExam_BeforeSubmissionIsNoOp(t *testing.T) {
	tr := readyTracker(2)
	tr.SelectFinalExam()
	tr.AnswerExam(1, 0)

	tr.RetryExam()

	if tr.ExamAnswer(1) != 0 {
		t.Error("retry before any submission must not clear answers")
	}
}
