package progress

import (
	"math"

	"github.com/abhisek/corelearn/internal/course"
)

// View identifies which dashboard view is active. It is a sum over the
// mutually exclusive presentation states — content reading, the lesson quiz,
// and the final exam — so illegal combinations cannot be represented.
type View int

const (
	ViewContent View = iota
	ViewLessonQuiz
	ViewFinalExam
)

// Tracker is the lesson-progression and gating state machine for one active
// course session. It owns all mutable learner state; the Course it references
// is never modified. Tracker is not safe for concurrent use — all calls come
// from the single TUI event loop.
//
// Invalid operations (navigating to a locked lesson, answering a submitted
// quiz, and so on) are silent no-ops. The UI hides the affected controls, but
// the tracker rejects them anyway.
type Tracker struct {
	course *course.Course

	completed    map[string]bool
	activeModule int
	activeLesson int
	activeView   View

	quiz quizState
	exam examState

	certificate *Certificate
}

// quizState is the per-lesson transient quiz state. It is reset whenever the
// active lesson changes.
type quizState struct {
	answers    map[int]int // question index → chosen option
	submitted  bool
	retryCount int
	passed     bool
}

// examState is the final-exam transient state. Score and Percentage are
// frozen at submission time for display.
type examState struct {
	answers    map[int]int // question ID → chosen option
	submitted  bool
	score      int
	percentage int
}

// PassPercent is the minimum exam percentage required to pass.
const PassPercent = 80

// NewTracker creates a tracker for a validated course, positioned at the
// first lesson with nothing completed.
func NewTracker(c *course.Course) *Tracker {
	return &Tracker{
		course:    c,
		completed: make(map[string]bool),
		quiz:      newQuizState(),
		exam:      newExamState(),
	}
}

func newQuizState() quizState {
	return quizState{answers: make(map[int]int)}
}

func newExamState() examState {
	return examState{answers: make(map[int]int)}
}

// Course returns the immutable course this tracker was built for.
func (t *Tracker) Course() *course.Course { return t.course }

// Active returns the (module, lesson) indices currently being viewed.
func (t *Tracker) Active() (int, int) { return t.activeModule, t.activeLesson }

// ActiveLesson returns the lesson currently being viewed.
func (t *Tracker) ActiveLesson() *course.Lesson {
	return t.course.Lesson(t.activeModule, t.activeLesson)
}

// ActiveView returns the currently active dashboard view.
func (t *Tracker) ActiveView() View { return t.activeView }

// Completed reports whether the lesson at (m, l) has been completed.
func (t *Tracker) Completed(m, l int) bool {
	return t.completed[course.LessonRef(m, l)]
}

// CompletedCount returns how many lessons are completed.
func (t *Tracker) CompletedCount() int { return len(t.completed) }

// ProgressPercent returns completed lessons as a rounded percentage.
func (t *Tracker) ProgressPercent() int {
	total := t.course.TotalLessons()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(t.completed)) / float64(total) * 100))
}

// Locked reports whether the lesson at (m, l) is gated. The first lesson is
// always open; every other lesson unlocks when its immediate predecessor in
// flattened order is completed.
func (t *Tracker) Locked(m, l int) bool {
	if t.course.Lesson(m, l) == nil {
		return true
	}
	if m == 0 && l == 0 {
		return false
	}
	pm, pl := m, l-1
	if pl < 0 {
		pm = m - 1
		if pm < 0 {
			return false
		}
		pl = len(t.course.Modules[pm].Lessons) - 1
	}
	return !t.completed[course.LessonRef(pm, pl)]
}

// ExamLocked reports whether the final exam is still gated. It unlocks once
// the last lesson of the last module is completed and stays unlocked.
func (t *Tracker) ExamLocked() bool {
	lm, ll := t.course.LastPosition()
	return !t.completed[course.LessonRef(lm, ll)]
}

// examInProgress reports whether the learner is mid-exam. Lesson navigation
// is blocked in this window so exam progress cannot be lost by mistake.
func (t *Tracker) examInProgress() bool {
	return t.activeView == ViewFinalExam && !t.exam.submitted
}

// SelectLesson navigates to the lesson at (m, l) and shows its content view.
// All lesson-quiz transient state is reset; the passed flag is recomputed
// from completed-set membership so re-entering a finished lesson shows it as
// passed. No-op if the target is locked or an exam is in progress.
func (t *Tracker) SelectLesson(m, l int) {
	if t.course.Lesson(m, l) == nil {
		return
	}
	if t.Locked(m, l) || t.examInProgress() {
		return
	}
	t.activeModule = m
	t.activeLesson = l
	t.activeView = ViewContent
	t.quiz = newQuizState()
	t.quiz.passed = t.completed[course.LessonRef(m, l)]
}

// StartLessonQuiz switches to the quiz view for the active lesson. No-op if
// the lesson has no quiz.
func (t *Tracker) StartLessonQuiz() {
	lesson := t.ActiveLesson()
	if lesson == nil || len(lesson.Quiz) == 0 {
		return
	}
	t.activeView = ViewLessonQuiz
}

// BackToContent returns from the quiz view to the lesson content.
func (t *Tracker) BackToContent() {
	if t.activeView == ViewLessonQuiz {
		t.activeView = ViewContent
	}
}

// AnswerLessonQuiz records an option selection for one quiz question.
// Answers are locked once the quiz has passed, and after any submission
// until RetryLessonQuiz is called.
func (t *Tracker) AnswerLessonQuiz(questionIdx, optionIdx int) {
	if t.quiz.passed || t.quiz.submitted {
		return
	}
	lesson := t.ActiveLesson()
	if lesson == nil || questionIdx < 0 || questionIdx >= len(lesson.Quiz) {
		return
	}
	if optionIdx < 0 || optionIdx >= len(lesson.Quiz[questionIdx].Options) {
		return
	}
	t.quiz.answers[questionIdx] = optionIdx
}

// QuizAnswer returns the recorded answer for a question, or -1 if unanswered.
func (t *Tracker) QuizAnswer(questionIdx int) int {
	if a, ok := t.quiz.answers[questionIdx]; ok {
		return a
	}
	return -1
}

// QuizComplete reports whether every quiz question has a recorded answer.
func (t *Tracker) QuizComplete() bool {
	lesson := t.ActiveLesson()
	if lesson == nil {
		return false
	}
	for i := range lesson.Quiz {
		if _, ok := t.quiz.answers[i]; !ok {
			return false
		}
	}
	return true
}

// QuizSubmitted reports whether the active lesson's quiz has been submitted.
func (t *Tracker) QuizSubmitted() bool { return t.quiz.submitted }

// QuizPassed reports whether the active lesson's quiz has been passed.
func (t *Tracker) QuizPassed() bool { return t.quiz.passed }

// QuizRetryCount returns how many times the active quiz has been retried.
func (t *Tracker) QuizRetryCount() int { return t.quiz.retryCount }

// SubmitLessonQuiz grades the active quiz. Every question must be answered;
// a pass requires every answer to match its question's correct index — there
// is no partial credit. On a pass the lesson joins the completed set; on a
// fail only the submitted flag is set, enabling the review-and-retry state.
func (t *Tracker) SubmitLessonQuiz() {
	lesson := t.ActiveLesson()
	if lesson == nil || len(lesson.Quiz) == 0 {
		return
	}
	if t.quiz.submitted || !t.QuizComplete() {
		return
	}
	allCorrect := true
	for i, q := range lesson.Quiz {
		if t.quiz.answers[i] != q.CorrectAnswerIndex {
			allCorrect = false
			break
		}
	}
	t.quiz.submitted = true
	if allCorrect {
		t.quiz.passed = true
		t.completed[course.LessonRef(t.activeModule, t.activeLesson)] = true
	}
}

// RetryLessonQuiz clears a failed submission for another attempt. There is
// no attempt limit. No-op unless the quiz is submitted and not passed.
func (t *Tracker) RetryLessonQuiz() {
	if !t.quiz.submitted || t.quiz.passed {
		return
	}
	t.quiz.retryCount++
	t.quiz.submitted = false
	t.quiz.answers = make(map[int]int)
}

// AdvanceToNextLesson moves forward: next lesson in the module, else the
// first lesson of the next module, else the final exam. A lesson without a
// quiz is marked completed on the way out — advancing is its only completion
// path, and the sole operation that can newly unlock anything.
func (t *Tracker) AdvanceToNextLesson() {
	lesson := t.ActiveLesson()
	if lesson == nil || t.examInProgress() {
		return
	}
	if len(lesson.Quiz) == 0 {
		t.completed[course.LessonRef(t.activeModule, t.activeLesson)] = true
	}
	mod := &t.course.Modules[t.activeModule]
	switch {
	case t.activeLesson < len(mod.Lessons)-1:
		t.SelectLesson(t.activeModule, t.activeLesson+1)
	case t.activeModule < len(t.course.Modules)-1:
		t.SelectLesson(t.activeModule+1, 0)
	default:
		t.SelectFinalExam()
	}
}

// SelectFinalExam switches to the exam view. No-op while the exam is locked.
func (t *Tracker) SelectFinalExam() {
	if t.ExamLocked() {
		return
	}
	t.activeView = ViewFinalExam
}

// LeaveExam returns to the content view. Allowed only once the current
// attempt has been submitted (or before any answer is locked in).
func (t *Tracker) LeaveExam() {
	if t.activeView != ViewFinalExam {
		return
	}
	if t.examInProgress() && len(t.exam.answers) > 0 {
		return
	}
	t.activeView = ViewContent
}

// Certificate returns the issued certificate, or nil.
func (t *Tracker) Certificate() *Certificate { return t.certificate }
