package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/corelearn/internal/course"
	"github.com/abhisek/corelearn/internal/progress"
	"github.com/abhisek/corelearn/internal/router"
	"github.com/abhisek/corelearn/internal/screen"
	"github.com/abhisek/corelearn/internal/screens/certificate"
	"github.com/abhisek/corelearn/internal/screens/tutorchat"
	"github.com/abhisek/corelearn/internal/store"
	"github.com/abhisek/corelearn/internal/tutor"
	"github.com/abhisek/corelearn/internal/ui/components"
)

// focusArea identifies which pane receives navigation keys.
type focusArea int

const (
	focusSidebar focusArea = iota
	focusMain
)

// rowKind identifies what a sidebar row points at.
type rowKind int

const (
	rowModule rowKind = iota
	rowLesson
	rowExam
)

// sidebarRow is one line of the course outline.
type sidebarRow struct {
	kind   rowKind
	module int
	lesson int
}

// DashboardScreen is the main course screen: outline sidebar on the left,
// lesson content, quiz, or final exam on the right. It owns the progression
// tracker for the active course.
type DashboardScreen struct {
	crs     *course.Course
	topic   string
	tracker *progress.Tracker

	tutor     *tutor.Service
	eventRepo store.EventRepo

	rows          []sidebarRow
	cursor        int
	sidebarScroll int

	focus         focusArea
	contentScroll int

	quiz    []components.MultiChoice
	quizIdx int

	exam         []components.MultiChoice
	examIdx      int
	examAttempts int

	showNameEntry bool
	nameInput     components.TextInput

	notice string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard for a validated course, positioned at the first
// lesson.
func New(crs *course.Course, topic string, tut *tutor.Service, eventRepo store.EventRepo) *DashboardScreen {
	d := &DashboardScreen{
		crs:       crs,
		topic:     topic,
		tracker:   progress.NewTracker(crs),
		tutor:     tut,
		eventRepo: eventRepo,
		focus:     focusMain,
		nameInput: components.NewTextInput("Your name as it should appear", 60),
	}
	d.buildRows()
	return d
}

// buildRows flattens the course into sidebar rows: module headings, their
// lessons, and the final exam entry at the bottom.
func (d *DashboardScreen) buildRows() {
	d.rows = d.rows[:0]
	for m := range d.crs.Modules {
		d.rows = append(d.rows, sidebarRow{kind: rowModule, module: m})
		for l := range d.crs.Modules[m].Lessons {
			d.rows = append(d.rows, sidebarRow{kind: rowLesson, module: m, lesson: l})
		}
	}
	d.rows = append(d.rows, sidebarRow{kind: rowExam})
	d.cursor = d.firstSelectable()
}

func (d *DashboardScreen) firstSelectable() int {
	for i, r := range d.rows {
		if r.kind != rowModule {
			return i
		}
	}
	return 0
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.showNameEntry {
			var cmd tea.Cmd
			d.nameInput, cmd = d.nameInput.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	d.notice = ""

	if d.showNameEntry {
		return d.updateNameEntry(kmsg)
	}

	switch kmsg.String() {
	case "tab":
		if d.tracker.ActiveView() == progress.ViewContent {
			if d.focus == focusSidebar {
				d.focus = focusMain
			} else {
				d.focus = focusSidebar
			}
		}
		return d, nil
	case "t":
		return d, d.openTutor()
	}

	if d.focus == focusSidebar && d.tracker.ActiveView() == progress.ViewContent {
		return d.updateSidebar(kmsg)
	}

	switch d.tracker.ActiveView() {
	case progress.ViewContent:
		return d.updateContent(kmsg)
	case progress.ViewLessonQuiz:
		return d.updateQuiz(kmsg)
	case progress.ViewFinalExam:
		return d.updateExam(kmsg)
	}
	return d, nil
}

func (d *DashboardScreen) updateSidebar(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		for i := d.cursor - 1; i >= 0; i-- {
			if d.rows[i].kind != rowModule {
				d.cursor = i
				break
			}
		}
	case "down", "j":
		for i := d.cursor + 1; i < len(d.rows); i++ {
			if d.rows[i].kind != rowModule {
				d.cursor = i
				break
			}
		}
	case "enter":
		row := d.rows[d.cursor]
		switch row.kind {
		case rowLesson:
			if d.tracker.Locked(row.module, row.lesson) {
				d.notice = "Complete the previous lesson to unlock this one."
				return d, nil
			}
			d.tracker.SelectLesson(row.module, row.lesson)
			d.contentScroll = 0
			d.focus = focusMain
		case rowExam:
			if d.tracker.ExamLocked() {
				d.notice = "Finish every lesson to unlock the final exam."
				return d, nil
			}
			d.tracker.SelectFinalExam()
			d.rebuildExam()
			d.focus = focusMain
		}
	}
	return d, nil
}

func (d *DashboardScreen) updateContent(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	lesson := d.tracker.ActiveLesson()
	switch kmsg.String() {
	case "up", "k":
		if d.contentScroll > 0 {
			d.contentScroll--
		}
	case "down", "j":
		d.contentScroll++
	case "s":
		if lesson != nil && len(lesson.Quiz) > 0 {
			d.tracker.StartLessonQuiz()
			d.rebuildQuiz()
		}
	case "n", "enter":
		d.advance()
	}
	return d, nil
}

// advance moves to the next lesson if the gate allows it. A lesson with an
// unpassed quiz keeps the learner in place.
func (d *DashboardScreen) advance() {
	lesson := d.tracker.ActiveLesson()
	if lesson == nil {
		return
	}
	if len(lesson.Quiz) > 0 && !d.tracker.QuizPassed() {
		d.notice = "Pass the lesson quiz to continue."
		return
	}
	d.tracker.AdvanceToNextLesson()
	d.afterNavigate()
}

// afterNavigate resets per-view state after the tracker position changed.
func (d *DashboardScreen) afterNavigate() {
	d.contentScroll = 0
	d.syncCursor()
	if d.tracker.ActiveView() == progress.ViewFinalExam {
		d.rebuildExam()
	}
}

// syncCursor moves the sidebar cursor to the tracker's active position.
func (d *DashboardScreen) syncCursor() {
	if d.tracker.ActiveView() == progress.ViewFinalExam {
		d.cursor = len(d.rows) - 1
		return
	}
	am, al := d.tracker.Active()
	for i, r := range d.rows {
		if r.kind == rowLesson && r.module == am && r.lesson == al {
			d.cursor = i
			return
		}
	}
}

func (d *DashboardScreen) updateQuiz(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	lesson := d.tracker.ActiveLesson()
	if lesson == nil || len(d.quiz) == 0 {
		d.tracker.BackToContent()
		return d, nil
	}

	switch kmsg.String() {
	case "esc", "b":
		d.tracker.BackToContent()
		return d, nil
	case "left", "h":
		if d.quizIdx > 0 {
			d.quizIdx--
		}
		return d, nil
	case "right", "l":
		if d.quizIdx < len(d.quiz)-1 {
			d.quizIdx++
		}
		return d, nil
	case "s":
		d.submitQuiz()
		return d, nil
	case "r":
		if d.tracker.QuizSubmitted() && !d.tracker.QuizPassed() {
			d.tracker.RetryLessonQuiz()
			d.rebuildQuiz()
		}
		return d, nil
	case "n", "enter":
		if d.tracker.QuizPassed() {
			d.tracker.AdvanceToNextLesson()
			d.afterNavigate()
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.quiz[d.quizIdx], cmd = d.quiz[d.quizIdx].Update(kmsg)
	if chosen := d.quiz[d.quizIdx].Chosen; chosen >= 0 {
		d.tracker.AnswerLessonQuiz(d.quizIdx, chosen)
		// Auto-advance to the first unanswered question after choosing.
		if kmsg.String() == "enter" || kmsg.String() == " " {
			for i := range d.quiz {
				if !d.quiz[i].Answered() {
					d.quizIdx = i
					break
				}
			}
		}
	}
	return d, cmd
}

// submitQuiz grades the quiz and reveals every question.
func (d *DashboardScreen) submitQuiz() {
	if !d.tracker.QuizComplete() {
		d.notice = "Answer every question before submitting."
		return
	}
	if d.tracker.QuizSubmitted() {
		return
	}
	d.tracker.SubmitLessonQuiz()
	for i := range d.quiz {
		d.quiz[i].Revealed = true
		d.quiz[i].Locked = true
	}
	d.quizIdx = 0
}

// rebuildQuiz recreates the quiz components from the tracker's answer state.
func (d *DashboardScreen) rebuildQuiz() {
	lesson := d.tracker.ActiveLesson()
	d.quiz = d.quiz[:0]
	d.quizIdx = 0
	if lesson == nil {
		return
	}
	revealed := d.tracker.QuizSubmitted() || d.tracker.QuizPassed()
	for i, q := range lesson.Quiz {
		mc := components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswerIndex)
		mc.Chosen = d.tracker.QuizAnswer(i)
		mc.Revealed = revealed
		mc.Locked = revealed
		d.quiz = append(d.quiz, mc)
	}
}

func (d *DashboardScreen) updateExam(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if len(d.exam) == 0 {
		d.rebuildExam()
	}

	switch kmsg.String() {
	case "esc", "b":
		if d.tracker.ExamSubmitted() {
			d.tracker.LeaveExam()
			d.afterNavigate()
		} else if len(d.tracker.Course().FinalExam.Questions) > 0 && d.answeredCount() > 0 {
			d.notice = "Finish and submit the exam first. Your answers are not saved otherwise."
		} else {
			d.tracker.LeaveExam()
			d.afterNavigate()
		}
		return d, nil
	case "left", "h":
		if d.examIdx > 0 {
			d.examIdx--
		}
		return d, nil
	case "right", "l":
		if d.examIdx < len(d.exam)-1 {
			d.examIdx++
		}
		return d, nil
	case "s":
		return d, d.submitExam()
	case "r":
		if d.tracker.ExamSubmitted() && !d.tracker.ExamPassed() {
			d.tracker.RetryExam()
			d.rebuildExam()
		}
		return d, nil
	case "c":
		if d.tracker.ExamPassed() && d.tracker.Certificate() == nil {
			d.showNameEntry = true
			d.nameInput.Reset()
			return d, d.nameInput.Init()
		}
		return d, nil
	}

	if d.examIdx >= len(d.exam) {
		return d, nil
	}
	var cmd tea.Cmd
	d.exam[d.examIdx], cmd = d.exam[d.examIdx].Update(kmsg)
	if chosen := d.exam[d.examIdx].Chosen; chosen >= 0 {
		q := d.tracker.Course().FinalExam.Questions[d.examIdx]
		d.tracker.AnswerExam(q.ID, chosen)
		if kmsg.String() == "enter" || kmsg.String() == " " {
			for i := range d.exam {
				if !d.exam[i].Answered() {
					d.examIdx = i
					break
				}
			}
		}
	}
	return d, cmd
}

// answeredCount returns how many exam questions have a recorded answer.
func (d *DashboardScreen) answeredCount() int {
	n := 0
	for _, q := range d.tracker.Course().FinalExam.Questions {
		if d.tracker.ExamAnswer(q.ID) >= 0 {
			n++
		}
	}
	return n
}

// submitExam grades the attempt, reveals every question, and records the
// submission event.
func (d *DashboardScreen) submitExam() tea.Cmd {
	if d.tracker.ExamSubmitted() {
		return nil
	}
	if !d.tracker.ExamComplete() {
		d.notice = "Answer every question before submitting."
		return nil
	}
	d.tracker.SubmitExam()
	d.examAttempts++
	for i := range d.exam {
		d.exam[i].Revealed = true
		d.exam[i].Locked = true
	}
	d.examIdx = 0

	if d.eventRepo == nil {
		return nil
	}
	repo := d.eventRepo
	data := store.ExamEventData{
		CourseTitle: d.crs.Title,
		Score:       d.tracker.ExamScore(),
		Total:       len(d.crs.FinalExam.Questions),
		Percentage:  d.tracker.ExamPercent(),
		Passed:      d.tracker.ExamPassed(),
		Attempt:     d.examAttempts,
	}
	return func() tea.Msg {
		_ = repo.AppendExamEvent(context.Background(), data)
		return nil
	}
}

// rebuildExam recreates the exam components from the tracker's answer state.
func (d *DashboardScreen) rebuildExam() {
	d.exam = d.exam[:0]
	d.examIdx = 0
	revealed := d.tracker.ExamSubmitted()
	for _, q := range d.crs.FinalExam.Questions {
		mc := components.NewMultiChoice(q.Text, q.Options, q.CorrectAnswerIndex)
		mc.Chosen = d.tracker.ExamAnswer(q.ID)
		mc.Revealed = revealed
		mc.Locked = revealed
		d.exam = append(d.exam, mc)
	}
}

func (d *DashboardScreen) updateNameEntry(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		d.showNameEntry = false
		return d, nil
	case "enter":
		name := strings.TrimSpace(d.nameInput.Value())
		if name == "" {
			d.nameInput.Submit(false)
			d.notice = "Enter your name to issue the certificate."
			return d, nil
		}
		cert := d.tracker.IssueCertificate(name)
		if cert == nil {
			d.showNameEntry = false
			return d, nil
		}
		d.showNameEntry = false
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: certificate.New(cert)}
		}
	}

	var cmd tea.Cmd
	d.nameInput, cmd = d.nameInput.Update(kmsg)
	return d, cmd
}

// openTutor pushes the tutor chat for the active lesson. The tutor is only
// reachable from the content view.
func (d *DashboardScreen) openTutor() tea.Cmd {
	if d.tracker.ActiveView() != progress.ViewContent {
		d.notice = "The tutor is unavailable during quizzes and exams."
		return nil
	}
	if d.tutor == nil {
		d.notice = "The tutor needs an LLM provider. Set an API key and restart."
		return nil
	}
	lesson := d.tracker.ActiveLesson()
	if lesson == nil {
		return nil
	}
	tut, title, content := d.tutor, lesson.Title, lesson.Content
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: tutorchat.New(tut, title, content)}
	}
}

func (d *DashboardScreen) Title() string {
	return d.crs.Title
}

// HeaderProgress implements screen.ProgressReporter.
func (d *DashboardScreen) HeaderProgress() string {
	return fmt.Sprintf("%d/%d lessons · %d%%",
		d.tracker.CompletedCount(), d.crs.TotalLessons(), d.tracker.ProgressPercent())
}

// BlocksEscape implements screen.EscapeBlocker. Esc leaves the whole course
// only from the content view; everywhere else it is handled internally.
func (d *DashboardScreen) BlocksEscape() bool {
	return d.tracker.ActiveView() != progress.ViewContent || d.showNameEntry
}
