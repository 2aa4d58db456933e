package loading

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/corelearn/internal/acquire"
	"github.com/abhisek/corelearn/internal/course"
	"github.com/abhisek/corelearn/internal/generator"
	"github.com/abhisek/corelearn/internal/router"
	"github.com/abhisek/corelearn/internal/screen"
	"github.com/abhisek/corelearn/internal/screens/dashboard"
	"github.com/abhisek/corelearn/internal/store"
	"github.com/abhisek/corelearn/internal/tutor"
	"github.com/abhisek/corelearn/internal/ui/layout"
	"github.com/abhisek/corelearn/internal/ui/theme"
)

// spinnerTickMsg drives the spinner animation.
type spinnerTickMsg struct{}

// titleReadyMsg carries the early display title. Best-effort only.
type titleReadyMsg struct {
	Session acquire.Session
	Title   string
}

// courseReadyMsg carries the full generated course or the fatal error.
type courseReadyMsg struct {
	Session acquire.Session
	Course  *course.Course
	Err     error
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var statusLines = []string{
	"Outlining the modules...",
	"Writing the lessons...",
	"Preparing quiz questions...",
	"Assembling the final exam...",
	"Polishing the details...",
}

// LoadingScreen shows generation progress while the title and course
// requests are in flight. The title request resolves first and is revealed
// early; the course request decides success or failure.
type LoadingScreen struct {
	generator  *generator.Service
	tutor      *tutor.Service
	eventRepo  store.EventRepo
	courseRepo store.CourseRepo
	courses    *acquire.Controller

	session acquire.Session
	topic   string
	frame   int
	ticks   int
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates the loading screen and begins a new acquisition session.
func New(gen *generator.Service, tut *tutor.Service, eventRepo store.EventRepo, courseRepo store.CourseRepo, courses *acquire.Controller, topic string) *LoadingScreen {
	return &LoadingScreen{
		generator:  gen,
		tutor:      tut,
		eventRepo:  eventRepo,
		courseRepo: courseRepo,
		courses:    courses,
		session:    courses.Begin(topic),
		topic:      topic,
	}
}

func (l *LoadingScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{spinnerTick(), l.requestCourse()}
	// The demo course resolves locally; no point asking for a title.
	if !strings.EqualFold(l.topic, generator.DemoTopic) {
		cmds = append(cmds, l.requestTitle())
	}
	return tea.Batch(cmds...)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// requestTitle fires the lightweight title request. It races the course
// request; whichever lands first wins its slot.
func (l *LoadingScreen) requestTitle() tea.Cmd {
	gen, session, topic := l.generator, l.session, l.topic
	return func() tea.Msg {
		title := gen.GenerateTitle(context.Background(), topic)
		return titleReadyMsg{Session: session, Title: title}
	}
}

// requestCourse fires the full course request. It does not wait for the
// title; the model creates its own when none is supplied.
func (l *LoadingScreen) requestCourse() tea.Cmd {
	gen, session, topic := l.generator, l.session, l.topic
	return func() tea.Msg {
		crs, err := gen.GenerateCourse(context.Background(), topic, "")
		return courseReadyMsg{Session: session, Course: crs, Err: err}
	}
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !l.courses.Loading() {
			return l, nil
		}
		l.frame = (l.frame + 1) % len(spinnerFrames)
		l.ticks++
		return l, spinnerTick()

	case titleReadyMsg:
		l.courses.ApplyTitle(msg.Session, msg.Title, nil)
		return l, nil

	case courseReadyMsg:
		if !l.courses.ApplyCourse(msg.Session, msg.Course, msg.Err) {
			return l, nil
		}
		if msg.Err != nil {
			return l, nil
		}
		return l, l.finish(msg.Course)
	}
	return l, nil
}

// finish persists the generated course and swaps this screen for the
// dashboard. Persistence is best-effort; a write failure never blocks the
// learner from starting the course.
func (l *LoadingScreen) finish(crs *course.Course) tea.Cmd {
	eventRepo, courseRepo := l.eventRepo, l.courseRepo
	tut, topic := l.tutor, l.topic
	model := l.generator.ModelID()
	return func() tea.Msg {
		ctx := context.Background()
		if eventRepo != nil {
			_ = eventRepo.AppendCourseEvent(ctx, store.CourseEventData{
				Topic:             topic,
				Title:             crs.Title,
				Difficulty:        string(crs.Difficulty),
				ModuleCount:       len(crs.Modules),
				LessonCount:       crs.TotalLessons(),
				ExamQuestionCount: len(crs.FinalExam.Questions),
				Model:             model,
			})
		}
		if courseRepo != nil {
			if data, err := json.Marshal(crs); err == nil {
				_ = courseRepo.Save(ctx, &store.SavedCourse{
					Topic: topic,
					Title: crs.Title,
					Data:  data,
				})
				_ = courseRepo.Prune(ctx, 10)
			}
		}
		return router.ReplaceScreenMsg{
			Screen: dashboard.New(crs, topic, tut, eventRepo),
		}
	}
}

func (l *LoadingScreen) View(width, height int) string {
	if err := l.courses.Err(); err != nil {
		return l.errorView(err, width, height)
	}

	spinner := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(spinnerFrames[l.frame])

	heading := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Crafting your course")

	var titleLine string
	if title := l.courses.Title(); title != "" {
		titleLine = lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("“" + title + "”")
	} else {
		titleLine = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Topic: " + l.topic)
	}

	// Rotate the status line every two seconds.
	status := statusLines[(l.ticks/20)%len(statusLines)]
	statusLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(status)

	content := strings.Join([]string{
		spinner + "  " + heading,
		"",
		titleLine,
		"",
		statusLine,
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (l *LoadingScreen) errorView(err error, width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Course generation failed")

	detail := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(60).
		Render(err.Error())

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press Esc to go back and try another topic.")

	content := strings.Join([]string{heading, "", detail, "", hint}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (l *LoadingScreen) Title() string {
	return "Generating"
}

// KeyHints implements screen.KeyHintProvider.
func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	if l.courses.Err() != nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
