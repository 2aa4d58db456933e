package topic

import (
	"context"
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/corelearn/internal/acquire"
	"github.com/abhisek/corelearn/internal/course"
	"github.com/abhisek/corelearn/internal/generator"
	"github.com/abhisek/corelearn/internal/router"
	"github.com/abhisek/corelearn/internal/screen"
	"github.com/abhisek/corelearn/internal/screens/dashboard"
	"github.com/abhisek/corelearn/internal/screens/loading"
	"github.com/abhisek/corelearn/internal/store"
	"github.com/abhisek/corelearn/internal/tutor"
	"github.com/abhisek/corelearn/internal/ui/components"
	"github.com/abhisek/corelearn/internal/ui/layout"
	"github.com/abhisek/corelearn/internal/ui/theme"
)

// savedCourseMsg delivers the most recent saved course, if any.
type savedCourseMsg struct {
	Saved *store.SavedCourse
}

// TopicScreen is the entry screen where the learner types a course topic.
type TopicScreen struct {
	input      components.TextInput
	errText    string
	saved      *store.SavedCourse
	generator  *generator.Service
	tutor      *tutor.Service
	eventRepo  store.EventRepo
	courseRepo store.CourseRepo
	courses    *acquire.Controller
}

var _ screen.Screen = (*TopicScreen)(nil)

// New creates the topic screen. Generator may be nil when no LLM provider is
// configured; only the built-in demo course is available then.
func New(gen *generator.Service, tut *tutor.Service, eventRepo store.EventRepo, courseRepo store.CourseRepo, courses *acquire.Controller) *TopicScreen {
	return &TopicScreen{
		input:      components.NewTextInput("e.g. Quantum Computing, Stoic Philosophy, Sourdough Baking", 120),
		generator:  gen,
		tutor:      tut,
		eventRepo:  eventRepo,
		courseRepo: courseRepo,
		courses:    courses,
	}
}

func (t *TopicScreen) Init() tea.Cmd {
	return tea.Batch(t.input.Init(), t.loadSavedCmd())
}

// loadSavedCmd fetches the most recent saved course for the resume hint.
func (t *TopicScreen) loadSavedCmd() tea.Cmd {
	repo := t.courseRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		saved, err := repo.Latest(context.Background())
		if err != nil {
			return savedCourseMsg{}
		}
		return savedCourseMsg{Saved: saved}
	}
}

func (t *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedCourseMsg:
		t.saved = msg.Saved
		return t, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return t, t.submit()
		case "ctrl+r":
			return t, t.resume()
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// submit validates the typed topic and starts the generation flow.
func (t *TopicScreen) submit() tea.Cmd {
	topic := strings.TrimSpace(t.input.Value())
	if topic == "" {
		t.errText = "Please enter a topic to get started."
		return nil
	}
	t.errText = ""

	demo := strings.EqualFold(topic, generator.DemoTopic)
	if t.generator == nil {
		if !demo {
			t.errText = "No LLM provider configured. Type \"demo\" to explore the built-in course."
			return nil
		}
		crs := course.Demo()
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: dashboard.New(crs, topic, t.tutor, t.eventRepo),
			}
		}
	}

	gen, tut, eventRepo, courseRepo, courses := t.generator, t.tutor, t.eventRepo, t.courseRepo, t.courses
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: loading.New(gen, tut, eventRepo, courseRepo, courses, topic),
		}
	}
}

// resume reopens the most recent saved course, if one exists and still
// passes validation.
func (t *TopicScreen) resume() tea.Cmd {
	if t.saved == nil {
		return nil
	}
	var crs course.Course
	if err := json.Unmarshal(t.saved.Data, &crs); err != nil {
		t.errText = "Saved course could not be read."
		return nil
	}
	if err := crs.Validate(); err != nil {
		t.errText = "Saved course could not be read."
		return nil
	}
	topic, tut, eventRepo := t.saved.Topic, t.tutor, t.eventRepo
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: dashboard.New(&crs, topic, tut, eventRepo),
		}
	}
}

func (t *TopicScreen) View(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 40 {
		cw = 40
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("What do you want to learn today?")

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("A full course will be generated for any topic you can think of.")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(cw).
		Render(t.input.View())

	button := components.NewButton("Generate Course", strings.TrimSpace(t.input.Value()) != "", nil)

	sections := []string{title, "", sub, "", inputBox, "", button.View()}

	if t.errText != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(t.errText))
	}

	if t.generator == nil {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Render(
				"No API key detected. Set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY"),
			lipgloss.NewStyle().Foreground(theme.Accent).Render(
				"or OPENROUTER_API_KEY to generate courses. \"demo\" works offline."))
	}

	if t.saved != nil {
		resumeLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Last course: ") +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(t.saved.Title)
		sections = append(sections, "", resumeLine)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (t *TopicScreen) Title() string {
	return "New Course"
}

// KeyHints implements screen.KeyHintProvider.
func (t *TopicScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
	}
	if t.saved != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Resume last course"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}
