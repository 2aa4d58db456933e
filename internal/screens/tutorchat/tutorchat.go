package tutorchat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/corelearn/internal/screen"
	"github.com/abhisek/corelearn/internal/tutor"
	"github.com/abhisek/corelearn/internal/ui/components"
	"github.com/abhisek/corelearn/internal/ui/layout"
	"github.com/abhisek/corelearn/internal/ui/theme"
)

// spinnerTickMsg drives the thinking indicator.
type spinnerTickMsg struct{}

// answerMsg delivers the tutor's reply. Seq guards against replies from an
// abandoned question landing in the transcript.
type answerMsg struct {
	Seq  int
	Text string
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TutorChatScreen is a lesson-scoped chat with the AI tutor.
type TutorChatScreen struct {
	tutor         *tutor.Service
	lessonTitle   string
	lessonContent string

	history []tutor.Message
	input   components.TextInput
	waiting bool
	seq     int
	frame   int
	scroll  int
}

var _ screen.Screen = (*TutorChatScreen)(nil)

// New creates a tutor chat for the given lesson.
func New(tut *tutor.Service, lessonTitle, lessonContent string) *TutorChatScreen {
	return &TutorChatScreen{
		tutor:         tut,
		lessonTitle:   lessonTitle,
		lessonContent: lessonContent,
		input:         components.NewTextInput("Ask anything about this lesson...", 500),
	}
}

func (t *TutorChatScreen) Init() tea.Cmd {
	return t.input.Init()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (t *TutorChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !t.waiting {
			return t, nil
		}
		t.frame = (t.frame + 1) % len(spinnerFrames)
		return t, spinnerTick()

	case answerMsg:
		if msg.Seq != t.seq || !t.waiting {
			return t, nil
		}
		t.waiting = false
		t.history = append(t.history, tutor.Message{Role: "assistant", Text: msg.Text})
		t.scroll = 1 << 20 // clamp to bottom on next render
		return t, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return t, t.ask()
		case "pgup", "ctrl+u":
			t.scroll -= 5
			if t.scroll < 0 {
				t.scroll = 0
			}
			return t, nil
		case "pgdown", "ctrl+d":
			t.scroll += 5
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// ask submits the typed question. One question is in flight at a time.
func (t *TutorChatScreen) ask() tea.Cmd {
	if t.waiting {
		return nil
	}
	question := strings.TrimSpace(t.input.Value())
	if question == "" {
		return nil
	}

	prior := make([]tutor.Message, len(t.history))
	copy(prior, t.history)

	t.history = append(t.history, tutor.Message{Role: "user", Text: question})
	t.input.Reset()
	t.waiting = true
	t.seq++
	t.scroll = 1 << 20

	tut, title, content, seq := t.tutor, t.lessonTitle, t.lessonContent, t.seq
	askCmd := func() tea.Msg {
		answer := tut.Ask(context.Background(), title, content, question, prior)
		return answerMsg{Seq: seq, Text: answer}
	}
	return tea.Batch(askCmd, spinnerTick())
}

func (t *TutorChatScreen) View(width, height int) string {
	bodyWidth := width - 4
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("Tutor · " + t.lessonTitle))
	b.WriteString("\n")

	for _, m := range t.history {
		b.WriteString("\n")
		if m.Role == "user" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("You"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Tutor"))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth).Render(m.Text))
		b.WriteString("\n")
	}

	if t.waiting {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(spinnerFrames[t.frame] + " Thinking..."))
		b.WriteString("\n")
	}

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 4).
		Render(t.input.View())
	inputHeight := lipgloss.Height(inputBox) + 1

	transcriptHeight := height - inputHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	lines := strings.Split(b.String(), "\n")
	maxScroll := len(lines) - transcriptHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if t.scroll > maxScroll {
		t.scroll = maxScroll
	}
	end := t.scroll + transcriptHeight
	if end > len(lines) {
		end = len(lines)
	}
	transcript := strings.Join(lines[t.scroll:end], "\n")

	gap := transcriptHeight - (end - t.scroll)
	if gap < 0 {
		gap = 0
	}

	return lipgloss.NewStyle().Width(width).Render(
		transcript + strings.Repeat("\n", gap+1) + "  " + inputBox)
}

func (t *TutorChatScreen) Title() string {
	return "Ask the Tutor"
}

// KeyHints implements screen.KeyHintProvider.
func (t *TutorChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back to lesson"},
	}
}
