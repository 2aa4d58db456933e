package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/corelearn/internal/progress"
	"github.com/abhisek/corelearn/internal/ui/components"
	"github.com/abhisek/corelearn/internal/ui/layout"
	"github.com/abhisek/corelearn/internal/ui/theme"
)

const sidebarWidth = 32

func (d *DashboardScreen) View(width, height int) string {
	if d.showNameEntry {
		return d.renderNameEntry(width, height)
	}

	mainWidth := width - sidebarWidth - 3
	if mainWidth < 20 {
		mainWidth = 20
	}

	sidebar := d.renderSidebar(sidebarWidth, height)

	var main string
	switch d.tracker.ActiveView() {
	case progress.ViewContent:
		main = d.renderContent(mainWidth, height)
	case progress.ViewLessonQuiz:
		main = d.renderQuiz(mainWidth, height)
	case progress.ViewFinalExam:
		main = d.renderExam(mainWidth, height)
	}

	divider := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("│\n", height))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, divider, main)
}

// renderSidebar draws the course outline with completion and lock markers.
func (d *DashboardScreen) renderSidebar(width, height int) string {
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	d.adjustSidebarScroll(visible)

	heading := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render(" OUTLINE")

	lines := []string{heading, ""}

	end := d.sidebarScroll + visible
	if end > len(d.rows) {
		end = len(d.rows)
	}
	for i := d.sidebarScroll; i < end; i++ {
		lines = append(lines, d.renderRow(i, width))
	}

	bar := components.NewProgressBar("", float64(d.tracker.ProgressPercent())/100, true, width-2).View()
	gap := height - len(lines) - 1
	if gap < 1 {
		gap = 1
	}
	body := strings.Join(lines, "\n") + strings.Repeat("\n", gap) + " " + bar

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(body)
}

// adjustSidebarScroll keeps the cursor row inside the visible window.
func (d *DashboardScreen) adjustSidebarScroll(visible int) {
	if d.cursor < d.sidebarScroll {
		d.sidebarScroll = d.cursor
	}
	if d.cursor >= d.sidebarScroll+visible {
		d.sidebarScroll = d.cursor - visible + 1
	}
	if d.sidebarScroll < 0 {
		d.sidebarScroll = 0
	}
}

func (d *DashboardScreen) renderRow(i, width int) string {
	row := d.rows[i]
	selected := i == d.cursor && d.focus == focusSidebar

	switch row.kind {
	case rowModule:
		label := fmt.Sprintf(" MODULE %d · %s", row.module+1, d.crs.Modules[row.module].Title)
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Bold(true).
			Render(truncate(label, width))

	case rowLesson:
		marker := "○"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case d.tracker.Completed(row.module, row.lesson):
			marker = "✓"
			style = theme.Done
		case d.tracker.Locked(row.module, row.lesson):
			marker = "·"
			style = theme.LockedItem
		}
		prefix := "   "
		if selected {
			prefix = " ▸ "
			style = style.Bold(true)
		} else if am, al := d.tracker.Active(); am == row.module && al == row.lesson &&
			d.tracker.ActiveView() != progress.ViewFinalExam {
			prefix = " » "
		}
		label := d.crs.Modules[row.module].Lessons[row.lesson].Title
		return style.Render(truncate(prefix+marker+" "+label, width))

	default: // rowExam
		style := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		marker := "★"
		if d.tracker.ExamLocked() {
			style = theme.LockedItem
			marker = "·"
		}
		prefix := "   "
		if selected {
			prefix = " ▸ "
		} else if d.tracker.ActiveView() == progress.ViewFinalExam {
			prefix = " » "
		}
		return style.Render(truncate(prefix+marker+" FINAL EXAM", width))
	}
}

// renderContent draws the active lesson's reading view with a scroll window.
func (d *DashboardScreen) renderContent(width, height int) string {
	lesson := d.tracker.ActiveLesson()
	if lesson == nil {
		return ""
	}

	bodyWidth := width - 2
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(lesson.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(lesson.Duration))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth).Render(lesson.Content))

	if len(lesson.KeyTakeaways) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Key Takeaways"))
		for _, kt := range lesson.KeyTakeaways {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth).Render("  • " + kt))
		}
	}

	if lesson.Assignment != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Assignment"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth).Render(lesson.Assignment))
	}

	if len(lesson.Resources) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Resources"))
		for _, r := range lesson.Resources {
			line := fmt.Sprintf("  • %s (%s) %s", r.Title, r.Type, r.URL)
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(bodyWidth).Render(line))
		}
	}

	if len(lesson.Quiz) > 0 && !d.tracker.QuizPassed() {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("This lesson has a %d-question quiz. Press s to start it.", len(lesson.Quiz))))
	}

	return d.scrollWindow(b.String(), width, height)
}

// scrollWindow clamps the scroll offset and returns the visible slice of
// rendered lines, with the notice pinned to the bottom when present.
func (d *DashboardScreen) scrollWindow(rendered string, width, height int) string {
	reserved := 0
	if d.notice != "" {
		reserved = 2
	}
	visible := height - reserved
	if visible < 1 {
		visible = 1
	}

	lines := strings.Split(rendered, "\n")
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if d.contentScroll > maxScroll {
		d.contentScroll = maxScroll
	}

	end := d.contentScroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	out := strings.Join(lines[d.contentScroll:end], "\n")

	if d.notice != "" {
		gap := visible - (end - d.contentScroll)
		if gap < 0 {
			gap = 0
		}
		out += strings.Repeat("\n", gap+1)
		out += lipgloss.NewStyle().Foreground(theme.Accent).Render(" " + d.notice)
	}
	return lipgloss.NewStyle().Width(width).Render(out)
}

// renderQuiz draws the lesson quiz, one question at a time.
func (d *DashboardScreen) renderQuiz(width, height int) string {
	lesson := d.tracker.ActiveLesson()
	if lesson == nil || len(d.quiz) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Lesson Quiz · " + lesson.Title))
	b.WriteString("\n")
	b.WriteString(d.renderQuestionMeter(d.quizIdx, d.quiz))
	b.WriteString("\n\n")
	b.WriteString(d.quiz[d.quizIdx].View())

	if d.quiz[d.quizIdx].Revealed {
		if expl := lesson.Quiz[d.quizIdx].Explanation; expl != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(width-2).Render("ℹ " + expl))
		}
	}

	if d.tracker.QuizSubmitted() || d.tracker.QuizPassed() {
		b.WriteString("\n")
		if d.tracker.QuizPassed() {
			b.WriteString(theme.Correct.Render("Quiz passed! Press n to continue."))
		} else {
			b.WriteString(theme.Incorrect.Render("Some answers were incorrect. Press r to retry."))
		}
	} else if d.tracker.QuizComplete() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("All questions answered. Press s to submit."))
	}

	return d.scrollWindow(b.String(), width, height)
}

// renderExam draws the final exam, one question at a time, with the result
// panel once graded.
func (d *DashboardScreen) renderExam(width, height int) string {
	if len(d.exam) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(d.crs.FinalExam.Title))
	b.WriteString("\n")
	b.WriteString(d.renderQuestionMeter(d.examIdx, d.exam))
	b.WriteString("\n\n")
	b.WriteString(d.exam[d.examIdx].View())

	if d.tracker.ExamSubmitted() {
		b.WriteString("\n")
		score := fmt.Sprintf("Score: %d/%d · %d%%",
			d.tracker.ExamScore(), len(d.crs.FinalExam.Questions), d.tracker.ExamPercent())
		if d.tracker.ExamPassed() {
			b.WriteString(theme.Correct.Render(score + " · Passed!"))
			if d.tracker.Certificate() == nil {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Press c to claim your certificate."))
			}
		} else {
			b.WriteString(theme.Incorrect.Render(
				fmt.Sprintf("%s · %d%% needed to pass. Press r to retry.", score, progress.PassPercent)))
		}
	} else if d.tracker.ExamComplete() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("All questions answered. Press s to submit."))
	}

	return d.scrollWindow(b.String(), width, height)
}

// renderQuestionMeter shows position and answered state across questions.
func (d *DashboardScreen) renderQuestionMeter(idx int, qs []components.MultiChoice) string {
	dots := make([]string, len(qs))
	for i, q := range qs {
		dot := "○"
		if q.Answered() {
			dot = "●"
		}
		if i == idx {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(dot)
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(dot)
		}
	}
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d  ", idx+1, len(qs)))
	return counter + strings.Join(dots, " ")
}

// renderNameEntry draws the certificate name prompt.
func (d *DashboardScreen) renderNameEntry(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render("Congratulations, you passed!")
	prompt := lipgloss.NewStyle().Foreground(theme.Text).
		Render("Whose name goes on the certificate?")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(50).
		Render(d.nameInput.View())

	sections := []string{heading, "", prompt, "", inputBox}
	if d.notice != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(d.notice))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

// KeyHints implements screen.KeyHintProvider with per-view hints.
func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.showNameEntry {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Issue certificate"},
			{Key: "Esc", Description: "Cancel"},
		}
	}

	switch d.tracker.ActiveView() {
	case progress.ViewLessonQuiz:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "←→", Description: "Question"},
			{Key: "Enter", Description: "Choose"},
		}
		switch {
		case d.tracker.QuizPassed():
			hints = append(hints, layout.KeyHint{Key: "N", Description: "Continue"})
		case d.tracker.QuizSubmitted():
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
		default:
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back to lesson"})

	case progress.ViewFinalExam:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "←→", Description: "Question"},
			{Key: "Enter", Description: "Choose"},
		}
		switch {
		case d.tracker.ExamPassed():
			hints = append(hints, layout.KeyHint{Key: "C", Description: "Certificate"})
		case d.tracker.ExamSubmitted():
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
		default:
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Leave exam"})

	default:
		hints := []layout.KeyHint{
			{Key: "Tab", Description: "Outline"},
			{Key: "↑↓", Description: "Scroll"},
		}
		lesson := d.tracker.ActiveLesson()
		if lesson != nil && len(lesson.Quiz) > 0 && !d.tracker.QuizPassed() {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Start quiz"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "N", Description: "Continue"})
		}
		if d.tutor != nil {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Ask tutor"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Leave course"})
	}
}

// truncate cuts a line to fit the sidebar, rune-safe.
func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
