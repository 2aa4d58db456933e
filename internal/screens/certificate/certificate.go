package certificate

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/corelearn/internal/progress"
	"github.com/abhisek/corelearn/internal/screen"
	"github.com/abhisek/corelearn/internal/ui/layout"
	"github.com/abhisek/corelearn/internal/ui/theme"
)

// CertificateScreen renders the certificate of completion.
type CertificateScreen struct {
	cert *progress.Certificate
}

var _ screen.Screen = (*CertificateScreen)(nil)

// New creates a certificate screen for an issued certificate.
func New(cert *progress.Certificate) *CertificateScreen {
	return &CertificateScreen{cert: cert}
}

func (c *CertificateScreen) Init() tea.Cmd {
	return nil
}

func (c *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return c, nil
}

func (c *CertificateScreen) View(width, height int) string {
	cw := 66
	if cw > width-4 {
		cw = width - 4
	}

	center := lipgloss.NewStyle().Width(cw - 6).Align(lipgloss.Center)

	lines := []string{
		center.Foreground(theme.Accent).Bold(true).Render("★  CERTIFICATE OF COMPLETION  ★"),
		"",
		center.Foreground(theme.TextDim).Render("This certifies that"),
		"",
		center.Foreground(theme.Primary).Bold(true).Render(c.cert.LearnerName),
		"",
		center.Foreground(theme.TextDim).Render("has successfully completed"),
		"",
		center.Foreground(theme.Text).Bold(true).Render(c.cert.CertificateTitle),
		"",
		center.Foreground(theme.Success).Render(fmt.Sprintf("Final Exam Score: %d%%", c.cert.Percentage)),
		"",
		center.Foreground(theme.TextDim).Render(c.cert.CompletedAt.Format("January 2, 2006")),
		center.Foreground(theme.TextDim).Render("Certificate ID: " + c.cert.ID),
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 2).
		Width(cw).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (c *CertificateScreen) Title() string {
	return "Certificate"
}

// KeyHints implements screen.KeyHintProvider.
func (c *CertificateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to course"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
