package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/corelearn/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	topic := &stubScreen{title: "topic"}
	r := New(topic)

	loading := &stubScreen{title: "loading"}
	r.Push(loading)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "loading" {
		t.Errorf("expected active 'loading', got %q", r.Active().Title())
	}
	if !loading.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	topic := &stubScreen{title: "topic"}
	r := New(topic)

	r.Push(&stubScreen{title: "loading"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "topic" {
		t.Errorf("expected active 'topic', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "topic"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "topic"})
	r.Push(&stubScreen{title: "loading"})

	dash := &stubScreen{title: "dashboard"}
	r.Replace(dash)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
	if !dash.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "topic"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "loading"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after PushScreenMsg, got %d", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "dashboard"}})
	if r.Depth() != 2 || r.Active().Title() != "dashboard" {
		t.Errorf("expected dashboard at depth 2, got %q at %d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "topic" {
		t.Errorf("expected topic at depth 1, got %q at %d", r.Active().Title(), r.Depth())
	}
}
