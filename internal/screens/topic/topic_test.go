package topic

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/corelearn/internal/acquire"
	"github.com/abhisek/corelearn/internal/course"
	"github.com/abhisek/corelearn/internal/router"
	"github.com/abhisek/corelearn/internal/screens/dashboard"
	"github.com/abhisek/corelearn/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// send runs one Update and executes any returned command.
func send(s *TopicScreen, msg tea.Msg) tea.Msg {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func typeText(s *TopicScreen, text string) {
	for _, r := range text {
		send(s, keyPress(r))
	}
}

func TestEmptyTopicRejected(t *testing.T) {
	s := New(nil, nil, nil, nil, acquire.New())

	send(s, specialKey(tea.KeyEnter))

	if s.errText == "" {
		t.Error("expected an error for an empty topic")
	}
}

func TestNoProviderRequiresDemo(t *testing.T) {
	s := New(nil, nil, nil, nil, acquire.New())

	typeText(s, "quantum computing")
	send(s, specialKey(tea.KeyEnter))

	if s.errText == "" {
		t.Error("expected an error without a configured provider")
	}
}

func TestDemoWorksWithoutProvider(t *testing.T) {
	s := New(nil, nil, nil, nil, acquire.New())

	typeText(s, "demo")
	msg := send(s, specialKey(tea.KeyEnter))

	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*dashboard.DashboardScreen); !ok {
		t.Fatalf("expected dashboard screen, got %T", push.Screen)
	}
}

func TestResumeOpensSavedCourse(t *testing.T) {
	s := New(nil, nil, nil, nil, acquire.New())

	data, err := json.Marshal(course.Demo())
	if err != nil {
		t.Fatal(err)
	}
	s.Update(savedCourseMsg{Saved: &store.SavedCourse{
		Topic: "demo",
		Title: "Demo Course",
		Data:  data,
	}})

	msg := send(s, tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})

	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*dashboard.DashboardScreen); !ok {
		t.Fatalf("expected dashboard screen, got %T", push.Screen)
	}
}

func TestResumeRejectsCorruptData(t *testing.T) {
	s := New(nil, nil, nil, nil, acquire.New())

	s.Update(savedCourseMsg{Saved: &store.SavedCourse{
		Topic: "x",
		Title: "Broken",
		Data:  json.RawMessage(`{"title":""}`),
	}})

	msg := send(s, tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})

	if msg != nil {
		t.Fatalf("expected no navigation, got %T", msg)
	}
	if s.errText == "" {
		t.Error("expected an error for an unreadable saved course")
	}
}
