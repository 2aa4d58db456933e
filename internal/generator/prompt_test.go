package generator

import (
	"strings"
	"testing"
)

func TestBuildTitleUserMessage(t *testing.T) {
	msg := buildTitleUserMessage("quantum computing")

	if !strings.Contains(msg, `"quantum computing"`) {
		t.Error("expected topic in title prompt")
	}
	if !strings.Contains(msg, "Return ONLY the title text") {
		t.Error("expected output instruction in title prompt")
	}
}

func TestBuildCourseUserMessageWithTitle(t *testing.T) {
	msg := buildCourseUserMessage("quantum computing", "Quantum Computing: Theory and Practice")

	if !strings.Contains(msg, `"Quantum Computing: Theory and Practice"`) {
		t.Error("expected title in course prompt")
	}
	if !strings.Contains(msg, "Use the provided Title exactly") {
		t.Error("expected verbatim-title instruction")
	}
	if !strings.Contains(msg, "3 challenging questions per lesson") {
		t.Error("expected quiz sizing instruction")
	}
	if !strings.Contains(msg, "15 comprehensive questions") {
		t.Error("expected exam sizing instruction")
	}
}

func TestBuildCourseUserMessageWithoutTitle(t *testing.T) {
	msg := buildCourseUserMessage("quantum computing", "")

	if !strings.Contains(msg, `"quantum computing"`) {
		t.Error("expected topic in course prompt")
	}
	if strings.Contains(msg, "Use the provided Title exactly") {
		t.Error("should not ask for verbatim title without one")
	}
	if !strings.Contains(msg, "Create a Professional, Academic Course Title") {
		t.Error("expected title-creation instruction")
	}
}
