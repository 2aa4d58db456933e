package acquire

import (
	"errors"
	"testing"

	"github.com/abhisek/corelearn/internal/course"
)

func TestBegin_StartsLoading(t *testing.T) {
	c := New()

	s := c.Begin("quantum computing")

	if !c.Loading() {
		t.Error("expected Loading after Begin")
	}
	if c.Stale(s) {
		t.Error("fresh session must not be stale")
	}
	if c.Topic() != "quantum computing" {
		t.Errorf("Topic = %q", c.Topic())
	}
}

func TestApplyCourse_Success(t *testing.T) {
	c := New()
	s := c.Begin("go")
	crs := course.Demo()

	if !c.ApplyCourse(s, crs, nil) {
		t.Fatal("result should be accepted")
	}
	if c.Loading() {
		t.Error("loading should end once the course lands")
	}
	if c.Course() != crs {
		t.Error("course should be exposed")
	}
}

func TestApplyCourse_FailureIsFatal(t *testing.T) {
	c := New()
	s := c.Begin("go")

	c.ApplyCourse(s, nil, errors.New("provider down"))

	if c.Loading() {
		t.Error("loading should end on failure")
	}
	if c.Course() != nil {
		t.Error("no partial course may be exposed")
	}
	if c.Err() == nil {
		t.Error("fatal error should surface")
	}
}

func TestApplyTitle_BestEffort(t *testing.T) {
	c := New()
	s := c.Begin("go")

	c.ApplyTitle(s, "", errors.New("title gen hiccup"))
	if c.Title() != "" {
		t.Error("failed title must be ignored")
	}

	c.ApplyTitle(s, "Mastering Go", nil)
	if c.Title() != "Mastering Go" {
		t.Errorf("Title = %q", c.Title())
	}
}

func TestTitle_MayArriveAfterCourse(t *testing.T) {
	c := New()
	s := c.Begin("go")

	c.ApplyCourse(s, course.Demo(), nil)
	c.ApplyTitle(s, "Late Title", nil)

	if c.Title() != "Late Title" {
		t.Error("title arriving after the course should still be recorded")
	}
	if c.Course() == nil {
		t.Error("course must be unaffected")
	}
}

func TestReset_InvalidatesInFlightResults(t *testing.T) {
	c := New()
	s := c.Begin("go")
	c.Reset()

	if !c.Stale(s) {
		t.Fatal("old session must be stale after reset")
	}
	if c.ApplyCourse(s, course.Demo(), nil) {
		t.Error("stale course result must be rejected")
	}
	c.ApplyTitle(s, "stale", nil)
	if c.Course() != nil || c.Title() != "" || c.Err() != nil {
		t.Error("reset controller must stay idle after stale results land")
	}
}

func TestBegin_SupersedesPreviousSession(t *testing.T) {
	c := New()
	s1 := c.Begin("first")
	s2 := c.Begin("second")

	if c.ApplyCourse(s1, course.Demo(), nil) {
		t.Error("result for a superseded session must be rejected")
	}
	if !c.ApplyCourse(s2, course.Demo(), nil) {
		t.Error("result for the current session must be accepted")
	}
}

func TestStaleErrorResult_DoesNotSurface(t *testing.T) {
	c := New()
	s1 := c.Begin("first")
	c.Begin("second")

	c.ApplyCourse(s1, nil, errors.New("old failure"))

	if c.Err() != nil {
		t.Error("stale failure must not surface in the new session")
	}
	if !c.Loading() {
		t.Error("new session should still be loading")
	}
}
