package course

import "testing"

func TestLessonRef(t *testing.T) {
	if got := LessonRef(0, 0); got != "0-0" {
		t.Errorf("LessonRef(0,0) = %q, want %q", got, "0-0")
	}
	if got := LessonRef(3, 12); got != "3-12" {
		t.Errorf("LessonRef(3,12) = %q, want %q", got, "3-12")
	}
}

func TestTotalLessonsAndLastPosition(t *testing.T) {
	c := &Course{Modules: []Module{
		{Lessons: []Lesson{{Title: "a"}, {Title: "b"}}},
		{Lessons: []Lesson{{Title: "c"}, {Title: "d"}, {Title: "e"}}},
	}}

	if c.TotalLessons() != 5 {
		t.Errorf("TotalLessons = %d, want 5", c.TotalLessons())
	}
	m, l := c.LastPosition()
	if m != 1 || l != 2 {
		t.Errorf("LastPosition = (%d,%d), want (1,2)", m, l)
	}
}

func TestLesson_OutOfRange(t *testing.T) {
	c := &Course{Modules: []Module{{Lessons: []Lesson{{Title: "a"}}}}}

	if c.Lesson(0, 0) == nil {
		t.Error("Lesson(0,0) should exist")
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if c.Lesson(pos[0], pos[1]) != nil {
			t.Errorf("Lesson(%d,%d) should be nil", pos[0], pos[1])
		}
	}
}

func TestDemo_IsValid(t *testing.T) {
	if err := Demo().Validate(); err != nil {
		t.Fatalf("demo course failed validation: %v", err)
	}
}
