package course

import "testing"

func validCourse() *Course {
	return &Course{
		Title: "Valid",
		Modules: []Module{{
			Title: "M",
			Lessons: []Lesson{{
				Title: "L",
				Quiz: []QuizQuestion{
					{Question: "q", Options: []string{"a", "b"}, CorrectAnswerIndex: 1},
				},
			}},
		}},
		FinalExam: FinalExam{Questions: []Question{
			{ID: 1, Text: "e", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 2},
		}},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validCourse().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Course)
	}{
		{"empty title", func(c *Course) { c.Title = "" }},
		{"no modules", func(c *Course) { c.Modules = nil }},
		{"module without lessons", func(c *Course) { c.Modules[0].Lessons = nil }},
		{"lesson without title", func(c *Course) { c.Modules[0].Lessons[0].Title = "" }},
		{"quiz with one option", func(c *Course) {
			c.Modules[0].Lessons[0].Quiz[0].Options = []string{"only"}
		}},
		{"quiz answer out of range", func(c *Course) {
			c.Modules[0].Lessons[0].Quiz[0].CorrectAnswerIndex = 5
		}},
		{"quiz answer negative", func(c *Course) {
			c.Modules[0].Lessons[0].Quiz[0].CorrectAnswerIndex = -1
		}},
		{"exam without questions", func(c *Course) { c.FinalExam.Questions = nil }},
		{"exam answer out of range", func(c *Course) {
			c.FinalExam.Questions[0].CorrectAnswerIndex = 3
		}},
		{"duplicate exam question id", func(c *Course) {
			c.FinalExam.Questions = append(c.FinalExam.Questions, Question{
				ID: 1, Text: "dup", Options: []string{"a", "b"}, CorrectAnswerIndex: 0,
			})
		}},
	}
	for _, tt := range tests {
		c := validCourse()
		tt.mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}

func TestValidate_EmptyQuizIsAllowed(t *testing.T) {
	c := validCourse()
	c.Modules[0].Lessons[0].Quiz = nil

	if err := c.Validate(); err != nil {
		t.Errorf("lessons without quizzes are legal: %v", err)
	}
}
