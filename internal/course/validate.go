package course

import "fmt"

// Validate checks structural completeness of a generated course. The
// progression tracker assumes these invariants hold, so any violation must be
// rejected at the provider boundary before a tracker is ever constructed.
func (c *Course) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("course title is empty")
	}
	if len(c.Modules) == 0 {
		return fmt.Errorf("course has no modules")
	}
	for mi, mod := range c.Modules {
		if len(mod.Lessons) == 0 {
			return fmt.Errorf("module %d (%q) has no lessons", mi, mod.Title)
		}
		for li, lesson := range mod.Lessons {
			if lesson.Title == "" {
				return fmt.Errorf("lesson %s has no title", LessonRef(mi, li))
			}
			for qi, q := range lesson.Quiz {
				if err := checkChoice(q.Options, q.CorrectAnswerIndex); err != nil {
					return fmt.Errorf("lesson %s quiz question %d: %w", LessonRef(mi, li), qi, err)
				}
			}
		}
	}
	if len(c.FinalExam.Questions) == 0 {
		return fmt.Errorf("final exam has no questions")
	}
	seen := make(map[int]bool, len(c.FinalExam.Questions))
	for qi, q := range c.FinalExam.Questions {
		if err := checkChoice(q.Options, q.CorrectAnswerIndex); err != nil {
			return fmt.Errorf("final exam question %d: %w", qi, err)
		}
		if seen[q.ID] {
			return fmt.Errorf("final exam question %d: duplicate id %d", qi, q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}

func checkChoice(options []string, correct int) error {
	if len(options) < 2 {
		return fmt.Errorf("needs at least 2 options, got %d", len(options))
	}
	if correct < 0 || correct >= len(options) {
		return fmt.Errorf("correct answer index %d out of range [0,%d)", correct, len(options))
	}
	return nil
}
