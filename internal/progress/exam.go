package progress

import "math"

// AnswerExam records an option selection for the exam question with the
// given ID. Rejected once the exam is submitted.
func (t *Tracker) AnswerExam(questionID, optionIdx int) {
	if t.exam.submitted {
		return
	}
	for _, q := range t.course.FinalExam.Questions {
		if q.ID == questionID {
			if optionIdx < 0 || optionIdx >= len(q.Options) {
				return
			}
			t.exam.answers[questionID] = optionIdx
			return
		}
	}
}

// ExamAnswer returns the recorded answer for a question ID, or -1.
func (t *Tracker) ExamAnswer(questionID int) int {
	if a, ok := t.exam.answers[questionID]; ok {
		return a
	}
	return -1
}

// ExamComplete reports whether every exam question has a recorded answer.
func (t *Tracker) ExamComplete() bool {
	for _, q := range t.course.FinalExam.Questions {
		if _, ok := t.exam.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// ExamSubmitted reports whether the current exam attempt has been graded.
func (t *Tracker) ExamSubmitted() bool { return t.exam.submitted }

// ExamScore returns the frozen correct count from the last submission.
func (t *Tracker) ExamScore() int { return t.exam.score }

// ExamPercent returns the frozen rounded percentage from the last submission.
func (t *Tracker) ExamPercent() int { return t.exam.percentage }

// ExamPassed reports whether the last submission met the pass threshold.
func (t *Tracker) ExamPassed() bool {
	return t.exam.submitted && t.exam.percentage >= PassPercent
}

// SubmitExam grades a fully-answered exam attempt: strict equality per
// question, percentage rounded (80 passes, 79 fails). The score is frozen
// until RetryExam. No-op on a partial answer set or a repeat submission.
func (t *Tracker) SubmitExam() {
	if t.exam.submitted || !t.ExamComplete() {
		return
	}
	correct := 0
	for _, q := range t.course.FinalExam.Questions {
		if t.exam.answers[q.ID] == q.CorrectAnswerIndex {
			correct++
		}
	}
	total := len(t.course.FinalExam.Questions)
	t.exam.score = correct
	t.exam.percentage = int(math.Round(float64(correct) / float64(total) * 100))
	t.exam.submitted = true
}

// RetryExam discards a graded attempt for a fresh one. Unlimited attempts.
// No-op unless an attempt has been submitted.
func (t *Tracker) RetryExam() {
	if !t.exam.submitted {
		return
	}
	t.exam = newExamState()
}
