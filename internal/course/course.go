package course

import "fmt"

// Difficulty is the overall difficulty rating of a generated course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ResourceType classifies an external lesson resource.
type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceBook    ResourceType = "book"
	ResourceTool    ResourceType = "tool"
)

// Course is a complete generated curriculum. Immutable once generated —
// the progression tracker never mutates it.
type Course struct {
	Title                  string     `json:"title"`
	CertificateTitle       string     `json:"certificateTitle"`
	Description            string     `json:"description"`
	TargetAudience         string     `json:"targetAudience"`
	Difficulty             Difficulty `json:"difficulty"`
	EstimatedTotalDuration string     `json:"estimatedTotalDuration"`
	Modules                []Module   `json:"modules"`
	FinalExam              FinalExam  `json:"finalExam"`
}

// Module groups an ordered sequence of lessons under one theme.
type Module struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

// Lesson is a single unit of content with an optional gating quiz.
type Lesson struct {
	Title        string         `json:"title"`
	Duration     string         `json:"duration"`
	Content      string         `json:"content"`
	KeyTakeaways []string       `json:"keyTakeaways"`
	Assignment   string         `json:"assignment"`
	Resources    []Resource     `json:"resources"`
	Quiz         []QuizQuestion `json:"quiz"`
}

// Resource points at external reading/viewing material for a lesson.
type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// QuizQuestion is one multiple-choice question in a lesson quiz.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// FinalExam is the course-level assessment unlocked after the last lesson.
type FinalExam struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is one multiple-choice question in the final exam, keyed by ID.
type Question struct {
	ID                 int      `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// LessonRef builds the stable "{module}-{lesson}" key used for completed-set
// membership.
func LessonRef(moduleIdx, lessonIdx int) string {
	return fmt.Sprintf("%d-%d", moduleIdx, lessonIdx)
}

// TotalLessons returns the count of lessons across all modules.
func (c *Course) TotalLessons() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

// LastPosition returns the (module, lesson) indices of the final lesson.
func (c *Course) LastPosition() (int, int) {
	m := len(c.Modules) - 1
	return m, len(c.Modules[m].Lessons) - 1
}

// Lesson returns the lesson at (m, l), or nil if out of range.
func (c *Course) Lesson(m, l int) *Lesson {
	if m < 0 || m >= len(c.Modules) {
		return nil
	}
	mod := &c.Modules[m]
	if l < 0 || l >= len(mod.Lessons) {
		return nil
	}
	return &mod.Lessons[l]
}
