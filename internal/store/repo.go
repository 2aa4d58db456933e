package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage grouped by purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage grouped by model.
type LLMModelUsage struct {
	Provider     string
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// CourseEventData captures the data for a course generation event.
type CourseEventData struct {
	Topic             string
	Title             string
	Difficulty        string
	ModuleCount       int
	LessonCount       int
	ExamQuestionCount int
	Model             string
}

// CourseEventRecord is a stored course generation event.
type CourseEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	CourseEventData
}

// ExamEventData captures the data for a final exam submission event.
type ExamEventData struct {
	CourseTitle string
	Score       int
	Total       int
	Percentage  int
	Passed      bool
	Attempt     int
}

// ExamEventRecord is a stored exam submission event.
type ExamEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ExamEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendCourseEvent records a course generation.
	AppendCourseEvent(ctx context.Context, data CourseEventData) error

	// QueryCourseEvents returns course generation events, newest first.
	QueryCourseEvents(ctx context.Context, opts QueryOpts) ([]CourseEventRecord, error)

	// AppendExamEvent records a final exam submission.
	AppendExamEvent(ctx context.Context, data ExamEventData) error

	// QueryExamEvents returns exam submission events, newest first.
	QueryExamEvents(ctx context.Context, opts QueryOpts) ([]ExamEventRecord, error)
}

// SavedCourse is a stored generated course that can be resumed.
type SavedCourse struct {
	ID        int
	Topic     string
	Title     string
	Timestamp time.Time
	Data      json.RawMessage
}

// CourseRepo stores generated courses for later resumption.
type CourseRepo interface {
	// Save stores a generated course.
	Save(ctx context.Context, sc *SavedCourse) error

	// Latest returns the most recently saved course, or nil if none exist.
	Latest(ctx context.Context) (*SavedCourse, error)

	// Prune deletes all but the N most recent saved courses.
	Prune(ctx context.Context, keep int) error
}
