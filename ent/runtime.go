// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/corelearn/ent/courseevent"
	"github.com/abhisek/corelearn/ent/coursesnapshot"
	"github.com/abhisek/corelearn/ent/examevent"
	"github.com/abhisek/corelearn/ent/llmrequestevent"
	"github.com/abhisek/corelearn/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	courseeventMixin := schema.CourseEvent{}.Mixin()
	courseeventMixinFields0 := courseeventMixin[0].Fields()
	_ = courseeventMixinFields0
	courseeventFields := schema.CourseEvent{}.Fields()
	_ = courseeventFields
	// courseeventDescTimestamp is the schema descriptor for timestamp field.
	courseeventDescTimestamp := courseeventMixinFields0[1].Descriptor()
	// courseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	courseevent.DefaultTimestamp = courseeventDescTimestamp.Default.(func() time.Time)
	// courseeventDescTopic is the schema descriptor for topic field.
	courseeventDescTopic := courseeventFields[0].Descriptor()
	// courseevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	courseevent.TopicValidator = courseeventDescTopic.Validators[0].(func(string) error)
	// courseeventDescTitle is the schema descriptor for title field.
	courseeventDescTitle := courseeventFields[1].Descriptor()
	// courseevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	courseevent.TitleValidator = courseeventDescTitle.Validators[0].(func(string) error)
	// courseeventDescDifficulty is the schema descriptor for difficulty field.
	courseeventDescDifficulty := courseeventFields[2].Descriptor()
	// courseevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	courseevent.DefaultDifficulty = courseeventDescDifficulty.Default.(string)
	// courseeventDescModel is the schema descriptor for model field.
	courseeventDescModel := courseeventFields[6].Descriptor()
	// courseevent.DefaultModel holds the default value on creation for the model field.
	courseevent.DefaultModel = courseeventDescModel.Default.(string)
	coursesnapshotFields := schema.CourseSnapshot{}.Fields()
	_ = coursesnapshotFields
	// coursesnapshotDescTopic is the schema descriptor for topic field.
	coursesnapshotDescTopic := coursesnapshotFields[0].Descriptor()
	// coursesnapshot.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	coursesnapshot.TopicValidator = coursesnapshotDescTopic.Validators[0].(func(string) error)
	// coursesnapshotDescTitle is the schema descriptor for title field.
	coursesnapshotDescTitle := coursesnapshotFields[1].Descriptor()
	// coursesnapshot.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	coursesnapshot.TitleValidator = coursesnapshotDescTitle.Validators[0].(func(string) error)
	// coursesnapshotDescTimestamp is the schema descriptor for timestamp field.
	coursesnapshotDescTimestamp := coursesnapshotFields[2].Descriptor()
	// coursesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	coursesnapshot.DefaultTimestamp = coursesnapshotDescTimestamp.Default.(func() time.Time)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescCourseTitle is the schema descriptor for course_title field.
	exameventDescCourseTitle := exameventFields[0].Descriptor()
	// examevent.CourseTitleValidator is a validator for the "course_title" field. It is called by the builders before save.
	examevent.CourseTitleValidator = exameventDescCourseTitle.Validators[0].(func(string) error)
	// exameventDescAttempt is the schema descriptor for attempt field.
	exameventDescAttempt := exameventFields[5].Descriptor()
	// examevent.DefaultAttempt holds the default value on creation for the attempt field.
	examevent.DefaultAttempt = exameventDescAttempt.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
