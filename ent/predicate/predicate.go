// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CourseEvent is the predicate function for courseevent builders.
type CourseEvent func(*sql.Selector)

// CourseSnapshot is the predicate function for coursesnapshot builders.
type CourseSnapshot func(*sql.Selector)

// ExamEvent is the predicate function for examevent builders.
type ExamEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)
