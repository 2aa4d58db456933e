// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/corelearn/ent/courseevent"
)

// CourseEvent is the model entity for the CourseEvent schema.
type CourseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// ModuleCount holds the value of the "module_count" field.
	ModuleCount int `json:"module_count,omitempty"`
	// LessonCount holds the value of the "lesson_count" field.
	LessonCount int `json:"lesson_count,omitempty"`
	// ExamQuestionCount holds the value of the "exam_question_count" field.
	ExamQuestionCount int `json:"exam_question_count,omitempty"`
	// Model that generated the course; empty for built-in courses
	Model        string `json:"model,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courseevent.FieldID, courseevent.FieldSequence, courseevent.FieldModuleCount, courseevent.FieldLessonCount, courseevent.FieldExamQuestionCount:
			values[i] = new(sql.NullInt64)
		case courseevent.FieldTopic, courseevent.FieldTitle, courseevent.FieldDifficulty, courseevent.FieldModel:
			values[i] = new(sql.NullString)
		case courseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseEvent fields.
func (_m *CourseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case courseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case courseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case courseevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case courseevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case courseevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case courseevent.FieldModuleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field module_count", values[i])
			} else if value.Valid {
				_m.ModuleCount = int(value.Int64)
			}
		case courseevent.FieldLessonCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_count", values[i])
			} else if value.Valid {
				_m.LessonCount = int(value.Int64)
			}
		case courseevent.FieldExamQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exam_question_count", values[i])
			} else if value.Valid {
				_m.ExamQuestionCount = int(value.Int64)
			}
		case courseevent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CourseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CourseEvent.
// Note that you need to call CourseEvent.Unwrap() before calling this method if this CourseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseEvent) Update() *CourseEventUpdateOne {
	return NewCourseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseEvent) Unwrap() *CourseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CourseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("module_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModuleCount))
	builder.WriteString(", ")
	builder.WriteString("lesson_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonCount))
	builder.WriteString(", ")
	builder.WriteString("exam_question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamQuestionCount))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteByte(')')
	return builder.String()
}

// CourseEvents is a parsable slice of CourseEvent.
type CourseEvents []*CourseEvent
