package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records a final exam submission.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_title").NotEmpty(),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("total").
			Comment("Total questions"),
		field.Int("percentage").
			Comment("Rounded score percentage"),
		field.Bool("passed"),
		field.Int("attempt").
			Default(1).
			Comment("1-based attempt number for this course"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_title"),
		index.Fields("passed"),
	}
}
