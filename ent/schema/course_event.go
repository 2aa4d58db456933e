package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseEvent records that a course was generated for a topic.
type CourseEvent struct {
	ent.Schema
}

func (CourseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CourseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("difficulty").Default(""),
		field.Int("module_count"),
		field.Int("lesson_count"),
		field.Int("exam_question_count"),
		field.String("model").
			Default("").
			Comment("Model that generated the course; empty for built-in courses"),
	}
}

func (CourseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
