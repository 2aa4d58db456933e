package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseSnapshot stores a generated course so it can be resumed later
// without another generation request.
type CourseSnapshot struct {
	ent.Schema
}

func (CourseSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").NotEmpty(),
		field.String("title").NotEmpty(),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the course was generated"),
		field.JSON("data", map[string]any{}).
			Comment("Full course content as JSON"),
	}
}

func (CourseSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
