package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session document lifecycle events (load/save/delete).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("User-supplied session identifier"),
		field.String("action").
			NotEmpty().
			Comment("load, save, or delete"),
		field.Int("courses").
			Default(0).
			Comment("Course count in the document at event time"),
		field.Bool("success").
			Default(true).
			Comment("Whether the store operation succeeded"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
