package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Slip struct{ ent.Schema }

func (Slip) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "slips"},
	}
}

func (Slip) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define composite indexes
		field.UUID("participant_id", uuid.UUID{}),
		field.String("storage_path").NotEmpty().Unique(),
		field.String("filename").NotEmpty(),
		field.String("mime_type").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Float("amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Slip) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY slips -> ONE participant
		edge.From("participant", Participant.Type).
			Ref("slips").
			Field("participant_id").
			Required().
			Unique(),
	}
}

func (Slip) Indexes() []ent.Index {
	return []ent.Index{
		// "current" slip = newest uploaded_at per participant
		index.Fields("participant_id", "uploaded_at"),
	}
}
