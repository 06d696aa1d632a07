package schema

import (
	"errors"
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

// paymentStatuses are the stable strings stored in participants.payment_status.
var paymentStatuses = map[string]struct{}{
	"UNPAID":  {},
	"PARTIAL": {},
	"PAID":    {},
}

var errPaymentStatus = errors.New("invalid payment status")

type Participant struct{ ent.Schema }

func (Participant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "participants"},
	}
}

func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("first_name").NotEmpty(),
		field.String("last_name").Optional(),
		field.Float("paid_amount").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("payment_status").
			Default("UNPAID").
			Validate(func(s string) error {
				if _, ok := paymentStatuses[s]; !ok {
					return errPaymentStatus
				}
				return nil
			}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE participant -> MANY slips
		edge.To("slips", Slip.Type),
	}
}

func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("first_name"),
	}
}
