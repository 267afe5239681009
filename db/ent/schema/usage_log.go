package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UsageLog is an append-only per-request audit record. A row is inserted in
// the same transaction as the rate-limit check (status_code 0 while the
// request is in flight) and finalized once the response status is known.
type UsageLog struct{ ent.Schema }

func (UsageLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "usage_logs"},
	}
}

func (UsageLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("api_key_id", uuid.UUID{}).Optional().Nillable(),
		field.String("endpoint").NotEmpty(),
		field.String("method").NotEmpty(),
		field.Int("status_code").Default(0),
		field.Int64("latency_ms").Default(0),
		field.Int64("file_size").Default(0),
		field.String("client_ip").Optional(),
		field.String("user_agent").Optional(),
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (UsageLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("api_key", ApiKey.Type).
			Ref("usage_logs").
			Field("api_key_id").
			Unique(),
	}
}

func (UsageLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("api_key_id", "created_at"),
		index.Fields("created_at"),
	}
}
