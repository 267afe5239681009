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

// ApiKey is a tenant credential. Only the SHA-256 hash of the secret is
// stored; key_prefix is the short non-secret part shown in listings.
type ApiKey struct{ ent.Schema }

func (ApiKey) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "api_keys"},
	}
}

func (ApiKey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("key_hash").NotEmpty().Unique(),
		field.String("key_prefix").NotEmpty(),
		field.String("owner_name").NotEmpty(),
		field.Bool("is_active").Default(true),
		field.Time("expires_at").Optional().Nillable(),
		// requests allowed per rolling hour
		field.Int("rate_limit").Default(100).Positive(),
		field.Int64("request_count").Default(0).NonNegative(),
		field.Time("last_used_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ApiKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", Job.Type),
		edge.To("usage_logs", UsageLog.Type),
	}
}

func (ApiKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key_hash"),
	}
}
