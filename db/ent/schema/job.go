package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/rightsledger/rights-parser/constants"
	"github.com/rightsledger/rights-parser/db/ent/schema/utils"
)

// Job is one uploaded agreement's processing record. Status walks forward
// only: pending -> processing -> completed|failed, with retryable failures
// cycling back to pending until retry_count reaches the configured bound.
type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so the repository can filter by owner
		field.UUID("api_key_id", uuid.UUID{}),
		field.String("user_id").Optional().Nillable(),
		field.String("file_name").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Int64("file_size").NonNegative(),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.AllJobStatuses...)),
		field.String("ipfs_cid").Optional().Nillable(),
		field.String("encryption_key").Optional().Nillable(),
		field.JSON("parsed_json", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("retry_count").Default(0).NonNegative(),
		field.String("worker_id").Optional().Nillable(),
		field.String("model_used").Optional().Nillable(),
		field.String("webhook_url").Optional().Nillable(),
		field.Bool("webhook_sent").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int64("processing_time_ms").Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("api_key", ApiKey.Type).
			Ref("jobs").
			Field("api_key_id").
			Unique().
			Required(),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("api_key_id", "created_at"),
	}
}
