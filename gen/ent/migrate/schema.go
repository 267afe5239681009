// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "key_prefix", Type: field.TypeString},
		{Name: "owner_name", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "rate_limit", Type: field.TypeInt, Default: 100},
		{Name: "request_count", Type: field.TypeInt64, Default: 0},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_key_hash",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "ipfs_cid", Type: field.TypeString, Nullable: true},
		{Name: "encryption_key", Type: field.TypeString, Nullable: true},
		{Name: "parsed_json", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "webhook_sent", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "api_key_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_api_keys_jobs",
				Columns:    []*schema.Column{JobsColumns[19]},
				RefColumns: []*schema.Column{APIKeysColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[15]},
			},
			{
				Name:    "job_api_key_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[19], JobsColumns[15]},
			},
		},
	}
	// UsageLogsColumns holds the columns for the "usage_logs" table.
	UsageLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "client_ip", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "api_key_id", Type: field.TypeUUID, Nullable: true},
	}
	// UsageLogsTable holds the schema information for the "usage_logs" table.
	UsageLogsTable = &schema.Table{
		Name:       "usage_logs",
		Columns:    UsageLogsColumns,
		PrimaryKey: []*schema.Column{UsageLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_logs_api_keys_usage_logs",
				Columns:    []*schema.Column{UsageLogsColumns[10]},
				RefColumns: []*schema.Column{APIKeysColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usagelog_api_key_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageLogsColumns[10], UsageLogsColumns[9]},
			},
			{
				Name:    "usagelog_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageLogsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		JobsTable,
		UsageLogsTable,
	}
)

func init() {
	APIKeysTable.Annotation = &entsql.Annotation{
		Table: "api_keys",
	}
	JobsTable.ForeignKeys[0].RefTable = APIKeysTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	UsageLogsTable.ForeignKeys[0].RefTable = APIKeysTable
	UsageLogsTable.Annotation = &entsql.Annotation{
		Table: "usage_logs",
	}
}
