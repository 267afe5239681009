// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/rightsledger/rights-parser/db/ent/schema"
	"github.com/rightsledger/rights-parser/gen/ent/apikey"
	"github.com/rightsledger/rights-parser/gen/ent/job"
	"github.com/rightsledger/rights-parser/gen/ent/usagelog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.ApiKey{}.Fields()
	_ = apikeyFields
	// apikeyDescKeyHash is the schema descriptor for key_hash field.
	apikeyDescKeyHash := apikeyFields[1].Descriptor()
	// apikey.KeyHashValidator is a validator for the "key_hash" field. It is called by the builders before save.
	apikey.KeyHashValidator = apikeyDescKeyHash.Validators[0].(func(string) error)
	// apikeyDescKeyPrefix is the schema descriptor for key_prefix field.
	apikeyDescKeyPrefix := apikeyFields[2].Descriptor()
	// apikey.KeyPrefixValidator is a validator for the "key_prefix" field. It is called by the builders before save.
	apikey.KeyPrefixValidator = apikeyDescKeyPrefix.Validators[0].(func(string) error)
	// apikeyDescOwnerName is the schema descriptor for owner_name field.
	apikeyDescOwnerName := apikeyFields[3].Descriptor()
	// apikey.OwnerNameValidator is a validator for the "owner_name" field. It is called by the builders before save.
	apikey.OwnerNameValidator = apikeyDescOwnerName.Validators[0].(func(string) error)
	// apikeyDescIsActive is the schema descriptor for is_active field.
	apikeyDescIsActive := apikeyFields[4].Descriptor()
	// apikey.DefaultIsActive holds the default value on creation for the is_active field.
	apikey.DefaultIsActive = apikeyDescIsActive.Default.(bool)
	// apikeyDescRateLimit is the schema descriptor for rate_limit field.
	apikeyDescRateLimit := apikeyFields[6].Descriptor()
	// apikey.DefaultRateLimit holds the default value on creation for the rate_limit field.
	apikey.DefaultRateLimit = apikeyDescRateLimit.Default.(int)
	// apikey.RateLimitValidator is a validator for the "rate_limit" field. It is called by the builders before save.
	apikey.RateLimitValidator = apikeyDescRateLimit.Validators[0].(func(int) error)
	// apikeyDescRequestCount is the schema descriptor for request_count field.
	apikeyDescRequestCount := apikeyFields[7].Descriptor()
	// apikey.DefaultRequestCount holds the default value on creation for the request_count field.
	apikey.DefaultRequestCount = apikeyDescRequestCount.Default.(int64)
	// apikey.RequestCountValidator is a validator for the "request_count" field. It is called by the builders before save.
	apikey.RequestCountValidator = apikeyDescRequestCount.Validators[0].(func(int64) error)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[9].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	// apikeyDescID is the schema descriptor for id field.
	apikeyDescID := apikeyFields[0].Descriptor()
	// apikey.DefaultID holds the default value on creation for the id field.
	apikey.DefaultID = apikeyDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescFileName is the schema descriptor for file_name field.
	jobDescFileName := jobFields[3].Descriptor()
	// job.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	job.FileNameValidator = jobDescFileName.Validators[0].(func(string) error)
	// jobDescFilePath is the schema descriptor for file_path field.
	jobDescFilePath := jobFields[4].Descriptor()
	// job.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	job.FilePathValidator = jobDescFilePath.Validators[0].(func(string) error)
	// jobDescFileSize is the schema descriptor for file_size field.
	jobDescFileSize := jobFields[5].Descriptor()
	// job.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	job.FileSizeValidator = jobDescFileSize.Validators[0].(func(int64) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[6].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescRetryCount is the schema descriptor for retry_count field.
	jobDescRetryCount := jobFields[11].Descriptor()
	// job.DefaultRetryCount holds the default value on creation for the retry_count field.
	job.DefaultRetryCount = jobDescRetryCount.Default.(int)
	// job.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	job.RetryCountValidator = jobDescRetryCount.Validators[0].(func(int) error)
	// jobDescWebhookSent is the schema descriptor for webhook_sent field.
	jobDescWebhookSent := jobFields[15].Descriptor()
	// job.DefaultWebhookSent holds the default value on creation for the webhook_sent field.
	job.DefaultWebhookSent = jobDescWebhookSent.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[16].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	usagelogFields := schema.UsageLog{}.Fields()
	_ = usagelogFields
	// usagelogDescEndpoint is the schema descriptor for endpoint field.
	usagelogDescEndpoint := usagelogFields[2].Descriptor()
	// usagelog.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	usagelog.EndpointValidator = usagelogDescEndpoint.Validators[0].(func(string) error)
	// usagelogDescMethod is the schema descriptor for method field.
	usagelogDescMethod := usagelogFields[3].Descriptor()
	// usagelog.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	usagelog.MethodValidator = usagelogDescMethod.Validators[0].(func(string) error)
	// usagelogDescStatusCode is the schema descriptor for status_code field.
	usagelogDescStatusCode := usagelogFields[4].Descriptor()
	// usagelog.DefaultStatusCode holds the default value on creation for the status_code field.
	usagelog.DefaultStatusCode = usagelogDescStatusCode.Default.(int)
	// usagelogDescLatencyMs is the schema descriptor for latency_ms field.
	usagelogDescLatencyMs := usagelogFields[5].Descriptor()
	// usagelog.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	usagelog.DefaultLatencyMs = usagelogDescLatencyMs.Default.(int64)
	// usagelogDescFileSize is the schema descriptor for file_size field.
	usagelogDescFileSize := usagelogFields[6].Descriptor()
	// usagelog.DefaultFileSize holds the default value on creation for the file_size field.
	usagelog.DefaultFileSize = usagelogDescFileSize.Default.(int64)
	// usagelogDescCreatedAt is the schema descriptor for created_at field.
	usagelogDescCreatedAt := usagelogFields[10].Descriptor()
	// usagelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagelog.DefaultCreatedAt = usagelogDescCreatedAt.Default.(func() time.Time)
	// usagelogDescID is the schema descriptor for id field.
	usagelogDescID := usagelogFields[0].Descriptor()
	// usagelog.DefaultID holds the default value on creation for the id field.
	usagelog.DefaultID = usagelogDescID.Default.(func() uuid.UUID)
}
