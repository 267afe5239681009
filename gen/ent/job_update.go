// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rightsledger/rights-parser/gen/ent/apikey"
	"github.com/rightsledger/rights-parser/gen/ent/job"
	"github.com/rightsledger/rights-parser/gen/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAPIKeyID sets the "api_key_id" field.
func (_u *JobUpdate) SetAPIKeyID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetAPIKeyID(v)
	return _u
}

// SetNillableAPIKeyID sets the "api_key_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAPIKeyID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetAPIKeyID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdate) SetUserID(v string) *JobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableUserID(v *string) *JobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *JobUpdate) ClearUserID() *JobUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *JobUpdate) SetFileName(v string) *JobUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFileName(v *string) *JobUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *JobUpdate) SetFilePath(v string) *JobUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFilePath(v *string) *JobUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *JobUpdate) SetFileSize(v int64) *JobUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFileSize(v *int64) *JobUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *JobUpdate) AddFileSize(v int64) *JobUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIpfsCid sets the "ipfs_cid" field.
func (_u *JobUpdate) SetIpfsCid(v string) *JobUpdate {
	_u.mutation.SetIpfsCid(v)
	return _u
}

// SetNillableIpfsCid sets the "ipfs_cid" field if the given value is not nil.
func (_u *JobUpdate) SetNillableIpfsCid(v *string) *JobUpdate {
	if v != nil {
		_u.SetIpfsCid(*v)
	}
	return _u
}

// ClearIpfsCid clears the value of the "ipfs_cid" field.
func (_u *JobUpdate) ClearIpfsCid() *JobUpdate {
	_u.mutation.ClearIpfsCid()
	return _u
}

// SetEncryptionKey sets the "encryption_key" field.
func (_u *JobUpdate) SetEncryptionKey(v string) *JobUpdate {
	_u.mutation.SetEncryptionKey(v)
	return _u
}

// SetNillableEncryptionKey sets the "encryption_key" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEncryptionKey(v *string) *JobUpdate {
	if v != nil {
		_u.SetEncryptionKey(*v)
	}
	return _u
}

// ClearEncryptionKey clears the value of the "encryption_key" field.
func (_u *JobUpdate) ClearEncryptionKey() *JobUpdate {
	_u.mutation.ClearEncryptionKey()
	return _u
}

// SetParsedJSON sets the "parsed_json" field.
func (_u *JobUpdate) SetParsedJSON(v json.RawMessage) *JobUpdate {
	_u.mutation.SetParsedJSON(v)
	return _u
}

// AppendParsedJSON appends value to the "parsed_json" field.
func (_u *JobUpdate) AppendParsedJSON(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendParsedJSON(v)
	return _u
}

// ClearParsedJSON clears the value of the "parsed_json" field.
func (_u *JobUpdate) ClearParsedJSON() *JobUpdate {
	_u.mutation.ClearParsedJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdate) SetRetryCount(v int) *JobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRetryCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdate) AddRetryCount(v int) *JobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdate) SetWorkerID(v string) *JobUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkerID(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdate) ClearWorkerID() *JobUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *JobUpdate) SetModelUsed(v string) *JobUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *JobUpdate) SetNillableModelUsed(v *string) *JobUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *JobUpdate) ClearModelUsed() *JobUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *JobUpdate) SetWebhookURL(v string) *JobUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWebhookURL(v *string) *JobUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *JobUpdate) ClearWebhookURL() *JobUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSent sets the "webhook_sent" field.
func (_u *JobUpdate) SetWebhookSent(v bool) *JobUpdate {
	_u.mutation.SetWebhookSent(v)
	return _u
}

// SetNillableWebhookSent sets the "webhook_sent" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWebhookSent(v *bool) *JobUpdate {
	if v != nil {
		_u.SetWebhookSent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *JobUpdate) SetProcessingTimeMs(v int64) *JobUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProcessingTimeMs(v *int64) *JobUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *JobUpdate) AddProcessingTimeMs(v int64) *JobUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *JobUpdate) ClearProcessingTimeMs() *JobUpdate {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetAPIKey sets the "api_key" edge to the ApiKey entity.
func (_u *JobUpdate) SetAPIKey(v *ApiKey) *JobUpdate {
	return _u.SetAPIKeyID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearAPIKey clears the "api_key" edge to the ApiKey entity.
func (_u *JobUpdate) ClearAPIKey() *JobUpdate {
	_u.mutation.ClearAPIKey()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := job.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Job.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := job.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Job.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := job.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Job.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := job.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Job.retry_count": %w`, err)}
		}
	}
	if _u.mutation.APIKeyCleared() && len(_u.mutation.APIKeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.api_key"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(job.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(job.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(job.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(job.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IpfsCid(); ok {
		_spec.SetField(job.FieldIpfsCid, field.TypeString, value)
	}
	if _u.mutation.IpfsCidCleared() {
		_spec.ClearField(job.FieldIpfsCid, field.TypeString)
	}
	if value, ok := _u.mutation.EncryptionKey(); ok {
		_spec.SetField(job.FieldEncryptionKey, field.TypeString, value)
	}
	if _u.mutation.EncryptionKeyCleared() {
		_spec.ClearField(job.FieldEncryptionKey, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedJSON(); ok {
		_spec.SetField(job.FieldParsedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldParsedJSON, value)
		})
	}
	if _u.mutation.ParsedJSONCleared() {
		_spec.ClearField(job.FieldParsedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(job.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(job.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(job.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(job.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSent(); ok {
		_spec.SetField(job.FieldWebhookSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(job.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(job.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(job.FieldProcessingTimeMs, field.TypeInt64)
	}
	if _u.mutation.APIKeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.APIKeyTable,
			Columns: []string{job.APIKeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.APIKeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.APIKeyTable,
			Columns: []string{job.APIKeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetAPIKeyID sets the "api_key_id" field.
func (_u *JobUpdateOne) SetAPIKeyID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetAPIKeyID(v)
	return _u
}

// SetNillableAPIKeyID sets the "api_key_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAPIKeyID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetAPIKeyID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdateOne) SetUserID(v string) *JobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableUserID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *JobUpdateOne) ClearUserID() *JobUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *JobUpdateOne) SetFileName(v string) *JobUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFileName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *JobUpdateOne) SetFilePath(v string) *JobUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFilePath(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *JobUpdateOne) SetFileSize(v int64) *JobUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFileSize(v *int64) *JobUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *JobUpdateOne) AddFileSize(v int64) *JobUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIpfsCid sets the "ipfs_cid" field.
func (_u *JobUpdateOne) SetIpfsCid(v string) *JobUpdateOne {
	_u.mutation.SetIpfsCid(v)
	return _u
}

// SetNillableIpfsCid sets the "ipfs_cid" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableIpfsCid(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetIpfsCid(*v)
	}
	return _u
}

// ClearIpfsCid clears the value of the "ipfs_cid" field.
func (_u *JobUpdateOne) ClearIpfsCid() *JobUpdateOne {
	_u.mutation.ClearIpfsCid()
	return _u
}

// SetEncryptionKey sets the "encryption_key" field.
func (_u *JobUpdateOne) SetEncryptionKey(v string) *JobUpdateOne {
	_u.mutation.SetEncryptionKey(v)
	return _u
}

// SetNillableEncryptionKey sets the "encryption_key" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEncryptionKey(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetEncryptionKey(*v)
	}
	return _u
}

// ClearEncryptionKey clears the value of the "encryption_key" field.
func (_u *JobUpdateOne) ClearEncryptionKey() *JobUpdateOne {
	_u.mutation.ClearEncryptionKey()
	return _u
}

// SetParsedJSON sets the "parsed_json" field.
func (_u *JobUpdateOne) SetParsedJSON(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetParsedJSON(v)
	return _u
}

// AppendParsedJSON appends value to the "parsed_json" field.
func (_u *JobUpdateOne) AppendParsedJSON(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendParsedJSON(v)
	return _u
}

// ClearParsedJSON clears the value of the "parsed_json" field.
func (_u *JobUpdateOne) ClearParsedJSON() *JobUpdateOne {
	_u.mutation.ClearParsedJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdateOne) SetRetryCount(v int) *JobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRetryCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdateOne) AddRetryCount(v int) *JobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdateOne) SetWorkerID(v string) *JobUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkerID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdateOne) ClearWorkerID() *JobUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *JobUpdateOne) SetModelUsed(v string) *JobUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableModelUsed(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *JobUpdateOne) ClearModelUsed() *JobUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *JobUpdateOne) SetWebhookURL(v string) *JobUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWebhookURL(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *JobUpdateOne) ClearWebhookURL() *JobUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSent sets the "webhook_sent" field.
func (_u *JobUpdateOne) SetWebhookSent(v bool) *JobUpdateOne {
	_u.mutation.SetWebhookSent(v)
	return _u
}

// SetNillableWebhookSent sets the "webhook_sent" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWebhookSent(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetWebhookSent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *JobUpdateOne) SetProcessingTimeMs(v int64) *JobUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProcessingTimeMs(v *int64) *JobUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *JobUpdateOne) AddProcessingTimeMs(v int64) *JobUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *JobUpdateOne) ClearProcessingTimeMs() *JobUpdateOne {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetAPIKey sets the "api_key" edge to the ApiKey entity.
func (_u *JobUpdateOne) SetAPIKey(v *ApiKey) *JobUpdateOne {
	return _u.SetAPIKeyID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearAPIKey clears the "api_key" edge to the ApiKey entity.
func (_u *JobUpdateOne) ClearAPIKey() *JobUpdateOne {
	_u.mutation.ClearAPIKey()
	return _u
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := job.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Job.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := job.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Job.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := job.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Job.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := job.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Job.retry_count": %w`, err)}
		}
	}
	if _u.mutation.APIKeyCleared() && len(_u.mutation.APIKeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.api_key"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(job.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(job.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(job.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(job.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IpfsCid(); ok {
		_spec.SetField(job.FieldIpfsCid, field.TypeString, value)
	}
	if _u.mutation.IpfsCidCleared() {
		_spec.ClearField(job.FieldIpfsCid, field.TypeString)
	}
	if value, ok := _u.mutation.EncryptionKey(); ok {
		_spec.SetField(job.FieldEncryptionKey, field.TypeString, value)
	}
	if _u.mutation.EncryptionKeyCleared() {
		_spec.ClearField(job.FieldEncryptionKey, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedJSON(); ok {
		_spec.SetField(job.FieldParsedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldParsedJSON, value)
		})
	}
	if _u.mutation.ParsedJSONCleared() {
		_spec.ClearField(job.FieldParsedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(job.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(job.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(job.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(job.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSent(); ok {
		_spec.SetField(job.FieldWebhookSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(job.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(job.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(job.FieldProcessingTimeMs, field.TypeInt64)
	}
	if _u.mutation.APIKeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.APIKeyTable,
			Columns: []string{job.APIKeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.APIKeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.APIKeyTable,
			Columns: []string{job.APIKeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
