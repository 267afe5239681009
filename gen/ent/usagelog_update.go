// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rightsledger/rights-parser/gen/ent/apikey"
	"github.com/rightsledger/rights-parser/gen/ent/predicate"
	"github.com/rightsledger/rights-parser/gen/ent/usagelog"
)

// UsageLogUpdate is the builder for updating UsageLog entities.
type UsageLogUpdate struct {
	config
	hooks    []Hook
	mutation *UsageLogMutation
}

// Where appends a list predicates to the UsageLogUpdate builder.
func (_u *UsageLogUpdate) Where(ps ...predicate.UsageLog) *UsageLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAPIKeyID sets the "api_key_id" field.
func (_u *UsageLogUpdate) SetAPIKeyID(v uuid.UUID) *UsageLogUpdate {
	_u.mutation.SetAPIKeyID(v)
	return _u
}

// SetNillableAPIKeyID sets the "api_key_id" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableAPIKeyID(v *uuid.UUID) *UsageLogUpdate {
	if v != nil {
		_u.SetAPIKeyID(*v)
	}
	return _u
}

// ClearAPIKeyID clears the value of the "api_key_id" field.
func (_u *UsageLogUpdate) ClearAPIKeyID() *UsageLogUpdate {
	_u.mutation.ClearAPIKeyID()
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *UsageLogUpdate) SetEndpoint(v string) *UsageLogUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableEndpoint(v *string) *UsageLogUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *UsageLogUpdate) SetMethod(v string) *UsageLogUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableMethod(v *string) *UsageLogUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *UsageLogUpdate) SetStatusCode(v int) *UsageLogUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableStatusCode(v *int) *UsageLogUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *UsageLogUpdate) AddStatusCode(v int) *UsageLogUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *UsageLogUpdate) SetLatencyMs(v int64) *UsageLogUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableLatencyMs(v *int64) *UsageLogUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *UsageLogUpdate) AddLatencyMs(v int64) *UsageLogUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UsageLogUpdate) SetFileSize(v int64) *UsageLogUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableFileSize(v *int64) *UsageLogUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UsageLogUpdate) AddFileSize(v int64) *UsageLogUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetClientIP sets the "client_ip" field.
func (_u *UsageLogUpdate) SetClientIP(v string) *UsageLogUpdate {
	_u.mutation.SetClientIP(v)
	return _u
}

// SetNillableClientIP sets the "client_ip" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableClientIP(v *string) *UsageLogUpdate {
	if v != nil {
		_u.SetClientIP(*v)
	}
	return _u
}

// ClearClientIP clears the value of the "client_ip" field.
func (_u *UsageLogUpdate) ClearClientIP() *UsageLogUpdate {
	_u.mutation.ClearClientIP()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *UsageLogUpdate) SetUserAgent(v string) *UsageLogUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableUserAgent(v *string) *UsageLogUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *UsageLogUpdate) ClearUserAgent() *UsageLogUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *UsageLogUpdate) SetJobID(v uuid.UUID) *UsageLogUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableJobID(v *uuid.UUID) *UsageLogUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *UsageLogUpdate) ClearJobID() *UsageLogUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UsageLogUpdate) SetCreatedAt(v time.Time) *UsageLogUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableCreatedAt(v *time.Time) *UsageLogUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAPIKey sets the "api_key" edge to the ApiKey entity.
func (_u *UsageLogUpdate) SetAPIKey(v *ApiKey) *UsageLogUpdate {
	return _u.SetAPIKeyID(v.ID)
}

// Mutation returns the UsageLogMutation object of the builder.
func (_u *UsageLogUpdate) Mutation() *UsageLogMutation {
	return _u.mutation
}

// ClearAPIKey clears the "api_key" edge to the ApiKey entity.
func (_u *UsageLogUpdate) ClearAPIKey() *UsageLogUpdate {
	_u.mutation.ClearAPIKey()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageLogUpdate) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := usagelog.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "UsageLog.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := usagelog.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "UsageLog.method": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagelog.Table, usagelog.Columns, sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(usagelog.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(usagelog.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(usagelog.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(usagelog.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(usagelog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(usagelog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(usagelog.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(usagelog.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ClientIP(); ok {
		_spec.SetField(usagelog.FieldClientIP, field.TypeString, value)
	}
	if _u.mutation.ClientIPCleared() {
		_spec.ClearField(usagelog.FieldClientIP, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(usagelog.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(usagelog.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(usagelog.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(usagelog.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(usagelog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.APIKeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usagelog.APIKeyTable,
			Columns: []string{usagelog.APIKeyColumn},
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
			Table:   usagelog.APIKeyTable,
			Columns: []string{usagelog.APIKeyColumn},
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
			err = &NotFoundError{usagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageLogUpdateOne is the builder for updating a single UsageLog entity.
type UsageLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageLogMutation
}

// SetAPIKeyID sets the "api_key_id" field.
func (_u *UsageLogUpdateOne) SetAPIKeyID(v uuid.UUID) *UsageLogUpdateOne {
	_u.mutation.SetAPIKeyID(v)
	return _u
}

// SetNillableAPIKeyID sets the "api_key_id" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableAPIKeyID(v *uuid.UUID) *UsageLogUpdateOne {
	if v != nil {
		_u.SetAPIKeyID(*v)
	}
	return _u
}

// ClearAPIKeyID clears the value of the "api_key_id" field.
func (_u *UsageLogUpdateOne) ClearAPIKeyID() *UsageLogUpdateOne {
	_u.mutation.ClearAPIKeyID()
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *UsageLogUpdateOne) SetEndpoint(v string) *UsageLogUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableEndpoint(v *string) *UsageLogUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *UsageLogUpdateOne) SetMethod(v string) *UsageLogUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableMethod(v *string) *UsageLogUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *UsageLogUpdateOne) SetStatusCode(v int) *UsageLogUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableStatusCode(v *int) *UsageLogUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *UsageLogUpdateOne) AddStatusCode(v int) *UsageLogUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *UsageLogUpdateOne) SetLatencyMs(v int64) *UsageLogUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableLatencyMs(v *int64) *UsageLogUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *UsageLogUpdateOne) AddLatencyMs(v int64) *UsageLogUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UsageLogUpdateOne) SetFileSize(v int64) *UsageLogUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableFileSize(v *int64) *UsageLogUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UsageLogUpdateOne) AddFileSize(v int64) *UsageLogUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetClientIP sets the "client_ip" field.
func (_u *UsageLogUpdateOne) SetClientIP(v string) *UsageLogUpdateOne {
	_u.mutation.SetClientIP(v)
	return _u
}

// SetNillableClientIP sets the "client_ip" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableClientIP(v *string) *UsageLogUpdateOne {
	if v != nil {
		_u.SetClientIP(*v)
	}
	return _u
}

// ClearClientIP clears the value of the "client_ip" field.
func (_u *UsageLogUpdateOne) ClearClientIP() *UsageLogUpdateOne {
	_u.mutation.ClearClientIP()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *UsageLogUpdateOne) SetUserAgent(v string) *UsageLogUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableUserAgent(v *string) *UsageLogUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *UsageLogUpdateOne) ClearUserAgent() *UsageLogUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *UsageLogUpdateOne) SetJobID(v uuid.UUID) *UsageLogUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableJobID(v *uuid.UUID) *UsageLogUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *UsageLogUpdateOne) ClearJobID() *UsageLogUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UsageLogUpdateOne) SetCreatedAt(v time.Time) *UsageLogUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableCreatedAt(v *time.Time) *UsageLogUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAPIKey sets the "api_key" edge to the ApiKey entity.
func (_u *UsageLogUpdateOne) SetAPIKey(v *ApiKey) *UsageLogUpdateOne {
	return _u.SetAPIKeyID(v.ID)
}

// Mutation returns the UsageLogMutation object of the builder.
func (_u *UsageLogUpdateOne) Mutation() *UsageLogMutation {
	return _u.mutation
}

// ClearAPIKey clears the "api_key" edge to the ApiKey entity.
func (_u *UsageLogUpdateOne) ClearAPIKey() *UsageLogUpdateOne {
	_u.mutation.ClearAPIKey()
	return _u
}

// Where appends a list predicates to the UsageLogUpdate builder.
func (_u *UsageLogUpdateOne) Where(ps ...predicate.UsageLog) *UsageLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageLogUpdateOne) Select(field string, fields ...string) *UsageLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageLog entity.
func (_u *UsageLogUpdateOne) Save(ctx context.Context) (*UsageLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageLogUpdateOne) SaveX(ctx context.Context) *UsageLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageLogUpdateOne) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := usagelog.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "UsageLog.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := usagelog.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "UsageLog.method": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageLogUpdateOne) sqlSave(ctx context.Context) (_node *UsageLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagelog.Table, usagelog.Columns, sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagelog.FieldID)
		for _, f := range fields {
			if !usagelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagelog.FieldID {
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
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(usagelog.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(usagelog.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(usagelog.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(usagelog.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(usagelog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(usagelog.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(usagelog.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(usagelog.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ClientIP(); ok {
		_spec.SetField(usagelog.FieldClientIP, field.TypeString, value)
	}
	if _u.mutation.ClientIPCleared() {
		_spec.ClearField(usagelog.FieldClientIP, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(usagelog.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(usagelog.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(usagelog.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(usagelog.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(usagelog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.APIKeyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usagelog.APIKeyTable,
			Columns: []string{usagelog.APIKeyColumn},
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
			Table:   usagelog.APIKeyTable,
			Columns: []string{usagelog.APIKeyColumn},
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
	_node = &UsageLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
