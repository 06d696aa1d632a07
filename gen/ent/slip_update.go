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
	"github.com/campdesk/slip-ingest/gen/ent/participant"
	"github.com/campdesk/slip-ingest/gen/ent/predicate"
	"github.com/campdesk/slip-ingest/gen/ent/slip"
	"github.com/google/uuid"
)

// SlipUpdate is the builder for updating Slip entities.
type SlipUpdate struct {
	config
	hooks    []Hook
	mutation *SlipMutation
}

// Where appends a list predicates to the SlipUpdate builder.
func (_u *SlipUpdate) Where(ps ...predicate.Slip) *SlipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantID sets the "participant_id" field.
func (_u *SlipUpdate) SetParticipantID(v uuid.UUID) *SlipUpdate {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableParticipantID(v *uuid.UUID) *SlipUpdate {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *SlipUpdate) SetStoragePath(v string) *SlipUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableStoragePath(v *string) *SlipUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SlipUpdate) SetFilename(v string) *SlipUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableFilename(v *string) *SlipUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *SlipUpdate) SetMimeType(v string) *SlipUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableMimeType(v *string) *SlipUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SlipUpdate) SetFileSize(v int) *SlipUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableFileSize(v *int) *SlipUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SlipUpdate) AddFileSize(v int) *SlipUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SlipUpdate) SetAmount(v float64) *SlipUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableAmount(v *float64) *SlipUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SlipUpdate) AddAmount(v float64) *SlipUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *SlipUpdate) ClearAmount() *SlipUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SlipUpdate) SetUploadedAt(v time.Time) *SlipUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableUploadedAt(v *time.Time) *SlipUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_u *SlipUpdate) SetParticipant(v *Participant) *SlipUpdate {
	return _u.SetParticipantID(v.ID)
}

// Mutation returns the SlipMutation object of the builder.
func (_u *SlipUpdate) Mutation() *SlipMutation {
	return _u.mutation
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (_u *SlipUpdate) ClearParticipant() *SlipUpdate {
	_u.mutation.ClearParticipant()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlipUpdate) check() error {
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := slip.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Slip.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := slip.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Slip.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := slip.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Slip.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := slip.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Slip.file_size": %w`, err)}
		}
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Slip.participant"`)
	}
	return nil
}

func (_u *SlipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slip.Table, slip.Columns, sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(slip.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(slip.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(slip.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(slip.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(slip.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(slip.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(slip.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(slip.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(slip.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   slip.ParticipantTable,
			Columns: []string{slip.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   slip.ParticipantTable,
			Columns: []string{slip.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlipUpdateOne is the builder for updating a single Slip entity.
type SlipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlipMutation
}

// SetParticipantID sets the "participant_id" field.
func (_u *SlipUpdateOne) SetParticipantID(v uuid.UUID) *SlipUpdateOne {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableParticipantID(v *uuid.UUID) *SlipUpdateOne {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *SlipUpdateOne) SetStoragePath(v string) *SlipUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableStoragePath(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SlipUpdateOne) SetFilename(v string) *SlipUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableFilename(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *SlipUpdateOne) SetMimeType(v string) *SlipUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableMimeType(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SlipUpdateOne) SetFileSize(v int) *SlipUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableFileSize(v *int) *SlipUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SlipUpdateOne) AddFileSize(v int) *SlipUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SlipUpdateOne) SetAmount(v float64) *SlipUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableAmount(v *float64) *SlipUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SlipUpdateOne) AddAmount(v float64) *SlipUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *SlipUpdateOne) ClearAmount() *SlipUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SlipUpdateOne) SetUploadedAt(v time.Time) *SlipUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableUploadedAt(v *time.Time) *SlipUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_u *SlipUpdateOne) SetParticipant(v *Participant) *SlipUpdateOne {
	return _u.SetParticipantID(v.ID)
}

// Mutation returns the SlipMutation object of the builder.
func (_u *SlipUpdateOne) Mutation() *SlipMutation {
	return _u.mutation
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (_u *SlipUpdateOne) ClearParticipant() *SlipUpdateOne {
	_u.mutation.ClearParticipant()
	return _u
}

// Where appends a list predicates to the SlipUpdate builder.
func (_u *SlipUpdateOne) Where(ps ...predicate.Slip) *SlipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlipUpdateOne) Select(field string, fields ...string) *SlipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Slip entity.
func (_u *SlipUpdateOne) Save(ctx context.Context) (*Slip, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlipUpdateOne) SaveX(ctx context.Context) *Slip {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlipUpdateOne) check() error {
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := slip.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Slip.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := slip.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Slip.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := slip.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Slip.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := slip.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Slip.file_size": %w`, err)}
		}
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Slip.participant"`)
	}
	return nil
}

func (_u *SlipUpdateOne) sqlSave(ctx context.Context) (_node *Slip, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slip.Table, slip.Columns, sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Slip.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slip.FieldID)
		for _, f := range fields {
			if !slip.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slip.FieldID {
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
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(slip.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(slip.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(slip.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(slip.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(slip.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(slip.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(slip.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(slip.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(slip.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   slip.ParticipantTable,
			Columns: []string{slip.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   slip.ParticipantTable,
			Columns: []string{slip.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Slip{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
