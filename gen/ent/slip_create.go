// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campdesk/slip-ingest/gen/ent/participant"
	"github.com/campdesk/slip-ingest/gen/ent/slip"
	"github.com/google/uuid"
)

// SlipCreate is the builder for creating a Slip entity.
type SlipCreate struct {
	config
	mutation *SlipMutation
	hooks    []Hook
}

// SetParticipantID sets the "participant_id" field.
func (_c *SlipCreate) SetParticipantID(v uuid.UUID) *SlipCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *SlipCreate) SetStoragePath(v string) *SlipCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *SlipCreate) SetFilename(v string) *SlipCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *SlipCreate) SetMimeType(v string) *SlipCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *SlipCreate) SetFileSize(v int) *SlipCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *SlipCreate) SetAmount(v float64) *SlipCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *SlipCreate) SetNillableAmount(v *float64) *SlipCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *SlipCreate) SetUploadedAt(v time.Time) *SlipCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *SlipCreate) SetNillableUploadedAt(v *time.Time) *SlipCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SlipCreate) SetID(v uuid.UUID) *SlipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SlipCreate) SetNillableID(v *uuid.UUID) *SlipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *SlipCreate) SetParticipant(v *Participant) *SlipCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the SlipMutation object of the builder.
func (_c *SlipCreate) Mutation() *SlipMutation {
	return _c.mutation
}

// Save creates the Slip in the database.
func (_c *SlipCreate) Save(ctx context.Context) (*Slip, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlipCreate) SaveX(ctx context.Context) *Slip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlipCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := slip.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := slip.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlipCreate) check() error {
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "Slip.participant_id"`)}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "Slip.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := slip.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Slip.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Slip.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := slip.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Slip.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "Slip.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := slip.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Slip.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Slip.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := slip.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Slip.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Slip.uploaded_at"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "Slip.participant"`)}
	}
	return nil
}

func (_c *SlipCreate) sqlSave(ctx context.Context) (*Slip, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SlipCreate) createSpec() (*Slip, *sqlgraph.CreateSpec) {
	var (
		_node = &Slip{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slip.Table, sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(slip.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(slip.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(slip.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(slip.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(slip.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(slip.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ParticipantIDs(); len(nodes) > 0 {
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
		_node.ParticipantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SlipCreateBulk is the builder for creating many Slip entities in bulk.
type SlipCreateBulk struct {
	config
	err      error
	builders []*SlipCreate
}

// Save creates the Slip entities in the database.
func (_c *SlipCreateBulk) Save(ctx context.Context) ([]*Slip, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Slip, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlipMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SlipCreateBulk) SaveX(ctx context.Context) []*Slip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
