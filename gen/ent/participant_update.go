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

// ParticipantUpdate is the builder for updating Participant entities.
type ParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantMutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdate) Where(ps ...predicate.Participant) *ParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ParticipantUpdate) SetFirstName(v string) *ParticipantUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableFirstName(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ParticipantUpdate) SetLastName(v string) *ParticipantUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableLastName(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *ParticipantUpdate) ClearLastName() *ParticipantUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetPaidAmount sets the "paid_amount" field.
func (_u *ParticipantUpdate) SetPaidAmount(v float64) *ParticipantUpdate {
	_u.mutation.ResetPaidAmount()
	_u.mutation.SetPaidAmount(v)
	return _u
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillablePaidAmount(v *float64) *ParticipantUpdate {
	if v != nil {
		_u.SetPaidAmount(*v)
	}
	return _u
}

// AddPaidAmount adds value to the "paid_amount" field.
func (_u *ParticipantUpdate) AddPaidAmount(v float64) *ParticipantUpdate {
	_u.mutation.AddPaidAmount(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *ParticipantUpdate) SetPaymentStatus(v string) *ParticipantUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillablePaymentStatus(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ParticipantUpdate) SetCreatedAt(v time.Time) *ParticipantUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableCreatedAt(v *time.Time) *ParticipantUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantUpdate) SetUpdatedAt(v time.Time) *ParticipantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSlipIDs adds the "slips" edge to the Slip entity by IDs.
func (_u *ParticipantUpdate) AddSlipIDs(ids ...uuid.UUID) *ParticipantUpdate {
	_u.mutation.AddSlipIDs(ids...)
	return _u
}

// AddSlips adds the "slips" edges to the Slip entity.
func (_u *ParticipantUpdate) AddSlips(v ...*Slip) *ParticipantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSlipIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdate) Mutation() *ParticipantMutation {
	return _u.mutation
}

// ClearSlips clears all "slips" edges to the Slip entity.
func (_u *ParticipantUpdate) ClearSlips() *ParticipantUpdate {
	_u.mutation.ClearSlips()
	return _u
}

// RemoveSlipIDs removes the "slips" edge to Slip entities by IDs.
func (_u *ParticipantUpdate) RemoveSlipIDs(ids ...uuid.UUID) *ParticipantUpdate {
	_u.mutation.RemoveSlipIDs(ids...)
	return _u
}

// RemoveSlips removes "slips" edges to Slip entities.
func (_u *ParticipantUpdate) RemoveSlips(v ...*Slip) *ParticipantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSlipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParticipantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := participant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := participant.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Participant.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := participant.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Participant.payment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(participant.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(participant.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(participant.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAmount(); ok {
		_spec.SetField(participant.FieldPaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaidAmount(); ok {
		_spec.AddField(participant.FieldPaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(participant.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(participant.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SlipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.SlipsTable,
			Columns: []string{participant.SlipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSlipsIDs(); len(nodes) > 0 && !_u.mutation.SlipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.SlipsTable,
			Columns: []string{participant.SlipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SlipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.SlipsTable,
			Columns: []string{participant.SlipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantUpdateOne is the builder for updating a single Participant entity.
type ParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantMutation
}

// SetFirstName sets the "first_name" field.
func (_u *ParticipantUpdateOne) SetFirstName(v string) *ParticipantUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableFirstName(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ParticipantUpdateOne) SetLastName(v string) *ParticipantUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableLastName(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *ParticipantUpdateOne) ClearLastName() *ParticipantUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetPaidAmount sets the "paid_amount" field.
func (_u *ParticipantUpdateOne) SetPaidAmount(v float64) *ParticipantUpdateOne {
	_u.mutation.ResetPaidAmount()
	_u.mutation.SetPaidAmount(v)
	return _u
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillablePaidAmount(v *float64) *ParticipantUpdateOne {
	if v != nil {
		_u.SetPaidAmount(*v)
	}
	return _u
}

// AddPaidAmount adds value to the "paid_amount" field.
func (_u *ParticipantUpdateOne) AddPaidAmount(v float64) *ParticipantUpdateOne {
	_u.mutation.AddPaidAmount(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *ParticipantUpdateOne) SetPaymentStatus(v string) *ParticipantUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillablePaymentStatus(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ParticipantUpdateOne) SetCreatedAt(v time.Time) *ParticipantUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableCreatedAt(v *time.Time) *ParticipantUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantUpdateOne) SetUpdatedAt(v time.Time) *ParticipantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSlipIDs adds the "slips" edge to the Slip entity by IDs.
func (_u *ParticipantUpdateOne) AddSlipIDs(ids ...uuid.UUID) *ParticipantUpdateOne {
	_u.mutation.AddSlipIDs(ids...)
	return _u
}

// AddSlips adds the "slips" edges to the Slip entity.
func (_u *ParticipantUpdateOne) AddSlips(v ...*Slip) *ParticipantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSlipIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdateOne) Mutation() *ParticipantMutation {
	return _u.mutation
}

// ClearSlips clears all "slips" edges to the Slip entity.
func (_u *ParticipantUpdateOne) ClearSlips() *ParticipantUpdateOne {
	_u.mutation.ClearSlips()
	return _u
}

// RemoveSlipIDs removes the "slips" edge to Slip entities by IDs.
func (_u *ParticipantUpdateOne) RemoveSlipIDs(ids ...uuid.UUID) *ParticipantUpdateOne {
	_u.mutation.RemoveSlipIDs(ids...)
	return _u
}

// RemoveSlips removes "slips" edges to Slip entities.
func (_u *ParticipantUpdateOne) RemoveSlips(v ...*Slip) *ParticipantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSlipIDs(ids...)
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdateOne) Where(ps ...predicate.Participant) *ParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantUpdateOne) Select(field string, fields ...string) *ParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Participant entity.
func (_u *ParticipantUpdateOne) Save(ctx context.Context) (*Participant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdateOne) SaveX(ctx context.Context) *Participant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParticipantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := participant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := participant.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Participant.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := participant.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Participant.payment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParticipantUpdateOne) sqlSave(ctx context.Context) (_node *Participant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Participant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participant.FieldID)
		for _, f := range fields {
			if !participant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participant.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(participant.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(participant.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(participant.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAmount(); ok {
		_spec.SetField(participant.FieldPaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaidAmount(); ok {
		_spec.AddField(participant.FieldPaidAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(participant.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(participant.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SlipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.SlipsTable,
			Columns: []string{participant.SlipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSlipsIDs(); len(nodes) > 0 && !_u.mutation.SlipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.SlipsTable,
			Columns: []string{participant.SlipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SlipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.SlipsTable,
			Columns: []string{participant.SlipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Participant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
