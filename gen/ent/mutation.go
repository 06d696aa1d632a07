// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campdesk/slip-ingest/gen/ent/participant"
	"github.com/campdesk/slip-ingest/gen/ent/predicate"
	"github.com/campdesk/slip-ingest/gen/ent/slip"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeParticipant = "Participant"
	TypeSlip        = "Slip"
)

// ParticipantMutation represents an operation that mutates the Participant nodes in the graph.
type ParticipantMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	first_name     *string
	last_name      *string
	paid_amount    *float64
	addpaid_amount *float64
	payment_status *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	slips          map[uuid.UUID]struct{}
	removedslips   map[uuid.UUID]struct{}
	clearedslips   bool
	done           bool
	oldValue       func(context.Context) (*Participant, error)
	predicates     []predicate.Participant
}

var _ ent.Mutation = (*ParticipantMutation)(nil)

// participantOption allows management of the mutation configuration using functional options.
type participantOption func(*ParticipantMutation)

// newParticipantMutation creates new mutation for the Participant entity.
func newParticipantMutation(c config, op Op, opts ...participantOption) *ParticipantMutation {
	m := &ParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantID sets the ID field of the mutation.
func withParticipantID(id uuid.UUID) participantOption {
	return func(m *ParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *Participant
		)
		m.oldValue = func(ctx context.Context) (*Participant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Participant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipant sets the old Participant of the mutation.
func withParticipant(node *Participant) participantOption {
	return func(m *ParticipantMutation) {
		m.oldValue = func(context.Context) (*Participant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Participant entities.
func (m *ParticipantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Participant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *ParticipantMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *ParticipantMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *ParticipantMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *ParticipantMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *ParticipantMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *ParticipantMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[participant.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *ParticipantMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[participant.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *ParticipantMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, participant.FieldLastName)
}

// SetPaidAmount sets the "paid_amount" field.
func (m *ParticipantMutation) SetPaidAmount(f float64) {
	m.paid_amount = &f
	m.addpaid_amount = nil
}

// PaidAmount returns the value of the "paid_amount" field in the mutation.
func (m *ParticipantMutation) PaidAmount() (r float64, exists bool) {
	v := m.paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAmount returns the old "paid_amount" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldPaidAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAmount: %w", err)
	}
	return oldValue.PaidAmount, nil
}

// AddPaidAmount adds f to the "paid_amount" field.
func (m *ParticipantMutation) AddPaidAmount(f float64) {
	if m.addpaid_amount != nil {
		*m.addpaid_amount += f
	} else {
		m.addpaid_amount = &f
	}
}

// AddedPaidAmount returns the value that was added to the "paid_amount" field in this mutation.
func (m *ParticipantMutation) AddedPaidAmount() (r float64, exists bool) {
	v := m.addpaid_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaidAmount resets all changes to the "paid_amount" field.
func (m *ParticipantMutation) ResetPaidAmount() {
	m.paid_amount = nil
	m.addpaid_amount = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *ParticipantMutation) SetPaymentStatus(s string) {
	m.payment_status = &s
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *ParticipantMutation) PaymentStatus() (r string, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldPaymentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *ParticipantMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ParticipantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ParticipantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ParticipantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSlipIDs adds the "slips" edge to the Slip entity by ids.
func (m *ParticipantMutation) AddSlipIDs(ids ...uuid.UUID) {
	if m.slips == nil {
		m.slips = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.slips[ids[i]] = struct{}{}
	}
}

// ClearSlips clears the "slips" edge to the Slip entity.
func (m *ParticipantMutation) ClearSlips() {
	m.clearedslips = true
}

// SlipsCleared reports if the "slips" edge to the Slip entity was cleared.
func (m *ParticipantMutation) SlipsCleared() bool {
	return m.clearedslips
}

// RemoveSlipIDs removes the "slips" edge to the Slip entity by IDs.
func (m *ParticipantMutation) RemoveSlipIDs(ids ...uuid.UUID) {
	if m.removedslips == nil {
		m.removedslips = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.slips, ids[i])
		m.removedslips[ids[i]] = struct{}{}
	}
}

// RemovedSlips returns the removed IDs of the "slips" edge to the Slip entity.
func (m *ParticipantMutation) RemovedSlipsIDs() (ids []uuid.UUID) {
	for id := range m.removedslips {
		ids = append(ids, id)
	}
	return
}

// SlipsIDs returns the "slips" edge IDs in the mutation.
func (m *ParticipantMutation) SlipsIDs() (ids []uuid.UUID) {
	for id := range m.slips {
		ids = append(ids, id)
	}
	return
}

// ResetSlips resets all changes to the "slips" edge.
func (m *ParticipantMutation) ResetSlips() {
	m.slips = nil
	m.clearedslips = false
	m.removedslips = nil
}

// Where appends a list predicates to the ParticipantMutation builder.
func (m *ParticipantMutation) Where(ps ...predicate.Participant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Participant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Participant).
func (m *ParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.first_name != nil {
		fields = append(fields, participant.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, participant.FieldLastName)
	}
	if m.paid_amount != nil {
		fields = append(fields, participant.FieldPaidAmount)
	}
	if m.payment_status != nil {
		fields = append(fields, participant.FieldPaymentStatus)
	}
	if m.created_at != nil {
		fields = append(fields, participant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, participant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldFirstName:
		return m.FirstName()
	case participant.FieldLastName:
		return m.LastName()
	case participant.FieldPaidAmount:
		return m.PaidAmount()
	case participant.FieldPaymentStatus:
		return m.PaymentStatus()
	case participant.FieldCreatedAt:
		return m.CreatedAt()
	case participant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participant.FieldFirstName:
		return m.OldFirstName(ctx)
	case participant.FieldLastName:
		return m.OldLastName(ctx)
	case participant.FieldPaidAmount:
		return m.OldPaidAmount(ctx)
	case participant.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case participant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case participant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Participant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participant.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case participant.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case participant.FieldPaidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAmount(v)
		return nil
	case participant.FieldPaymentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case participant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case participant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantMutation) AddedFields() []string {
	var fields []string
	if m.addpaid_amount != nil {
		fields = append(fields, participant.FieldPaidAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldPaidAmount:
		return m.AddedPaidAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case participant.FieldPaidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaidAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Participant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(participant.FieldLastName) {
		fields = append(fields, participant.FieldLastName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantMutation) ClearField(name string) error {
	switch name {
	case participant.FieldLastName:
		m.ClearLastName()
		return nil
	}
	return fmt.Errorf("unknown Participant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantMutation) ResetField(name string) error {
	switch name {
	case participant.FieldFirstName:
		m.ResetFirstName()
		return nil
	case participant.FieldLastName:
		m.ResetLastName()
		return nil
	case participant.FieldPaidAmount:
		m.ResetPaidAmount()
		return nil
	case participant.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case participant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case participant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.slips != nil {
		edges = append(edges, participant.EdgeSlips)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeSlips:
		ids := make([]ent.Value, 0, len(m.slips))
		for id := range m.slips {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedslips != nil {
		edges = append(edges, participant.EdgeSlips)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeSlips:
		ids := make([]ent.Value, 0, len(m.removedslips))
		for id := range m.removedslips {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedslips {
		edges = append(edges, participant.EdgeSlips)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case participant.EdgeSlips:
		return m.clearedslips
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Participant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantMutation) ResetEdge(name string) error {
	switch name {
	case participant.EdgeSlips:
		m.ResetSlips()
		return nil
	}
	return fmt.Errorf("unknown Participant edge %s", name)
}

// SlipMutation represents an operation that mutates the Slip nodes in the graph.
type SlipMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	storage_path       *string
	filename           *string
	mime_type          *string
	file_size          *int
	addfile_size       *int
	amount             *float64
	addamount          *float64
	uploaded_at        *time.Time
	clearedFields      map[string]struct{}
	participant        *uuid.UUID
	clearedparticipant bool
	done               bool
	oldValue           func(context.Context) (*Slip, error)
	predicates         []predicate.Slip
}

var _ ent.Mutation = (*SlipMutation)(nil)

// slipOption allows management of the mutation configuration using functional options.
type slipOption func(*SlipMutation)

// newSlipMutation creates new mutation for the Slip entity.
func newSlipMutation(c config, op Op, opts ...slipOption) *SlipMutation {
	m := &SlipMutation{
		config:        c,
		op:            op,
		typ:           TypeSlip,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlipID sets the ID field of the mutation.
func withSlipID(id uuid.UUID) slipOption {
	return func(m *SlipMutation) {
		var (
			err   error
			once  sync.Once
			value *Slip
		)
		m.oldValue = func(ctx context.Context) (*Slip, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Slip.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlip sets the old Slip of the mutation.
func withSlip(node *Slip) slipOption {
	return func(m *SlipMutation) {
		m.oldValue = func(context.Context) (*Slip, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Slip entities.
func (m *SlipMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlipMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlipMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Slip.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipantID sets the "participant_id" field.
func (m *SlipMutation) SetParticipantID(u uuid.UUID) {
	m.participant = &u
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *SlipMutation) ParticipantID() (r uuid.UUID, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldParticipantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *SlipMutation) ResetParticipantID() {
	m.participant = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *SlipMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *SlipMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *SlipMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetFilename sets the "filename" field.
func (m *SlipMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SlipMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SlipMutation) ResetFilename() {
	m.filename = nil
}

// SetMimeType sets the "mime_type" field.
func (m *SlipMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *SlipMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *SlipMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *SlipMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *SlipMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *SlipMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *SlipMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *SlipMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetAmount sets the "amount" field.
func (m *SlipMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *SlipMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *SlipMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *SlipMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *SlipMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[slip.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *SlipMutation) AmountCleared() bool {
	_, ok := m.clearedFields[slip.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *SlipMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, slip.FieldAmount)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SlipMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SlipMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SlipMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *SlipMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[slip.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *SlipMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *SlipMutation) ParticipantIDs() (ids []uuid.UUID) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *SlipMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the SlipMutation builder.
func (m *SlipMutation) Where(ps ...predicate.Slip) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Slip, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Slip).
func (m *SlipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlipMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.participant != nil {
		fields = append(fields, slip.FieldParticipantID)
	}
	if m.storage_path != nil {
		fields = append(fields, slip.FieldStoragePath)
	}
	if m.filename != nil {
		fields = append(fields, slip.FieldFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, slip.FieldMimeType)
	}
	if m.file_size != nil {
		fields = append(fields, slip.FieldFileSize)
	}
	if m.amount != nil {
		fields = append(fields, slip.FieldAmount)
	}
	if m.uploaded_at != nil {
		fields = append(fields, slip.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slip.FieldParticipantID:
		return m.ParticipantID()
	case slip.FieldStoragePath:
		return m.StoragePath()
	case slip.FieldFilename:
		return m.Filename()
	case slip.FieldMimeType:
		return m.MimeType()
	case slip.FieldFileSize:
		return m.FileSize()
	case slip.FieldAmount:
		return m.Amount()
	case slip.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slip.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case slip.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case slip.FieldFilename:
		return m.OldFilename(ctx)
	case slip.FieldMimeType:
		return m.OldMimeType(ctx)
	case slip.FieldFileSize:
		return m.OldFileSize(ctx)
	case slip.FieldAmount:
		return m.OldAmount(ctx)
	case slip.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Slip field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slip.FieldParticipantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case slip.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case slip.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case slip.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case slip.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case slip.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case slip.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Slip field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlipMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, slip.FieldFileSize)
	}
	if m.addamount != nil {
		fields = append(fields, slip.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slip.FieldFileSize:
		return m.AddedFileSize()
	case slip.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slip.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case slip.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Slip numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slip.FieldAmount) {
		fields = append(fields, slip.FieldAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlipMutation) ClearField(name string) error {
	switch name {
	case slip.FieldAmount:
		m.ClearAmount()
		return nil
	}
	return fmt.Errorf("unknown Slip nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlipMutation) ResetField(name string) error {
	switch name {
	case slip.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case slip.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case slip.FieldFilename:
		m.ResetFilename()
		return nil
	case slip.FieldMimeType:
		m.ResetMimeType()
		return nil
	case slip.FieldFileSize:
		m.ResetFileSize()
		return nil
	case slip.FieldAmount:
		m.ResetAmount()
		return nil
	case slip.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Slip field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.participant != nil {
		edges = append(edges, slip.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case slip.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparticipant {
		edges = append(edges, slip.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlipMutation) EdgeCleared(name string) bool {
	switch name {
	case slip.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlipMutation) ClearEdge(name string) error {
	switch name {
	case slip.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown Slip unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlipMutation) ResetEdge(name string) error {
	switch name {
	case slip.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown Slip edge %s", name)
}
