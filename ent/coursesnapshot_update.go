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
	"github.com/abhisek/corelearn/ent/coursesnapshot"
	"github.com/abhisek/corelearn/ent/predicate"
)

// CourseSnapshotUpdate is the builder for updating CourseSnapshot entities.
type CourseSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *CourseSnapshotMutation
}

// Where appends a list predicates to the CourseSnapshotUpdate builder.
func (_u *CourseSnapshotUpdate) Where(ps ...predicate.CourseSnapshot) *CourseSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CourseSnapshotUpdate) SetTopic(v string) *CourseSnapshotUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CourseSnapshotUpdate) SetNillableTopic(v *string) *CourseSnapshotUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseSnapshotUpdate) SetTitle(v string) *CourseSnapshotUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseSnapshotUpdate) SetNillableTitle(v *string) *CourseSnapshotUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *CourseSnapshotUpdate) SetTimestamp(v time.Time) *CourseSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *CourseSnapshotUpdate) SetNillableTimestamp(v *time.Time) *CourseSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CourseSnapshotUpdate) SetData(v map[string]interface{}) *CourseSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the CourseSnapshotMutation object of the builder.
func (_u *CourseSnapshotUpdate) Mutation() *CourseSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := coursesnapshot.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CourseSnapshot.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := coursesnapshot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseSnapshot.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursesnapshot.Table, coursesnapshot.Columns, sqlgraph.NewFieldSpec(coursesnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(coursesnapshot.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(coursesnapshot.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(coursesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(coursesnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseSnapshotUpdateOne is the builder for updating a single CourseSnapshot entity.
type CourseSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseSnapshotMutation
}

// SetTopic sets the "topic" field.
func (_u *CourseSnapshotUpdateOne) SetTopic(v string) *CourseSnapshotUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CourseSnapshotUpdateOne) SetNillableTopic(v *string) *CourseSnapshotUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseSnapshotUpdateOne) SetTitle(v string) *CourseSnapshotUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseSnapshotUpdateOne) SetNillableTitle(v *string) *CourseSnapshotUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *CourseSnapshotUpdateOne) SetTimestamp(v time.Time) *CourseSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *CourseSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *CourseSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CourseSnapshotUpdateOne) SetData(v map[string]interface{}) *CourseSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the CourseSnapshotMutation object of the builder.
func (_u *CourseSnapshotUpdateOne) Mutation() *CourseSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseSnapshotUpdate builder.
func (_u *CourseSnapshotUpdateOne) Where(ps ...predicate.CourseSnapshot) *CourseSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseSnapshotUpdateOne) Select(field string, fields ...string) *CourseSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseSnapshot entity.
func (_u *CourseSnapshotUpdateOne) Save(ctx context.Context) (*CourseSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseSnapshotUpdateOne) SaveX(ctx context.Context) *CourseSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := coursesnapshot.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CourseSnapshot.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := coursesnapshot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseSnapshot.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *CourseSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursesnapshot.Table, coursesnapshot.Columns, sqlgraph.NewFieldSpec(coursesnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coursesnapshot.FieldID)
		for _, f := range fields {
			if !coursesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coursesnapshot.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(coursesnapshot.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(coursesnapshot.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(coursesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(coursesnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &CourseSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
