// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/corelearn/ent/courseevent"
)

// CourseEventCreate is the builder for creating a CourseEvent entity.
type CourseEventCreate struct {
	config
	mutation *CourseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CourseEventCreate) SetSequence(v int64) *CourseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CourseEventCreate) SetTimestamp(v time.Time) *CourseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CourseEventCreate) SetNillableTimestamp(v *time.Time) *CourseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *CourseEventCreate) SetTopic(v string) *CourseEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CourseEventCreate) SetTitle(v string) *CourseEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CourseEventCreate) SetDifficulty(v string) *CourseEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *CourseEventCreate) SetNillableDifficulty(v *string) *CourseEventCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetModuleCount sets the "module_count" field.
func (_c *CourseEventCreate) SetModuleCount(v int) *CourseEventCreate {
	_c.mutation.SetModuleCount(v)
	return _c
}

// SetLessonCount sets the "lesson_count" field.
func (_c *CourseEventCreate) SetLessonCount(v int) *CourseEventCreate {
	_c.mutation.SetLessonCount(v)
	return _c
}

// SetExamQuestionCount sets the "exam_question_count" field.
func (_c *CourseEventCreate) SetExamQuestionCount(v int) *CourseEventCreate {
	_c.mutation.SetExamQuestionCount(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *CourseEventCreate) SetModel(v string) *CourseEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *CourseEventCreate) SetNillableModel(v *string) *CourseEventCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// Mutation returns the CourseEventMutation object of the builder.
func (_c *CourseEventCreate) Mutation() *CourseEventMutation {
	return _c.mutation
}

// Save creates the CourseEvent in the database.
func (_c *CourseEventCreate) Save(ctx context.Context) (*CourseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseEventCreate) SaveX(ctx context.Context) *CourseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := courseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := courseevent.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := courseevent.DefaultModel
		_c.mutation.SetModel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CourseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CourseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "CourseEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := courseevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CourseEvent.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := courseevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CourseEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.ModuleCount(); !ok {
		return &ValidationError{Name: "module_count", err: errors.New(`ent: missing required field "CourseEvent.module_count"`)}
	}
	if _, ok := _c.mutation.LessonCount(); !ok {
		return &ValidationError{Name: "lesson_count", err: errors.New(`ent: missing required field "CourseEvent.lesson_count"`)}
	}
	if _, ok := _c.mutation.ExamQuestionCount(); !ok {
		return &ValidationError{Name: "exam_question_count", err: errors.New(`ent: missing required field "CourseEvent.exam_question_count"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "CourseEvent.model"`)}
	}
	return nil
}

func (_c *CourseEventCreate) sqlSave(ctx context.Context) (*CourseEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseEventCreate) createSpec() (*CourseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courseevent.Table, sqlgraph.NewFieldSpec(courseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(courseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(courseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(courseevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(courseevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(courseevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ModuleCount(); ok {
		_spec.SetField(courseevent.FieldModuleCount, field.TypeInt, value)
		_node.ModuleCount = value
	}
	if value, ok := _c.mutation.LessonCount(); ok {
		_spec.SetField(courseevent.FieldLessonCount, field.TypeInt, value)
		_node.LessonCount = value
	}
	if value, ok := _c.mutation.ExamQuestionCount(); ok {
		_spec.SetField(courseevent.FieldExamQuestionCount, field.TypeInt, value)
		_node.ExamQuestionCount = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(courseevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	return _node, _spec
}

// CourseEventCreateBulk is the builder for creating many CourseEvent entities in bulk.
type CourseEventCreateBulk struct {
	config
	err      error
	builders []*CourseEventCreate
}

// Save creates the CourseEvent entities in the database.
func (_c *CourseEventCreateBulk) Save(ctx context.Context) ([]*CourseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CourseEventCreateBulk) SaveX(ctx context.Context) []*CourseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
