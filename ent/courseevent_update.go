// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/corelearn/ent/courseevent"
	"github.com/abhisek/corelearn/ent/predicate"
)

// CourseEventUpdate is the builder for updating CourseEvent entities.
type CourseEventUpdate struct {
	config
	hooks    []Hook
	mutation *CourseEventMutation
}

// Where appends a list predicates to the CourseEventUpdate builder.
func (_u *CourseEventUpdate) Where(ps ...predicate.CourseEvent) *CourseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CourseEventUpdate) SetTopic(v string) *CourseEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableTopic(v *string) *CourseEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseEventUpdate) SetTitle(v string) *CourseEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableTitle(v *string) *CourseEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CourseEventUpdate) SetDifficulty(v string) *CourseEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableDifficulty(v *string) *CourseEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetModuleCount sets the "module_count" field.
func (_u *CourseEventUpdate) SetModuleCount(v int) *CourseEventUpdate {
	_u.mutation.ResetModuleCount()
	_u.mutation.SetModuleCount(v)
	return _u
}

// SetNillableModuleCount sets the "module_count" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableModuleCount(v *int) *CourseEventUpdate {
	if v != nil {
		_u.SetModuleCount(*v)
	}
	return _u
}

// AddModuleCount adds value to the "module_count" field.
func (_u *CourseEventUpdate) AddModuleCount(v int) *CourseEventUpdate {
	_u.mutation.AddModuleCount(v)
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *CourseEventUpdate) SetLessonCount(v int) *CourseEventUpdate {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableLessonCount(v *int) *CourseEventUpdate {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *CourseEventUpdate) AddLessonCount(v int) *CourseEventUpdate {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetExamQuestionCount sets the "exam_question_count" field.
func (_u *CourseEventUpdate) SetExamQuestionCount(v int) *CourseEventUpdate {
	_u.mutation.ResetExamQuestionCount()
	_u.mutation.SetExamQuestionCount(v)
	return _u
}

// SetNillableExamQuestionCount sets the "exam_question_count" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableExamQuestionCount(v *int) *CourseEventUpdate {
	if v != nil {
		_u.SetExamQuestionCount(*v)
	}
	return _u
}

// AddExamQuestionCount adds value to the "exam_question_count" field.
func (_u *CourseEventUpdate) AddExamQuestionCount(v int) *CourseEventUpdate {
	_u.mutation.AddExamQuestionCount(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *CourseEventUpdate) SetModel(v string) *CourseEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableModel(v *string) *CourseEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the CourseEventMutation object of the builder.
func (_u *CourseEventUpdate) Mutation() *CourseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEventUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := courseevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := courseevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseevent.Table, courseevent.Columns, sqlgraph.NewFieldSpec(courseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(courseevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(courseevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(courseevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleCount(); ok {
		_spec.SetField(courseevent.FieldModuleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleCount(); ok {
		_spec.AddField(courseevent.FieldModuleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(courseevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(courseevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamQuestionCount(); ok {
		_spec.SetField(courseevent.FieldExamQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamQuestionCount(); ok {
		_spec.AddField(courseevent.FieldExamQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(courseevent.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseEventUpdateOne is the builder for updating a single CourseEvent entity.
type CourseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseEventMutation
}

// SetTopic sets the "topic" field.
func (_u *CourseEventUpdateOne) SetTopic(v string) *CourseEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableTopic(v *string) *CourseEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseEventUpdateOne) SetTitle(v string) *CourseEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableTitle(v *string) *CourseEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CourseEventUpdateOne) SetDifficulty(v string) *CourseEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableDifficulty(v *string) *CourseEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetModuleCount sets the "module_count" field.
func (_u *CourseEventUpdateOne) SetModuleCount(v int) *CourseEventUpdateOne {
	_u.mutation.ResetModuleCount()
	_u.mutation.SetModuleCount(v)
	return _u
}

// SetNillableModuleCount sets the "module_count" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableModuleCount(v *int) *CourseEventUpdateOne {
	if v != nil {
		_u.SetModuleCount(*v)
	}
	return _u
}

// AddModuleCount adds value to the "module_count" field.
func (_u *CourseEventUpdateOne) AddModuleCount(v int) *CourseEventUpdateOne {
	_u.mutation.AddModuleCount(v)
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *CourseEventUpdateOne) SetLessonCount(v int) *CourseEventUpdateOne {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableLessonCount(v *int) *CourseEventUpdateOne {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *CourseEventUpdateOne) AddLessonCount(v int) *CourseEventUpdateOne {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetExamQuestionCount sets the "exam_question_count" field.
func (_u *CourseEventUpdateOne) SetExamQuestionCount(v int) *CourseEventUpdateOne {
	_u.mutation.ResetExamQuestionCount()
	_u.mutation.SetExamQuestionCount(v)
	return _u
}

// SetNillableExamQuestionCount sets the "exam_question_count" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableExamQuestionCount(v *int) *CourseEventUpdateOne {
	if v != nil {
		_u.SetExamQuestionCount(*v)
	}
	return _u
}

// AddExamQuestionCount adds value to the "exam_question_count" field.
func (_u *CourseEventUpdateOne) AddExamQuestionCount(v int) *CourseEventUpdateOne {
	_u.mutation.AddExamQuestionCount(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *CourseEventUpdateOne) SetModel(v string) *CourseEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableModel(v *string) *CourseEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the CourseEventMutation object of the builder.
func (_u *CourseEventUpdateOne) Mutation() *CourseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseEventUpdate builder.
func (_u *CourseEventUpdateOne) Where(ps ...predicate.CourseEvent) *CourseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseEventUpdateOne) Select(field string, fields ...string) *CourseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseEvent entity.
func (_u *CourseEventUpdateOne) Save(ctx context.Context) (*CourseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEventUpdateOne) SaveX(ctx context.Context) *CourseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEventUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := courseevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := courseevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseEventUpdateOne) sqlSave(ctx context.Context) (_node *CourseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseevent.Table, courseevent.Columns, sqlgraph.NewFieldSpec(courseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseevent.FieldID)
		for _, f := range fields {
			if !courseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courseevent.FieldID {
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
		_spec.SetField(courseevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(courseevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(courseevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleCount(); ok {
		_spec.SetField(courseevent.FieldModuleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleCount(); ok {
		_spec.AddField(courseevent.FieldModuleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(courseevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(courseevent.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamQuestionCount(); ok {
		_spec.SetField(courseevent.FieldExamQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamQuestionCount(); ok {
		_spec.AddField(courseevent.FieldExamQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(courseevent.FieldModel, field.TypeString, value)
	}
	_node = &CourseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
