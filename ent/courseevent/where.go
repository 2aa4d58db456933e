// Code generated by ent, DO NOT EDIT.

package courseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/corelearn/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldTopic, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldTitle, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldDifficulty, v))
}

// ModuleCount applies equality check predicate on the "module_count" field. It's identical to ModuleCountEQ.
func ModuleCount(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldModuleCount, v))
}

// LessonCount applies equality check predicate on the "lesson_count" field. It's identical to LessonCountEQ.
func LessonCount(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldLessonCount, v))
}

// ExamQuestionCount applies equality check predicate on the "exam_question_count" field. It's identical to ExamQuestionCountEQ.
func ExamQuestionCount(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldExamQuestionCount, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldModel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContainsFold(FieldTopic, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContainsFold(FieldTitle, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ModuleCountEQ applies the EQ predicate on the "module_count" field.
func ModuleCountEQ(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldModuleCount, v))
}

// ModuleCountNEQ applies the NEQ predicate on the "module_count" field.
func ModuleCountNEQ(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldModuleCount, v))
}

// ModuleCountIn applies the In predicate on the "module_count" field.
func ModuleCountIn(vs ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldModuleCount, vs...))
}

// ModuleCountNotIn applies the NotIn predicate on the "module_count" field.
func ModuleCountNotIn(vs ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldModuleCount, vs...))
}

// ModuleCountGT applies the GT predicate on the "module_count" field.
func ModuleCountGT(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldModuleCount, v))
}

// ModuleCountGTE applies the GTE predicate on the "module_count" field.
func ModuleCountGTE(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldModuleCount, v))
}

// ModuleCountLT applies the LT predicate on the "module_count" field.
func ModuleCountLT(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldModuleCount, v))
}

// ModuleCountLTE applies the LTE predicate on the "module_count" field.
func ModuleCountLTE(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldModuleCount, v))
}

// LessonCountEQ applies the EQ predicate on the "lesson_count" field.
func LessonCountEQ(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldLessonCount, v))
}

// LessonCountNEQ applies the NEQ predicate on the "lesson_count" field.
func LessonCountNEQ(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldLessonCount, v))
}

// LessonCountIn applies the In predicate on the "lesson_count" field.
func LessonCountIn(vs ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldLessonCount, vs...))
}

// LessonCountNotIn applies the NotIn predicate on the "lesson_count" field.
func LessonCountNotIn(vs ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldLessonCount, vs...))
}

// LessonCountGT applies the GT predicate on the "lesson_count" field.
func LessonCountGT(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldLessonCount, v))
}

// LessonCountGTE applies the GTE predicate on the "lesson_count" field.
func LessonCountGTE(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldLessonCount, v))
}

// LessonCountLT applies the LT predicate on the "lesson_count" field.
func LessonCountLT(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldLessonCount, v))
}

// LessonCountLTE applies the LTE predicate on the "lesson_count" field.
func LessonCountLTE(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldLessonCount, v))
}

// ExamQuestionCountEQ applies the EQ predicate on the "exam_question_count" field.
func ExamQuestionCountEQ(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldExamQuestionCount, v))
}

// ExamQuestionCountNEQ applies the NEQ predicate on the "exam_question_count" field.
func ExamQuestionCountNEQ(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldExamQuestionCount, v))
}

// ExamQuestionCountIn applies the In predicate on the "exam_question_count" field.
func ExamQuestionCountIn(vs ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldExamQuestionCount, vs...))
}

// ExamQuestionCountNotIn applies the NotIn predicate on the "exam_question_count" field.
func ExamQuestionCountNotIn(vs ...int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldExamQuestionCount, vs...))
}

// ExamQuestionCountGT applies the GT predicate on the "exam_question_count" field.
func ExamQuestionCountGT(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldExamQuestionCount, v))
}

// ExamQuestionCountGTE applies the GTE predicate on the "exam_question_count" field.
func ExamQuestionCountGTE(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldExamQuestionCount, v))
}

// ExamQuestionCountLT applies the LT predicate on the "exam_question_count" field.
func ExamQuestionCountLT(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldExamQuestionCount, v))
}

// ExamQuestionCountLTE applies the LTE predicate on the "exam_question_count" field.
func ExamQuestionCountLTE(v int) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldExamQuestionCount, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.CourseEvent {
	return predicate.CourseEvent(sql.FieldContainsFold(FieldModel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseEvent) predicate.CourseEvent {
	return predicate.CourseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseEvent) predicate.CourseEvent {
	return predicate.CourseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseEvent) predicate.CourseEvent {
	return predicate.CourseEvent(sql.NotPredicates(p))
}
