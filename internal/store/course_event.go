package store

import (
	"context"
	"fmt"

	"github.com/abhisek/corelearn/ent"
	"github.com/abhisek/corelearn/ent/courseevent"
)

func (r *eventRepo) AppendCourseEvent(ctx context.Context, data CourseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CourseEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetTitle(data.Title).
		SetDifficulty(data.Difficulty).
		SetModuleCount(data.ModuleCount).
		SetLessonCount(data.LessonCount).
		SetExamQuestionCount(data.ExamQuestionCount).
		SetModel(data.Model).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save course event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCourseEvents(ctx context.Context, opts QueryOpts) ([]CourseEventRecord, error) {
	q := r.client.CourseEvent.Query().
		Order(ent.Desc(courseevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(courseevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query course events: %w", err)
	}

	out := make([]CourseEventRecord, len(events))
	for i, e := range events {
		out[i] = CourseEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			CourseEventData: CourseEventData{
				Topic:             e.Topic,
				Title:             e.Title,
				Difficulty:        e.Difficulty,
				ModuleCount:       e.ModuleCount,
				LessonCount:       e.LessonCount,
				ExamQuestionCount: e.ExamQuestionCount,
				Model:             e.Model,
			},
		}
	}
	return out, nil
}
