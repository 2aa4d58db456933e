package store

import (
	"context"
	"fmt"

	"github.com/abhisek/corelearn/ent"
	"github.com/abhisek/corelearn/ent/examevent"
)

func (r *eventRepo) AppendExamEvent(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetCourseTitle(data.CourseTitle).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPercentage(data.Percentage).
		SetPassed(data.Passed).
		SetAttempt(data.Attempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryExamEvents(ctx context.Context, opts QueryOpts) ([]ExamEventRecord, error) {
	q := r.client.ExamEvent.Query().
		Order(ent.Desc(examevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(examevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam events: %w", err)
	}

	out := make([]ExamEventRecord, len(events))
	for i, e := range events {
		out[i] = ExamEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ExamEventData: ExamEventData{
				CourseTitle: e.CourseTitle,
				Score:       e.Score,
				Total:       e.Total,
				Percentage:  e.Percentage,
				Passed:      e.Passed,
				Attempt:     e.Attempt,
			},
		}
	}
	return out, nil
}
