package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/corelearn/ent"
	"github.com/abhisek/corelearn/ent/coursesnapshot"
)

// courseRepo implements CourseRepo using the ent client.
type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) Save(ctx context.Context, sc *SavedCourse) error {
	dataMap, err := rawToMap(sc.Data)
	if err != nil {
		return fmt.Errorf("marshal course data: %w", err)
	}

	create := r.client.CourseSnapshot.Create().
		SetTopic(sc.Topic).
		SetTitle(sc.Title).
		SetData(dataMap)
	if !sc.Timestamp.IsZero() {
		create = create.SetTimestamp(sc.Timestamp)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save course snapshot: %w", err)
	}
	return nil
}

func (r *courseRepo) Latest(ctx context.Context) (*SavedCourse, error) {
	s, err := r.client.CourseSnapshot.Query().
		Order(ent.Desc(coursesnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest course snapshot: %w", err)
	}

	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal course data: %w", err)
	}
	return &SavedCourse{
		ID:        s.ID,
		Topic:     s.Topic,
		Title:     s.Title,
		Timestamp: s.Timestamp,
		Data:      raw,
	}, nil
}

func (r *courseRepo) Prune(ctx context.Context, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	snaps, err := r.client.CourseSnapshot.Query().
		Order(ent.Desc(coursesnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query course snapshots for prune: %w", err)
	}
	if len(snaps) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snaps[0].Timestamp
	_, err = r.client.CourseSnapshot.Delete().
		Where(coursesnapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune course snapshots: %w", err)
	}
	return nil
}

// rawToMap converts raw JSON to map[string]any for ent JSON storage.
func rawToMap(raw json.RawMessage) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
