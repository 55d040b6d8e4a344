package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/gantt"
)

// CreateChart saves a full chart (tasks + links) in one transaction.
// Tasks/links without IDs get auto-generated UUIDs.
// Link refs (FromRef/ToRef) are resolved to real task IDs.
// Returns the chart with all IDs filled in.
func (s *PGStore) CreateChart(ctx context.Context, c *gantt.Chart) (*gantt.Chart, error) {
	// Build ref → UUID mapping and assign IDs to tasks.
	refMap := make(map[string]string)
	for i := range c.Tasks {
		t := &c.Tasks[i]
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.Ref != "" {
			refMap[t.Ref] = t.ID
		}
	}

	// Resolve link refs and assign IDs to links.
	for i := range c.Links {
		l := &c.Links[i]
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		if !l.Type.IsValid() {
			l.Type = gantt.FinishToStart
		}
		// Resolve from ref.
		if l.FromRef != "" {
			id, ok := refMap[l.FromRef]
			if !ok {
				return nil, fmt.Errorf("gantt: unknown from_task_ref %q", l.FromRef)
			}
			l.From = id
		}
		// Resolve to ref.
		if l.ToRef != "" {
			id, ok := refMap[l.ToRef]
			if !ok {
				return nil, fmt.Errorf("gantt: unknown to_task_ref %q", l.ToRef)
			}
			l.To = id
		}
	}

	// Reject unknown endpoints and elastic cycles.
	if err := gantt.Validate(c.Tasks, c.Links); err != nil {
		return nil, err
	}

	// Persist in a single transaction.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("gantt: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Delete existing chart data if any (replace semantics).
	if _, err := tx.Exec(ctx, `DELETE FROM gantt_links WHERE chart_id = $1`, c.ID); err != nil {
		return nil, fmt.Errorf("gantt: delete links: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM gantt_tasks WHERE chart_id = $1`, c.ID); err != nil {
		return nil, fmt.Errorf("gantt: delete tasks: %w", err)
	}

	// Insert tasks.
	for _, t := range c.Tasks {
		if _, err := tx.Exec(ctx,
			`INSERT INTO gantt_tasks (id, chart_id, x, y, width, height, locked) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, c.ID, t.Bar.X, t.Bar.Y, t.Bar.Width, t.Bar.Height, t.Locked,
		); err != nil {
			return nil, fmt.Errorf("gantt: insert task %s: %w", t.ID, err)
		}
	}

	// Insert links.
	for _, l := range c.Links {
		if _, err := tx.Exec(ctx,
			`INSERT INTO gantt_links (id, chart_id, from_task_id, to_task_id, link_type, lag, elastic) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			l.ID, c.ID, l.From, l.To, l.Type.String(), l.Lag, l.Elastic,
		); err != nil {
			return nil, fmt.Errorf("gantt: insert link %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("gantt: commit: %w", err)
	}

	// Clear ref fields from response — they are not persisted.
	for i := range c.Tasks {
		c.Tasks[i].Ref = ""
	}
	for i := range c.Links {
		c.Links[i].FromRef = ""
		c.Links[i].ToRef = ""
	}

	return c, nil
}

// GetChart retrieves a full chart (tasks + links) by its ID.
// Returns nil, nil if no tasks exist for the chartID.
func (s *PGStore) GetChart(ctx context.Context, chartID string) (*gantt.Chart, error) {
	c := &gantt.Chart{ID: chartID}

	tasks, err := s.ListTasks(ctx, chartID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	c.Tasks = tasks

	links, err := s.ListLinks(ctx, chartID)
	if err != nil {
		return nil, err
	}
	c.Links = links

	return c, nil
}

// DeleteChart removes all tasks and links for a chartID.
// No error if the chartID doesn't exist.
func (s *PGStore) DeleteChart(ctx context.Context, chartID string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("gantt: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM gantt_links WHERE chart_id = $1`, chartID); err != nil {
		return fmt.Errorf("gantt: delete links: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM gantt_tasks WHERE chart_id = $1`, chartID); err != nil {
		return fmt.Errorf("gantt: delete tasks: %w", err)
	}

	return tx.Commit(ctx)
}
