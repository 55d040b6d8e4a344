package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/gantt"
)

// AddTask inserts a single task into a chart.
// If task.ID is empty, a UUID is auto-generated.
// Returns the task ID (generated or provided).
func (s *PGStore) AddTask(ctx context.Context, chartID string, task *gantt.Task) (string, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO gantt_tasks (id, chart_id, x, y, width, height, locked) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		task.ID, chartID, task.Bar.X, task.Bar.Y, task.Bar.Width, task.Bar.Height, task.Locked,
	)
	if err != nil {
		return "", fmt.Errorf("gantt: insert task: %w", err)
	}

	return task.ID, nil
}

// GetTask fetches a single task by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetTask(ctx context.Context, taskID string) (*gantt.Task, error) {
	var t gantt.Task
	err := s.db.QueryRow(ctx,
		`SELECT id, x, y, width, height, locked FROM gantt_tasks WHERE id = $1`, taskID,
	).Scan(&t.ID, &t.Bar.X, &t.Bar.Y, &t.Bar.Width, &t.Bar.Height, &t.Locked)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("gantt: get task: %w", err)
	}

	return &t, nil
}

// UpdateTask updates the geometry and lock flag of an existing task.
// Returns ErrTaskNotFound if the task doesn't exist.
func (s *PGStore) UpdateTask(ctx context.Context, task *gantt.Task) error {
	ct, err := s.db.Exec(ctx,
		`UPDATE gantt_tasks SET x = $1, y = $2, width = $3, height = $4, locked = $5 WHERE id = $6`,
		task.Bar.X, task.Bar.Y, task.Bar.Width, task.Bar.Height, task.Locked, task.ID,
	)
	if err != nil {
		return fmt.Errorf("gantt: update task: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return gantt.ErrTaskNotFound
	}
	return nil
}

// DeleteTask deletes a task by its ID.
// Associated links are cascade-deleted by the DB.
// No error if the task doesn't exist.
func (s *PGStore) DeleteTask(ctx context.Context, taskID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM gantt_tasks WHERE id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("gantt: delete task: %w", err)
	}
	return nil
}

// ListTasks returns all tasks for a chartID, ordered by created_at.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListTasks(ctx context.Context, chartID string) ([]gantt.Task, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, x, y, width, height, locked FROM gantt_tasks WHERE chart_id = $1 ORDER BY created_at`, chartID)
	if err != nil {
		return nil, fmt.Errorf("gantt: list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []gantt.Task{}
	for rows.Next() {
		var t gantt.Task
		if err := rows.Scan(&t.ID, &t.Bar.X, &t.Bar.Y, &t.Bar.Width, &t.Bar.Height, &t.Locked); err != nil {
			return nil, fmt.Errorf("gantt: scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gantt: rows tasks: %w", err)
	}

	return tasks, nil
}
