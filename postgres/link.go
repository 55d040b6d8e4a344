package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/gantt"
)

// AddLink inserts a single link into a chart.
// If link.ID is empty, a UUID is auto-generated.
// Validates that adding this link does not create a cycle among elastic links.
// Returns the link ID (generated or provided).
func (s *PGStore) AddLink(ctx context.Context, chartID string, link *gantt.Link) (string, error) {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if !link.Type.IsValid() {
		link.Type = gantt.FinishToStart
	}

	// Fetch existing links + tasks for cycle detection.
	tasks, err := s.ListTasks(ctx, chartID)
	if err != nil {
		return "", err
	}
	links, err := s.ListLinks(ctx, chartID)
	if err != nil {
		return "", err
	}

	// Append the new link and validate.
	links = append(links, *link)
	if err := gantt.Validate(tasks, links); err != nil {
		return "", err
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO gantt_links (id, chart_id, from_task_id, to_task_id, link_type, lag, elastic) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		link.ID, chartID, link.From, link.To, link.Type.String(), link.Lag, link.Elastic,
	)
	if err != nil {
		return "", fmt.Errorf("gantt: insert link: %w", err)
	}

	return link.ID, nil
}

// GetLink fetches a single link by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetLink(ctx context.Context, linkID string) (*gantt.Link, error) {
	var l gantt.Link
	err := s.db.QueryRow(ctx,
		`SELECT id, from_task_id, to_task_id, link_type, lag, elastic FROM gantt_links WHERE id = $1`, linkID,
	).Scan(&l.ID, &l.From, &l.To, &l.Type, &l.Lag, &l.Elastic)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("gantt: get link: %w", err)
	}

	return &l, nil
}

// UpdateLink updates an existing link's endpoints, type, lag and elasticity.
// Validates that the update does not create a cycle among elastic links.
// Returns ErrLinkNotFound if the link doesn't exist.
func (s *PGStore) UpdateLink(ctx context.Context, link *gantt.Link) error {
	// First find the link's chart_id.
	var chartID string
	err := s.db.QueryRow(ctx,
		`SELECT chart_id FROM gantt_links WHERE id = $1`, link.ID,
	).Scan(&chartID)
	if err != nil {
		if isNoRows(err) {
			return gantt.ErrLinkNotFound
		}
		return fmt.Errorf("gantt: find link: %w", err)
	}

	// Fetch existing data for cycle detection.
	tasks, err := s.ListTasks(ctx, chartID)
	if err != nil {
		return err
	}
	existingLinks, err := s.ListLinks(ctx, chartID)
	if err != nil {
		return err
	}

	// Replace the updated link in the list.
	for i, l := range existingLinks {
		if l.ID == link.ID {
			existingLinks[i] = *link
			break
		}
	}

	if err := gantt.Validate(tasks, existingLinks); err != nil {
		return err
	}

	ct, err := s.db.Exec(ctx,
		`UPDATE gantt_links SET from_task_id = $1, to_task_id = $2, link_type = $3, lag = $4, elastic = $5 WHERE id = $6`,
		link.From, link.To, link.Type.String(), link.Lag, link.Elastic, link.ID,
	)
	if err != nil {
		return fmt.Errorf("gantt: update link: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return gantt.ErrLinkNotFound
	}
	return nil
}

// DeleteLink deletes a link by its ID.
// No error if the link doesn't exist.
func (s *PGStore) DeleteLink(ctx context.Context, linkID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM gantt_links WHERE id = $1`, linkID)
	if err != nil {
		return fmt.Errorf("gantt: delete link: %w", err)
	}
	return nil
}

// ListLinks returns all links for a chartID, ordered by created_at. The
// order is what the resolver will clamp in, so it is stable by construction.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListLinks(ctx context.Context, chartID string) ([]gantt.Link, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, from_task_id, to_task_id, link_type, lag, elastic FROM gantt_links WHERE chart_id = $1 ORDER BY created_at`, chartID)
	if err != nil {
		return nil, fmt.Errorf("gantt: list links: %w", err)
	}
	defer rows.Close()

	links := []gantt.Link{}
	for rows.Next() {
		var l gantt.Link
		if err := rows.Scan(&l.ID, &l.From, &l.To, &l.Type, &l.Lag, &l.Elastic); err != nil {
			return nil, fmt.Errorf("gantt: scan link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gantt: rows links: %w", err)
	}

	return links, nil
}
