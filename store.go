package gantt

import (
	"context"
	"errors"
)

var (
	ErrCycleDetected = errors.New("gantt: cycle detected among elastic links")
	ErrTaskNotFound  = errors.New("gantt: task not found")
	ErrLinkNotFound  = errors.New("gantt: link not found")
)

// Store defines the contract for persisting and retrieving charts.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Chart (bulk operations)
	CreateChart(ctx context.Context, c *Chart) (*Chart, error)
	GetChart(ctx context.Context, chartID string) (*Chart, error)
	DeleteChart(ctx context.Context, chartID string) error

	// Tasks
	AddTask(ctx context.Context, chartID string, task *Task) (string, error)
	GetTask(ctx context.Context, taskID string) (*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, taskID string) error
	ListTasks(ctx context.Context, chartID string) ([]Task, error)

	// Links
	AddLink(ctx context.Context, chartID string, link *Link) (string, error)
	GetLink(ctx context.Context, linkID string) (*Link, error)
	UpdateLink(ctx context.Context, link *Link) error
	DeleteLink(ctx context.Context, linkID string) error
	ListLinks(ctx context.Context, chartID string) ([]Link, error)
}

// BarPatch is a partial bar update; nil fields are left unchanged.
type BarPatch struct {
	X     *float64
	Y     *float64
	Width *float64
}

// PositionStore is the narrow contract the resolvers work against: current
// task geometry in, position writes out. Writes must be visible to
// subsequent Task calls within the same resolution pass.
type PositionStore interface {
	Task(id string) (Task, bool)
	SetBar(id string, patch BarPatch)
}
