package gantt

// LinkType identifies which of a predecessor's and successor's edges a
// dependency relates: finish-to-start, start-to-start, finish-to-finish
// or start-to-finish.
type LinkType string

const (
	FinishToStart  LinkType = "FS"
	StartToStart   LinkType = "SS"
	FinishToFinish LinkType = "FF"
	StartToFinish  LinkType = "SF"
)

// IsValid reports whether t is one of the four known link types.
func (t LinkType) IsValid() bool {
	switch t {
	case FinishToStart, StartToStart, FinishToFinish, StartToFinish:
		return true
	default:
		return false
	}
}

// String returns the two-letter code for the link type.
func (t LinkType) String() string { return string(t) }

// Bar is a task's pixel-space geometry. X and Width encode start and
// duration; Y and Height are vertical placement and are never constrained.
type Bar struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Task is a schedulable bar on the chart.
// Ref is a temporary key used only during CreateChart for link wiring — it is never persisted.
// A locked task's X is immutable to the resolver.
type Task struct {
	ID     string `json:"id,omitempty"`
	Ref    string `json:"ref,omitempty"`
	Bar    Bar    `json:"bar"`
	Locked bool   `json:"locked,omitempty"`
}

// Link is a directed precedence constraint from a predecessor task to a
// successor task. Lag is a signed offset in chart time units (scaled to
// pixels by Options.PixelsPerTimeUnit). An elastic link treats the lag as a
// minimum separation; a non-elastic link holds the offset exactly, so the
// two tasks translate as one rigid body.
// FromRef / ToRef are temporary keys used only during CreateChart — they are never persisted.
type Link struct {
	ID      string   `json:"id,omitempty"`
	From    string   `json:"from_task_id,omitempty"`
	To      string   `json:"to_task_id,omitempty"`
	FromRef string   `json:"from_task_ref,omitempty"`
	ToRef   string   `json:"to_task_ref,omitempty"`
	Type    LinkType `json:"type"`
	Lag     float64  `json:"lag"`
	Elastic bool     `json:"elastic"`
}

// Chart is a full schedule: tasks plus the links constraining them.
// Link order is significant — the resolver applies constraints greedily in
// declaration order.
type Chart struct {
	ID    string `json:"id"`
	Tasks []Task `json:"tasks"`
	Links []Link `json:"links"`
}
