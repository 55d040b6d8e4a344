package gantt

// DefaultMaxDepth bounds how many hops a single drag may cascade through
// the link graph before further propagation is dropped.
const DefaultMaxDepth = 10

// Options configures a Resolver.
type Options struct {
	// PixelsPerTimeUnit scales Link.Lag into pixel space. Zero means 1,
	// i.e. lags are already pixels.
	PixelsPerTimeUnit float64

	// MaxDepth is the cascade ceiling; zero means DefaultMaxDepth. It is a
	// depth cap, not a cycle detector — use Validate to reject cyclic
	// elastic graphs up front.
	MaxDepth int

	// OnDepthExceeded, if set, is called with the task whose cascade was
	// dropped at the ceiling. Exceeding the ceiling is otherwise a silent
	// no-op.
	OnDepthExceeded func(taskID string)
}

func (o Options) withDefaults() Options {
	if o.PixelsPerTimeUnit == 0 {
		o.PixelsPerTimeUnit = 1
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// ResolutionKind distinguishes a lone task update from a rigid-group batch.
type ResolutionKind string

const (
	ResolutionSingle ResolutionKind = "single"
	ResolutionBatch  ResolutionKind = "batch"
)

// Update is one task's resolved position.
type Update struct {
	TaskID string  `json:"task_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Resolution is the outcome of a successful move: either a single update or
// a batch that the caller must apply atomically so a rigid group never
// renders torn. A blocked move is a nil *Resolution, not an error.
type Resolution struct {
	Kind    ResolutionKind `json:"kind"`
	Updates []Update       `json:"updates"`
}

// Resolver computes the consequences of moving or resizing one task under a
// chart's links. It holds no state between calls beyond its configuration:
// every resolution reads the store fresh and runs to completion
// synchronously, so it can be replayed on every drag-move tick.
type Resolver struct {
	store PositionStore
	links []Link
	opts  Options
}

// NewResolver binds a resolver to a position store and an ordered link list.
// The link order is significant: constraints clamp greedily in declaration
// order.
func NewResolver(store PositionStore, links []Link, opts Options) *Resolver {
	return &Resolver{store: store, links: links, opts: opts.withDefaults()}
}

// ResolveMovement resolves a proposal to move taskID to (x, y).
//
// A nil result means the move is blocked: the task (or a member of its rigid
// group) is locked, or the cascade ceiling was reached. Otherwise the result
// holds the position(s) the caller must apply for the dragged task and its
// rigid group; positions of tasks pushed along elastic links have already
// been written to the store as a side effect.
func (r *Resolver) ResolveMovement(taskID string, x, y float64) *Resolution {
	return r.resolve(taskID, x, y, 0)
}

func (r *Resolver) resolve(taskID string, x, y float64, depth int) *Resolution {
	if depth > r.opts.MaxDepth {
		if r.opts.OnDepthExceeded != nil {
			r.opts.OnDepthExceeded(taskID)
		}
		return nil
	}

	task, ok := r.store.Task(taskID)
	if !ok || task.Locked {
		return nil
	}

	// A task touched by any fixed link translates with its whole rigid
	// group, or not at all.
	if group := RigidGroup(taskID, r.links); len(group) > 0 {
		for _, m := range group {
			member, ok := r.store.Task(m.TaskID)
			if !ok || member.Locked {
				return nil
			}
		}
		dx := x - task.Bar.X
		dy := y - task.Bar.Y
		updates := make([]Update, 0, len(group)+1)
		updates = append(updates, Update{TaskID: taskID, X: x, Y: y})
		for _, m := range group {
			member, _ := r.store.Task(m.TaskID)
			updates = append(updates, Update{
				TaskID: m.TaskID,
				X:      member.Bar.X + dx,
				Y:      member.Bar.Y + dy,
			})
		}
		return &Resolution{Kind: ResolutionBatch, Updates: updates}
	}

	finalX := x
	for _, l := range r.links {
		if !l.Elastic {
			continue
		}
		lagPx := l.Lag * r.opts.PixelsPerTimeUnit

		switch taskID {
		case l.From:
			succ, ok := r.store.Task(l.To)
			if !ok {
				continue
			}
			push := PushAmount(l.Type, finalX, task.Bar.Width, succ.Bar, lagPx)
			if push <= 0 {
				continue
			}
			if succ.Locked {
				// The counterpart cannot be pushed; shrink this move to
				// the largest X that keeps it compliant in place.
				if maxX := MaxPredecessorX(l.Type, succ.Bar.X, task.Bar.Width, succ.Bar.Width, lagPx); maxX < finalX {
					finalX = maxX
				}
				continue
			}
			// Cascade: pushed counterparts land in the store immediately so
			// later links in this pass see their new positions. A blocked
			// cascade is dropped without clamping the dragged task.
			if res := r.resolve(l.To, succ.Bar.X+push, succ.Bar.Y, depth+1); res != nil {
				r.apply(res)
			}
		case l.To:
			pred, ok := r.store.Task(l.From)
			if !ok {
				continue
			}
			// A successor cannot be dragged earlier than its predecessor
			// allows.
			if minX := MinSuccessorX(l.Type, pred.Bar.X, pred.Bar.Width, task.Bar.Width, lagPx); finalX < minX {
				finalX = minX
			}
		}
	}

	return &Resolution{
		Kind:    ResolutionSingle,
		Updates: []Update{{TaskID: taskID, X: finalX, Y: y}},
	}
}

// apply writes a resolution's updates to the store.
func (r *Resolver) apply(res *Resolution) {
	for _, u := range res.Updates {
		x, y := u.X, u.Y
		r.store.SetBar(u.TaskID, BarPatch{X: &x, Y: &y})
	}
}

// Apply writes a resolution to the resolver's store. Batch updates land in
// one loop with no reads in between, so a rigid group is never observed
// torn.
func (r *Resolver) Apply(res *Resolution) {
	if res != nil {
		r.apply(res)
	}
}
