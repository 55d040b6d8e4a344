package gantt

// MemStore is an in-memory PositionStore. It is the working copy a caller
// hydrates from a chart before running resolutions and reads back afterward;
// it is also how the resolvers are tested without any UI or database present.
type MemStore struct {
	tasks map[string]*Task
	order []string
}

// NewMemStore builds a MemStore holding copies of the given tasks.
func NewMemStore(tasks []Task) *MemStore {
	s := &MemStore{tasks: make(map[string]*Task, len(tasks))}
	for i := range tasks {
		t := tasks[i]
		s.tasks[t.ID] = &t
		s.order = append(s.order, t.ID)
	}
	return s
}

// Task returns the current state of a task by ID.
func (s *MemStore) Task(id string) (Task, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

// SetBar applies a partial bar update; nil patch fields are left unchanged.
func (s *MemStore) SetBar(id string, patch BarPatch) {
	t, ok := s.tasks[id]
	if !ok {
		return
	}
	if patch.X != nil {
		t.Bar.X = *patch.X
	}
	if patch.Y != nil {
		t.Bar.Y = *patch.Y
	}
	if patch.Width != nil {
		t.Bar.Width = *patch.Width
	}
}

// Tasks returns a snapshot of all tasks in insertion order.
func (s *MemStore) Tasks() []Task {
	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.tasks[id])
	}
	return out
}
