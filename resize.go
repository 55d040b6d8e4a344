package gantt

// ResolveAfterResize re-validates every link touching taskID after its width
// has changed. A width change shifts the computed bounds without the task
// itself moving, so affected counterparts may need correction even though no
// drag happened.
//
// Corrections are written directly through the store. The forward pass
// re-checks links where the task is the predecessor: elastic successors that
// fell behind the new bound are moved through the movement resolver (which
// may cascade further), non-elastic successors snap to the exact offset
// unless locked, in which case the resize simply does not propagate past
// them. The backward pass only concerns FF and SF links into the task, since
// those types constrain the link through the task's own end, which just
// changed; the task corrects its own X unless locked.
func (r *Resolver) ResolveAfterResize(taskID string) {
	task, ok := r.store.Task(taskID)
	if !ok {
		return
	}

	// Forward: taskID as predecessor.
	for _, l := range r.links {
		if l.From != taskID {
			continue
		}
		succ, ok := r.store.Task(l.To)
		if !ok {
			continue
		}
		lagPx := l.Lag * r.opts.PixelsPerTimeUnit
		minX := MinSuccessorX(l.Type, task.Bar.X, task.Bar.Width, succ.Bar.Width, lagPx)

		if l.Elastic {
			if succ.Bar.X < minX {
				if res := r.resolve(l.To, minX, succ.Bar.Y, 0); res != nil {
					r.apply(res)
				}
			}
			continue
		}
		if succ.Locked {
			continue
		}
		// Fixed links hold the offset exactly, so no compliance check.
		x := minX
		r.store.SetBar(l.To, BarPatch{X: &x})
	}

	if task.Locked {
		return
	}

	// Backward: taskID as successor of an end-constrained link.
	for _, l := range r.links {
		if l.To != taskID || (l.Type != FinishToFinish && l.Type != StartToFinish) {
			continue
		}
		pred, ok := r.store.Task(l.From)
		if !ok {
			continue
		}
		lagPx := l.Lag * r.opts.PixelsPerTimeUnit
		// Re-read own geometry; an earlier link may have moved it.
		task, _ = r.store.Task(taskID)
		minX := MinSuccessorX(l.Type, pred.Bar.X, pred.Bar.Width, task.Bar.Width, lagPx)

		if l.Elastic {
			if task.Bar.X < minX {
				x := minX
				r.store.SetBar(taskID, BarPatch{X: &x})
			}
			continue
		}
		if task.Bar.X != minX {
			x := minX
			r.store.SetBar(taskID, BarPatch{X: &x})
		}
	}
}
