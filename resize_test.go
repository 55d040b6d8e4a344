package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setWidth(s *MemStore, id string, w float64) {
	s.SetBar(id, BarPatch{Width: &w})
}

func TestResizePushesElasticSuccessorForward(t *testing.T) {
	// Widening the predecessor moves its finish past the successor's start.
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 0, Width: 100}},
		{ID: "succ", Bar: Bar{X: 100, Width: 50}},
	})
	links := []Link{{From: "pred", To: "succ", Type: FinishToStart, Elastic: true}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "pred", 150)
	r.ResolveAfterResize("pred")

	assert.Equal(t, 150.0, taskX(t, s, "succ"))
}

func TestResizeLeavesCompliantElasticSuccessorAlone(t *testing.T) {
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 0, Width: 100}},
		{ID: "succ", Bar: Bar{X: 300, Width: 50}},
	})
	links := []Link{{From: "pred", To: "succ", Type: FinishToStart, Elastic: true}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "pred", 150)
	r.ResolveAfterResize("pred")

	assert.Equal(t, 300.0, taskX(t, s, "succ"))
}

func TestResizeSnapsFixedSuccessorToExactOffset(t *testing.T) {
	// Fixed links hold the exact offset in both directions, so the
	// successor snaps even when it sits beyond the bound.
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 0, Width: 100}},
		{ID: "succ", Bar: Bar{X: 200, Width: 50}},
	})
	links := []Link{{From: "pred", To: "succ", Type: FinishToStart, Lag: 0}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "pred", 120)
	r.ResolveAfterResize("pred")

	assert.Equal(t, 120.0, taskX(t, s, "succ"))
}

func TestResizeDoesNotPropagatePastLockedFixedSuccessor(t *testing.T) {
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 0, Width: 100}},
		{ID: "succ", Bar: Bar{X: 100, Width: 50}, Locked: true},
	})
	links := []Link{{From: "pred", To: "succ", Type: FinishToStart}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "pred", 150)
	r.ResolveAfterResize("pred")

	assert.Equal(t, 100.0, taskX(t, s, "succ"))
}

func TestResizeCascadesThroughMovementResolver(t *testing.T) {
	// The pushed successor has its own elastic successor; the resize
	// propagates through both hops.
	s := NewMemStore([]Task{
		{ID: "a", Bar: Bar{X: 0, Width: 100}},
		{ID: "b", Bar: Bar{X: 100, Width: 50}},
		{ID: "c", Bar: Bar{X: 150, Width: 50}},
	})
	links := []Link{
		{From: "a", To: "b", Type: FinishToStart, Elastic: true},
		{From: "b", To: "c", Type: FinishToStart, Elastic: true},
	}
	r := NewResolver(s, links, Options{})

	setWidth(s, "a", 140)
	r.ResolveAfterResize("a")

	assert.Equal(t, 140.0, taskX(t, s, "b"))
	assert.Equal(t, 190.0, taskX(t, s, "c"))
}

func TestResizeBackwardPassCorrectsFinishToFinish(t *testing.T) {
	// FF constrains the successor's own end. Shrinking the successor
	// raises its minimum start, so its X must be corrected.
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 0, Width: 100}},
		{ID: "task", Bar: Bar{X: 60, Width: 40}},
	})
	links := []Link{{From: "pred", To: "task", Type: FinishToFinish, Elastic: true}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "task", 20)
	r.ResolveAfterResize("task")

	// min = predX + predWidth - succWidth = 0 + 100 - 20 = 80
	assert.Equal(t, 80.0, taskX(t, s, "task"))
}

func TestResizeBackwardPassHoldsFixedOffsetExactly(t *testing.T) {
	// A fixed SF link re-pins the successor after its width changes, in
	// either direction.
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 100, Width: 50}},
		{ID: "task", Bar: Bar{X: 60, Width: 40}},
	})
	links := []Link{{From: "pred", To: "task", Type: StartToFinish}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "task", 70)
	r.ResolveAfterResize("task")

	// min = predX - succWidth = 100 - 70 = 30, held exactly.
	assert.Equal(t, 30.0, taskX(t, s, "task"))
}

func TestResizeBackwardPassSkipsStartAnchoredTypes(t *testing.T) {
	// FS and SS bound the successor's start, which a width change does not
	// alter; the backward pass must leave such links alone.
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 0, Width: 100}},
		{ID: "task", Bar: Bar{X: 100, Width: 40}},
	})
	links := []Link{{From: "pred", To: "task", Type: FinishToStart, Elastic: true}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "task", 10)
	r.ResolveAfterResize("task")

	assert.Equal(t, 100.0, taskX(t, s, "task"))
}

func TestResizeNeverMovesLockedTask(t *testing.T) {
	s := NewMemStore([]Task{
		{ID: "pred", Bar: Bar{X: 0, Width: 100}},
		{ID: "task", Bar: Bar{X: 60, Width: 40}, Locked: true},
	})
	links := []Link{{From: "pred", To: "task", Type: FinishToFinish, Elastic: true}}
	r := NewResolver(s, links, Options{})

	setWidth(s, "task", 20)
	r.ResolveAfterResize("task")

	assert.Equal(t, 60.0, taskX(t, s, "task"))
}

func TestResizeUnknownTaskIsNoOp(t *testing.T) {
	s := NewMemStore([]Task{{ID: "a", Bar: Bar{X: 0, Width: 10}}})
	r := NewResolver(s, nil, Options{})
	r.ResolveAfterResize("ghost")
	assert.Equal(t, 0.0, taskX(t, s, "a"))
}
