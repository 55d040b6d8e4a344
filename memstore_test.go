package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreHoldsCopies(t *testing.T) {
	tasks := []Task{{ID: "a", Bar: Bar{X: 1, Width: 10}}}
	s := NewMemStore(tasks)

	tasks[0].Bar.X = 99
	got, ok := s.Task("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Bar.X, "store must not alias the caller's slice")
}

func TestMemStoreSetBarPartialUpdate(t *testing.T) {
	s := NewMemStore([]Task{{ID: "a", Bar: Bar{X: 1, Y: 2, Width: 3, Height: 4}}})

	x, w := 10.0, 30.0
	s.SetBar("a", BarPatch{X: &x, Width: &w})

	got, _ := s.Task("a")
	assert.Equal(t, Bar{X: 10, Y: 2, Width: 30, Height: 4}, got.Bar)
}

func TestMemStoreSetBarUnknownTask(t *testing.T) {
	s := NewMemStore(nil)
	x := 5.0
	s.SetBar("ghost", BarPatch{X: &x}) // must not panic

	_, ok := s.Task("ghost")
	assert.False(t, ok)
}

func TestMemStoreTasksPreserveInsertionOrder(t *testing.T) {
	s := NewMemStore([]Task{{ID: "b"}, {ID: "a"}, {ID: "c"}})
	got := s.Tasks()
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}
