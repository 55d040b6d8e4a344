package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsAcyclicGraph(t *testing.T) {
	tasks := []Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	links := []Link{
		{ID: "l1", From: "a", To: "b", Elastic: true},
		{ID: "l2", From: "a", To: "c", Elastic: true},
		{ID: "l3", From: "b", To: "c", Elastic: true},
	}
	assert.NoError(t, Validate(tasks, links))
}

func TestValidateRejectsUnknownEndpoints(t *testing.T) {
	tasks := []Task{{ID: "a"}}

	err := Validate(tasks, []Link{{ID: "l1", From: "ghost", To: "a"}})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = Validate(tasks, []Link{{ID: "l2", From: "a", To: "ghost"}})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestValidateRejectsElasticCycle(t *testing.T) {
	tasks := []Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	links := []Link{
		{From: "a", To: "b", Elastic: true},
		{From: "b", To: "c", Elastic: true},
		{From: "c", To: "a", Elastic: true},
	}
	assert.ErrorIs(t, Validate(tasks, links), ErrCycleDetected)
}

func TestValidateAllowsFixedCycle(t *testing.T) {
	// Rigid groups may close on themselves; the traversal handles them, so
	// only elastic cycles are rejected.
	tasks := []Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	links := []Link{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "a"},
	}
	assert.NoError(t, Validate(tasks, links))
}

func TestValidateMixedCycleNotRejectedWhenFixedEdgeBreaksIt(t *testing.T) {
	tasks := []Task{{ID: "a"}, {ID: "b"}}
	links := []Link{
		{From: "a", To: "b", Elastic: true},
		{From: "b", To: "a"}, // fixed, not part of the elastic graph
	}
	assert.NoError(t, Validate(tasks, links))
}

func TestValidateEmptyChart(t *testing.T) {
	assert.NoError(t, Validate(nil, nil))
}
