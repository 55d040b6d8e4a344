package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinSuccessorX(t *testing.T) {
	// pred at x=10 width=100, succ width=40, lag=5
	tests := []struct {
		name string
		typ  LinkType
		want float64
	}{
		{"finish to start", FinishToStart, 10 + 100 + 5},
		{"start to start", StartToStart, 10 + 5},
		{"finish to finish", FinishToFinish, 10 + 100 - 40 + 5},
		{"start to finish", StartToFinish, 10 - 40 + 5},
		{"unknown type falls back to FS", LinkType("??"), 10 + 100 + 5},
		{"empty type falls back to FS", LinkType(""), 10 + 100 + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinSuccessorX(tt.typ, 10, 100, 40, 5))
		})
	}
}

func TestMaxPredecessorXInvertsMinSuccessorX(t *testing.T) {
	types := []LinkType{FinishToStart, StartToStart, FinishToFinish, StartToFinish}
	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			const succX, predWidth, succWidth, lag = 250.0, 80.0, 30.0, 12.0
			predX := MaxPredecessorX(typ, succX, predWidth, succWidth, lag)
			// Placing the predecessor at its maximum makes the successor's
			// minimum land exactly on the successor's position.
			assert.Equal(t, succX, MinSuccessorX(typ, predX, predWidth, succWidth, lag))
		})
	}
}

func TestMaxPredecessorXNegativeLag(t *testing.T) {
	// Negative lag permits overlap: the predecessor may finish after the
	// successor starts.
	got := MaxPredecessorX(FinishToStart, 100, 50, 20, -30)
	assert.Equal(t, 100.0-50+30, got)
}

func TestPushAmount(t *testing.T) {
	succ := Bar{X: 150, Width: 40}

	t.Run("positive when successor falls behind the bound", func(t *testing.T) {
		// pred moving to 200 with width 100: bound is 300, succ sits at 150.
		assert.Equal(t, 150.0, PushAmount(FinishToStart, 200, 100, succ, 0))
	})

	t.Run("zero when already compliant", func(t *testing.T) {
		assert.Zero(t, PushAmount(FinishToStart, 0, 100, succ, 0))
	})

	t.Run("never pulls a successor backward", func(t *testing.T) {
		// succ is far beyond the bound; a link must not drag it back.
		far := Bar{X: 10000, Width: 40}
		assert.Zero(t, PushAmount(StartToStart, 0, 100, far, 20))
	})
}
