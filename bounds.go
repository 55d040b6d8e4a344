package gantt

// Positional bounds implied by a link type. All values are in pixel space;
// lagPx must already be scaled by Options.PixelsPerTimeUnit. predX is the
// predecessor's prospective X, which lets a mid-drag caller evaluate bounds
// against the position the predecessor is about to take rather than the one
// it currently holds.

// MinSuccessorX returns the smallest legal X for the successor of a link of
// the given type. An unknown type falls back to finish-to-start semantics.
func MinSuccessorX(t LinkType, predX, predWidth, succWidth, lagPx float64) float64 {
	switch t {
	case StartToStart:
		return predX + lagPx
	case FinishToFinish:
		return predX + predWidth - succWidth + lagPx
	case StartToFinish:
		return predX - succWidth + lagPx
	default: // FinishToStart
		return predX + predWidth + lagPx
	}
}

// MaxPredecessorX returns the largest legal X for the predecessor given a
// successor fixed at succX. Each case is the algebraic inverse of the
// corresponding MinSuccessorX formula; it is used when the successor cannot
// move, e.g. because it is locked.
func MaxPredecessorX(t LinkType, succX, predWidth, succWidth, lagPx float64) float64 {
	switch t {
	case StartToStart:
		return succX - lagPx
	case FinishToFinish:
		return succX + succWidth - predWidth - lagPx
	case StartToFinish:
		return succX + succWidth - lagPx
	default: // FinishToStart
		return succX - predWidth - lagPx
	}
}

// PushAmount returns how far the successor must be displaced forward to stay
// legal once the predecessor sits at predX; zero if it is already compliant.
// A link never pulls a successor backward.
func PushAmount(t LinkType, predX, predWidth float64, succ Bar, lagPx float64) float64 {
	gap := MinSuccessorX(t, predX, predWidth, succ.Width, lagPx) - succ.X
	if gap < 0 {
		return 0
	}
	return gap
}
