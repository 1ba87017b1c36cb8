package calculator

// History is a bounded stack of snapshots for multi-step undo. When full, the
// oldest snapshot is dropped.
type History struct {
	max   int
	snaps []Snapshot
}

func NewHistory(max int) *History {
	return &History{max: max}
}

func (h *History) Push(s Snapshot) {
	if h.max <= 0 {
		return
	}

	h.snaps = append(h.snaps, s)
	if len(h.snaps) > h.max {
		h.snaps = append(h.snaps[:0], h.snaps[len(h.snaps)-h.max:]...)
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, bool) {
	n := len(h.snaps)
	if n == 0 {
		return Snapshot{}, false
	}

	s := h.snaps[n-1]
	h.snaps = h.snaps[:n-1]
	return s, true
}

func (h *History) Len() int {
	return len(h.snaps)
}
