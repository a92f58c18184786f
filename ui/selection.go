package ui

// selection is the highlighted row index over the displayed rows.
// Invariant after clamp: 0 <= index < max(1, count); index 0 with zero
// rows means "nothing selected".
type selection struct {
	index int
}

// clamp re-validates the index after the row count changed. Must run after
// every new snapshot (and after filter or sort changes), before any render.
func (s *selection) clamp(count int) {
	if count == 0 {
		s.index = 0
	} else if s.index >= count {
		s.index = count - 1
	}
}

// move shifts the index by delta, clamped to [0, count-1]. No-op when
// there are no rows, so navigation at the boundaries does nothing.
func (s *selection) move(delta, count int) {
	if count == 0 {
		return
	}
	s.index += delta
	if s.index < 0 {
		s.index = 0
	}
	if s.index > count-1 {
		s.index = count - 1
	}
}
