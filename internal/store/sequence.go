package store

// sequencer orders responses of overlapping requests. Callers hold the owner's lock.
type sequencer struct {
	issued  uint64
	applied uint64
}

func (s *sequencer) next() uint64 {
	s.issued++
	return s.issued
}

// accept reports whether a response for seq is still newer than the last applied one.
func (s *sequencer) accept(seq uint64) bool {
	if seq < s.applied {
		return false
	}
	s.applied = seq
	return true
}
