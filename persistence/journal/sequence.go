package journal

import "sync/atomic"

// sequencer generates strictly monotonic sequence numbers for journal
// keys, backed by a single atomic counter. recoverNext uses Reset to
// resume after reopening an existing database.
type sequencer struct {
	next atomic.Uint64
}

// Next returns the sequence number to use for the next append and
// advances the counter.
func (s *sequencer) Next() uint64 {
	return s.next.Add(1) - 1
}

// Current returns the sequence number the next Next() call will hand
// out, without advancing.
func (s *sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset pins the counter to v, used once at Open() to resume past
// whatever a prior process already journaled.
func (s *sequencer) Reset(v uint64) {
	s.next.Store(v)
}
