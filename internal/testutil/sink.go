package testutil

import "sync"

// RecordingSink captures every line written to it. It satisfies
// logging.Sink.
type RecordingSink struct {
	mu    sync.Mutex
	lines []string
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{lines: []string{}}
}

// Line records text.
func (s *RecordingSink) Line(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, text)
}

// Lines returns a copy of everything recorded so far.
func (s *RecordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Reset forgets recorded lines.
func (s *RecordingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = s.lines[:0]
}
