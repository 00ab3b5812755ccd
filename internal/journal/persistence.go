package journal

import (
	"errors"
	"fmt"

	"github.com/roach88/solid/internal/logging"
)

// ErrNotSupported is returned by Load: the stub has nowhere to read from.
var ErrNotSupported = errors.New("journal: loading is not supported")

// Persistence stands in for journal storage. It writes what it would do
// to a sink and touches no files.
type Persistence struct {
	sink logging.Sink
}

// NewPersistence creates a Persistence that reports to sink.
func NewPersistence(sink logging.Sink) *Persistence {
	if sink == nil {
		sink = logging.Discard
	}
	return &Persistence{sink: sink}
}

// Save reports the target name followed by the journal text.
func (p *Persistence) Save(j *Journal, filename string) {
	p.sink.Line(fmt.Sprintf("Saving to file: %s", filename))
	p.sink.Line(j.String())
}

// Load reports the source name and fails with ErrNotSupported.
func (p *Persistence) Load(filename string) (*Journal, error) {
	p.sink.Line(fmt.Sprintf("Loading from file: %s", filename))
	return nil, ErrNotSupported
}
