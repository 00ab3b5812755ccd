package testutil

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// DeterministicIDs hands out reproducible UUIDs for tests.
//
// The nth ID is the SHA-1 name-based UUID of "<namespace>/<n>", so two
// sources with the same namespace produce the same sequence.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicIDs struct {
	mu        sync.Mutex
	namespace string
	seq       int64
}

// NewDeterministicIDs creates a source whose first ID is for seq 1.
func NewDeterministicIDs(namespace string) *DeterministicIDs {
	return &DeterministicIDs{namespace: namespace}
}

// Next returns the next ID in the sequence.
func (d *DeterministicIDs) Next() uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", d.namespace, d.seq)))
}

// Reset restarts the sequence. After Reset, Next returns the first ID again.
func (d *DeterministicIDs) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq = 0
}
