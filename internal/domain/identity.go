package domain

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

const (
	// InvalidID is the sentinel requesting automatic id assignment.
	InvalidID = -1
	// MaxID is the upper bound (inclusive) for generated identifiers.
	MaxID = 1_000_000
)

var (
	idOnce sync.Once
	idMu   sync.Mutex
	idGen  *rand.Rand
)

// NewID returns a uniformly random identifier in [1, MaxID].
//
// The generator is process-wide state: created on first use, seeded once from
// the operating system's entropy source, and reused for every subsequent call.
func NewID() int {
	idOnce.Do(func() {
		var seed [32]byte
		if _, err := crand.Read(seed[:]); err != nil {
			panic("domain: seeding id generator: " + err.Error())
		}
		idGen = rand.New(rand.NewChaCha8(seed))
	})

	idMu.Lock()
	defer idMu.Unlock()
	return idGen.IntN(MaxID) + 1
}

// resolveID maps the InvalidID sentinel to a generated id and passes every
// other value through verbatim, negative or out-of-range included.
func resolveID(id int) int {
	if id == InvalidID {
		return NewID()
	}
	return id
}
