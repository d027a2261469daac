package ruuid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"
)

// Generator produces RFC 4122 UUIDs. Every collaborator is injected: the
// random source, the wall clock, the clock sequence and the system id
// lookup, so generation can be made fully deterministic in tests.
//
// A Generator is safe for concurrent use; the clock sequence is the only
// mutable state shared between calls and it advances atomically.
type Generator struct {
	randReader io.Reader
	now        func() time.Time
	seq        *ClockSequence
	sysID      SysIDProvider

	nodeMu  sync.Mutex
	node    NodeID
	hasNode bool
}

// NewGenerator creates a generator backed by crypto/rand, the system clock
// and the operating system's user/group id lookup.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		now:        time.Now,
		seq:        NewClockSequence(),
		sysID:      osSysID{},
	}
}

// NewGeneratorWithReader creates a generator with a custom random source.
// The source feeds v4 generation, clock sequence seeding and the random
// node fallback. This is primarily useful for testing with deterministic
// random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
		now:        time.Now,
		seq:        NewClockSequenceWithReader(r),
		sysID:      osSysID{},
	}
}

// SetClockSequence replaces the generator's clock sequence. Combined with
// NewClockSequenceSeeded this pins the sequence values of subsequent v1/v2
// UUIDs.
func (g *Generator) SetClockSequence(seq *ClockSequence) {
	g.seq = seq
}

// SetNodeID pins the node field used by v1/v2 generation, bypassing the
// interface lookup.
func (g *Generator) SetNodeID(node NodeID) {
	g.nodeMu.Lock()
	g.node = node
	g.hasNode = true
	g.nodeMu.Unlock()
}

// SetSysIDProvider replaces the user/group id lookup used by v2 generation.
func (g *Generator) SetSysIDProvider(p SysIDProvider) {
	g.sysID = p
}

// SetClock replaces the wall clock used by v1/v2 generation.
// This is primarily useful for testing.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// nodeID resolves the node field once: a pinned node if set, otherwise the
// first hardware interface address, otherwise a random node with the
// multicast bit set. The resolved value is cached for the generator's
// lifetime so all its v1/v2 UUIDs share one node identity.
func (g *Generator) nodeID() (NodeID, error) {
	g.nodeMu.Lock()
	defer g.nodeMu.Unlock()

	if g.hasNode {
		return g.node, nil
	}

	node, err := InterfaceNodeID("")
	if err != nil {
		node, err = RandomNodeID(g.randReader)
		if err != nil {
			return NodeID{}, err
		}
	}

	g.node = node
	g.hasNode = true
	return node, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = ruuid.Must(ruuid.NewV4())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the NewV* functions
var defaultGenerator = NewGenerator()

// NewV1 generates a time-based UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}

// NewV2 generates a DCE-security UUID for the person or group domain using
// the default generator.
func NewV2(domain Domain) (UUID, error) {
	return defaultGenerator.NewV2(domain)
}

// NewV2Org generates a DCE-security UUID embedding a caller-supplied
// organization id, using the default generator.
func NewV2Org(id uint32) (UUID, error) {
	return defaultGenerator.NewV2Org(id)
}

// NewV4 generates a random UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}
