package ruuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// ClockSequence is the 14-bit disambiguating counter used by time-based
// generation (versions 1 and 2). It is seeded once from the random source at
// first use and incremented atomically on every call, so UUIDs generated
// within the same clock tick, or after the system clock moves backward,
// still differ.
//
// A ClockSequence is an explicitly-owned object injected into a Generator;
// there is no hidden process-wide counter. Wraparound at 16384 is silent,
// matching RFC 4122 guidance.
type ClockSequence struct {
	randReader io.Reader

	seedOnce sync.Once
	seedErr  error
	counter  atomic.Uint32
}

// NewClockSequence creates a clock sequence seeded lazily from crypto/rand.
func NewClockSequence() *ClockSequence {
	return &ClockSequence{randReader: rand.Reader}
}

// NewClockSequenceWithReader creates a clock sequence seeded lazily from a
// custom random source. This is primarily useful for testing.
func NewClockSequenceWithReader(r io.Reader) *ClockSequence {
	return &ClockSequence{randReader: r}
}

// NewClockSequenceSeeded creates a clock sequence starting at the given
// value. No entropy is consumed, which makes generation fully deterministic.
func NewClockSequenceSeeded(seed uint16) *ClockSequence {
	c := &ClockSequence{}
	c.seedOnce.Do(func() {
		c.counter.Store(uint32(seed & 0x3fff))
	})
	return c
}

// Next returns the next 14-bit sequence value via an atomic fetch-and-add.
// Concurrent callers each observe a distinct successor value modulo 16384.
// The only failure mode is an unreadable random source during first-use
// seeding, surfaced as ErrEntropyUnavailable.
func (c *ClockSequence) Next() (uint16, error) {
	c.seedOnce.Do(c.seed)
	if c.seedErr != nil {
		return 0, c.seedErr
	}
	return uint16(c.counter.Add(1)-1) & 0x3fff, nil
}

func (c *ClockSequence) seed() {
	var buf [2]byte
	if _, err := io.ReadFull(c.randReader, buf[:]); err != nil {
		c.seedErr = fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		return
	}
	c.counter.Store(uint32(binary.BigEndian.Uint16(buf[:])))
}
