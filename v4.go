package ruuid

import (
	"fmt"
	"io"
)

// NewV4 generates a random UUID: 16 bytes from the generator's random
// source with the version and variant bits forced over them, leaving 122
// random bits. An unreadable source surfaces ErrEntropyUnavailable rather
// than returning a valid-looking but non-unique value.
func (g *Generator) NewV4() (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x40 // Version 4
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant 10xx

	return uuid, nil
}
