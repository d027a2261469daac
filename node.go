package ruuid

import (
	"fmt"
	"io"
	"net"
)

// NodeID is the 48-bit node field of a time-based UUID, normally an
// IEEE-802 hardware address.
type NodeID [6]byte

// String returns the node id as 12 lowercase hex characters
func (n NodeID) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x%02x%02x", n[0], n[1], n[2], n[3], n[4], n[5])
}

// InterfaceNodeID returns the hardware address of the named network
// interface, or of the first interface carrying a usable address when name
// is empty. It fails when no interface can supply a 6-byte address; callers
// decide whether to fall back to RandomNodeID.
func InterfaceNodeID(name string) (NodeID, error) {
	var node NodeID

	ifaces, err := net.Interfaces()
	if err != nil {
		return node, fmt.Errorf("ruuid: list interfaces: %w", err)
	}

	for _, iface := range ifaces {
		if name != "" && iface.Name != name {
			continue
		}
		if len(iface.HardwareAddr) >= 6 {
			copy(node[:], iface.HardwareAddr)
			return node, nil
		}
	}

	return node, fmt.Errorf("ruuid: no interface with a hardware address (want %q)", name)
}

// RandomNodeID draws a 6-byte node id from r with the multicast bit set, the
// RFC 4122 marker for node ids that are not IEEE-802 addresses. A random
// node is never mistaken for a real hardware address and never zero-filled.
func RandomNodeID(r io.Reader) (NodeID, error) {
	var node NodeID
	if _, err := io.ReadFull(r, node[:]); err != nil {
		return node, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	node[0] |= 0x01
	return node, nil
}
