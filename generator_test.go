package ruuid

import (
	"errors"
	"testing"
)

// failReader always fails, simulating an unreadable entropy source
type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy source closed")
}

// zeroReader returns an endless stream of zero bytes
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestMust(t *testing.T) {
	uuid := Must(NewV4())
	if uuid.IsNil() {
		t.Error("Must() returned nil UUID for successful generation")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	gen := NewGeneratorWithReader(failReader{})
	Must(gen.NewV4())
}

func TestGenerator_SetNodeID(t *testing.T) {
	node := NodeID{0x02, 0x42, 0xac, 0x12, 0x00, 0x02}
	gen := NewGenerator()
	gen.SetNodeID(node)

	uuid, err := gen.NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}

	if got := Unpack(uuid).Node; got != node {
		t.Errorf("node field = %v, want %v", got, node)
	}
}

func TestGenerator_NodeIsStable(t *testing.T) {
	gen := NewGenerator()

	a, err := gen.NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}
	b, err := gen.NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}

	if Unpack(a).Node != Unpack(b).Node {
		t.Error("generator changed node identity between calls")
	}
}

func TestRandomNodeID_MulticastBit(t *testing.T) {
	node, err := RandomNodeID(zeroReader{})
	if err != nil {
		t.Fatalf("RandomNodeID() error = %v", err)
	}
	if node[0]&0x01 != 0x01 {
		t.Errorf("RandomNodeID() multicast bit not set: %v", node)
	}
}

func TestRandomNodeID_EntropyFailure(t *testing.T) {
	_, err := RandomNodeID(failReader{})
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("RandomNodeID() error = %v, want ErrEntropyUnavailable", err)
	}
}

func TestNodeID_String(t *testing.T) {
	node := NodeID{0x02, 0x42, 0xac, 0x12, 0x00, 0x02}
	if got := node.String(); got != "0242ac120002" {
		t.Errorf("String() = %q, want %q", got, "0242ac120002")
	}
}
