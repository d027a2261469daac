package ruuid

import (
	"errors"
	"testing"
)

func TestNewV4(t *testing.T) {
	uuid, err := NewV4()
	if err != nil {
		t.Fatalf("NewV4() error = %v", err)
	}

	if uuid.IsNil() {
		t.Error("NewV4() returned nil UUID")
	}

	if uuid.Version() != VersionRandom {
		t.Errorf("NewV4() version = %v, want %v", uuid.Version(), VersionRandom)
	}

	if uuid.Variant() != VariantRFC4122 {
		t.Errorf("NewV4() variant = %v, want %v", uuid.Variant(), VariantRFC4122)
	}
}

func TestGenerator_NewV4_OnlyTagBitsForced(t *testing.T) {
	// with an all-zero random source only the version/variant bits survive
	gen := NewGeneratorWithReader(zeroReader{})

	uuid, err := gen.NewV4()
	if err != nil {
		t.Fatalf("NewV4() error = %v", err)
	}

	want := "00000000-0000-4000-8000-000000000000"
	if got := uuid.String(); got != want {
		t.Errorf("NewV4() = %s, want %s", got, want)
	}
}

func TestGenerator_NewV4_EntropyFailure(t *testing.T) {
	gen := NewGeneratorWithReader(failReader{})

	_, err := gen.NewV4()
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("NewV4() error = %v, want ErrEntropyUnavailable", err)
	}
}

func TestNewV4_Uniqueness(t *testing.T) {
	const count = 10000

	seen := make(map[UUID]bool, count)
	for i := 0; i < count; i++ {
		uuid, err := NewV4()
		if err != nil {
			t.Fatalf("NewV4() error = %v", err)
		}
		if seen[uuid] {
			t.Fatalf("duplicate UUID after %d draws: %s", i, uuid)
		}
		seen[uuid] = true
	}
}
