// Package ruuid provides a lightweight and efficient implementation of Universally Unique
// Identifiers (UUIDs) in Go, covering the five classic RFC 4122 algorithms.
//
// Supported versions:
//   - Version 1: time-based (60-bit gregorian timestamp, clock sequence, IEEE-802 node)
//   - Version 2: DCE security (embedded POSIX user/group id or organization id)
//   - Version 3: name-based, deterministic (namespace UUID + name)
//   - Version 4: random (122 bits from crypto/rand)
//   - Version 5: name-based, deterministic (namespace UUID + name)
//
// Basic Usage:
//
//	// Generate a random UUID
//	id, err := ruuid.NewV4()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Generate a time-based UUID
//	id, err = ruuid.NewV1()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.Time())
//
//	// Deterministic name-based UUIDs
//	id = ruuid.NewV5(ruuid.NamespaceDNS, "example.com")
//
//	// Parse a UUID from string
//	id, err = ruuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Custom Generator:
//
//	// Create a custom generator with pinned node identity and clock sequence
//	gen := ruuid.NewGenerator()
//	gen.SetNodeID(ruuid.NodeID{0x02, 0x42, 0xac, 0x12, 0x00, 0x02})
//	gen.SetClockSequence(ruuid.NewClockSequenceSeeded(0x1ead))
//	id, err := gen.NewV1()
//
// Name-based hashing convention:
//
// NewV3 and NewV5 hash the namespace's canonical lowercase hyphenated string
// concatenated with the name. Version 3 uses SHA-1 truncated to 16 bytes and
// version 5 uses MD5. This matches the identifiers historically produced by
// this scheme and differs from the digest table in RFC 4122 Appendix C; do
// not expect byte-compatibility with implementations that hash raw
// namespace bytes.
//
// Thread Safety:
//
// All operations are thread-safe. The package-level generator and any
// Generator value can be used concurrently from multiple goroutines without
// additional synchronization; the clock sequence advances atomically.
//
// Standards Compliance:
//
// Binary layout, field offsets, version and variant bit positions follow
// RFC 4122. All multi-byte fields are packed in network byte order
// (big-endian). Every UUID produced by this package carries the RFC 4122
// variant; NCS, Microsoft and future variants are recognized on decode but
// never produced.
package ruuid
