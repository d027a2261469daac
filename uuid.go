package ruuid

import (
	"database/sql/driver"
	"fmt"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122.
// The UUID is a 128-bit (16 byte) value that is used to uniquely identify information.
type UUID [16]byte

// Version represents the UUID version, i.e. the generation algorithm.
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// Variant represents the UUID variant, i.e. the specification family.
// Only VariantRFC4122 is ever produced by this package; the others are
// recognized on decode.
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// Well-known namespace UUIDs from RFC 4122 Appendix C, used as hashing
// roots for name-based generation (NewV3/NewV5).
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// Version returns the raw version field of the UUID.
// Use Layout.ValidVersion to reject non-RFC values.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical lowercase string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeCanonical(buf[:], u, lowerhex)
	return string(buf[:])
}

// StringUpper returns the canonical string representation with uppercase
// hex digits. Hyphen positions are identical to String.
func (u UUID) StringUpper() string {
	var buf [36]byte
	encodeCanonical(buf[:], u, upperhex)
	return string(buf[:])
}

const (
	lowerhex = "0123456789abcdef"
	upperhex = "0123456789ABCDEF"
)

// canonical hyphen positions and the byte group each hex run covers
var canonicalGroups = [5]struct{ str, raw int }{
	{0, 0}, {9, 4}, {14, 6}, {19, 8}, {24, 10},
}

// encodeCanonical writes the 8-4-4-4-12 form of u into dst (36 bytes)
// using the given hex digit alphabet.
func encodeCanonical(dst []byte, u UUID, digits string) {
	dst[8], dst[13], dst[18], dst[23] = '-', '-', '-', '-'
	j := 0
	for i := 0; i < 16; i++ {
		switch i {
		case 4, 6, 8, 10:
			j++ // skip the hyphen
		}
		dst[2*i+j] = digits[u[i]>>4]
		dst[2*i+j+1] = digits[u[i]&0x0f]
	}
}

// Parse parses a UUID from its string representation.
// It accepts exactly two forms:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical, hyphens at 8, 13, 18, 23)
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (32 hex characters, no hyphens)
//
// ASCII whitespace is stripped before inspection. Parsing is case-insensitive.
// Failures are classified: ErrInvalidLength for any other stripped length,
// ErrInvalidCharacter for a misplaced hyphen, ErrInvalidHexDigit for a
// malformed hex pair.
func Parse(s string) (UUID, error) {
	var uuid UUID

	s = stripSpace(s)

	switch len(s) {
	case 36:
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return uuid, ErrInvalidCharacter
		}
		for g, pos := range canonicalGroups {
			end := 16
			if g < 4 {
				end = canonicalGroups[g+1].raw
			}
			if err := decodeHexGroup(uuid[pos.raw:end], s[pos.str:]); err != nil {
				return uuid, err
			}
		}
		return uuid, nil

	case 32:
		if err := decodeHexGroup(uuid[:], s); err != nil {
			return uuid, err
		}
		return uuid, nil
	}

	return uuid, ErrInvalidLength
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ruuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// stripSpace removes ASCII whitespace anywhere in s. Most inputs carry none,
// so the fast path returns s unchanged without allocating.
func stripSpace(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// decodeHexGroup decodes len(dst) hex pairs from src into dst, classifying
// failures: a hyphen inside a hex run is a structural error, anything else
// that is not a hex digit is a bad digit.
func decodeHexGroup(dst []byte, src string) error {
	for i := range dst {
		hi, ok1 := xtob(src[2*i])
		lo, ok2 := xtob(src[2*i+1])
		if !ok1 || !ok2 {
			bad := src[2*i]
			if ok1 {
				bad = src[2*i+1]
			}
			if bad == '-' {
				return ErrInvalidCharacter
			}
			return ErrInvalidHexDigit
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

// xtob converts a single hex character to its 4-bit value
func xtob(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeCanonical(buf[:], u, lowerhex)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("ruuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
