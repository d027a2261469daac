package ruuid

import "encoding/binary"

// Layout is the five-field decomposed view of a UUID defined by RFC 4122.
// It is a pure view: packing and unpacking are total, side-effect-free
// transformations and any 16-byte value is a valid (if meaningless) layout.
//
// All multi-byte fields are packed in network byte order (big-endian), the
// order RFC 4122 mandates for interoperability.
type Layout struct {
	// TimeLow holds the low 32 bits of the 60-bit timestamp, or hash/random
	// bits depending on the version.
	TimeLow uint32
	// TimeMid holds the mid 16 bits of the timestamp.
	TimeMid uint16
	// TimeHiAndVersion holds the high 12 bits of the timestamp multiplexed
	// with the 4-bit version in its top nibble.
	TimeHiAndVersion uint16
	// ClockSeqHiAndReserved holds the high 6 bits of the clock sequence
	// multiplexed with the variant in its top bits.
	ClockSeqHiAndReserved uint8
	// ClockSeqLow holds the low 8 bits of the clock sequence, or the DCE
	// security domain for version 2.
	ClockSeqLow uint8
	// Node holds the IEEE-802 address, or domain-id/hash/random bits.
	Node [6]byte
}

// Pack writes the five fields at their fixed byte offsets (0-3, 4-5, 6-7,
// 8, 9, 10-15) and returns the resulting UUID.
func (l Layout) Pack() UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], l.TimeLow)
	binary.BigEndian.PutUint16(u[4:6], l.TimeMid)
	binary.BigEndian.PutUint16(u[6:8], l.TimeHiAndVersion)
	u[8] = l.ClockSeqHiAndReserved
	u[9] = l.ClockSeqLow
	copy(u[10:16], l.Node[:])
	return u
}

// Unpack is the inverse of Pack: Unpack(l.Pack()) == l for every layout.
func Unpack(u UUID) Layout {
	var l Layout
	l.TimeLow = binary.BigEndian.Uint32(u[0:4])
	l.TimeMid = binary.BigEndian.Uint16(u[4:6])
	l.TimeHiAndVersion = binary.BigEndian.Uint16(u[6:8])
	l.ClockSeqHiAndReserved = u[8]
	l.ClockSeqLow = u[9]
	copy(l.Node[:], u[10:16])
	return l
}

// ClockSequence returns the 14-bit clock sequence value with the variant
// bits masked off.
func (l Layout) ClockSequence() uint16 {
	return uint16(l.ClockSeqHiAndReserved&0x3f)<<8 | uint16(l.ClockSeqLow)
}

// ValidVersion decodes the version field, failing with ErrInvalidVersion
// unless it is one of the RFC 4122 versions 1 through 5.
func (l Layout) ValidVersion() (Version, error) {
	v := Version(l.TimeHiAndVersion >> 12)
	if v < VersionTimeBased || v > VersionNameBasedSHA1 {
		return 0, ErrInvalidVersion
	}
	return v, nil
}

// ValidVariant classifies the variant by the leading bit pattern of the
// clock_seq_hi_and_reserved octet: 0xx NCS, 10x RFC 4122, 110 Microsoft,
// 111 future. The error branch is unreachable for 3-bit classification and
// exists to keep the decode contract explicit.
func (l Layout) ValidVariant() (Variant, error) {
	switch b := l.ClockSeqHiAndReserved; {
	case b&0x80 == 0x00:
		return VariantNCS, nil
	case b&0xc0 == 0x80:
		return VariantRFC4122, nil
	case b&0xe0 == 0xc0:
		return VariantMicrosoft, nil
	case b&0xe0 == 0xe0:
		return VariantFuture, nil
	}
	return 0, ErrInvalidVariant
}

// setVersion clears the top nibble of time_hi_and_version and ORs in the
// 4-bit version code.
func setVersion(hi uint16, v Version) uint16 {
	return hi&0x0fff | uint16(v)<<12
}

// setVariant clears the top bit pair of clock_seq_hi_and_reserved and ORs
// in the RFC 4122 pattern (10).
func setVariant(b byte) byte {
	return b&0x3f | 0x80
}
