package ruuid

import "time"

// gregorianToUnix is the count of 100-nanosecond intervals between the
// gregorian UUID epoch (1582-10-15T00:00:00Z) and the Unix epoch.
const gregorianToUnix = 122192928000000000

// timestampFromTime converts a wall-clock reading to the 60-bit count of
// 100-nanosecond intervals since the gregorian epoch.
func timestampFromTime(t time.Time) uint64 {
	ticks := uint64(t.Unix())*10000000 + uint64(t.Nanosecond()/100) + gregorianToUnix
	return ticks & 0x0fffffffffffffff
}

// NewV1 generates a time-based UUID from the current wall clock and the
// generator's node identity.
func (g *Generator) NewV1() (UUID, error) {
	node, err := g.nodeID()
	if err != nil {
		return Nil, err
	}
	return g.NewV1At(g.now(), node)
}

// NewV1At generates a time-based UUID from a caller-supplied timestamp and
// node. Apart from the clock sequence, which still advances, the output is
// fully determined by the inputs.
func (g *Generator) NewV1At(t time.Time, node NodeID) (UUID, error) {
	seq, err := g.seq.Next()
	if err != nil {
		return Nil, err
	}

	ts := timestampFromTime(t)
	l := Layout{
		TimeLow:               uint32(ts),
		TimeMid:               uint16(ts >> 32),
		TimeHiAndVersion:      setVersion(uint16(ts>>48), VersionTimeBased),
		ClockSeqHiAndReserved: setVariant(byte(seq >> 8)),
		ClockSeqLow:           byte(seq),
		Node:                  node,
	}
	return l.Pack(), nil
}

// Timestamp extracts the 60-bit gregorian timestamp (100-nanosecond ticks
// since 1582-10-15) from a time-based UUID. It returns 0 for versions other
// than 1: the DCE variant overwrites the low timestamp bits and the
// hash/random versions carry no timestamp at all.
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeBased {
		return 0
	}
	l := Unpack(u)
	return int64(l.TimeHiAndVersion&0x0fff)<<48 | int64(l.TimeMid)<<32 | int64(l.TimeLow)
}

// Time returns the timestamp of a time-based UUID as a time.Time
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeBased {
		return time.Time{}
	}
	ticks := u.Timestamp() - gregorianToUnix
	return time.Unix(ticks/10000000, (ticks%10000000)*100)
}
