package temporal

import "fmt"

// Instant represents a point on the timeline as a count of seconds and
// nanoseconds relative to the Unix epoch (1970-01-01T00:00:00Z). Unlike the
// teacher's monotonic-clock Instant, this one is wall-clock derived: it only
// ever comes from resolving an OffsetDateTime's fields, never from a live
// clock read, since this package has no notion of "now".
type Instant struct {
	epochSeconds int64
	nanosecond   int
}

// InstantOf returns the Instant at the given number of seconds and
// nanoseconds since the Unix epoch. nanosecond must be in [0, 1e9).
func InstantOf(epochSeconds int64, nanosecond int) Instant {
	if nanosecond < 0 || nanosecond >= nanosPerSecond {
		panic(fmt.Sprintf("temporal: invalid nanosecond %d", nanosecond))
	}
	return Instant{epochSeconds: epochSeconds, nanosecond: nanosecond}
}

// EpochSeconds returns the whole number of seconds since the Unix epoch.
func (i Instant) EpochSeconds() int64 { return i.epochSeconds }

// Nanosecond returns the sub-second nanosecond component.
func (i Instant) Nanosecond() int { return i.nanosecond }

// Compare returns -1, 0 or +1 depending on whether i is before, equal to, or
// after other.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.epochSeconds != other.epochSeconds:
		if i.epochSeconds < other.epochSeconds {
			return -1
		}
		return 1
	case i.nanosecond != other.nanosecond:
		if i.nanosecond < other.nanosecond {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (i Instant) String() string {
	return fmt.Sprintf("%d.%09d", i.epochSeconds, i.nanosecond)
}
