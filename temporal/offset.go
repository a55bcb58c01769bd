package temporal

import (
	"fmt"

	"github.com/chronofield/chronofield"
)

// UTC is the zero UTC offset.
var UTC = UtcOffset{}

// UtcOffset represents a fixed offset from UTC with precision to the
// second, bounded to ±18 hours per ISO 8601.
type UtcOffset struct {
	totalSeconds int
}

// UtcOffsetOf returns the UtcOffset represented by a number of hours,
// minutes and seconds. If hours is non-zero its sign determines the sign of
// the whole offset and the sign of minutes/seconds is ignored.
func UtcOffsetOf(hours, minutes, seconds int) UtcOffset {
	total := hours*3600 + minutes*60 + seconds
	if hours != 0 {
		mag := abs(minutes)*60 + abs(seconds)
		if hours < 0 {
			total = -(abs(hours)*3600 + mag)
		} else {
			total = hours*3600 + mag
		}
	}
	if total < -18*3600 || total > 18*3600 {
		panic(fmt.Sprintf("temporal: offset %d exceeds +/-18h", total))
	}
	return UtcOffset{totalSeconds: total}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TotalSeconds returns the offset expressed as a signed count of seconds.
func (o UtcOffset) TotalSeconds() int { return o.totalSeconds }

// Components returns the offset's hour, minute and second magnitudes
// together with whether the offset is negative.
func (o UtcOffset) Components() (negative bool, hours, minutes, seconds int) {
	v := o.totalSeconds
	negative = v < 0
	v = abs(v)
	return negative, v / 3600, (v % 3600) / 60, v % 60
}

func (o UtcOffset) String() string {
	f, _ := chronofield.ISOOffsetFull()
	out, err := f.Format(o.toContainer())
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Format renders o using the supplied format tree.
func (o UtcOffset) Format(tree chronofield.Node) (string, error) {
	return chronofield.NewFormatter(tree).Format(o.toContainer())
}

// ParseUtcOffset parses value using the ISO 8601 extended offset format
// (±HH:MM:SS, eliding to "Z" at zero).
func ParseUtcOffset(value string) (UtcOffset, error) {
	_, p := chronofield.ISOOffsetFull()
	c, err := p.Parse(value)
	if err != nil {
		return UtcOffset{}, err
	}
	return utcOffsetFromContainer(c)
}

// ParseUtcOffsetWith parses value against an arbitrary format tree.
func ParseUtcOffsetWith(tree chronofield.Node, value string) (UtcOffset, error) {
	c, err := chronofield.NewParser(tree).Parse(value)
	if err != nil {
		return UtcOffset{}, err
	}
	return utcOffsetFromContainer(c)
}

func (o UtcOffset) toContainer() *chronofield.Container {
	c := chronofield.NewContainer()
	negative, hours, minutes, seconds := o.Components()
	if negative {
		chronofield.FieldOffsetIsNegative.Set(c, 1)
	}
	chronofield.FieldOffsetHours.Set(c, int64(hours))
	chronofield.FieldOffsetMinutes.Set(c, int64(minutes))
	chronofield.FieldOffsetSeconds.Set(c, int64(seconds))
	return c
}

func utcOffsetFromContainer(c *chronofield.Container) (UtcOffset, error) {
	fields, err := chronofield.OffsetFromFields(c)
	if err != nil {
		return UtcOffset{}, err
	}
	total := fields.TotalSeconds
	hours, rem := total/3600, total%3600
	return UtcOffsetOf(hours, rem/60, rem%60), nil
}
