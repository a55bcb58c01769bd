package temporal

import "github.com/chronofield/chronofield"

// OffsetDateTime combines a LocalDateTime with a UtcOffset, pinning it to a
// single instant on the timeline. It is a SPEC_FULL supplement mirroring
// LocalDateTime: the offset-bearing equivalent of "date, time and offset
// together" that ISODateTimeOffset alone cannot express as a value type.
type OffsetDateTime struct {
	dateTime LocalDateTime
	offset   UtcOffset
}

// OffsetDateTimeOf combines a LocalDateTime and UtcOffset.
func OffsetDateTimeOf(dateTime LocalDateTime, offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: dateTime, offset: offset}
}

// DateTime returns the local date-time component, ignoring the offset.
func (odt OffsetDateTime) DateTime() LocalDateTime { return odt.dateTime }

// Offset returns the UTC offset component.
func (odt OffsetDateTime) Offset() UtcOffset { return odt.offset }

// ToInstant resolves odt to an Instant, the number of seconds and
// nanoseconds relative to the Unix epoch.
func (odt OffsetDateTime) ToInstant() (Instant, error) {
	seconds, nanos, err := chronofield.InstantUsingOffset(odt.toContainer())
	if err != nil {
		return Instant{}, err
	}
	return Instant{epochSeconds: seconds, nanosecond: int(nanos)}, nil
}

func (odt OffsetDateTime) String() string {
	f, _ := chronofield.ISODateTimeOffset()
	out, err := f.Format(odt.toContainer())
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Format renders odt using the supplied format tree.
func (odt OffsetDateTime) Format(tree chronofield.Node) (string, error) {
	return chronofield.NewFormatter(tree).Format(odt.toContainer())
}

// ParseOffsetDateTime parses value using the ISO 8601 combined
// date-time-offset format.
func ParseOffsetDateTime(value string) (OffsetDateTime, error) {
	_, p := chronofield.ISODateTimeOffset()
	c, err := p.Parse(value)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return offsetDateTimeFromContainer(c)
}

// ParseOffsetDateTimeWith parses value against an arbitrary format tree.
func ParseOffsetDateTimeWith(tree chronofield.Node, value string) (OffsetDateTime, error) {
	c, err := chronofield.NewParser(tree).Parse(value)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return offsetDateTimeFromContainer(c)
}

func (odt OffsetDateTime) toContainer() *chronofield.Container {
	c := odt.dateTime.toContainer()
	negative, hours, minutes, seconds := odt.offset.Components()
	if negative {
		chronofield.FieldOffsetIsNegative.Set(c, 1)
	}
	chronofield.FieldOffsetHours.Set(c, int64(hours))
	chronofield.FieldOffsetMinutes.Set(c, int64(minutes))
	chronofield.FieldOffsetSeconds.Set(c, int64(seconds))
	return c
}

func offsetDateTimeFromContainer(c *chronofield.Container) (OffsetDateTime, error) {
	dateTime, err := localDateTimeFromContainer(c)
	if err != nil {
		return OffsetDateTime{}, err
	}
	offset, err := utcOffsetFromContainer(c)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTimeOf(dateTime, offset), nil
}
