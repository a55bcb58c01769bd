package temporal

import (
	"fmt"

	"github.com/chronofield/chronofield"
)

const nanosPerSecond = 1_000_000_000
const secondsPerDay = 24 * 60 * 60

// LocalTime is a time of day without a date or time zone, with nanosecond
// precision, according to ISO 8601.
type LocalTime struct {
	secondOfDay int
	nanosecond  int
}

// LocalTimeOf returns the LocalTime representing the given hour, minute,
// second and nanosecond. It panics if any component is out of range.
func LocalTimeOf(hour, minute, second, nanosecond int) LocalTime {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		panic(fmt.Sprintf("temporal: invalid time %02d:%02d:%02d", hour, minute, second))
	}
	if nanosecond < 0 || nanosecond >= nanosPerSecond {
		panic(fmt.Sprintf("temporal: invalid nanosecond %d", nanosecond))
	}
	return LocalTime{
		secondOfDay: hour*3600 + minute*60 + second,
		nanosecond:  nanosecond,
	}
}

// Clock returns the hour, minute, second and nanosecond represented by t.
func (t LocalTime) Clock() (hour, minute, second, nanosecond int) {
	hour = t.secondOfDay / 3600
	minute = (t.secondOfDay % 3600) / 60
	second = t.secondOfDay % 60
	return hour, minute, second, t.nanosecond
}

// SecondOfDay returns the number of whole seconds elapsed since midnight.
func (t LocalTime) SecondOfDay() int { return t.secondOfDay }

// Nanosecond returns the sub-second nanosecond component.
func (t LocalTime) Nanosecond() int { return t.nanosecond }

// AddSeconds returns the time reached by adding (or subtracting, if
// negative) the given number of seconds to t, wrapping at midnight, along
// with the number of whole days the addition carried across.
func (t LocalTime) AddSeconds(seconds int) (result LocalTime, daysCarried int) {
	total := t.secondOfDay + seconds
	days := total / secondsPerDay
	rem := total % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}
	return LocalTime{secondOfDay: rem, nanosecond: t.nanosecond}, days
}

func (t LocalTime) String() string {
	f, _ := chronofield.ISOTime()
	out, err := f.Format(t.toContainer())
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Format renders t using the supplied format tree.
func (t LocalTime) Format(tree chronofield.Node) (string, error) {
	return chronofield.NewFormatter(tree).Format(t.toContainer())
}

// ParseLocalTime parses value using the ISO 8601 time-of-day format
// (HH:mm with an optional :ss[.fraction] suffix).
func ParseLocalTime(value string) (LocalTime, error) {
	_, p := chronofield.ISOTime()
	c, err := p.Parse(value)
	if err != nil {
		return LocalTime{}, err
	}
	return localTimeFromContainer(c)
}

// ParseLocalTimeWith parses value against an arbitrary format tree.
func ParseLocalTimeWith(tree chronofield.Node, value string) (LocalTime, error) {
	c, err := chronofield.NewParser(tree).Parse(value)
	if err != nil {
		return LocalTime{}, err
	}
	return localTimeFromContainer(c)
}

func (t LocalTime) toContainer() *chronofield.Container {
	c := chronofield.NewContainer()
	hour, minute, second, nanosecond := t.Clock()
	chronofield.FieldHour.Set(c, int64(hour))
	chronofield.FieldMinute.Set(c, int64(minute))
	chronofield.FieldSecond.Set(c, int64(second))
	if nanosecond != 0 {
		chronofield.FieldNanosecond.Set(c, int64(nanosecond))
	}
	return c
}

func localTimeFromContainer(c *chronofield.Container) (LocalTime, error) {
	fields, err := chronofield.TimeFromFields(c)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTimeOf(fields.Hour, fields.Minute, fields.Second, fields.Nanosecond), nil
}
