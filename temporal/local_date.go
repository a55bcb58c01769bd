// Package temporal provides date, time, and offset value types built on top
// of the chronofield format tree and parser engine.
//
// Unlike chronofield, which works against a loosely-typed Container of
// optional fields, temporal exposes strongly-typed, always-valid wrapper
// types (LocalDate, LocalTime, LocalDateTime, UtcOffset, OffsetDateTime,
// YearMonth, Instant) that populate a Container for formatting and are
// rebuilt from one after parsing.
package temporal

import (
	"fmt"

	"github.com/chronofield/chronofield"
	"github.com/chronofield/chronofield/internal/calendar"
)

// LocalDate is a date without a time zone, according to ISO 8601: a
// year-month-day in the proleptic Gregorian calendar. It cannot represent an
// instant on a timeline without additional offset information.
type LocalDate struct {
	epochDay calendar.EpochDay
}

// LocalDateOf returns the LocalDate that represents the specified year,
// month and day. It panics if the date is not valid, e.g. 31st of April.
func LocalDateOf(year, month, day int) LocalDate {
	epochDay, err := calendar.FromFields(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("temporal: invalid date %04d-%02d-%02d", year, month, day))
	}
	return LocalDate{epochDay: epochDay}
}

// OfDayOfYear returns the LocalDate representing the given day of the year,
// where 1 is January 1st.
func OfDayOfYear(year, day int) (LocalDate, error) {
	epochDay, err := calendar.FromDayOfYear(year, day)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{epochDay: epochDay}, nil
}

// OfISOWeek returns the LocalDate representing the supplied ISO 8601 year,
// week number, and weekday (1 = Monday .. 7 = Sunday).
func OfISOWeek(isoYear, isoWeek, isoWeekday int) (LocalDate, error) {
	epochDay, err := calendar.FromISOWeek(isoYear, isoWeek, isoWeekday)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{epochDay: epochDay}, nil
}

// Date returns the ISO 8601 year, month and day represented by d.
func (d LocalDate) Date() (year, month, day int) {
	return calendar.ToFields(d.epochDay)
}

// IsLeapYear reports whether d falls in a leap year.
func (d LocalDate) IsLeapYear() bool {
	year, _, _ := d.Date()
	return calendar.IsLeapYear(year)
}

// Weekday returns the ISO 8601 day of the week represented by d (1 = Monday
// .. 7 = Sunday).
func (d LocalDate) Weekday() int {
	return int(calendar.DayOfWeek(d.epochDay))
}

// YearDay returns the day of the year represented by d, in the range
// [1,365] for non-leap years and [1,366] for leap years.
func (d LocalDate) YearDay() int {
	return calendar.DayOfYear(d.epochDay)
}

// ISOWeek returns the ISO 8601 week-numbering year and week number in which
// d occurs. See calendar.ISOWeek for the boundary rules.
func (d LocalDate) ISOWeek() (isoYear, isoWeek int) {
	return calendar.ISOWeek(d.epochDay)
}

// AddDate returns the date corresponding to adding the given number of
// years, months and days to d.
func (d LocalDate) AddDate(years, months, days int) LocalDate {
	return LocalDate{epochDay: calendar.AddDate(d.epochDay, years, months, days)}
}

// EpochDay returns the number of days since 1st January 1970 (which is day 0).
func (d LocalDate) EpochDay() int64 { return int64(d.epochDay) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to, or
// after other.
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.epochDay < other.epochDay:
		return -1
	case d.epochDay > other.epochDay:
		return 1
	default:
		return 0
	}
}

func (d LocalDate) String() string {
	f, _ := chronofield.ISODate()
	out, err := f.Format(d.toContainer())
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Format renders d using the supplied format tree, typically obtained from
// chronofield.CompilePattern or a builder.
func (d LocalDate) Format(tree chronofield.Node) (string, error) {
	return chronofield.NewFormatter(tree).Format(d.toContainer())
}

// ParseLocalDate parses value using the ISO 8601 calendar date format
// (yyyy-MM-dd).
func ParseLocalDate(value string) (LocalDate, error) {
	_, p := chronofield.ISODate()
	c, err := p.Parse(value)
	if err != nil {
		return LocalDate{}, err
	}
	return localDateFromContainer(c)
}

// ParseLocalDateWith parses value against an arbitrary format tree.
func ParseLocalDateWith(tree chronofield.Node, value string) (LocalDate, error) {
	c, err := chronofield.NewParser(tree).Parse(value)
	if err != nil {
		return LocalDate{}, err
	}
	return localDateFromContainer(c)
}

func (d LocalDate) toContainer() *chronofield.Container {
	c := chronofield.NewContainer()
	year, month, day := d.Date()
	chronofield.FieldYear.Set(c, int64(year))
	chronofield.FieldMonthNumber.Set(c, int64(month))
	chronofield.FieldDayOfMonth.Set(c, int64(day))
	return c
}

func localDateFromContainer(c *chronofield.Container) (LocalDate, error) {
	fields, err := chronofield.DateFromFields(c)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDateOf(int(fields.Year), int(fields.Month), int(fields.Day)), nil
}
