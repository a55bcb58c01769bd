package temporal

import "github.com/chronofield/chronofield"

// LocalDateTime combines a LocalDate and a LocalTime without a time zone.
// It is a SPEC_FULL supplement to the distilled date/time/offset bags:
// the common case of "date and time together" gets its own wrapper rather
// than forcing every caller to juggle two values.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// LocalDateTimeOf combines a LocalDate and LocalTime into a LocalDateTime.
func LocalDateTimeOf(date LocalDate, time LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: time}
}

// Date returns the date component.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time-of-day component.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// AtOffset combines dt with an UtcOffset to produce an OffsetDateTime.
func (dt LocalDateTime) AtOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: dt, offset: offset}
}

func (dt LocalDateTime) String() string {
	f, _ := chronofield.ISODateTime()
	out, err := f.Format(dt.toContainer())
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Format renders dt using the supplied format tree.
func (dt LocalDateTime) Format(tree chronofield.Node) (string, error) {
	return chronofield.NewFormatter(tree).Format(dt.toContainer())
}

// ParseLocalDateTime parses value using the ISO 8601 combined date-time
// format (yyyy-MM-dd'T'HH:mm with an optional :ss[.fraction] suffix).
func ParseLocalDateTime(value string) (LocalDateTime, error) {
	_, p := chronofield.ISODateTime()
	c, err := p.Parse(value)
	if err != nil {
		return LocalDateTime{}, err
	}
	return localDateTimeFromContainer(c)
}

// ParseLocalDateTimeWith parses value against an arbitrary format tree.
func ParseLocalDateTimeWith(tree chronofield.Node, value string) (LocalDateTime, error) {
	c, err := chronofield.NewParser(tree).Parse(value)
	if err != nil {
		return LocalDateTime{}, err
	}
	return localDateTimeFromContainer(c)
}

func (dt LocalDateTime) toContainer() *chronofield.Container {
	c := dt.date.toContainer()
	hour, minute, second, nanosecond := dt.time.Clock()
	chronofield.FieldHour.Set(c, int64(hour))
	chronofield.FieldMinute.Set(c, int64(minute))
	chronofield.FieldSecond.Set(c, int64(second))
	if nanosecond != 0 {
		chronofield.FieldNanosecond.Set(c, int64(nanosecond))
	}
	return c
}

func localDateTimeFromContainer(c *chronofield.Container) (LocalDateTime, error) {
	dateFields, err := chronofield.DateFromFields(c)
	if err != nil {
		return LocalDateTime{}, err
	}
	timeFields, err := chronofield.TimeFromFields(c)
	if err != nil {
		return LocalDateTime{}, err
	}
	date := LocalDateOf(dateFields.Year, dateFields.Month, dateFields.Day)
	time := LocalTimeOf(timeFields.Hour, timeFields.Minute, timeFields.Second, timeFields.Nanosecond)
	return LocalDateTimeOf(date, time), nil
}
