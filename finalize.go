package chronofield

import "github.com/chronofield/chronofield/internal/calendar"

// DateFields is the validated, fully-resolved result of reconciling a
// Container's date sub-bag into a single calendar date (§4.5).
type DateFields struct {
	Year, Month, Day int
}

// TimeFields is the validated, fully-resolved result of reconciling a
// Container's time sub-bag into a single time of day (§4.5).
type TimeFields struct {
	Hour, Minute, Second, Nanosecond int
}

// OffsetFields is the validated, fully-resolved result of reconciling a
// Container's offset sub-bag into a single signed offset (§4.5).
type OffsetFields struct {
	TotalSeconds int
}

// DateFromFields resolves c's date sub-bag into a calendar date. A
// (monthNumber, dayOfMonth) pair takes priority over dayOfYear when both
// are present, with dayOfYear then checked for consistency rather than
// silently discarded; isoDayOfWeek, if present, is cross-checked against
// the resolved date last (§4.5, §4.6, §7).
func DateFromFields(c *Container) (DateFields, error) {
	year, hasYear := FieldYear.Get(c)
	if !hasYear {
		return DateFields{}, &MissingFieldError{Field: FieldYear.Name()}
	}

	month, hasMonth := FieldMonthNumber.Get(c)
	day, hasDay := FieldDayOfMonth.Get(c)
	dayOfYear, hasDayOfYear := FieldDayOfYear.Get(c)

	var epoch calendar.EpochDay

	switch {
	case hasMonth && hasDay:
		if err := FieldMonthNumber.CheckRange(month); err != nil {
			return DateFields{}, err
		}
		if err := FieldDayOfMonth.CheckRange(day); err != nil {
			return DateFields{}, err
		}
		e, err := calendar.FromFields(int(year), int(month), int(day))
		if err != nil {
			return DateFields{}, &FieldValueError{Field: FieldDayOfMonth.Name(), Value: day, Min: 1, Max: int64(calendar.DaysInMonth(int(year), int(month)))}
		}
		epoch = e
		if hasDayOfYear {
			if int64(calendar.DayOfYear(epoch)) != dayOfYear {
				return DateFields{}, &InconsistentFieldsError{Description: "dayOfYear does not match monthNumber/dayOfMonth"}
			}
		}

	case hasDayOfYear:
		if err := FieldDayOfYear.CheckRange(dayOfYear); err != nil {
			return DateFields{}, err
		}
		e, err := calendar.FromDayOfYear(int(year), int(dayOfYear))
		if err != nil {
			return DateFields{}, &FieldValueError{Field: FieldDayOfYear.Name(), Value: dayOfYear, Min: 1, Max: int64(calendar.DaysInYear(int(year)))}
		}
		epoch = e

	default:
		return DateFields{}, &MissingFieldError{Field: "monthNumber/dayOfMonth or dayOfYear"}
	}

	if isoDow, ok := FieldISODayOfWeek.Get(c); ok {
		if err := FieldISODayOfWeek.CheckRange(isoDow); err != nil {
			return DateFields{}, err
		}
		if int64(calendar.DayOfWeek(epoch)) != isoDow {
			return DateFields{}, &InconsistentFieldsError{Description: "isoDayOfWeek does not match the resolved date"}
		}
	}

	y, m, d := calendar.ToFields(epoch)
	return DateFields{Year: y, Month: m, Day: d}, nil
}

// TimeFromFields resolves c's time sub-bag into a time of day. An explicit
// 24-hour hour takes priority over (hourOfAmPm, amPm); when both are
// present they are cross-checked for consistency rather than one silently
// overriding the other (§4.5, §7 scenario 6).
func TimeFromFields(c *Container) (TimeFields, error) {
	hour, hasHour := FieldHour.Get(c)
	hourOfAmPm, hasHourOfAmPm := FieldHourOfAmPm.Get(c)
	amPm, hasAmPm := FieldAmPm.Get(c)

	var h int64
	switch {
	case hasHour:
		if err := FieldHour.CheckRange(hour); err != nil {
			return TimeFields{}, err
		}
		h = hour
		if hasHourOfAmPm && hasAmPm {
			if err := FieldHourOfAmPm.CheckRange(hourOfAmPm); err != nil {
				return TimeFields{}, err
			}
			if hourOfAmPmTo24(hourOfAmPm, amPm) != h {
				return TimeFields{}, &InconsistentFieldsError{Description: "hour does not match hourOfAmPm/amPm"}
			}
		}
	case hasHourOfAmPm && hasAmPm:
		if err := FieldHourOfAmPm.CheckRange(hourOfAmPm); err != nil {
			return TimeFields{}, err
		}
		h = hourOfAmPmTo24(hourOfAmPm, amPm)
	default:
		return TimeFields{}, &MissingFieldError{Field: "hour or hourOfAmPm+amPm"}
	}

	minute, hasMinute := FieldMinute.Get(c)
	if !hasMinute {
		return TimeFields{}, &MissingFieldError{Field: FieldMinute.Name()}
	}
	if err := FieldMinute.CheckRange(minute); err != nil {
		return TimeFields{}, err
	}

	second := fieldOrDefault(FieldSecond, c)
	if err := FieldSecond.CheckRange(second); err != nil {
		return TimeFields{}, err
	}

	nanos := fieldOrDefault(FieldNanosecond, c)
	if err := FieldNanosecond.CheckRange(nanos); err != nil {
		return TimeFields{}, err
	}

	return TimeFields{Hour: int(h), Minute: int(minute), Second: int(second), Nanosecond: int(nanos)}, nil
}

// hourOfAmPmTo24 converts a 1-12 AM/PM hour (amPm: 0=AM, 1=PM) to 24-hour
// form, where 12 AM is midnight (0) and 12 PM is noon (12).
func hourOfAmPmTo24(hourOfAmPm, amPm int64) int64 {
	h := hourOfAmPm % 12
	if amPm == 1 {
		h += 12
	}
	return h
}

// maxOffsetSeconds is the widest magnitude a UTC offset may carry (§4.1:
// totalHoursAbs maxes out at 18).
const maxOffsetSeconds = 18 * 3600

// OffsetFromFields resolves c's offset sub-bag into a single signed
// seconds-from-UTC value (§4.5).
func OffsetFromFields(c *Container) (OffsetFields, error) {
	hours := fieldOrDefault(FieldOffsetHours, c)
	if err := FieldOffsetHours.CheckRange(hours); err != nil {
		return OffsetFields{}, err
	}

	minutes := fieldOrDefault(FieldOffsetMinutes, c)
	if err := FieldOffsetMinutes.CheckRange(minutes); err != nil {
		return OffsetFields{}, err
	}

	seconds := fieldOrDefault(FieldOffsetSeconds, c)
	if err := FieldOffsetSeconds.CheckRange(seconds); err != nil {
		return OffsetFields{}, err
	}

	neg := fieldOrDefault(FieldOffsetIsNegative, c)

	total := hours*3600 + minutes*60 + seconds
	if neg != 0 {
		total = -total
	}
	if total < -maxOffsetSeconds || total > maxOffsetSeconds {
		return OffsetFields{}, &FieldValueError{Field: "offset", Value: total, Min: -maxOffsetSeconds, Max: maxOffsetSeconds}
	}
	return OffsetFields{TotalSeconds: int(total)}, nil
}

func fieldOrDefault(f *Field, c *Container) int64 {
	if v, ok := f.Get(c); ok {
		return v
	}
	v, _ := f.Default()
	return v
}

// secondsPer10000Years and daysPer10000Years implement the classic
// "split the magnitude into a coarse 10000-year chunk plus a remainder"
// technique for multiplying a potentially huge day count by 86400 without
// risking int64 overflow in a single multiplication (§4.7).
const (
	daysPer10000Years    = 3_652_425
	secondsPer10000Years = daysPer10000Years * 86400
)

// daysToSecondsChecked converts an epoch-day count to seconds, splitting
// the multiplication into a bounded 10000-year chunk and a small remainder
// so that mulInt64 never sees an operand pair wide enough to matter,
// failing cleanly via OverflowError instead of wrapping (§4.7, §7).
func daysToSecondsChecked(days int64) (int64, error) {
	q := days / daysPer10000Years
	r := days % daysPer10000Years

	qSeconds, overflowed := mulInt64(q, secondsPer10000Years)
	if overflowed {
		return 0, &OverflowError{Msg: "instant seconds overflow int64"}
	}
	rSeconds, overflowed := mulInt64(r, 86400)
	if overflowed {
		return 0, &OverflowError{Msg: "instant seconds overflow int64"}
	}
	total, underflows, overflows := addInt64(qSeconds, rSeconds)
	if underflows || overflows {
		return 0, &OverflowError{Msg: "instant seconds overflow int64"}
	}
	return total, nil
}

// InstantUsingOffset resolves c's date, time and offset sub-bags into a
// seconds-since-Unix-epoch and nanosecond-of-second pair, applying the
// offset to convert from local time to an instant (§4.5, §4.7).
func InstantUsingOffset(c *Container) (seconds int64, nanos int64, err error) {
	date, err := DateFromFields(c)
	if err != nil {
		return 0, 0, err
	}
	tm, err := TimeFromFields(c)
	if err != nil {
		return 0, 0, err
	}
	off, err := OffsetFromFields(c)
	if err != nil {
		return 0, 0, err
	}

	epoch, cerr := calendar.FromFields(date.Year, date.Month, date.Day)
	if cerr != nil {
		return 0, 0, cerr
	}

	daySeconds, err := daysToSecondsChecked(int64(epoch))
	if err != nil {
		return 0, 0, err
	}

	secOfDay := int64(tm.Hour)*3600 + int64(tm.Minute)*60 + int64(tm.Second)

	total, underflows, overflows := addInt64(daySeconds, secOfDay)
	if underflows || overflows {
		return 0, 0, &OverflowError{Msg: "instant seconds overflow int64"}
	}
	total, underflows, overflows = addInt64(total, -int64(off.TotalSeconds))
	if underflows || overflows {
		return 0, 0, &OverflowError{Msg: "instant seconds overflow int64"}
	}

	return total, int64(tm.Nanosecond), nil
}
