package temporal

import (
	"fmt"

	"github.com/chronofield/chronofield"
	"github.com/chronofield/chronofield/internal/calendar"
)

// YearMonth is a year and month without a day, time, or time zone - the
// ISO 8601 year-month fragment (yyyy-MM).
type YearMonth struct {
	year, month int
}

// YearMonthOf returns the YearMonth representing the given year and month
// (1-12). It panics if month is out of range.
func YearMonthOf(year, month int) YearMonth {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("temporal: invalid month %d", month))
	}
	return YearMonth{year: year, month: month}
}

// Year returns the year component.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month component, 1-12.
func (ym YearMonth) Month() int { return ym.month }

// LengthOfMonth returns the number of days in ym's month.
func (ym YearMonth) LengthOfMonth() int {
	return calendar.DaysInMonth(ym.year, ym.month)
}

// AtDay returns the LocalDate for the given day of ym's month.
func (ym YearMonth) AtDay(day int) LocalDate {
	return LocalDateOf(ym.year, ym.month, day)
}

// PlusMonths returns the YearMonth reached by adding the given number of
// months (which may be negative) to ym, carrying into adjacent years.
func (ym YearMonth) PlusMonths(months int) YearMonth {
	total := ym.year*12 + (ym.month - 1) + months
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{year: year, month: month + 1}
}

func (ym YearMonth) String() string {
	f, _ := chronofield.ISOYearMonth()
	out, err := f.Format(ym.toContainer())
	if err != nil {
		panic(err.Error())
	}
	return out
}

// ParseYearMonth parses value using the ISO 8601 year-month format (yyyy-MM).
func ParseYearMonth(value string) (YearMonth, error) {
	_, p := chronofield.ISOYearMonth()
	c, err := p.Parse(value)
	if err != nil {
		return YearMonth{}, err
	}
	year, _ := chronofield.FieldYear.Get(c)
	month, _ := chronofield.FieldMonthNumber.Get(c)
	return YearMonthOf(int(year), int(month)), nil
}

func (ym YearMonth) toContainer() *chronofield.Container {
	c := chronofield.NewContainer()
	chronofield.FieldYear.Set(c, int64(ym.year))
	chronofield.FieldMonthNumber.Set(c, int64(ym.month))
	return c
}
