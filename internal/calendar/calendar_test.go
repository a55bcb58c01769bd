package calendar_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronofield/chronofield/internal/calendar"
)

func TestFromFieldsAndToFields(t *testing.T) {
	for _, tt := range []struct {
		year, month, day int
		weekday          calendar.Weekday
		isLeapYear       bool
		yearDay          int
		isoYear, isoWeek int
	}{
		{1970, 1, 1, calendar.Thursday, false, 1, 1970, 1},
		{1968, 5, 24, calendar.Friday, true, 145, 1968, 21},
		{1950, 1, 1, calendar.Sunday, false, 1, 1949, 52},
		{1958, 1, 1, calendar.Wednesday, false, 1, 1958, 1},
		{1582, 10, 15, calendar.Friday, false, 288, 1582, 41},
		{1, 1, 1, calendar.Monday, false, 1, 1, 1},
		{200, 3, 1, calendar.Saturday, false, 60, 200, 9},
		{2020, 12, 31, calendar.Thursday, true, 366, 2020, 53},
		{2021, 1, 1, calendar.Friday, false, 1, 2020, 53},
		{2000, 2, 29, calendar.Tuesday, true, 60, 2000, 9},
		{-1, 1, 1, calendar.Friday, false, 1, -2, 53},
	} {
		t.Run(fmt.Sprintf("%+05d-%02d-%02d", tt.year, tt.month, tt.day), func(t *testing.T) {
			d, err := calendar.FromFields(tt.year, tt.month, tt.day)
			require.NoError(t, err)

			year, month, day := calendar.ToFields(d)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.month, month)
			assert.Equal(t, tt.day, day)

			assert.Equal(t, tt.weekday, calendar.DayOfWeek(d))
			assert.Equal(t, tt.isLeapYear, calendar.IsLeapYear(tt.year))
			assert.Equal(t, tt.yearDay, calendar.DayOfYear(d))

			isoYear, isoWeek := calendar.ISOWeek(d)
			assert.Equal(t, tt.isoYear, isoYear)
			assert.Equal(t, tt.isoWeek, isoWeek)
		})
	}
}

func TestFromFieldsInvalid(t *testing.T) {
	_, err := calendar.FromFields(2021, 2, 29)
	assert.Error(t, err)

	_, err = calendar.FromFields(2021, 13, 1)
	assert.Error(t, err)
}

func TestFromDayOfYearRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		year, dayOfYear int
		month, day      int
	}{
		{2021, 1, 1, 1},
		{2021, 365, 12, 31},
		{2020, 366, 12, 31},
		{2020, 60, 2, 29},
	} {
		d, err := calendar.FromDayOfYear(tt.year, tt.dayOfYear)
		require.NoError(t, err)

		year, month, day := calendar.ToFields(d)
		assert.Equal(t, tt.year, year)
		assert.Equal(t, tt.month, month)
		assert.Equal(t, tt.day, day)
		assert.Equal(t, tt.dayOfYear, calendar.DayOfYear(d))
	}

	_, err := calendar.FromDayOfYear(2021, 366)
	assert.Error(t, err)
}

func TestFromISOWeek(t *testing.T) {
	d, err := calendar.FromISOWeek(2020, 53, int(calendar.Thursday))
	require.NoError(t, err)

	year, month, day := calendar.ToFields(d)
	assert.Equal(t, 2020, year)
	assert.Equal(t, 12, month)
	assert.Equal(t, 31, day)
}

func TestAddDateClampsEndOfMonth(t *testing.T) {
	d, err := calendar.FromFields(2021, 1, 31)
	require.NoError(t, err)

	added := calendar.AddDate(d, 0, 1, 0)
	year, month, day := calendar.ToFields(added)
	assert.Equal(t, 2021, year)
	assert.Equal(t, 2, month)
	assert.Equal(t, 28, day)
}

func TestDaysInMonthLeapFebruary(t *testing.T) {
	assert.Equal(t, 29, calendar.DaysInMonth(2000, 2))
	assert.Equal(t, 28, calendar.DaysInMonth(1900, 2))
	assert.Equal(t, 366, calendar.DaysInYear(2000))
	assert.Equal(t, 365, calendar.DaysInYear(1900))
}
