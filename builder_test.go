package chronofield

import "testing"

func TestDateBuilderRoundTrip(t *testing.T) {
	tree, err := NewDateBuilder().
		Year(PadZero, 4).
		Char('-').
		MonthNumber(PadZero, 2).
		Char('-').
		DayOfMonth(PadZero, 2).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 3)
	FieldDayOfMonth.Set(c, 9)

	got, err := NewFormatter(tree).Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "2024-03-09" {
		t.Fatalf("got %q, want %q", got, "2024-03-09")
	}

	parsed, err := NewParser(tree).Parse("2024-03-09")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !parsed.Equal(c) {
		t.Fatal("round-tripped container does not match the original")
	}
}

func TestTimeBuilderOptionalFraction(t *testing.T) {
	minLen := 0
	tree, err := NewTimeBuilder().
		Hour(PadZero, 2).Char(':').Minute(PadZero, 2).Char(':').Second(PadZero, 2).
		Optional("", func(b *TimeBuilder) {
			b.Char('.').FractionOfSecond(&minLen, 9)
		}).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	c := NewContainer()
	FieldHour.Set(c, 12)
	FieldMinute.Set(c, 0)
	FieldSecond.Set(c, 0)

	got, err := NewFormatter(tree).Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "12:00:00" {
		t.Fatalf("got %q, want %q (fraction elided at zero)", got, "12:00:00")
	}

	FieldNanosecond.Set(c, 250_000_000)
	got, err = NewFormatter(tree).Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "12:00:00.25" {
		t.Fatalf("got %q, want %q", got, "12:00:00.25")
	}
}

func TestUtcOffsetBuilderSignedGroup(t *testing.T) {
	tree, err := NewUtcOffsetBuilder().
		Signed(true, func(b *UtcOffsetBuilder) {
			b.Hours(PadZero, 2).Minutes(PadZero, 2)
		}).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	c := NewContainer()
	FieldOffsetIsNegative.Set(c, 1)
	FieldOffsetHours.Set(c, 2)
	FieldOffsetMinutes.Set(c, 30)

	got, err := NewFormatter(tree).Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "-0230" {
		t.Fatalf("got %q, want %q", got, "-0230")
	}
}

func TestBuilderAggregatesMultipleErrors(t *testing.T) {
	_, err := NewDateBuilder().
		MonthName([]string{"dup", "Dup"}).
		MonthName([]string{}).
		Build()
	if err == nil {
		t.Fatal("expected an aggregated build error")
	}
}
