package chronofield

import "testing"

func TestISODateRoundTrip(t *testing.T) {
	f, p := ISODate()
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 3)
	FieldDayOfMonth.Set(c, 9)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "2024-03-09" {
		t.Fatalf("got %q, want %q", got, "2024-03-09")
	}

	parsed, err := p.Parse(got)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !parsed.Equal(c) {
		t.Fatal("round trip mismatch")
	}
}

func TestISODateBasic(t *testing.T) {
	f, p := ISODateBasic()
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 3)
	FieldDayOfMonth.Set(c, 9)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "20240309" {
		t.Fatalf("got %q, want %q", got, "20240309")
	}
	if _, err := p.Parse(got); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
}

func TestISOTimeWithFraction(t *testing.T) {
	f, p := ISOTime()
	c := NewContainer()
	FieldHour.Set(c, 9)
	FieldMinute.Set(c, 5)
	FieldSecond.Set(c, 30)
	FieldNanosecond.Set(c, 100_000_000)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "09:05:30.1" {
		t.Fatalf("got %q, want %q", got, "09:05:30.1")
	}
	parsed, err := p.Parse(got)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if v, _ := FieldNanosecond.Get(parsed); v != 100_000_000 {
		t.Fatalf("nanosecond = %d, want 100000000", v)
	}
}

func TestISOTimeElidesSecondsAtDefault(t *testing.T) {
	f, p := ISOTime()
	c := NewContainer()
	FieldHour.Set(c, 12)
	FieldMinute.Set(c, 34)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "12:34" {
		t.Fatalf("got %q, want %q (seconds elided at default)", got, "12:34")
	}

	parsed, err := p.Parse("12:34")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if v, _ := FieldSecond.Get(parsed); v != 0 {
		t.Fatalf("second = %d, want 0", v)
	}

	if _, err := p.Parse("12:34:56"); err != nil {
		t.Fatalf("unexpected parse error for seconds present: %v", err)
	}
}

func TestISOTimeBasicOptionalMarkerAndSeconds(t *testing.T) {
	f, p := ISOTimeBasic()
	c := NewContainer()
	FieldHour.Set(c, 9)
	FieldMinute.Set(c, 5)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "0905" {
		t.Fatalf("got %q, want %q (seconds elided, no leading marker emitted)", got, "0905")
	}

	for _, in := range []string{"0905", "T0905", "t0905", "090530"} {
		if _, err := p.Parse(in); err != nil {
			t.Fatalf("unexpected parse error for %q: %v", in, err)
		}
	}
}

func TestISODateTimeElidesSeconds(t *testing.T) {
	f, _ := ISODateTime()
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 3)
	FieldDayOfMonth.Set(c, 9)
	FieldHour.Set(c, 12)
	FieldMinute.Set(c, 34)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "2024-03-09T12:34" {
		t.Fatalf("got %q, want %q", got, "2024-03-09T12:34")
	}
}

func TestISODateTimeOffsetRequiresSeconds(t *testing.T) {
	// Unlike ISODateTime, ISODateTimeOffset must not elide seconds (§6).
	_, p := ISODateTimeOffset()
	if _, err := p.Parse("2024-03-09T12:34+05:00"); err == nil {
		t.Fatal("expected a ParseError: ISODateTimeOffset requires seconds")
	}
}

func TestISOOffsetHoursMinutesElidesToZ(t *testing.T) {
	f, p := ISOOffsetHoursMinutes()
	got, err := f.Format(NewContainer())
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "Z" {
		t.Fatalf("got %q, want %q", got, "Z")
	}
	if _, err := p.Parse("Z"); err != nil {
		t.Fatalf("unexpected parse error for 'Z': %v", err)
	}
}

func TestFourDigitOffsetNeverElides(t *testing.T) {
	f, _ := FourDigitOffset()
	c := NewContainer()
	FieldOffsetHours.Set(c, 0)
	FieldOffsetMinutes.Set(c, 0)
	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "+0000" {
		t.Fatalf("got %q, want %q (always a sign, never 'Z')", got, "+0000")
	}
}

func TestISODateTimeOffsetRoundTrip(t *testing.T) {
	f, p := ISODateTimeOffset()
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 3)
	FieldDayOfMonth.Set(c, 9)
	FieldHour.Set(c, 13)
	FieldMinute.Set(c, 30)
	FieldSecond.Set(c, 0)
	FieldOffsetIsNegative.Set(c, 1)
	FieldOffsetHours.Set(c, 5)
	FieldOffsetMinutes.Set(c, 0)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	want := "2024-03-09T13:30:00-05:00"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	parsed, err := p.Parse(got)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !parsed.Equal(c) {
		t.Fatal("round trip mismatch")
	}
}

func TestRFC1123(t *testing.T) {
	f, _ := RFC1123()
	c := NewContainer()
	FieldISODayOfWeek.Set(c, 1)
	FieldDayOfMonth.Set(c, 4)
	FieldMonthNumber.Set(c, 8)
	FieldYear.Set(c, 2025)
	FieldHour.Set(c, 15)
	FieldMinute.Set(c, 4)
	FieldSecond.Set(c, 5)
	FieldOffsetHours.Set(c, 0)
	FieldOffsetMinutes.Set(c, 0)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	want := "Mon, 04 Aug 2025 15:04:05 +0000"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOrdinalDateBasic(t *testing.T) {
	f, _ := OrdinalDateBasic()
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldDayOfYear.Set(c, 60)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "2024060" {
		t.Fatalf("got %q, want %q", got, "2024060")
	}
}
