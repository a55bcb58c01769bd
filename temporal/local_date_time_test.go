package temporal

import "testing"

func TestLocalDateTimeString(t *testing.T) {
	dt := LocalDateTimeOf(LocalDateOf(2024, 3, 9), LocalTimeOf(13, 30, 0, 0))
	if got := dt.String(); got != "2024-03-09T13:30" {
		t.Fatalf("got %q", got)
	}
}

func TestParseLocalDateTimeRoundTrip(t *testing.T) {
	dt, err := ParseLocalDateTime("2024-03-09T13:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	year, month, day := dt.Date().Date()
	if year != 2024 || month != 3 || day != 9 {
		t.Fatalf("got %d-%d-%d", year, month, day)
	}
	hour, minute, _, _ := dt.Time().Clock()
	if hour != 13 || minute != 30 {
		t.Fatalf("got %02d:%02d", hour, minute)
	}
}

func TestLocalDateTimeAtOffset(t *testing.T) {
	dt := LocalDateTimeOf(LocalDateOf(2024, 3, 9), LocalTimeOf(13, 30, 0, 0))
	odt := dt.AtOffset(UtcOffsetOf(-5, 0, 0))
	if odt.Offset().TotalSeconds() != -5*3600 {
		t.Fatalf("got %d", odt.Offset().TotalSeconds())
	}
}
