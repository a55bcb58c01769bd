package temporal

import "testing"

func TestOffsetDateTimeString(t *testing.T) {
	odt := OffsetDateTimeOf(
		LocalDateTimeOf(LocalDateOf(2024, 3, 9), LocalTimeOf(13, 30, 0, 0)),
		UtcOffsetOf(-5, 0, 0),
	)
	if got := odt.String(); got != "2024-03-09T13:30:00-05:00" {
		t.Fatalf("got %q", got)
	}
}

func TestParseOffsetDateTimeRoundTrip(t *testing.T) {
	odt, err := ParseOffsetDateTime("2024-03-09T13:30:00-05:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if odt.Offset().TotalSeconds() != -5*3600 {
		t.Fatalf("got %d", odt.Offset().TotalSeconds())
	}
}

func TestOffsetDateTimeToInstant(t *testing.T) {
	odt := OffsetDateTimeOf(
		LocalDateTimeOf(LocalDateOf(1970, 1, 1), LocalTimeOf(5, 0, 0, 0)),
		UtcOffsetOf(5, 0, 0),
	)
	instant, err := odt.ToInstant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if instant.EpochSeconds() != 0 {
		t.Fatalf("05:00+05:00 should be the epoch, got %d", instant.EpochSeconds())
	}
}
