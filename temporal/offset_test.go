package temporal

import "testing"

func TestUtcOffsetOfNegative(t *testing.T) {
	o := UtcOffsetOf(-5, 30, 0)
	negative, hours, minutes, seconds := o.Components()
	if !negative || hours != 5 || minutes != 30 || seconds != 0 {
		t.Fatalf("got negative=%v %d:%d:%d", negative, hours, minutes, seconds)
	}
	if o.TotalSeconds() != -(5*3600 + 30*60) {
		t.Fatalf("got %d", o.TotalSeconds())
	}
}

func TestUtcOffsetOfZeroHoursNegativeMinutes(t *testing.T) {
	// Mirrors the chrono teacher's OffsetOf(0, -30) convention: with hours
	// zero, the sign comes from minutes.
	o := UtcOffsetOf(0, -30, 0)
	if o.TotalSeconds() != -30*60 {
		t.Fatalf("got %d", o.TotalSeconds())
	}
}

func TestUtcOffsetString(t *testing.T) {
	if got := UTC.String(); got != "Z" {
		t.Fatalf("got %q, want Z", got)
	}
	o := UtcOffsetOf(-5, 30, 0)
	if got := o.String(); got != "-05:30:00" {
		t.Fatalf("got %q", got)
	}
}

func TestUtcOffsetExceedsBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for +19h")
		}
	}()
	UtcOffsetOf(19, 0, 0)
}

func TestParseUtcOffsetRoundTrip(t *testing.T) {
	o, err := ParseUtcOffset("-05:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.TotalSeconds() != -(5*3600 + 30*60) {
		t.Fatalf("got %d", o.TotalSeconds())
	}
}
