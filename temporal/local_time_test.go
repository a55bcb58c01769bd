package temporal

import "testing"

func TestLocalTimeOfAndClock(t *testing.T) {
	tm := LocalTimeOf(9, 5, 30, 100_000_000)
	hour, minute, second, nanosecond := tm.Clock()
	if hour != 9 || minute != 5 || second != 30 || nanosecond != 100_000_000 {
		t.Fatalf("got %d:%d:%d.%d", hour, minute, second, nanosecond)
	}
}

func TestLocalTimeString(t *testing.T) {
	tm := LocalTimeOf(9, 5, 30, 100_000_000)
	if got := tm.String(); got != "09:05:30.1" {
		t.Fatalf("got %q", got)
	}
}

func TestParseLocalTimeRoundTrip(t *testing.T) {
	tm, err := ParseLocalTime("09:05:30.100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, _, ns := tm.Clock(); ns != 100_000_000 {
		t.Fatalf("nanosecond = %d", ns)
	}
}

func TestLocalTimeAddSecondsWrapsAtMidnight(t *testing.T) {
	tm := LocalTimeOf(23, 59, 50, 0)
	result, daysCarried := tm.AddSeconds(20)
	hour, minute, second, _ := result.Clock()
	if hour != 0 || minute != 0 || second != 10 {
		t.Fatalf("got %02d:%02d:%02d", hour, minute, second)
	}
	if daysCarried != 1 {
		t.Fatalf("daysCarried = %d, want 1", daysCarried)
	}
}

func TestLocalTimeAddSecondsNegativeWrapsBackward(t *testing.T) {
	tm := LocalTimeOf(0, 0, 10, 0)
	result, daysCarried := tm.AddSeconds(-20)
	hour, minute, second, _ := result.Clock()
	if hour != 23 || minute != 59 || second != 50 {
		t.Fatalf("got %02d:%02d:%02d", hour, minute, second)
	}
	if daysCarried != -1 {
		t.Fatalf("daysCarried = %d, want -1", daysCarried)
	}
}

func TestLocalTimeOfInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for hour 24")
		}
	}()
	LocalTimeOf(24, 0, 0, 0)
}
