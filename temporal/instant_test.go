package temporal

import "testing"

func TestInstantCompare(t *testing.T) {
	a := InstantOf(100, 0)
	b := InstantOf(100, 500)
	if a.Compare(b) != -1 {
		t.Fatalf("expected a < b")
	}
	if b.Compare(a) != 1 {
		t.Fatalf("expected b > a")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected a == a")
	}
}

func TestInstantString(t *testing.T) {
	i := InstantOf(100, 500)
	if got := i.String(); got != "100.000000500" {
		t.Fatalf("got %q", got)
	}
}

func TestInstantOfInvalidNanosecondPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for out-of-range nanosecond")
		}
	}()
	InstantOf(0, 1_000_000_000)
}
