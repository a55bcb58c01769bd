package chronofield

import "testing"

func TestCompilePatternISODate(t *testing.T) {
	tree, err := CompilePattern("yyyy-MM-dd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
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
}

func TestCompilePatternCachesByString(t *testing.T) {
	a, err := CompilePattern("HH:mm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := CompilePattern("HH:mm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatal("expected the same cached tree instance for an identical pattern string")
	}
}

func TestCompilePatternQuotedLiteral(t *testing.T) {
	tree, err := CompilePattern("yyyy'T'MM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 3)
	got, err := NewFormatter(tree).Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "2024T03" {
		t.Fatalf("got %q, want %q", got, "2024T03")
	}
}

func TestCompilePatternRejectsLocaleDependentLetter(t *testing.T) {
	if _, err := CompilePattern("GGGG yyyy"); err == nil {
		t.Fatal("expected a BuildError: era text 'G' is locale-dependent")
	}
}

func TestCompilePatternTwoDigitYear(t *testing.T) {
	tree, err := CompilePattern("yy-MM-dd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 1)
	FieldDayOfMonth.Set(c, 1)
	got, err := NewFormatter(tree).Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "24-01-01" {
		t.Fatalf("got %q, want %q", got, "24-01-01")
	}
}

func TestCompilePatternOffsetXLettersElideToZ(t *testing.T) {
	tree, err := CompilePattern("XXX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zero := NewContainer()
	got, err := NewFormatter(tree).Format(zero)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "Z" {
		t.Fatalf("got %q, want %q for a zero/unset offset", got, "Z")
	}

	nonZero := NewContainer()
	FieldOffsetHours.Set(nonZero, 2)
	FieldOffsetMinutes.Set(nonZero, 30)
	got, err = NewFormatter(tree).Format(nonZero)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "+02:30" {
		t.Fatalf("got %q, want %q", got, "+02:30")
	}
}

func TestCompilePatternAmPmMarker(t *testing.T) {
	tree, err := CompilePattern("hh:mm a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewContainer()
	FieldHourOfAmPm.Set(c, 11)
	FieldMinute.Set(c, 15)
	FieldAmPm.Set(c, 1)
	got, err := NewFormatter(tree).Format(c)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}
	if got != "11:15 PM" {
		t.Fatalf("got %q, want %q", got, "11:15 PM")
	}
}
