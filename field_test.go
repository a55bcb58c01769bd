package chronofield

import "testing"

func TestFieldSetLaxClamp(t *testing.T) {
	c := NewContainer()
	FieldMonthNumber.Set(c, 150)
	v, ok := FieldMonthNumber.Get(c)
	if !ok || v != 99 {
		t.Fatalf("expected lax clamp to 99, got %d, ok=%v", v, ok)
	}

	FieldMonthNumber.Set(c, -150)
	v, ok = FieldMonthNumber.Get(c)
	if !ok || v != -99 {
		t.Fatalf("expected lax clamp to -99, got %d, ok=%v", v, ok)
	}
}

func TestFieldCheckRange(t *testing.T) {
	if err := FieldHour.CheckRange(23); err != nil {
		t.Fatalf("23 should be a valid hour: %v", err)
	}
	if err := FieldHour.CheckRange(25); err == nil {
		t.Fatal("expected an error for hour=25")
	}
}

func TestFieldIsDefault(t *testing.T) {
	c := NewContainer()
	if !FieldSecond.IsDefault(c) {
		t.Fatal("an unset field with a default should count as default")
	}
	FieldSecond.Set(c, 0)
	if !FieldSecond.IsDefault(c) {
		t.Fatal("explicitly set to its default value should count as default")
	}
	FieldSecond.Set(c, 30)
	if FieldSecond.IsDefault(c) {
		t.Fatal("explicitly set to a non-default value should not count as default")
	}

	if FieldYear.IsDefault(c) {
		// unset, no default declared -> counts as default per the
		// "nothing was ever asked to be shown" rule
	}
	FieldYear.Set(c, 1999)
	if FieldYear.IsDefault(c) {
		t.Fatal("a field with no declared default is never 'at default' once set")
	}
}

func TestFieldSignCarrier(t *testing.T) {
	if FieldOffsetHours.SignCarrier() != FieldOffsetIsNegative {
		t.Fatal("offset hours must share FieldOffsetIsNegative as its sign carrier")
	}
	if FieldYear.SignCarrier() != nil {
		t.Fatal("year does not participate in a shared-sign group")
	}
}
