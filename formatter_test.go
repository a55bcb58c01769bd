package chronofield

import "testing"

func TestFormatterFormat(t *testing.T) {
	tree := NewConcat(NewUnsignedInt(FieldHour, PadZero, 2), NewConstant(":"), NewUnsignedInt(FieldMinute, PadZero, 2))
	f := NewFormatter(tree)

	c := NewContainer()
	FieldHour.Set(c, 9)
	FieldMinute.Set(c, 5)

	got, err := f.Format(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "09:05" {
		t.Fatalf("got %q, want %q", got, "09:05")
	}
}

func TestFormatterMissingFieldError(t *testing.T) {
	tree := NewConcat(NewUnsignedInt(FieldHour, PadZero, 2))
	f := NewFormatter(tree)

	_, err := f.Format(NewContainer())
	if err == nil {
		t.Fatal("expected a MissingFieldError")
	}
	if _, ok := err.(*MissingFieldError); !ok {
		t.Fatalf("expected *MissingFieldError, got %T", err)
	}
}
