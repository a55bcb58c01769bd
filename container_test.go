package chronofield

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContainerCloneIsIndependent(t *testing.T) {
	c := NewContainer()
	FieldYear.Set(c, 2024)
	c.SetTimeZoneID("Europe/London")

	clone := c.Clone()
	FieldYear.Set(clone, 1999)
	clone.SetTimeZoneID("UTC")

	if v, _ := FieldYear.Get(c); v != 2024 {
		t.Fatalf("original year mutated by clone: %d", v)
	}
	if id, _ := c.TimeZoneID(); id != "Europe/London" {
		t.Fatalf("original zone id mutated by clone: %s", id)
	}
}

func TestContainerEqual(t *testing.T) {
	a := NewContainer()
	b := NewContainer()
	if !a.Equal(b) {
		t.Fatal("two empty containers should be equal")
	}

	FieldYear.Set(a, 2024)
	if a.Equal(b) {
		t.Fatal("containers differing in one field should not be equal")
	}

	FieldYear.Set(b, 2024)
	if !a.Equal(b) {
		t.Fatal("containers with matching fields should be equal")
	}

	a.SetTimeZoneID("UTC")
	if a.Equal(b) {
		t.Fatal("containers differing in zone id should not be equal")
	}
}

func TestContainerCloneDeepEqualsOriginal(t *testing.T) {
	c := NewContainer()
	FieldYear.Set(c, 2024)
	FieldMonthNumber.Set(c, 3)
	c.SetTimeZoneID("Europe/London")

	clone := c.Clone()
	if diff := cmp.Diff(c, clone, cmp.AllowUnexported(Container{})); diff != "" {
		t.Fatalf("clone diverges from original (-want +got):\n%s", diff)
	}
}

func TestContainerUnset(t *testing.T) {
	c := NewContainer()
	FieldMinute.Set(c, 30)
	c.Unset(FieldMinute)
	if _, ok := FieldMinute.Get(c); ok {
		t.Fatal("expected minute to be unset")
	}
}
