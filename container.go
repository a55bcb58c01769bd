package chronofield

// Container is the universal components bag: a mutable, nullable-field
// container that carries date, time, UTC offset and time-zone identifier
// fields for formats that do not correspond to any single validated value.
//
// It is composed from three conceptual sub-bags - date fields, time fields,
// offset fields - plus a time-zone identifier string slot (§3). Rather than
// model those sub-bags as separate Go types that would need stitching back
// together, Container holds every field as an independent nullable slot on
// one flat record (per the "nullable field container" design note in §9);
// the sub-bags are expressed instead as which fields a capability-scoped
// builder is allowed to append directives for (see builder.go).
type Container struct {
	year         *int64
	monthNumber  *int64
	dayOfMonth   *int64
	dayOfYear    *int64
	isoDayOfWeek *int64

	hour       *int64
	hourOfAmPm *int64
	amPm       *int64
	minute     *int64
	second     *int64
	nanosecond *int64

	offsetIsNegative *int64
	offsetHours      *int64
	offsetMinutes    *int64
	offsetSeconds    *int64

	timeZoneID *string
}

// NewContainer returns an empty container. Every field formatter and parser
// call starts from a fresh (or cloned) empty container; the type itself
// supplies no package-level canonical instance since instances are mutated
// in place by their owning call and must never be shared (§3 Ownership).
func NewContainer() *Container {
	return &Container{}
}

// Clone returns a deep-enough copy of c: every populated slot is copied into
// a new pointer so that mutating the clone never affects c. The parser
// clones before every field assignment (setFieldChecked) and for Optional's
// elided candidate, so candidate states never share storage (§4.4).
func (c *Container) Clone() *Container {
	clone := &Container{}
	if c.year != nil {
		v := *c.year
		clone.year = &v
	}
	if c.monthNumber != nil {
		v := *c.monthNumber
		clone.monthNumber = &v
	}
	if c.dayOfMonth != nil {
		v := *c.dayOfMonth
		clone.dayOfMonth = &v
	}
	if c.dayOfYear != nil {
		v := *c.dayOfYear
		clone.dayOfYear = &v
	}
	if c.isoDayOfWeek != nil {
		v := *c.isoDayOfWeek
		clone.isoDayOfWeek = &v
	}
	if c.hour != nil {
		v := *c.hour
		clone.hour = &v
	}
	if c.hourOfAmPm != nil {
		v := *c.hourOfAmPm
		clone.hourOfAmPm = &v
	}
	if c.amPm != nil {
		v := *c.amPm
		clone.amPm = &v
	}
	if c.minute != nil {
		v := *c.minute
		clone.minute = &v
	}
	if c.second != nil {
		v := *c.second
		clone.second = &v
	}
	if c.nanosecond != nil {
		v := *c.nanosecond
		clone.nanosecond = &v
	}
	if c.offsetIsNegative != nil {
		v := *c.offsetIsNegative
		clone.offsetIsNegative = &v
	}
	if c.offsetHours != nil {
		v := *c.offsetHours
		clone.offsetHours = &v
	}
	if c.offsetMinutes != nil {
		v := *c.offsetMinutes
		clone.offsetMinutes = &v
	}
	if c.offsetSeconds != nil {
		v := *c.offsetSeconds
		clone.offsetSeconds = &v
	}
	if c.timeZoneID != nil {
		v := *c.timeZoneID
		clone.timeZoneID = &v
	}
	return clone
}

// Equal reports whether c and o hold the same value (or absence) in every field.
func (c *Container) Equal(o *Container) bool {
	if c == nil || o == nil {
		return c == o
	}
	for _, f := range allFields {
		v1, ok1 := f.get(c)
		v2, ok2 := f.get(o)
		if ok1 != ok2 || (ok1 && v1 != v2) {
			return false
		}
	}
	z1, ok1 := c.timeZoneID, c.timeZoneID != nil
	z2, ok2 := o.timeZoneID, o.timeZoneID != nil
	if ok1 != ok2 {
		return false
	}
	if ok1 && *z1 != *z2 {
		return false
	}
	return true
}

// Get returns f's raw value in c, and whether it is set at all.
func (c *Container) Get(f *Field) (int64, bool) {
	return f.get(c)
}

// Set assigns v to f in c, applying f's lax bag-level clamp if any (§4.1).
func (c *Container) Set(f *Field, v int64) {
	f.Set(c, v)
}

// Unset clears f in c.
func (c *Container) Unset(f *Field) {
	f.clear(c)
}

// TimeZoneID returns the raw time-zone identifier string, if set.
func (c *Container) TimeZoneID() (string, bool) {
	if c.timeZoneID == nil {
		return "", false
	}
	return *c.timeZoneID, true
}

// SetTimeZoneID assigns the time-zone identifier string.
func (c *Container) SetTimeZoneID(id string) {
	c.timeZoneID = &id
}

// UnsetTimeZoneID clears the time-zone identifier string.
func (c *Container) UnsetTimeZoneID() {
	c.timeZoneID = nil
}
