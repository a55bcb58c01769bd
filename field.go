package chronofield

// FieldKind classifies the semantic type of a Field, per §3.
type FieldKind int

const (
	KindSignedInt FieldKind = iota
	KindUnsignedInt
	KindBool
	KindEnum
	KindDecimalFraction
)

// Field is a named, typed slot on Container (§3, §4.1). Each Field exposes
// get/set/range-check/default and, for numeric fields that participate in a
// shared-sign group, a reference to the sign-carrier field.
type Field struct {
	name string
	kind FieldKind

	min, max int64

	hasDefault bool
	def        int64

	// lax, when true, makes Set saturate out-of-range assignments into
	// [-laxBound, laxBound] instead of leaving validation entirely to
	// finalisation. This is the "signed-field assignment... clamps to
	// -99..99" allowance of §4.1, which exists so that a parsed value like
	// "60" seconds can sit in the bag and be rejected later, by strict
	// finalisation, with a proper InconsistentFields/FieldValueError rather
	// than an assignment-time panic or silent truncation.
	lax      bool
	laxBound int64

	signCarrier *Field

	get   func(c *Container) (int64, bool)
	set   func(c *Container, v int64)
	clear func(c *Container)
}

// Name returns the field's identifier, e.g. "year" or "monthNumber".
func (f *Field) Name() string { return f.name }

// Kind returns the field's semantic type.
func (f *Field) Kind() FieldKind { return f.kind }

// Min and Max return the field's true semantic bounds (enforced at
// finalisation, and by non-lax directive parsing).
func (f *Field) Min() int64 { return f.min }
func (f *Field) Max() int64 { return f.max }

// Default returns the field's declared default and whether one exists.
func (f *Field) Default() (int64, bool) { return f.def, f.hasDefault }

// SignCarrier returns the field whose isNegative value this field's
// magnitude is signed by, or nil if f carries no shared sign.
func (f *Field) SignCarrier() *Field { return f.signCarrier }

// Get reads f's raw bag-level value from c.
func (f *Field) Get(c *Container) (int64, bool) { return f.get(c) }

// Set writes v into c for f, saturating per the lax bag-level clamp if any.
func (f *Field) Set(c *Container, v int64) {
	if f.lax {
		if v > f.laxBound {
			v = f.laxBound
		} else if v < -f.laxBound {
			v = -f.laxBound
		}
	}
	f.set(c, v)
}

// Unset clears f in c.
func (f *Field) Unset(c *Container) { f.clear(c) }

// CheckRange validates v against f's true semantic bounds.
func (f *Field) CheckRange(v int64) error {
	if v < f.min || v > f.max {
		return &FieldValueError{Field: f.name, Value: v, Min: f.min, Max: f.max}
	}
	return nil
}

// IsDefault reports whether c's value of f counts as "at default" for the
// purpose of Optional elision (§4.2): unset counts as at-default (nothing
// was ever asked to be shown), and an explicit value counts as at-default
// only if it equals f's declared default.
func (f *Field) IsDefault(c *Container) bool {
	v, ok := f.get(c)
	if !ok {
		return true
	}
	if !f.hasDefault {
		return false
	}
	return v == f.def
}

// The field specs enumerated in §3. Each accessor closure reaches directly
// into the matching Container slot; Container itself exposes no public
// per-field getters/setters, only the generic Field-mediated Get/Set, so
// this table is the single place that maps a Field identity to storage.
var (
	FieldYear = &Field{
		name: "year", kind: KindSignedInt,
		min: -1 << 31, max: 1<<31 - 1,
		get:   func(c *Container) (int64, bool) { return derefOK(c.year) },
		set:   func(c *Container, v int64) { c.year = &v },
		clear: func(c *Container) { c.year = nil },
	}
	FieldMonthNumber = &Field{
		name: "monthNumber", kind: KindUnsignedInt,
		min: 1, max: 12, lax: true, laxBound: 99,
		get:   func(c *Container) (int64, bool) { return derefOK(c.monthNumber) },
		set:   func(c *Container, v int64) { c.monthNumber = &v },
		clear: func(c *Container) { c.monthNumber = nil },
	}
	FieldDayOfMonth = &Field{
		name: "dayOfMonth", kind: KindUnsignedInt,
		min: 1, max: 31, lax: true, laxBound: 99,
		get:   func(c *Container) (int64, bool) { return derefOK(c.dayOfMonth) },
		set:   func(c *Container, v int64) { c.dayOfMonth = &v },
		clear: func(c *Container) { c.dayOfMonth = nil },
	}
	FieldDayOfYear = &Field{
		name: "dayOfYear", kind: KindUnsignedInt,
		min: 1, max: 366, lax: true, laxBound: 999,
		get:   func(c *Container) (int64, bool) { return derefOK(c.dayOfYear) },
		set:   func(c *Container, v int64) { c.dayOfYear = &v },
		clear: func(c *Container) { c.dayOfYear = nil },
	}
	FieldISODayOfWeek = &Field{
		name: "isoDayOfWeek", kind: KindUnsignedInt,
		min: 1, max: 7, lax: true, laxBound: 99,
		get:   func(c *Container) (int64, bool) { return derefOK(c.isoDayOfWeek) },
		set:   func(c *Container, v int64) { c.isoDayOfWeek = &v },
		clear: func(c *Container) { c.isoDayOfWeek = nil },
	}

	FieldHour = &Field{
		name: "hour", kind: KindUnsignedInt,
		min: 0, max: 23, lax: true, laxBound: 99,
		get:   func(c *Container) (int64, bool) { return derefOK(c.hour) },
		set:   func(c *Container, v int64) { c.hour = &v },
		clear: func(c *Container) { c.hour = nil },
	}
	FieldHourOfAmPm = &Field{
		name: "hourOfAmPm", kind: KindUnsignedInt,
		min: 1, max: 12, lax: true, laxBound: 99,
		get:   func(c *Container) (int64, bool) { return derefOK(c.hourOfAmPm) },
		set:   func(c *Container, v int64) { c.hourOfAmPm = &v },
		clear: func(c *Container) { c.hourOfAmPm = nil },
	}
	// FieldAmPm stores 0 for AM, 1 for PM.
	FieldAmPm = &Field{
		name: "amPm", kind: KindEnum,
		min: 0, max: 1,
		get:   func(c *Container) (int64, bool) { return derefOK(c.amPm) },
		set:   func(c *Container, v int64) { c.amPm = &v },
		clear: func(c *Container) { c.amPm = nil },
	}
	FieldMinute = &Field{
		name: "minute", kind: KindUnsignedInt,
		min: 0, max: 59, lax: true, laxBound: 99,
		get:   func(c *Container) (int64, bool) { return derefOK(c.minute) },
		set:   func(c *Container, v int64) { c.minute = &v },
		clear: func(c *Container) { c.minute = nil },
	}
	FieldSecond = &Field{
		name: "second", kind: KindUnsignedInt,
		min: 0, max: 59, hasDefault: true, def: 0, lax: true, laxBound: 99,
		get:   func(c *Container) (int64, bool) { return derefOK(c.second) },
		set:   func(c *Container, v int64) { c.second = &v },
		clear: func(c *Container) { c.second = nil },
	}
	FieldNanosecond = &Field{
		name: "nanosecond", kind: KindUnsignedInt,
		min: 0, max: 999_999_999, hasDefault: true, def: 0,
		get:   func(c *Container) (int64, bool) { return derefOK(c.nanosecond) },
		set:   func(c *Container, v int64) { c.nanosecond = &v },
		clear: func(c *Container) { c.nanosecond = nil },
	}

	FieldOffsetIsNegative = &Field{
		name: "isNegative", kind: KindBool,
		min: 0, max: 1, hasDefault: true, def: 0,
		get:   func(c *Container) (int64, bool) { return derefOK(c.offsetIsNegative) },
		set:   func(c *Container, v int64) { c.offsetIsNegative = &v },
		clear: func(c *Container) { c.offsetIsNegative = nil },
	}
	FieldOffsetHours = &Field{
		name: "totalHoursAbs", kind: KindUnsignedInt,
		min: 0, max: 18, hasDefault: true, def: 0, lax: true, laxBound: 99,
		signCarrier: FieldOffsetIsNegative,
		get:         func(c *Container) (int64, bool) { return derefOK(c.offsetHours) },
		set:         func(c *Container, v int64) { c.offsetHours = &v },
		clear:       func(c *Container) { c.offsetHours = nil },
	}
	FieldOffsetMinutes = &Field{
		name: "minutesOfHour", kind: KindUnsignedInt,
		min: 0, max: 59, hasDefault: true, def: 0, lax: true, laxBound: 99,
		signCarrier: FieldOffsetIsNegative,
		get:         func(c *Container) (int64, bool) { return derefOK(c.offsetMinutes) },
		set:         func(c *Container, v int64) { c.offsetMinutes = &v },
		clear:       func(c *Container) { c.offsetMinutes = nil },
	}
	FieldOffsetSeconds = &Field{
		name: "secondsOfMinute", kind: KindUnsignedInt,
		min: 0, max: 59, hasDefault: true, def: 0, lax: true, laxBound: 99,
		signCarrier: FieldOffsetIsNegative,
		get:         func(c *Container) (int64, bool) { return derefOK(c.offsetSeconds) },
		set:         func(c *Container, v int64) { c.offsetSeconds = &v },
		clear:       func(c *Container) { c.offsetSeconds = nil },
	}
)

var allFields = []*Field{
	FieldYear, FieldMonthNumber, FieldDayOfMonth, FieldDayOfYear, FieldISODayOfWeek,
	FieldHour, FieldHourOfAmPm, FieldAmPm, FieldMinute, FieldSecond, FieldNanosecond,
	FieldOffsetIsNegative, FieldOffsetHours, FieldOffsetMinutes, FieldOffsetSeconds,
}

func derefOK(p *int64) (int64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
