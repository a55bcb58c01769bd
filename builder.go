package chronofield

import (
	"go.uber.org/multierr"

	"github.com/chronofield/chronofield/internal/zoneid"
)

// coreBuilder accumulates tree nodes and aggregates every construction
// error via go.uber.org/multierr, surfacing them together from Build()
// rather than failing at the first bad call (§5, §9; grounded on the
// retrieval pack's use of multierr for exactly this kind of accumulated
// validation - see DESIGN.md). It backs every capability-scoped builder
// below; those wrapper types exist purely to restrict, at compile time,
// which directive methods are reachable for a given target shape (date,
// time, offset, zoned date-time, or a raw components bag).
type coreBuilder struct {
	nodes []Node
	errs  error
	zones *zoneid.Registry
}

func (b *coreBuilder) push(n Node) {
	b.nodes = append(b.nodes, n)
}

func (b *coreBuilder) pushOrFail(n Node, err error) {
	if err != nil {
		b.errs = multierr.Append(b.errs, err)
		return
	}
	b.nodes = append(b.nodes, n)
}

func (b *coreBuilder) char(c byte) {
	b.push(NewConstant(string(c)))
}

func (b *coreBuilder) chars(s string) {
	b.push(NewConstant(s))
}

func (b *coreBuilder) optional(onZeroLiteral string, body func(*coreBuilder)) {
	inner := &coreBuilder{zones: b.zones}
	body(inner)
	if inner.errs != nil {
		b.errs = multierr.Append(b.errs, inner.errs)
		return
	}
	node, err := NewOptional(onZeroLiteral, NewConcat(inner.nodes...))
	if err != nil {
		b.errs = multierr.Append(b.errs, err)
		return
	}
	b.push(node)
}

func (b *coreBuilder) alternativeParsing(primary func(*coreBuilder), alts ...func(*coreBuilder)) {
	primaryInner := &coreBuilder{zones: b.zones}
	primary(primaryInner)
	if primaryInner.errs != nil {
		b.errs = multierr.Append(b.errs, primaryInner.errs)
		return
	}
	altNodes := make([]Node, 0, len(alts))
	for _, alt := range alts {
		inner := &coreBuilder{zones: b.zones}
		alt(inner)
		if inner.errs != nil {
			b.errs = multierr.Append(b.errs, inner.errs)
			continue
		}
		altNodes = append(altNodes, NewConcat(inner.nodes...))
	}
	node, err := NewAlternatives(NewConcat(primaryInner.nodes...), altNodes...)
	if err != nil {
		b.errs = multierr.Append(b.errs, err)
		return
	}
	b.push(node)
}

func (b *coreBuilder) signed(withPlusSign bool, signCarrier *Field, body func(*coreBuilder)) {
	inner := &coreBuilder{zones: b.zones}
	body(inner)
	if inner.errs != nil {
		b.errs = multierr.Append(b.errs, inner.errs)
		return
	}
	node, err := NewSigned(signCarrier, withPlusSign, inner.nodes...)
	if err != nil {
		b.errs = multierr.Append(b.errs, err)
		return
	}
	b.push(node)
}

func (b *coreBuilder) build() (Node, error) {
	if b.errs != nil {
		return nil, b.errs
	}
	return NewConcat(b.nodes...), nil
}

// --- Date capability -------------------------------------------------

// DateBuilder accumulates directives over the date sub-bag (year,
// monthNumber, dayOfMonth, dayOfYear, isoDayOfWeek) and literals (§5).
type DateBuilder struct{ core *coreBuilder }

// NewDateBuilder starts a WithDate-capability builder.
func NewDateBuilder() *DateBuilder { return &DateBuilder{core: &coreBuilder{}} }

func (b *DateBuilder) Char(c byte) *DateBuilder  { b.core.char(c); return b }
func (b *DateBuilder) Chars(s string) *DateBuilder { b.core.chars(s); return b }

func (b *DateBuilder) Year(padding Padding, width int) *DateBuilder {
	b.core.push(NewSignedInt(FieldYear, padding, width, width == 4))
	return b
}
func (b *DateBuilder) ReducedYear(base int64) *DateBuilder {
	b.core.push(NewReducedYear(base))
	return b
}
func (b *DateBuilder) MonthNumber(padding Padding, width int) *DateBuilder {
	b.core.push(NewUnsignedInt(FieldMonthNumber, padding, width))
	return b
}
func (b *DateBuilder) MonthName(names []string) *DateBuilder {
	n, err := NewNamedEnum(FieldMonthNumber, 1, names)
	b.core.pushOrFail(n, err)
	return b
}
func (b *DateBuilder) DayOfMonth(padding Padding, width int) *DateBuilder {
	b.core.push(NewUnsignedInt(FieldDayOfMonth, padding, width))
	return b
}
func (b *DateBuilder) DayOfYear(padding Padding, width int) *DateBuilder {
	b.core.push(NewUnsignedInt(FieldDayOfYear, padding, width))
	return b
}
func (b *DateBuilder) ISODayOfWeek(padding Padding, width int) *DateBuilder {
	b.core.push(NewUnsignedInt(FieldISODayOfWeek, padding, width))
	return b
}
func (b *DateBuilder) WeekdayName(names []string) *DateBuilder {
	n, err := NewNamedEnum(FieldISODayOfWeek, 1, names)
	b.core.pushOrFail(n, err)
	return b
}
func (b *DateBuilder) Optional(onZeroLiteral string, body func(*DateBuilder)) *DateBuilder {
	b.core.optional(onZeroLiteral, func(inner *coreBuilder) { body(&DateBuilder{core: inner}) })
	return b
}

// Build finalises the accumulated directives into a format tree.
func (b *DateBuilder) Build() (Node, error) { return b.core.build() }

// --- Time capability ---------------------------------------------------

// TimeBuilder accumulates directives over the time sub-bag (hour,
// hourOfAmPm, amPm, minute, second, nanosecond) and literals (§5).
type TimeBuilder struct{ core *coreBuilder }

// NewTimeBuilder starts a WithTime-capability builder.
func NewTimeBuilder() *TimeBuilder { return &TimeBuilder{core: &coreBuilder{}} }

func (b *TimeBuilder) Char(c byte) *TimeBuilder    { b.core.char(c); return b }
func (b *TimeBuilder) Chars(s string) *TimeBuilder { b.core.chars(s); return b }

func (b *TimeBuilder) Hour(padding Padding, width int) *TimeBuilder {
	b.core.push(NewUnsignedInt(FieldHour, padding, width))
	return b
}
func (b *TimeBuilder) HourOfAmPm(padding Padding, width int) *TimeBuilder {
	b.core.push(NewUnsignedInt(FieldHourOfAmPm, padding, width))
	return b
}
func (b *TimeBuilder) AmPmMarker(am, pm string) *TimeBuilder {
	n, err := NewAmPmMarker(am, pm)
	b.core.pushOrFail(n, err)
	return b
}
func (b *TimeBuilder) Minute(padding Padding, width int) *TimeBuilder {
	b.core.push(NewUnsignedInt(FieldMinute, padding, width))
	return b
}
func (b *TimeBuilder) Second(padding Padding, width int) *TimeBuilder {
	b.core.push(NewUnsignedInt(FieldSecond, padding, width))
	return b
}
func (b *TimeBuilder) FractionOfSecond(minLength *int, maxLength int) *TimeBuilder {
	b.core.push(NewDecimalFraction(FieldNanosecond, minLength, maxLength))
	return b
}
func (b *TimeBuilder) Optional(onZeroLiteral string, body func(*TimeBuilder)) *TimeBuilder {
	b.core.optional(onZeroLiteral, func(inner *coreBuilder) { body(&TimeBuilder{core: inner}) })
	return b
}
func (b *TimeBuilder) AlternativeParsing(primary func(*TimeBuilder), alts ...func(*TimeBuilder)) *TimeBuilder {
	wrap := func(f func(*TimeBuilder)) func(*coreBuilder) {
		return func(inner *coreBuilder) { f(&TimeBuilder{core: inner}) }
	}
	wrapped := make([]func(*coreBuilder), len(alts))
	for i, a := range alts {
		wrapped[i] = wrap(a)
	}
	b.core.alternativeParsing(wrap(primary), wrapped...)
	return b
}

// Build finalises the accumulated directives into a format tree.
func (b *TimeBuilder) Build() (Node, error) { return b.core.build() }

// --- UtcOffset capability ------------------------------------------------

// UtcOffsetBuilder accumulates directives over the offset sub-bag
// (offsetIsNegative/offsetHours/offsetMinutes/offsetSeconds) and literals.
// Hours/Minutes/Seconds must be wrapped in Signed to emit/accept the
// shared sign (§5, §3).
type UtcOffsetBuilder struct{ core *coreBuilder }

// NewUtcOffsetBuilder starts a WithUtcOffset-capability builder.
func NewUtcOffsetBuilder() *UtcOffsetBuilder { return &UtcOffsetBuilder{core: &coreBuilder{}} }

func (b *UtcOffsetBuilder) Char(c byte) *UtcOffsetBuilder    { b.core.char(c); return b }
func (b *UtcOffsetBuilder) Chars(s string) *UtcOffsetBuilder { b.core.chars(s); return b }

func (b *UtcOffsetBuilder) Signed(withPlusSign bool, body func(*UtcOffsetBuilder)) *UtcOffsetBuilder {
	b.core.signed(withPlusSign, FieldOffsetIsNegative, func(inner *coreBuilder) {
		body(&UtcOffsetBuilder{core: inner})
	})
	return b
}
func (b *UtcOffsetBuilder) Hours(padding Padding, width int) *UtcOffsetBuilder {
	b.core.push(NewUnsignedInt(FieldOffsetHours, padding, width))
	return b
}
func (b *UtcOffsetBuilder) Minutes(padding Padding, width int) *UtcOffsetBuilder {
	b.core.push(NewUnsignedInt(FieldOffsetMinutes, padding, width))
	return b
}
func (b *UtcOffsetBuilder) Seconds(padding Padding, width int) *UtcOffsetBuilder {
	b.core.push(NewUnsignedInt(FieldOffsetSeconds, padding, width))
	return b
}
func (b *UtcOffsetBuilder) Optional(onZeroLiteral string, body func(*UtcOffsetBuilder)) *UtcOffsetBuilder {
	b.core.optional(onZeroLiteral, func(inner *coreBuilder) { body(&UtcOffsetBuilder{core: inner}) })
	return b
}
func (b *UtcOffsetBuilder) AlternativeParsing(primary func(*UtcOffsetBuilder), alts ...func(*UtcOffsetBuilder)) *UtcOffsetBuilder {
	wrap := func(f func(*UtcOffsetBuilder)) func(*coreBuilder) {
		return func(inner *coreBuilder) { f(&UtcOffsetBuilder{core: inner}) }
	}
	wrapped := make([]func(*coreBuilder), len(alts))
	for i, a := range alts {
		wrapped[i] = wrap(a)
	}
	b.core.alternativeParsing(wrap(primary), wrapped...)
	return b
}

// Build finalises the accumulated directives into a format tree.
func (b *UtcOffsetBuilder) Build() (Node, error) { return b.core.build() }

// --- YearMonth capability ------------------------------------------------

// YearMonthBuilder accumulates directives over year and monthNumber only.
type YearMonthBuilder struct{ core *coreBuilder }

// NewYearMonthBuilder starts a WithYearMonth-capability builder.
func NewYearMonthBuilder() *YearMonthBuilder { return &YearMonthBuilder{core: &coreBuilder{}} }

func (b *YearMonthBuilder) Char(c byte) *YearMonthBuilder    { b.core.char(c); return b }
func (b *YearMonthBuilder) Chars(s string) *YearMonthBuilder { b.core.chars(s); return b }
func (b *YearMonthBuilder) Year(padding Padding, width int) *YearMonthBuilder {
	b.core.push(NewSignedInt(FieldYear, padding, width, width == 4))
	return b
}
func (b *YearMonthBuilder) MonthNumber(padding Padding, width int) *YearMonthBuilder {
	b.core.push(NewUnsignedInt(FieldMonthNumber, padding, width))
	return b
}

// Build finalises the accumulated directives into a format tree.
func (b *YearMonthBuilder) Build() (Node, error) { return b.core.build() }

// --- DateTime / DateTimeComponents capability ----------------------------

// DateTimeBuilder accumulates directives over the full date+time+offset+
// zone-id surface: the least restrictive capability, used for formats like
// RFC 1123 and ISO offset date-times that cross sub-bags (§5).
type DateTimeBuilder struct{ core *coreBuilder }

// NewDateTimeBuilder starts a WithDateTime-capability builder. zones, if
// non-nil, scopes the TimeZoneId directive's accepted identifiers.
func NewDateTimeBuilder(zones *zoneid.Registry) *DateTimeBuilder {
	return &DateTimeBuilder{core: &coreBuilder{zones: zones}}
}

func (b *DateTimeBuilder) Char(c byte) *DateTimeBuilder    { b.core.char(c); return b }
func (b *DateTimeBuilder) Chars(s string) *DateTimeBuilder { b.core.chars(s); return b }

func (b *DateTimeBuilder) Year(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewSignedInt(FieldYear, padding, width, width == 4))
	return b
}
func (b *DateTimeBuilder) MonthNumber(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldMonthNumber, padding, width))
	return b
}
func (b *DateTimeBuilder) MonthName(names []string) *DateTimeBuilder {
	n, err := NewNamedEnum(FieldMonthNumber, 1, names)
	b.core.pushOrFail(n, err)
	return b
}
func (b *DateTimeBuilder) DayOfMonth(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldDayOfMonth, padding, width))
	return b
}
func (b *DateTimeBuilder) WeekdayName(names []string) *DateTimeBuilder {
	n, err := NewNamedEnum(FieldISODayOfWeek, 1, names)
	b.core.pushOrFail(n, err)
	return b
}
func (b *DateTimeBuilder) Hour(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldHour, padding, width))
	return b
}
func (b *DateTimeBuilder) Minute(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldMinute, padding, width))
	return b
}
func (b *DateTimeBuilder) Second(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldSecond, padding, width))
	return b
}
func (b *DateTimeBuilder) FractionOfSecond(minLength *int, maxLength int) *DateTimeBuilder {
	b.core.push(NewDecimalFraction(FieldNanosecond, minLength, maxLength))
	return b
}
func (b *DateTimeBuilder) Signed(withPlusSign bool, body func(*DateTimeBuilder)) *DateTimeBuilder {
	b.core.signed(withPlusSign, FieldOffsetIsNegative, func(inner *coreBuilder) {
		body(&DateTimeBuilder{core: inner})
	})
	return b
}
func (b *DateTimeBuilder) OffsetHours(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldOffsetHours, padding, width))
	return b
}
func (b *DateTimeBuilder) OffsetMinutes(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldOffsetMinutes, padding, width))
	return b
}
func (b *DateTimeBuilder) OffsetSeconds(padding Padding, width int) *DateTimeBuilder {
	b.core.push(NewUnsignedInt(FieldOffsetSeconds, padding, width))
	return b
}
func (b *DateTimeBuilder) TimeZoneID() *DateTimeBuilder {
	b.core.push(NewTimeZoneID(b.core.zones))
	return b
}
func (b *DateTimeBuilder) Optional(onZeroLiteral string, body func(*DateTimeBuilder)) *DateTimeBuilder {
	b.core.optional(onZeroLiteral, func(inner *coreBuilder) { body(&DateTimeBuilder{core: inner}) })
	return b
}
func (b *DateTimeBuilder) AlternativeParsing(primary func(*DateTimeBuilder), alts ...func(*DateTimeBuilder)) *DateTimeBuilder {
	wrap := func(f func(*DateTimeBuilder)) func(*coreBuilder) {
		return func(inner *coreBuilder) { f(&DateTimeBuilder{core: inner}) }
	}
	wrapped := make([]func(*coreBuilder), len(alts))
	for i, a := range alts {
		wrapped[i] = wrap(a)
	}
	b.core.alternativeParsing(wrap(primary), wrapped...)
	return b
}

// Build finalises the accumulated directives into a format tree.
func (b *DateTimeBuilder) Build() (Node, error) { return b.core.build() }

// DateTimeComponentsBuilder is an alias capability for building a format
// tree meant to populate a raw Container rather than any single wrapper
// value - it has the identical surface to DateTimeBuilder (§5's
// WithDateTimeComponents capability places no additional restriction
// beyond "every field is reachable").
type DateTimeComponentsBuilder = DateTimeBuilder

// NewDateTimeComponentsBuilder starts a WithDateTimeComponents-capability
// builder.
func NewDateTimeComponentsBuilder(zones *zoneid.Registry) *DateTimeComponentsBuilder {
	return NewDateTimeBuilder(zones)
}
