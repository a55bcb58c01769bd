package chronofield

import "sync"

// Each predefined format is built once, lazily, behind its own sync.Once -
// mirroring the teacher's lazy-singleton idiom for expensive shared state
// (see DESIGN.md) - and is never mutated afterwards, so concurrent callers
// may share the same *Formatter/*Parser pair freely (§6).

func mustConcat(nodes ...Node) *Concat { return NewConcat(nodes...) }

func mustNode(n Node, err error) Node {
	if err != nil {
		panic(err)
	}
	return n
}

// --- ISO date ------------------------------------------------------------

var (
	isoDateOnce sync.Once
	isoDateTree Node
)

func isoDate() Node {
	isoDateOnce.Do(func() {
		isoDateTree = mustConcat(
			NewSignedInt(FieldYear, PadZero, 4, true),
			NewConstant("-"),
			NewUnsignedInt(FieldMonthNumber, PadZero, 2),
			NewConstant("-"),
			NewUnsignedInt(FieldDayOfMonth, PadZero, 2),
		)
	})
	return isoDateTree
}

// ISODate formats/parses "yyyy-MM-dd" (§4.6 predefined formats).
func ISODate() (*Formatter, *Parser) {
	tree := isoDate()
	return NewFormatter(tree), NewParser(tree)
}

var (
	isoDateBasicOnce sync.Once
	isoDateBasicTree Node
)

func isoDateBasic() Node {
	isoDateBasicOnce.Do(func() {
		isoDateBasicTree = mustConcat(
			NewSignedInt(FieldYear, PadZero, 4, true),
			NewUnsignedInt(FieldMonthNumber, PadZero, 2),
			NewUnsignedInt(FieldDayOfMonth, PadZero, 2),
		)
	})
	return isoDateBasicTree
}

// ISODateBasic formats/parses "yyyyMMdd".
func ISODateBasic() (*Formatter, *Parser) {
	tree := isoDateBasic()
	return NewFormatter(tree), NewParser(tree)
}

// --- ISO time --------------------------------------------------------------

var (
	isoTimeOnce sync.Once
	isoTimeTree Node
)

func isoTime() Node {
	isoTimeOnce.Do(func() {
		seconds := mustNode(NewOptional("", isoTimeSecondsAndFraction()), nil)
		isoTimeTree = mustConcat(
			NewUnsignedInt(FieldHour, PadZero, 2),
			NewConstant(":"),
			NewUnsignedInt(FieldMinute, PadZero, 2),
			seconds,
		)
	})
	return isoTimeTree
}

// isoTimeSecondsAndFraction builds the ':second[.fraction]' suffix shared by
// isoTime (where the whole suffix is optional) and isoDateTimeOffset (where
// seconds are mandatory, per §6).
func isoTimeSecondsAndFraction() Node {
	fractionMin := 0
	fraction := mustNode(NewOptional("", mustConcat(
		NewConstant("."),
		NewDecimalFraction(FieldNanosecond, &fractionMin, 9),
	)), nil)
	return mustConcat(
		NewConstant(":"),
		NewUnsignedInt(FieldSecond, PadZero, 2),
		fraction,
	)
}

// ISOTime formats/parses "HH:mm[:ss[.fraction]]", eliding the seconds
// portion entirely when both second and nanosecond are at their defaults
// (§6, §8 scenario 4).
func ISOTime() (*Formatter, *Parser) {
	tree := isoTime()
	return NewFormatter(tree), NewParser(tree)
}

var (
	isoTimeBasicOnce sync.Once
	isoTimeBasicTree Node
)

func isoTimeBasic() Node {
	isoTimeBasicOnce.Do(func() {
		marker := mustNode(NewOptional("", mustNode(NewAlternatives(NewConstant("T"), NewConstant("t")), nil)), nil)
		fractionMin := 0
		fraction := mustNode(NewOptional("", mustConcat(
			NewConstant("."),
			NewDecimalFraction(FieldNanosecond, &fractionMin, 9),
		)), nil)
		seconds := mustNode(NewOptional("", mustConcat(
			NewUnsignedInt(FieldSecond, PadZero, 2),
			fraction,
		)), nil)
		isoTimeBasicTree = mustConcat(
			marker,
			NewUnsignedInt(FieldHour, PadZero, 2),
			NewUnsignedInt(FieldMinute, PadZero, 2),
			seconds,
		)
	})
	return isoTimeBasicTree
}

// ISOTimeBasic formats/parses "[T]HHmm[ss[.fraction]]": an optional leading
// 'T'/'t' marker (never emitted, only accepted on parse), then mandatory
// hour and minute, then an optional seconds[.fraction] suffix (§6).
func ISOTimeBasic() (*Formatter, *Parser) {
	tree := isoTimeBasic()
	return NewFormatter(tree), NewParser(tree)
}

// --- ISO offset (three widths, each eliding to "Z" at zero) -----------------

var (
	isoOffsetHoursOnce sync.Once
	isoOffsetHoursTree Node

	isoOffsetHoursMinutesOnce sync.Once
	isoOffsetHoursMinutesTree Node

	isoOffsetFullOnce sync.Once
	isoOffsetFullTree Node
)

func isoOffsetHours() Node {
	isoOffsetHoursOnce.Do(func() {
		hours := mustNode(NewSigned(FieldOffsetIsNegative, true, NewUnsignedInt(FieldOffsetHours, PadZero, 2)), nil)
		isoOffsetHoursTree = mustNode(NewOptional("Z", hours), nil)
	})
	return isoOffsetHoursTree
}

// ISOOffsetHours formats/parses "+HH" or "Z".
func ISOOffsetHours() (*Formatter, *Parser) {
	tree := isoOffsetHours()
	return NewFormatter(tree), NewParser(tree)
}

func isoOffsetHoursMinutes() Node {
	isoOffsetHoursMinutesOnce.Do(func() {
		hours := mustNode(NewSigned(FieldOffsetIsNegative, true, NewUnsignedInt(FieldOffsetHours, PadZero, 2)), nil)
		body := mustConcat(hours, NewConstant(":"), NewUnsignedInt(FieldOffsetMinutes, PadZero, 2))
		isoOffsetHoursMinutesTree = mustNode(NewOptional("Z", body), nil)
	})
	return isoOffsetHoursMinutesTree
}

// ISOOffsetHoursMinutes formats/parses "+HH:MM" or "Z".
func ISOOffsetHoursMinutes() (*Formatter, *Parser) {
	tree := isoOffsetHoursMinutes()
	return NewFormatter(tree), NewParser(tree)
}

func isoOffsetFull() Node {
	isoOffsetFullOnce.Do(func() {
		hours := mustNode(NewSigned(FieldOffsetIsNegative, true, NewUnsignedInt(FieldOffsetHours, PadZero, 2)), nil)
		body := mustConcat(
			hours, NewConstant(":"), NewUnsignedInt(FieldOffsetMinutes, PadZero, 2),
			NewConstant(":"), NewUnsignedInt(FieldOffsetSeconds, PadZero, 2),
		)
		isoOffsetFullTree = mustNode(NewOptional("Z", body), nil)
	})
	return isoOffsetFullTree
}

// ISOOffsetFull formats/parses "+HH:MM:SS" or "Z".
func ISOOffsetFull() (*Formatter, *Parser) {
	tree := isoOffsetFull()
	return NewFormatter(tree), NewParser(tree)
}

// --- Four-digit offset (always numeric, never "Z") --------------------------

var (
	fourDigitOffsetOnce sync.Once
	fourDigitOffsetTree Node
)

func fourDigitOffset() Node {
	fourDigitOffsetOnce.Do(func() {
		fourDigitOffsetTree = mustNode(NewSigned(FieldOffsetIsNegative, true,
			NewUnsignedInt(FieldOffsetHours, PadZero, 2),
			NewUnsignedInt(FieldOffsetMinutes, PadZero, 2),
		), nil)
	})
	return fourDigitOffsetTree
}

// FourDigitOffset formats/parses "+HHMM"/"-HHMM" (§8 "Signed group"
// scenario: always shows a sign, never elides to "Z").
func FourDigitOffset() (*Formatter, *Parser) {
	tree := fourDigitOffset()
	return NewFormatter(tree), NewParser(tree)
}

// --- ISO date-time and ISO date-time-offset ---------------------------------

var (
	isoDateTimeOnce sync.Once
	isoDateTimeTree Node
)

func isoDateTime() Node {
	isoDateTimeOnce.Do(func() {
		isoDateTimeTree = mustConcat(isoDate(), NewConstant("T"), isoTime())
	})
	return isoDateTimeTree
}

// ISODateTime formats/parses "yyyy-MM-dd'T'HH:mm[:ss[.fraction]]", eliding
// seconds (and the fraction) when both are at their defaults, same as
// ISOTime - unlike ISODateTimeOffset, seconds are not mandatory here (§6).
func ISODateTime() (*Formatter, *Parser) {
	tree := isoDateTime()
	return NewFormatter(tree), NewParser(tree)
}

var (
	isoDateTimeOffsetOnce sync.Once
	isoDateTimeOffsetTree Node
)

func isoDateTimeOffset() Node {
	isoDateTimeOffsetOnce.Do(func() {
		// Unlike plain ISO date-time, seconds are mandatory here (§6), so
		// this cannot share isoTime()'s optional-seconds tree.
		isoDateTimeOffsetTree = mustConcat(
			isoDate(), NewConstant("T"),
			NewUnsignedInt(FieldHour, PadZero, 2),
			NewConstant(":"),
			NewUnsignedInt(FieldMinute, PadZero, 2),
			isoTimeSecondsAndFraction(),
			isoOffsetHoursMinutes(),
		)
	})
	return isoDateTimeOffsetTree
}

// ISODateTimeOffset formats/parses "yyyy-MM-dd'T'HH:mm:ss[.fraction]+HH:MM".
// Seconds are mandatory here, unlike ISODateTime (§6).
func ISODateTimeOffset() (*Formatter, *Parser) {
	tree := isoDateTimeOffset()
	return NewFormatter(tree), NewParser(tree)
}

// --- RFC 1123 ----------------------------------------------------------------

var (
	rfc1123Once sync.Once
	rfc1123Tree Node
)

func rfc1123() Node {
	rfc1123Once.Do(func() {
		// The original RFC 1123 format ends in a textual zone abbreviation
		// ("MST"), which requires a locale/tzdata text table this module
		// does not carry (§4.6, §9 Non-goals). It is adapted here to the
		// numeric zone offset used by RFC 1123's own Z variant instead,
		// which is representable purely from the offset sub-bag.
		rfc1123Tree = mustConcat(
			mustNode(NewNamedEnum(FieldISODayOfWeek, 1, weekdayAbbrev), nil),
			NewConstant(", "),
			NewUnsignedInt(FieldDayOfMonth, PadZero, 2),
			NewConstant(" "),
			mustNode(NewNamedEnum(FieldMonthNumber, 1, monthAbbrev), nil),
			NewConstant(" "),
			NewSignedInt(FieldYear, PadZero, 4, true),
			NewConstant(" "),
			NewUnsignedInt(FieldHour, PadZero, 2),
			NewConstant(":"),
			NewUnsignedInt(FieldMinute, PadZero, 2),
			NewConstant(":"),
			NewUnsignedInt(FieldSecond, PadZero, 2),
			NewConstant(" "),
			fourDigitOffset(),
		)
	})
	return rfc1123Tree
}

// RFC1123 formats/parses "Mon, 02 Jan 2006 15:04:05 -0700".
func RFC1123() (*Formatter, *Parser) {
	tree := rfc1123()
	return NewFormatter(tree), NewParser(tree)
}

// --- ISO year-month ----------------------------------------------------------

var (
	isoYearMonthOnce sync.Once
	isoYearMonthTree Node
)

func isoYearMonth() Node {
	isoYearMonthOnce.Do(func() {
		isoYearMonthTree = mustConcat(
			NewSignedInt(FieldYear, PadZero, 4, true),
			NewConstant("-"),
			NewUnsignedInt(FieldMonthNumber, PadZero, 2),
		)
	})
	return isoYearMonthTree
}

// ISOYearMonth formats/parses "yyyy-MM".
func ISOYearMonth() (*Formatter, *Parser) {
	tree := isoYearMonth()
	return NewFormatter(tree), NewParser(tree)
}

// --- Supplemented: month-day fragment and ordinal date basic ----------------

var (
	monthDayOnce sync.Once
	monthDayTree Node
)

func monthDay() Node {
	monthDayOnce.Do(func() {
		monthDayTree = mustConcat(
			NewConstant("--"),
			NewUnsignedInt(FieldMonthNumber, PadZero, 2),
			NewConstant("-"),
			NewUnsignedInt(FieldDayOfMonth, PadZero, 2),
		)
	})
	return monthDayTree
}

// MonthDay formats/parses ISO 8601's year-less "--MM-dd" fragment. Not
// present in the distilled format list; supplemented from the surrounding
// family of ISO fragment formats (§ SPEC_FULL.md Supplemented Features).
func MonthDay() (*Formatter, *Parser) {
	tree := monthDay()
	return NewFormatter(tree), NewParser(tree)
}

var (
	ordinalDateBasicOnce sync.Once
	ordinalDateBasicTree Node
)

func ordinalDateBasic() Node {
	ordinalDateBasicOnce.Do(func() {
		ordinalDateBasicTree = mustConcat(
			NewSignedInt(FieldYear, PadZero, 4, true),
			NewUnsignedInt(FieldDayOfYear, PadZero, 3),
		)
	})
	return ordinalDateBasicTree
}

// OrdinalDateBasic formats/parses ISO 8601's ordinal date "yyyyDDD".
// Supplemented alongside ISODateBasic (§ SPEC_FULL.md Supplemented
// Features).
func OrdinalDateBasic() (*Formatter, *Parser) {
	tree := ordinalDateBasic()
	return NewFormatter(tree), NewParser(tree)
}
