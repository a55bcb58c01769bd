package chronofield

import (
	"strconv"
	"strings"

	"github.com/chronofield/chronofield/internal/zoneid"
)

// Padding controls how a numeric directive fills out its declared width
// (§4.2).
type Padding int

const (
	// PadNone emits the minimum number of digits (no filling).
	PadNone Padding = iota
	// PadZero zero-fills on the left out to width.
	PadZero
	// PadSpace space-fills on the left out to width.
	PadSpace
)

// maxParsedDigits bounds how many digit characters a single numeric
// directive will ever try to consume, keeping the backtracking search
// bounded regardless of how long a run of digits the input contains.
const maxParsedDigits = 18

// integerDirective implements both SignedInt and UnsignedInt (§4.2): the
// only difference between the two is whether a sign is ever written or
// accepted, and whether forceSignBeyondWidth applies (the signed-year
// "always show a sign once the padded width is exceeded" rule, §4.2/§6).
type integerDirective struct {
	field                *Field
	signed               bool
	padding              Padding
	width                int
	forceSignBeyondWidth bool
}

// NewUnsignedInt builds an UnsignedInt directive over field.
func NewUnsignedInt(field *Field, padding Padding, width int) Node {
	return &integerDirective{field: field, signed: false, padding: padding, width: width}
}

// NewSignedInt builds a SignedInt directive over field. forceSignBeyondWidth
// implements the year directive's rule of always showing a sign once the
// value's natural digit count exceeds width (§4.2, §6).
func NewSignedInt(field *Field, padding Padding, width int, forceSignBeyondWidth bool) Node {
	return &integerDirective{field: field, signed: true, padding: padding, width: width, forceSignBeyondWidth: forceSignBeyondWidth}
}

func (d *integerDirective) isNumeric() {}

func (d *integerDirective) requiredFields() []*Field { return []*Field{d.field} }

func (d *integerDirective) emit(c *Container, out *strings.Builder) error {
	v, ok := d.field.Get(c)
	if !ok {
		return &MissingFieldError{Field: d.field.Name()}
	}
	return d.emitValue(v, out)
}

func (d *integerDirective) emitValue(v int64, out *strings.Builder) error {
	neg := v < 0
	abs := v
	if neg {
		abs = -v
	}
	digits := strconv.FormatInt(abs, 10)

	var sign byte
	switch {
	case d.signed && neg:
		sign = '-'
	case d.signed && d.forceSignBeyondWidth && len(digits) > d.width:
		sign = '+'
	}

	switch d.padding {
	case PadZero:
		for len(digits) < d.width {
			digits = "0" + digits
		}
	case PadSpace:
		for len(digits) < d.width {
			digits = " " + digits
		}
	}

	if sign != 0 {
		out.WriteByte(sign)
	}
	out.WriteString(digits)
	return nil
}

func (d *integerDirective) consume(c *Container, input string, pos int) []parseState {
	next := pos
	neg := false
	hasSign := false
	if d.signed && next < len(input) {
		switch input[next] {
		case '-':
			neg, hasSign = true, true
			next++
		case '+':
			hasSign = true
			next++
		}
	}

	start := next
	for next < len(input) && next-start < maxParsedDigits && isASCIIDigit(input[next]) {
		next++
	}
	if next == start {
		return nil
	}

	// Without an explicit sign, a padded directive reads at most width
	// significant digits - otherwise adjacent fixed-width directives in the
	// same Concat (e.g. a bare ISO date) could never disambiguate - plus,
	// for zero padding, any extra leading zeros.
	maxLen := next - start
	if d.padding != PadNone && !hasSign {
		limit := d.width
		for d.padding == PadZero && limit < maxLen && input[start+limit-d.width] == '0' {
			limit++
		}
		if maxLen > limit {
			maxLen = limit
		}
	}

	// A zero-padded directive always writes at least width digits, so it
	// reads at least that many.
	minLen := 1
	if d.padding == PadZero {
		minLen = d.width
	}

	var states []parseState
	for length := minLen; length <= maxLen; length++ {
		digits := input[start : start+length]
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		if neg {
			v = -v
		}
		clone, ok := setFieldChecked(c, d.field, v)
		if !ok {
			continue
		}
		states = append(states, parseState{pos: start + length, c: clone})
	}
	return states
}

func (d *integerDirective) builderRepr() string {
	return d.field.Name() + "()"
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// reducedYearDirective implements ReducedYear (§4.2, §6): inside
// [base, base+99] it writes/reads a zero-padded two-digit window value;
// outside it, it falls back to the full signed year with a mandatory sign.
type reducedYearDirective struct {
	base int64
}

// NewReducedYear builds a ReducedYear directive windowed at [base, base+99].
func NewReducedYear(base int64) Node { return &reducedYearDirective{base: base} }

func (d *reducedYearDirective) isNumeric() {}

func (d *reducedYearDirective) requiredFields() []*Field { return []*Field{FieldYear} }

func (d *reducedYearDirective) emit(c *Container, out *strings.Builder) error {
	v, ok := FieldYear.Get(c)
	if !ok {
		return &MissingFieldError{Field: FieldYear.Name()}
	}
	if v >= d.base && v <= d.base+99 {
		low := ((v % 100) + 100) % 100
		digits := strconv.FormatInt(low, 10)
		if len(digits) < 2 {
			digits = "0" + digits
		}
		out.WriteString(digits)
		return nil
	}

	abs := v
	if abs < 0 {
		abs = -abs
	}
	if v < 0 {
		out.WriteByte('-')
	} else {
		out.WriteByte('+')
	}
	out.WriteString(strconv.FormatInt(abs, 10))
	return nil
}

func (d *reducedYearDirective) consume(c *Container, input string, pos int) []parseState {
	var states []parseState

	// Two-digit windowed candidate.
	if pos+2 <= len(input) && isASCIIDigit(input[pos]) && isASCIIDigit(input[pos+1]) {
		d2, err := strconv.ParseInt(input[pos:pos+2], 10, 64)
		if err == nil {
			centuryBase := d.base - (((d.base % 100) + 100) % 100)
			year := centuryBase + d2
			if year < d.base {
				year += 100
			}
			if year > d.base+99 {
				year -= 100
			}
			if clone, ok := setFieldChecked(c, FieldYear, year); ok {
				states = append(states, parseState{pos: pos + 2, c: clone})
			}
		}
	}

	// Full signed-year candidate.
	if pos < len(input) && (input[pos] == '+' || input[pos] == '-') {
		neg := input[pos] == '-'
		start := pos + 1
		end := start
		for end < len(input) && end-start < maxParsedDigits && isASCIIDigit(input[end]) {
			end++
		}
		if end > start {
			v, err := strconv.ParseInt(input[start:end], 10, 64)
			if err == nil {
				if neg {
					v = -v
				}
				if clone, ok := setFieldChecked(c, FieldYear, v); ok {
					states = append(states, parseState{pos: end, c: clone})
				}
			}
		}
	}

	return states
}

func (d *reducedYearDirective) builderRepr() string { return "reducedYear()" }

// decimalFractionDirective implements DecimalFraction (§4.2, §9): the
// fraction-of-second directive. minLength nil means "fewest digits, rounded
// up to a multiple of three"; otherwise output is floored at minLength
// digits and capped (with rounding) at maxLength.
type decimalFractionDirective struct {
	field     *Field
	minLength *int
	maxLength int
}

// NewDecimalFraction builds a DecimalFraction directive over field (always
// FieldNanosecond in this module).
func NewDecimalFraction(field *Field, minLength *int, maxLength int) Node {
	return &decimalFractionDirective{field: field, minLength: minLength, maxLength: maxLength}
}

func (d *decimalFractionDirective) requiredFields() []*Field { return []*Field{d.field} }

func (d *decimalFractionDirective) emit(c *Container, out *strings.Builder) error {
	v, ok := d.field.Get(c)
	if !ok {
		return &MissingFieldError{Field: d.field.Name()}
	}
	out.WriteString(formatFraction(v, d.minLength, d.maxLength))
	return nil
}

func formatFraction(nanos int64, minLength *int, maxLength int) string {
	repr := strconv.FormatInt(nanos, 10)
	for len(repr) < 9 {
		repr = "0" + repr
	}
	if maxLength < 9 {
		repr = roundDigits(repr, maxLength)
	} else {
		for len(repr) < maxLength {
			repr += "0"
		}
	}

	if minLength == nil {
		trimmed := strings.TrimRight(repr, "0")
		n := len(trimmed)
		if rem := n % 3; rem != 0 {
			n += 3 - rem
		}
		if n > len(repr) {
			n = len(repr)
		}
		return repr[:n]
	}

	trimmed := strings.TrimRight(repr, "0")
	n := len(trimmed)
	if n < *minLength {
		n = *minLength
	}
	if n > len(repr) {
		n = len(repr)
	}
	return repr[:n]
}

// roundDigits rounds the 9-digit decimal string repr to its leading n
// digits, carrying as needed. It saturates at all-nines on carry overflow
// rather than propagating into the seconds field, which is out of its
// scope.
func roundDigits(repr string, n int) string {
	if n >= len(repr) {
		return repr
	}
	if n <= 0 {
		return ""
	}
	keep := []byte(repr[:n])
	if repr[n] < '5' {
		return string(keep)
	}
	i := len(keep) - 1
	for i >= 0 {
		if keep[i] < '9' {
			keep[i]++
			break
		}
		keep[i] = '0'
		i--
	}
	if i < 0 {
		return strings.Repeat("9", n)
	}
	return string(keep)
}

func (d *decimalFractionDirective) consume(c *Container, input string, pos int) []parseState {
	start := pos
	end := start
	for end < len(input) && end-start < 9 && isASCIIDigit(input[end]) {
		end++
	}
	if end == start {
		return nil
	}
	digits := input[start:end]
	for len(digits) < 9 {
		digits += "0"
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	clone, ok := setFieldChecked(c, d.field, v)
	if !ok {
		return nil
	}
	return []parseState{{pos: end, c: clone}}
}

func (d *decimalFractionDirective) builderRepr() string { return "fractionOfSecond()" }

// namedEnumDirective implements NamedEnum (§4.2): a fixed, build-time-known
// list of names indexed by field-value-minus-base, matched during parsing
// by case-insensitive longest-prefix.
type namedEnumDirective struct {
	field *Field
	base  int64
	names []string
}

// NewNamedEnum builds a NamedEnum directive. names[i] corresponds to a
// field value of base+i. It returns a BuildError on an empty or duplicate
// name.
func NewNamedEnum(field *Field, base int64, names []string) (Node, error) {
	if len(names) == 0 {
		return nil, newBuildError("named enum directive over %q requires at least one name", field.Name())
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return nil, newBuildError("named enum directive over %q has an empty name", field.Name())
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			return nil, newBuildError("named enum directive over %q has duplicate name %q", field.Name(), n)
		}
		seen[key] = struct{}{}
	}
	return &namedEnumDirective{field: field, base: base, names: names}, nil
}

func (d *namedEnumDirective) requiredFields() []*Field { return []*Field{d.field} }

func (d *namedEnumDirective) emit(c *Container, out *strings.Builder) error {
	v, ok := d.field.Get(c)
	if !ok {
		return &MissingFieldError{Field: d.field.Name()}
	}
	idx := v - d.base
	if idx < 0 || idx >= int64(len(d.names)) {
		return d.field.CheckRange(v)
	}
	out.WriteString(d.names[idx])
	return nil
}

func (d *namedEnumDirective) consume(c *Container, input string, pos int) []parseState {
	best := -1
	bestLen := 0
	rest := input[pos:]
	for i, name := range d.names {
		if len(name) <= bestLen {
			continue
		}
		if len(name) > len(rest) {
			continue
		}
		if strings.EqualFold(rest[:len(name)], name) {
			best = i
			bestLen = len(name)
		}
	}
	if best < 0 {
		return nil
	}
	clone, ok := setFieldChecked(c, d.field, d.base+int64(best))
	if !ok {
		return nil
	}
	return []parseState{{pos: pos + bestLen, c: clone}}
}

func (d *namedEnumDirective) builderRepr() string { return "namedValue(" + d.field.Name() + ")" }

// NewAmPmMarker builds the AmPmMarker directive (§4.2, §9), a distinct
// closed-sum-type variant that happens to share NamedEnum's matching
// engine: names[0] is the AM spelling, names[1] the PM spelling, over
// FieldAmPm (0=AM, 1=PM).
func NewAmPmMarker(am, pm string) (Node, error) {
	return NewNamedEnum(FieldAmPm, 0, []string{am, pm})
}

// fixedStringSetDirective implements FixedStringSet (§4.2): the time-zone
// identifier directive, matched by longest-prefix against an externally
// supplied registry rather than a build-time-fixed name list.
type fixedStringSetDirective struct {
	registry *zoneid.Registry
}

// NewTimeZoneID builds a TimeZoneId directive drawing candidates from
// registry. With a nil registry, formatting emits whatever identifier is
// present without a membership check, and parsing matches against
// zoneid.Default().
func NewTimeZoneID(registry *zoneid.Registry) Node {
	return &fixedStringSetDirective{registry: registry}
}

func (d *fixedStringSetDirective) requiredFields() []*Field { return nil }

func (d *fixedStringSetDirective) emit(c *Container, out *strings.Builder) error {
	id, ok := c.TimeZoneID()
	if !ok {
		return &MissingFieldError{Field: "timeZoneId"}
	}
	if d.registry != nil && !d.registry.Contains(id) {
		return newBuildError("time zone id %q is not a recognised identifier", id)
	}
	out.WriteString(id)
	return nil
}

func (d *fixedStringSetDirective) consume(c *Container, input string, pos int) []parseState {
	rest := input[pos:]
	best := ""
	candidates := d.candidates()
	for _, id := range candidates {
		if len(id) <= len(best) {
			continue
		}
		if strings.HasPrefix(rest, id) {
			best = id
		}
	}
	if best == "" {
		return nil
	}
	clone := c.Clone()
	clone.SetTimeZoneID(best)
	return []parseState{{pos: pos + len(best), c: clone}}
}

func (d *fixedStringSetDirective) candidates() []string {
	if d.registry == nil {
		return zoneid.Default().All()
	}
	return d.registry.All()
}

func (d *fixedStringSetDirective) builderRepr() string { return "timeZoneId()" }
