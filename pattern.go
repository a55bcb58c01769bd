package chronofield

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultReducedYearBase anchors the two-letter "yy"/"uu" pattern's
// 100-year window. It is a fixed constant rather than derived from the
// current date, so that compiling the same pattern string twice always
// yields the same tree (§6 determinism).
const defaultReducedYearBase = 2000

var (
	patternCacheOnce sync.Once
	patternCache     *lru.Cache[string, Node]
)

// patternCacheSize bounds the process-wide pattern cache at 16 entries
// (§6 Concurrency & Resource Model).
const patternCacheSize = 16

func getPatternCache() *lru.Cache[string, Node] {
	patternCacheOnce.Do(func() {
		c, err := lru.New[string, Node](patternCacheSize)
		if err != nil {
			// Only returns an error for a non-positive size, which
			// patternCacheSize never is.
			panic(err)
		}
		patternCache = c
	})
	return patternCache
}

// CompilePattern translates a Unicode/ICU-style pattern string into a
// format tree, consulting (and populating) the process-wide pattern cache
// first (§4.6, §6). Square-bracket optional sections are not recognised:
// '[' and ']' are copied into the tree as literal text.
func CompilePattern(pattern string) (Node, error) {
	cache := getPatternCache()
	if node, ok := cache.Get(pattern); ok {
		return node, nil
	}
	node, err := translatePattern(pattern)
	if err != nil {
		return nil, err
	}
	cache.Add(pattern, node)
	return node, nil
}

// patternToken is one lexed unit of a pattern string: either a run of N
// repeated letters (a directive specifier) or a literal text run (either
// unquoted non-letter characters, or a single-quoted section).
type patternToken struct {
	letter  byte // 0 for a literal run
	count   int
	literal string
}

func lexPattern(pattern string) ([]patternToken, error) {
	var tokens []patternToken
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch {
		case c == '\'':
			// '' is a literal single quote; '...' quotes a literal run.
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				tokens = append(tokens, patternToken{literal: "'"})
				i += 2
				continue
			}
			end := i + 1
			for end < len(pattern) && pattern[end] != '\'' {
				end++
			}
			if end >= len(pattern) {
				return nil, newBuildError("pattern %q has an unterminated quoted literal", pattern)
			}
			tokens = append(tokens, patternToken{literal: pattern[i+1 : end]})
			i = end + 1
		case isPatternLetter(c):
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			tokens = append(tokens, patternToken{letter: c, count: j - i})
			i = j
		default:
			j := i
			for j < len(pattern) && !isPatternLetter(pattern[j]) && pattern[j] != '\'' {
				j++
			}
			tokens = append(tokens, patternToken{literal: pattern[i:j]})
			i = j
		}
	}
	return tokens, nil
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthAbbrev = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayAbbrev = []string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

// translatePattern implements the bulk of §4.6: a letter x length table,
// rejection of directives that would need locale data this module does
// not carry, and the "y" to "u" carry-over - since Container only models
// a plain proleptic year, a pattern's era-relative "y" is translated
// exactly like "u" (see DESIGN.md for why no separate era-year field
// exists).
func translatePattern(pattern string) (Node, error) {
	tokens, err := lexPattern(pattern)
	if err != nil {
		return nil, err
	}

	var nodes []Node
	for _, tok := range tokens {
		if tok.letter == 0 {
			if tok.literal != "" {
				nodes = append(nodes, NewConstant(tok.literal))
			}
			continue
		}
		node, err := translateLetter(tok.letter, tok.count)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return NewConcat(nodes...), nil
}

func translateLetter(letter byte, count int) (Node, error) {
	switch letter {
	case 'y', 'u':
		// "y" (era-relative year) is carried over to behave exactly like
		// "u" (proleptic year): this module has no era field to give it
		// distinct semantics.
		if count == 2 {
			return NewReducedYear(defaultReducedYearBase), nil
		}
		return NewSignedInt(FieldYear, PadZero, count, count >= 4), nil

	case 'M', 'L':
		switch {
		case count <= 2:
			return NewUnsignedInt(FieldMonthNumber, PadZero, count), nil
		case count == 3:
			return NewNamedEnum(FieldMonthNumber, 1, monthAbbrev)
		default:
			return NewNamedEnum(FieldMonthNumber, 1, monthNames)
		}

	case 'd':
		return NewUnsignedInt(FieldDayOfMonth, PadZero, count), nil

	case 'D':
		return NewUnsignedInt(FieldDayOfYear, PadZero, count), nil

	case 'E':
		if count >= 4 {
			return NewNamedEnum(FieldISODayOfWeek, 1, weekdayNames)
		}
		return NewNamedEnum(FieldISODayOfWeek, 1, weekdayAbbrev)

	case 'e', 'c':
		// ICU treats "e"/"c" as locale-dependent week-day numbering; this
		// module only models the ISO numbering (Monday=1), so a numeric
		// count is accepted and a textual count defers to "E".
		if count <= 2 {
			return NewUnsignedInt(FieldISODayOfWeek, PadZero, count), nil
		}
		return translateLetter('E', count)

	case 'H':
		return NewUnsignedInt(FieldHour, PadZero, count), nil

	case 'h':
		return NewUnsignedInt(FieldHourOfAmPm, PadZero, count), nil

	case 'm':
		return NewUnsignedInt(FieldMinute, PadZero, count), nil

	case 's':
		return NewUnsignedInt(FieldSecond, PadZero, count), nil

	case 'S':
		return NewDecimalFraction(FieldNanosecond, &count, count), nil

	case 'a':
		if count != 1 {
			return nil, newBuildError("pattern letter 'a' does not support a repeated count of %d", count)
		}
		return NewAmPmMarker("AM", "PM")

	case 'X', 'x':
		return translateOffsetLetter(letter, count)

	case 'V':
		if count != 2 {
			return nil, newBuildError("pattern letter 'V' does not support a repeated count of %d", count)
		}
		return NewTimeZoneID(nil), nil

	default:
		return nil, newBuildError("pattern letter %q is locale-dependent or unsupported in this module", string(letter))
	}
}

// translateOffsetLetter handles "X"/"x" per ICU width rules: width 1 is
// +-HH, width 2 is +-HHMM, width 3 is +-HH:MM, width 4/5 add seconds.
// Width 1 writes and reads hours only; minutes are neither emitted nor
// accepted. "X" additionally accepts/emits "Z" for a zero offset; "x"
// always shows a numeric sign.
func translateOffsetLetter(letter byte, count int) (Node, error) {
	if count < 1 || count > 5 {
		return nil, newBuildError("pattern letter %q does not support a repeated count of %d", string(letter), count)
	}

	var body Node
	var err error
	switch count {
	case 1:
		body, err = NewSigned(FieldOffsetIsNegative, true, NewUnsignedInt(FieldOffsetHours, PadZero, 2))
	case 2:
		body, err = NewSigned(FieldOffsetIsNegative, true,
			NewUnsignedInt(FieldOffsetHours, PadZero, 2), NewUnsignedInt(FieldOffsetMinutes, PadZero, 2))
	case 3:
		hours, serr := NewSigned(FieldOffsetIsNegative, true, NewUnsignedInt(FieldOffsetHours, PadZero, 2))
		if serr != nil {
			return nil, serr
		}
		body = NewConcat(hours, NewConstant(":"), NewUnsignedInt(FieldOffsetMinutes, PadZero, 2))
	case 4:
		body, err = NewSigned(FieldOffsetIsNegative, true,
			NewUnsignedInt(FieldOffsetHours, PadZero, 2), NewUnsignedInt(FieldOffsetMinutes, PadZero, 2), NewUnsignedInt(FieldOffsetSeconds, PadZero, 2))
	case 5:
		hours, serr := NewSigned(FieldOffsetIsNegative, true, NewUnsignedInt(FieldOffsetHours, PadZero, 2))
		if serr != nil {
			return nil, serr
		}
		body = NewConcat(hours, NewConstant(":"), NewUnsignedInt(FieldOffsetMinutes, PadZero, 2), NewConstant(":"), NewUnsignedInt(FieldOffsetSeconds, PadZero, 2))
	}
	if err != nil {
		return nil, err
	}

	if letter == 'x' {
		return body, nil
	}
	return NewOptional("Z", body)
}
