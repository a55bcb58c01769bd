package chronofield

import "fmt"

// FindMatch is one non-overlapping match produced by Parser.FindAll.
type FindMatch struct {
	Start, End int
	Container  *Container
}

// Parser walks a format tree non-deterministically against input text
// (§4.4). Directive-level consume already applies the bag's lax structural
// clamp (§4.1); Parser additionally enforces each set field's true
// semantic range before accepting a candidate end state - cross-field
// consistency (day-of-year vs month/day, hour vs AM/PM) is left entirely
// to the caller's finalisation step (finalize.go).
type Parser struct {
	root Node
}

// NewParser wraps root for parsing.
func NewParser(root Node) *Parser { return &Parser{root: root} }

// Parse requires the whole of input to match at least one derivation of the
// tree. Among derivations that consume all of input and pass per-field
// range checks, it prefers the one with the most populated fields -
// matching the tree's own Alternatives-selection greediness (§4.3, §4.4).
func (p *Parser) Parse(input string) (*Container, error) {
	states := p.root.consume(NewContainer(), input, 0)

	var best *Container
	bestFields := -1
	for _, st := range states {
		if st.pos != len(input) {
			continue
		}
		if err := validateFieldRanges(st.c); err != nil {
			continue
		}
		n := countSetFields(st.c)
		if n > bestFields {
			bestFields = n
			best = st.c
		}
	}
	if best == nil {
		base := &ParseError{Input: input, Msg: "no branch of the format matched the entire input"}
		return nil, wrapParseContext(base, fmt.Sprintf("furthest branch reached position %d of %d", furthestPos(states), len(input)))
	}
	return best, nil
}

// ParseOrNull parses input and reports absence (nil) instead of an error for
// the catchable failure kinds - ParseError, FieldValueError,
// InconsistentFieldsError and MissingFieldError - matching Find/FindAll's silent-rejection
// behavior (§7). Any other error is not a parse failure but a programming
// error, so it is not swallowed.
func (p *Parser) ParseOrNull(input string) *Container {
	c, err := p.Parse(input)
	if err == nil {
		return c
	}
	if isSilentlyRejectable(err) {
		return nil
	}
	panic(err)
}

// furthestPos returns the greatest position reached by any candidate state,
// used to give a parse failure's context some indication of how far a
// branch got before being rejected.
func furthestPos(states []parseState) int {
	furthest := 0
	for _, st := range states {
		if st.pos > furthest {
			furthest = st.pos
		}
	}
	return furthest
}

// Find locates the longest range-valid match starting exactly at start. It
// returns ok=false if no branch produces a range-valid match there.
func (p *Parser) Find(input string, start int) (end int, c *Container, ok bool) {
	if start < 0 || start > len(input) {
		return 0, nil, false
	}
	states := p.root.consume(NewContainer(), input, start)

	bestPos := -1
	var bestContainer *Container
	for _, st := range states {
		if err := validateFieldRanges(st.c); err != nil {
			continue
		}
		if st.pos > bestPos {
			bestPos = st.pos
			bestContainer = st.c
		}
	}
	if bestContainer == nil {
		return 0, nil, false
	}
	return bestPos, bestContainer, true
}

// FindAll scans input left to right, returning every non-overlapping match
// found by repeatedly advancing past the previous match's end (or by one
// byte when no match starts at the current position).
func (p *Parser) FindAll(input string) []FindMatch {
	var matches []FindMatch
	pos := 0
	for pos <= len(input) {
		end, c, ok := p.Find(input, pos)
		if !ok || end == pos {
			pos++
			continue
		}
		matches = append(matches, FindMatch{Start: pos, End: end, Container: c})
		pos = end
	}
	return matches
}

// validateFieldRanges reports the first strict-range violation among c's
// populated fields, or nil if every set field sits within its true bounds.
func validateFieldRanges(c *Container) error {
	for _, f := range allFields {
		v, ok := f.Get(c)
		if !ok {
			continue
		}
		if err := f.CheckRange(v); err != nil {
			return err
		}
	}
	return nil
}

func countSetFields(c *Container) int {
	n := 0
	for _, f := range allFields {
		if _, ok := f.Get(c); ok {
			n++
		}
	}
	if _, ok := c.TimeZoneID(); ok {
		n++
	}
	return n
}
