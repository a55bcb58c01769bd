package chronofield

import "strings"

// Node is the uniform contract every format-tree element satisfies: the
// tagged variants of §3 (Constant, Optional, Alternatives, Signed, Concat)
// and every directive leaf (§4.2) implement it directly - there is no
// separate "Basic" wrapper type, since a directive already satisfies this
// exact contract; Basic(directive) in the spec's vocabulary is simply "a
// directive used where a Node is expected" (see DESIGN.md).
type Node interface {
	// emit appends n's formatted text for c to out.
	emit(c *Container, out *strings.Builder) error

	// consume attempts to match input[pos:] against n, starting from
	// container state c. It returns zero or more accepting states; each
	// carries its own container, never mutating c itself (§4.2, §4.4).
	consume(c *Container, input string, pos int) []parseState

	// requiredFields returns the fields this node needs populated in order
	// to format successfully - used by Alternatives selection (§4.3) and by
	// build-time validation of Optional/Alternatives (§3).
	requiredFields() []*Field

	// builderRepr returns the DSL fragment that would rebuild n.
	builderRepr() string
}

// parseState is one candidate (position, container) pair produced while
// walking the tree non-deterministically.
type parseState struct {
	pos int
	c   *Container
}

// setFieldChecked clones c and assigns v to f, unless f is already set in c
// to a different value - in which case it reports failure, matching §4.4's
// "on conflicting assignments to the same field within one branch, the
// branch is rejected."
func setFieldChecked(c *Container, f *Field, v int64) (*Container, bool) {
	if existing, ok := f.Get(c); ok && existing != v {
		return nil, false
	}
	clone := c.Clone()
	f.Set(clone, v)
	return clone, true
}

// Constant is a literal string emitted verbatim and matched verbatim.
type Constant struct {
	text string
}

func NewConstant(text string) *Constant { return &Constant{text: text} }

func (n *Constant) emit(_ *Container, out *strings.Builder) error {
	out.WriteString(n.text)
	return nil
}

func (n *Constant) consume(c *Container, input string, pos int) []parseState {
	if strings.HasPrefix(input[pos:], n.text) {
		return []parseState{{pos: pos + len(n.text), c: c}}
	}
	return nil
}

func (n *Constant) requiredFields() []*Field { return nil }

func (n *Constant) builderRepr() string {
	if len(n.text) == 1 {
		return "char('" + n.text + "')"
	}
	return "chars(\"" + n.text + "\")"
}

// Concat is a flattened sequence of child nodes, walked left-to-right by
// both the formatter and the parser (§3, §4.2).
type Concat struct {
	children []Node
}

// NewConcat flattens any nested Concat children at construction time, per
// §4.2 ("Concat flattens at build time").
func NewConcat(children ...Node) *Concat {
	var flat []Node
	for _, c := range children {
		if sub, ok := c.(*Concat); ok {
			flat = append(flat, sub.children...)
		} else {
			flat = append(flat, c)
		}
	}
	return &Concat{children: flat}
}

func (n *Concat) emit(c *Container, out *strings.Builder) error {
	for _, child := range n.children {
		if err := child.emit(c, out); err != nil {
			return err
		}
	}
	return nil
}

func (n *Concat) consume(c *Container, input string, pos int) []parseState {
	states := []parseState{{pos: pos, c: c}}
	for _, child := range n.children {
		var next []parseState
		for _, st := range states {
			next = append(next, child.consume(st.c, input, st.pos)...)
		}
		states = next
		if len(states) == 0 {
			return nil
		}
	}
	return states
}

func (n *Concat) requiredFields() []*Field {
	var out []*Field
	for _, child := range n.children {
		out = append(out, child.requiredFields()...)
	}
	return out
}

func (n *Concat) builderRepr() string {
	var b strings.Builder
	for i, child := range n.children {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(child.builderRepr())
	}
	return b.String()
}

// Optional elides its body (emitting onZeroLiteral instead) when every
// field mentioned in body is at its default (§3, §4.2). Every field body
// mentions must carry a default - enforced by the builder at construction.
type Optional struct {
	onZeroLiteral string
	body          Node
	fields        []*Field
}

// NewOptional builds an Optional node. It returns a BuildError if any field
// mentioned by body lacks a default (§3 structural invariant).
func NewOptional(onZeroLiteral string, body Node) (*Optional, error) {
	mentioned := body.requiredFields()
	children := []Node{body}
	if cc, ok := body.(*Concat); ok {
		children = cc.children
	}
	for _, child := range children {
		if inner, ok := child.(*Optional); ok {
			mentioned = append(mentioned, inner.fields...)
		}
	}
	fields := dedupeFields(mentioned)
	for _, f := range fields {
		if _, ok := f.Default(); !ok {
			return nil, newBuildError("optional section mentions field %q with no default value", f.Name())
		}
	}
	return &Optional{onZeroLiteral: onZeroLiteral, body: body, fields: fields}, nil
}

func (n *Optional) emit(c *Container, out *strings.Builder) error {
	allDefault := true
	for _, f := range n.fields {
		if !f.IsDefault(c) {
			allDefault = false
			break
		}
	}
	if allDefault {
		out.WriteString(n.onZeroLiteral)
		return nil
	}
	return n.body.emit(c, out)
}

func (n *Optional) consume(c *Container, input string, pos int) []parseState {
	states := n.body.consume(c, input, pos)
	// The elided form is also a candidate: onZeroLiteral (nothing at all
	// when it is empty), leaving every mentioned field unset.
	if strings.HasPrefix(input[pos:], n.onZeroLiteral) {
		states = append(states, parseState{pos: pos + len(n.onZeroLiteral), c: c.Clone()})
	}
	return states
}

// requiredFields returns nil: an Optional section never makes a field
// required for formatting, by construction (every mentioned field has a
// default it can fall back to).
func (n *Optional) requiredFields() []*Field { return nil }

func (n *Optional) builderRepr() string {
	return "optional { " + n.body.builderRepr() + " }"
}

// Alternatives tries branches in declaration order during parsing (primary
// first) and, during formatting, selects the branch with the greatest
// number of populated required fields among those whose requirements are
// satisfied (§3, §4.2, §4.3).
type Alternatives struct {
	primary Node
	alts    []Node
}

// NewAlternatives builds an Alternatives node. Every alternative's required
// fields must be a subset of primary's required fields, with the remainder
// carrying defaults - enforced here per §3.
func NewAlternatives(primary Node, alts ...Node) (*Alternatives, error) {
	primaryFields := fieldSet(primary.requiredFields())
	for i, alt := range alts {
		for _, f := range alt.requiredFields() {
			if _, ok := primaryFields[f]; ok {
				continue
			}
			if _, ok := f.Default(); !ok {
				return nil, newBuildError("alternative %d mentions field %q not required by the primary branch and with no default", i, f.Name())
			}
		}
	}
	return &Alternatives{primary: primary, alts: alts}, nil
}

func (n *Alternatives) emit(c *Container, out *strings.Builder) error {
	type candidate struct {
		node  Node
		count int
	}
	var best *candidate
	consider := func(node Node) {
		required := node.requiredFields()
		for _, f := range required {
			if _, ok := f.Get(c); !ok {
				return // requirements not satisfied
			}
		}
		count := len(dedupeFields(required))
		if best == nil || count > best.count {
			best = &candidate{node: node, count: count}
		}
	}

	consider(n.primary)
	for _, alt := range n.alts {
		consider(alt)
	}

	if best != nil {
		return best.node.emit(c, out)
	}
	// Fall back to primary, surfacing its own missing-field error.
	return n.primary.emit(c, out)
}

func (n *Alternatives) consume(c *Container, input string, pos int) []parseState {
	var states []parseState
	states = append(states, n.primary.consume(c, input, pos)...)
	for _, alt := range n.alts {
		states = append(states, alt.consume(c, input, pos)...)
	}
	return states
}

func (n *Alternatives) requiredFields() []*Field { return n.primary.requiredFields() }

func (n *Alternatives) builderRepr() string {
	var b strings.Builder
	b.WriteString("alternativeParsing(")
	for i, alt := range n.alts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(alt.builderRepr())
	}
	b.WriteString(") { ")
	b.WriteString(n.primary.builderRepr())
	b.WriteString(" }")
	return b.String()
}

// Signed defers a shared sign to the immediate output of its body: the sign
// is emitted before the first numeric subfield and applied (conceptually)
// to every field inside, whose magnitudes are always stored non-negative
// (§3, §4.2, §8 "Signed group"). The body may hold one or more purely
// numeric directives - never literals, Optional or Alternatives nodes.
type Signed struct {
	body         []Node
	signCarrier  *Field
	withPlusSign bool
}

// NewSigned builds a Signed node. It returns a BuildError if body is empty,
// mixes directives with differing sign carriers, or contains a non-numeric
// node.
func NewSigned(signCarrier *Field, withPlusSign bool, body ...Node) (*Signed, error) {
	if len(body) == 0 {
		return nil, newBuildError("signed() requires at least one numeric directive")
	}
	for _, n := range body {
		if _, ok := n.(numericDirective); !ok {
			return nil, newBuildError("signed() body must contain only numeric directives")
		}
		for _, f := range n.requiredFields() {
			if f.SignCarrier() != signCarrier {
				return nil, newBuildError("signed() body field %q is not signed by %q", f.Name(), signCarrier.Name())
			}
		}
	}
	return &Signed{body: body, signCarrier: signCarrier, withPlusSign: withPlusSign}, nil
}

func (n *Signed) emit(c *Container, out *strings.Builder) error {
	neg, _ := n.signCarrier.Get(c)
	switch {
	case neg != 0:
		out.WriteByte('-')
	case n.withPlusSign:
		out.WriteByte('+')
	}
	for _, child := range n.body {
		if err := child.emit(c, out); err != nil {
			return err
		}
	}
	return nil
}

func (n *Signed) consume(c *Container, input string, pos int) []parseState {
	isNeg := int64(0)
	next := pos
	if next < len(input) {
		switch input[next] {
		case '-':
			isNeg = 1
			next++
		case '+':
			isNeg = 0
			next++
		}
	}

	clone, ok := setFieldChecked(c, n.signCarrier, isNeg)
	if !ok {
		return nil
	}

	states := []parseState{{pos: next, c: clone}}
	for _, child := range n.body {
		var out []parseState
		for _, st := range states {
			out = append(out, child.consume(st.c, input, st.pos)...)
		}
		states = out
		if len(states) == 0 {
			return nil
		}
	}
	return states
}

func (n *Signed) requiredFields() []*Field {
	out := []*Field{n.signCarrier}
	for _, child := range n.body {
		out = append(out, child.requiredFields()...)
	}
	return out
}

func (n *Signed) builderRepr() string {
	var b strings.Builder
	b.WriteString("signed(")
	if n.withPlusSign {
		b.WriteString("withPlusSign=true")
	}
	b.WriteString(") { ")
	for i, child := range n.body {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(child.builderRepr())
	}
	b.WriteString(" }")
	return b.String()
}

// numericDirective is implemented only by directives whose value is a plain
// signed/unsigned magnitude - it marks which directives are legal inside a
// Signed node's body (§3).
type numericDirective interface {
	Node
	isNumeric()
}

func dedupeFields(fields []*Field) []*Field {
	seen := make(map[*Field]struct{}, len(fields))
	var out []*Field
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func fieldSet(fields []*Field) map[*Field]struct{} {
	out := make(map[*Field]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}
