package chronofield

import "strings"

// Formatter walks a format tree left-to-right to produce text for a
// populated Container (§4.3). All the branching logic - Alternatives
// selection, Optional elision, Signed sign emission - lives on the tree
// nodes themselves; Formatter is the thin, pure entry point over them.
type Formatter struct {
	root Node
}

// NewFormatter wraps root for formatting.
func NewFormatter(root Node) *Formatter { return &Formatter{root: root} }

// Format renders c through the tree, or returns the first MissingField or
// FieldValue error encountered along the selected path.
func (f *Formatter) Format(c *Container) (string, error) {
	var out strings.Builder
	if err := f.root.emit(c, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Tree returns the underlying root node, e.g. for builderRepr() diagnostics.
func (f *Formatter) Tree() Node { return f.root }
