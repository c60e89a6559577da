package domain

import "strings"

// Option is a selectable entry in the two-level option tree. A top-level
// option may own one level of children; children never have children of
// their own. Values are unique across the whole tree, parents and children
// included, so a flat lookup by value is unambiguous.
type Option struct {
	Value    string
	Label    string
	Children []Option
}

// HasChildren reports whether the option is a parent node. An option with an
// empty children slice behaves as a leaf.
func (o Option) HasChildren() bool {
	return len(o.Children) > 0
}

// Flatten returns every selectable leaf in tree order: a top-level option
// without children contributes itself, one with children contributes only its
// children. Parents are derived aggregate controls, not leaves.
func Flatten(tree []Option) []Option {
	var flat []Option
	for _, opt := range tree {
		if opt.HasChildren() {
			flat = append(flat, opt.Children...)
		} else {
			flat = append(flat, opt)
		}
	}
	return flat
}

// CountNodes counts every node in the tree, parents and children both.
func CountNodes(tree []Option) int {
	n := 0
	for _, opt := range tree {
		n += 1 + len(opt.Children)
	}
	return n
}

// Find locates the option with the given value, checking parents before
// descending into their children. First match wins; duplicate values are a
// precondition violation the host must avoid.
func Find(tree []Option, value string) (Option, bool) {
	for _, opt := range tree {
		if opt.Value == value {
			return opt, true
		}
		for _, child := range opt.Children {
			if child.Value == value {
				return child, true
			}
		}
	}
	return Option{}, false
}

// Contains reports whether any node in the tree carries the given value.
func Contains(tree []Option, value string) bool {
	_, ok := Find(tree, value)
	return ok
}

// RawSelection is the initial selection accepted at the widget boundary.
// Hosts hand the widget either a comma-separated string or an ordered list;
// both normalize to the same ordered value list on ingestion.
type RawSelection interface {
	Values() []string
}

// CSV is a comma-separated selection string, e.g. "apple,pear".
type CSV string

// Values splits the string on commas, trimming whitespace and dropping empty
// entries.
func (c CSV) Values() []string {
	if c == "" {
		return nil
	}
	var vals []string
	for _, part := range strings.Split(string(c), ",") {
		if v := strings.TrimSpace(part); v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}

// List is an ordered selection list supplied directly by the host.
type List []string

// Values returns the list as-is.
func (l List) Values() []string {
	return l
}
