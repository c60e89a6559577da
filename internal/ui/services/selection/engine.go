package selection

import (
	"strings"

	"treepick/internal/domain"
)

// Set is the selection state: an ordered list of option values with set
// semantics. Order is kept for display stability only; membership is what
// matters. Engine functions never mutate a Set in place.
type Set []string

// Contains reports membership of a value.
func (s Set) Contains(value string) bool {
	for _, v := range s {
		if v == value {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// CSV encodes the set as a comma-separated string, the one serialization the
// widget boundary understands.
func (s Set) CSV() string {
	return strings.Join(s, ",")
}

// with appends the value if absent.
func (s Set) with(value string) Set {
	if s.Contains(value) {
		return s
	}
	return append(s, value)
}

// without removes every occurrence of the value.
func (s Set) without(value string) Set {
	out := s[:0]
	for _, v := range s {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// dedupe keeps the first occurrence of each value.
func dedupe(vals []string) Set {
	seen := make(map[string]bool, len(vals))
	out := make(Set, 0, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Status is the derived tri-state checkbox status of a node. Checked and
// Indeterminate are never both true.
type Status struct {
	Checked       bool
	Indeterminate bool
}

// CheckboxStatus computes the tri-state status of an option. A leaf is
// checked when its value is selected. A parent is checked when all of its
// children are selected and indeterminate when only some are.
func CheckboxStatus(opt domain.Option, set Set) Status {
	if !opt.HasChildren() {
		return Status{Checked: set.Contains(opt.Value)}
	}
	selected := 0
	for _, child := range opt.Children {
		if set.Contains(child.Value) {
			selected++
		}
	}
	return Status{
		Checked:       selected == len(opt.Children),
		Indeterminate: selected > 0 && selected < len(opt.Children),
	}
}

// Toggle applies a checkbox toggle on the node with the given value and
// returns the resulting selection. Toggling a parent cascades to all of its
// children; toggling a child is followed by an ancestor pass that keeps every
// parent's synthetic entry consistent with its children. The input set is
// left untouched.
//
// An unknown value still gets the direct add/remove; the ancestor pass leaves
// unrelated parents alone.
func Toggle(tree []domain.Option, set Set, value string, nowChecked bool) Set {
	next := dedupe(set)

	target, found := domain.Find(tree, value)
	if found && target.HasChildren() {
		vals := make([]string, 0, len(target.Children)+1)
		vals = append(vals, target.Value)
		for _, child := range target.Children {
			vals = append(vals, child.Value)
		}
		for _, v := range vals {
			if nowChecked {
				next = next.with(v)
			} else {
				next = next.without(v)
			}
		}
	} else {
		if nowChecked {
			next = next.with(value)
		} else {
			next = next.without(value)
		}
	}

	return Reconcile(tree, next)
}

// Reconcile runs the ancestor pass over the entire tree: every parent's value
// is present exactly when all of its children are selected. Each parent's
// verdict depends only on its own children, so the pass is idempotent and
// independent of sibling order.
func Reconcile(tree []domain.Option, set Set) Set {
	next := dedupe(set)
	for _, opt := range tree {
		if !opt.HasChildren() {
			continue
		}
		all := true
		for _, child := range opt.Children {
			if !next.Contains(child.Value) {
				all = false
				break
			}
		}
		if all {
			next = next.with(opt.Value)
		} else {
			next = next.without(opt.Value)
		}
	}
	return next
}

// SelectAll toggles between everything and nothing. When every flattened leaf
// is already selected the result is empty; otherwise it is every leaf value.
// Membership of the leaves decides "everything", not set size, so synthetic
// parent entries cannot wedge the toggle. Callers wanting the parent/child
// invariant run Reconcile on the result.
func SelectAll(flat []domain.Option, set Set) Set {
	all := true
	for _, opt := range flat {
		if !set.Contains(opt.Value) {
			all = false
			break
		}
	}
	if all {
		return Set{}
	}

	vals := make([]string, 0, len(flat))
	for _, opt := range flat {
		vals = append(vals, opt.Value)
	}
	return dedupe(vals)
}
