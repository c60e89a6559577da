package query

import "treepick/internal/domain"

// RowKind distinguishes the kinds of rows in the open dropdown list.
type RowKind int

const (
	RowSelectAll RowKind = iota
	RowParent
	RowChild
	RowConfirm
)

// Row is one visible line of the open dropdown: an affordance or an option.
type Row struct {
	Kind   RowKind
	Option domain.Option // zero for affordance rows
}
