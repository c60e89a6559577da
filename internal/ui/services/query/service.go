package query

import "treepick/internal/domain"

// Service maps visible row indexes to rows for both rendering and input
// dispatch. Rows are rebuilt whenever the option tree or the affordance
// configuration changes.
type Service struct {
	rows []Row
}

// NewService creates a new query service
func NewService() *Service {
	return &Service{}
}

// SetOptions rebuilds the row list: optional select-all affordance first,
// then every parent followed by its children, then the optional confirm
// affordance.
func (s *Service) SetOptions(tree []domain.Option, selectAllBtn, changeBtn bool) {
	rows := make([]Row, 0, domain.CountNodes(tree)+2)

	if selectAllBtn {
		rows = append(rows, Row{Kind: RowSelectAll})
	}

	for _, opt := range tree {
		if opt.HasChildren() {
			rows = append(rows, Row{Kind: RowParent, Option: opt})
			for _, child := range opt.Children {
				rows = append(rows, Row{Kind: RowChild, Option: child})
			}
		} else {
			rows = append(rows, Row{Kind: RowParent, Option: opt})
		}
	}

	if changeBtn {
		rows = append(rows, Row{Kind: RowConfirm})
	}

	s.rows = rows
}

// Rows returns the current row list.
func (s *Service) Rows() []Row {
	return s.rows
}

// RowAt returns the row at the given index.
func (s *Service) RowAt(index int) (Row, bool) {
	if index < 0 || index >= len(s.rows) {
		return Row{}, false
	}
	return s.rows[index], true
}

// Len returns the number of visible rows.
func (s *Service) Len() int {
	return len(s.rows)
}

// MaxIndex returns the highest valid row index.
func (s *Service) MaxIndex() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows) - 1
}
