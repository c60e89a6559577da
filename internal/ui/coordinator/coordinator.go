package coordinator

import (
	"treepick/internal/config"
	"treepick/internal/domain"
	"treepick/internal/eventbus"
	"treepick/internal/ui/services/dropdown"
	"treepick/internal/ui/services/events"
	"treepick/internal/ui/services/navigation"
	"treepick/internal/ui/services/query"
	"treepick/internal/ui/services/selection"
)

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Selection  *selection.Service
	Dropdown   *dropdown.Service
	Navigation *navigation.Service
	Query      *query.Service

	// Dependencies
	bus events.EventBus
	cfg *config.Config
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus events.EventBus, domainBus eventbus.EventBus, cfg *config.Config) *Coordinator {
	c := &Coordinator{
		Selection: selection.NewService(bus),
		Dropdown: dropdown.NewService(bus, domainBus, dropdown.Options{
			ChangeOnClose: cfg.ChangeOnClose,
			ChangeBtn:     cfg.ChangeBtn,
			SelectAllBtn:  cfg.SelectAllBtn,
		}),
		Navigation: navigation.NewService(bus),
		Query:      query.NewService(),
		bus:        bus,
		cfg:        cfg,
	}

	c.wireServices()

	c.SetOptions(cfg.OptionTree())
	if cfg.Selected != "" {
		c.Selection.Init(domain.CSV(cfg.Selected))
	}

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	// Dropdown emits whatever the selection service currently holds
	c.Dropdown.SetSelectionFunction(func() selection.Set {
		return c.Selection.Selected()
	})

	// Navigation is bounded by the visible rows
	c.Navigation.SetQueryFunction(func() int {
		return c.Query.MaxIndex()
	})

	// The global press listener lives for the widget's lifetime; the model
	// calls Teardown when the program exits.
	c.Dropdown.Attach()
}

// SetOptions replaces the option tree everywhere it is consumed.
func (c *Coordinator) SetOptions(tree []domain.Option) {
	c.Selection.SetOptions(tree)
	c.Query.SetOptions(tree, c.cfg.SelectAllBtn, c.cfg.ChangeBtn)
	c.Navigation.MoveToIndex(c.Navigation.GetCursor())
}

// ActivateRow applies the toggle behind the row at the given index.
func (c *Coordinator) ActivateRow(index int) {
	row, ok := c.Query.RowAt(index)
	if !ok {
		return
	}
	switch row.Kind {
	case query.RowSelectAll:
		c.Selection.ToggleAll()
	case query.RowParent, query.RowChild:
		st := c.Selection.Status(row.Option)
		c.Selection.Toggle(row.Option.Value, !st.Checked)
	case query.RowConfirm:
		c.Dropdown.Confirm()
	}
}

// ActivateCursor applies the row under the cursor.
func (c *Coordinator) ActivateCursor() {
	c.ActivateRow(c.Navigation.GetCursor())
}

// Teardown releases the coordinator's long-lived subscriptions.
func (c *Coordinator) Teardown() {
	c.Dropdown.Detach()
}
