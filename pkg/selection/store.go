package selection

import (
	"github.com/cockroachdb/errors"
)

// Store holds per-row selection flags for one item list.
//
// Selection is positionally aligned with items and is rebuilt whenever the
// list is replaced. The aggregate is never stored; every read recomputes it
// from the flags and item eligibility. A Store is owned by one UI session
// and is not safe for concurrent use.
type Store struct {
	items     []Item
	selection []bool
	mode      Mode
	observer  func(Aggregate)
}

// Option configures a Store.
type Option func(*Store)

// WithMode selects count or sum aggregation.
func WithMode(mode Mode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}

// WithObserver registers a change hook. It runs synchronously after every
// mutation, including Reset, with the new aggregate.
func WithObserver(fn func(Aggregate)) Option {
	return func(s *Store) {
		s.observer = fn
	}
}

// NewStore returns a store with every row unselected.
func NewStore(items []Item, opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(items)
	return s
}

// Reset replaces the item list and clears the selection.
func (s *Store) Reset(items []Item) {
	s.items = make([]Item, len(items))
	copy(s.items, items)
	s.selection = make([]bool, len(items))
	s.notify()
}

// Mode returns the aggregation mode.
func (s *Store) Mode() Mode { return s.mode }

// Len returns the number of rows.
func (s *Store) Len() int { return len(s.items) }

// Items returns a copy of the item list.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ToggleRow flips the selection of one eligible row. Ineligible rows are
// left untouched. An out-of-range index panics.
func (s *Store) ToggleRow(index int) ([]bool, Aggregate) {
	s.mustIndex(index)
	if s.items[index].Eligible {
		s.selection[index] = !s.selection[index]
		s.notify()
	}
	return s.Snapshot(), s.Aggregate()
}

// ToggleAll selects every eligible row when on is true and clears every row
// otherwise. Ineligible rows are never selected.
func (s *Store) ToggleAll(on bool) ([]bool, Aggregate) {
	for i, item := range s.items {
		s.selection[i] = on && item.Eligible
	}
	s.notify()
	return s.Snapshot(), s.Aggregate()
}

// Aggregate computes the selected count or sum and the tri-state.
func (s *Store) Aggregate() Aggregate {
	var eligibleTotal, selectedEligible int
	var total float64
	for i, item := range s.items {
		if !item.Eligible {
			continue
		}
		eligibleTotal++
		if !s.selection[i] {
			continue
		}
		selectedEligible++
		if s.mode == ModeSum {
			total += item.Weight
		} else {
			total++
		}
	}

	state := All
	switch {
	case selectedEligible == 0:
		state = None
	case selectedEligible < eligibleTotal:
		state = Partial
	}
	return Aggregate{Selected: total, State: state}
}

// Snapshot returns a copy of the selection flags.
func (s *Store) Snapshot() []bool {
	out := make([]bool, len(s.selection))
	copy(out, s.selection)
	return out
}

// IsSelected reports whether row index is selected.
func (s *Store) IsSelected(index int) bool {
	s.mustIndex(index)
	return s.selection[index]
}

// IsEligible reports whether row index may be selected.
func (s *Store) IsEligible(index int) bool {
	s.mustIndex(index)
	return s.items[index].Eligible
}

// SelectedItems returns the selected rows in list order.
func (s *Store) SelectedItems() []Item {
	var out []Item
	for i, item := range s.items {
		if s.selection[i] && item.Eligible {
			out = append(out, item)
		}
	}
	return out
}

// Row returns the render state of one row. Selection takes precedence over
// hover, and disabled rows never highlight on hover.
func (s *Store) Row(index int, hovered bool) RowView {
	s.mustIndex(index)
	view := RowView{
		Selected: s.selection[index],
		Enabled:  s.items[index].Eligible,
	}
	switch {
	case view.Selected:
		view.Highlight = HighlightSelected
	case hovered && view.Enabled:
		view.Highlight = HighlightHover
	}
	return view
}

func (s *Store) mustIndex(index int) {
	if index < 0 || index >= len(s.items) {
		panic(errors.AssertionFailedf("selection: row index %d out of range [0,%d)", index, len(s.items)))
	}
}

func (s *Store) notify() {
	if s.observer != nil {
		s.observer(s.Aggregate())
	}
}
