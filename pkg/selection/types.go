package selection

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Item is the selection-relevant view of a row. Everything else about the
// row belongs to the caller.
type Item struct {
	ID       string
	Eligible bool
	Weight   float64
}

// Mode controls how the aggregate counts selected rows.
type Mode int

const (
	// ModeCount counts selected eligible rows.
	ModeCount Mode = iota
	// ModeSum sums the Weight of selected eligible rows.
	ModeSum
)

func (m Mode) String() string {
	switch m {
	case ModeCount:
		return "count"
	case ModeSum:
		return "sum"
	default:
		return "unknown"
	}
}

// ParseMode accepts "count" or "sum".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "count":
		return ModeCount, nil
	case "sum":
		return ModeSum, nil
	default:
		return ModeCount, errors.Newf("unknown selection mode %q (want count or sum)", s)
	}
}

// AllState summarizes how many eligible rows are selected.
type AllState int

const (
	None AllState = iota
	Partial
	All
)

func (s AllState) String() string {
	switch s {
	case None:
		return "None"
	case Partial:
		return "Partial"
	case All:
		return "All"
	default:
		return "Unknown"
	}
}

// CheckboxState is the visual/ARIA state of the "select all" control.
type CheckboxState int

const (
	Unchecked CheckboxState = iota
	Indeterminate
	Checked
)

func (c CheckboxState) String() string {
	switch c {
	case Unchecked:
		return "unchecked"
	case Indeterminate:
		return "indeterminate"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}

// Checkbox maps the tri-state onto the control.
func (s AllState) Checkbox() CheckboxState {
	switch s {
	case Partial:
		return Indeterminate
	case All:
		return Checked
	default:
		return Unchecked
	}
}

// Checked reports the control's checked flag.
func (c CheckboxState) Checked() bool { return c == Checked }

// Indeterminate reports the control's indeterminate flag.
func (c CheckboxState) Indeterminate() bool { return c == Indeterminate }

// DisabledGlyph marks a row that cannot be selected.
const DisabledGlyph = "[·]"

// Glyph is the text rendering of the control.
func (c CheckboxState) Glyph() string {
	switch c {
	case Checked:
		return "[x]"
	case Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// Glyph renders one row's checkbox.
func (r RowView) Glyph() string {
	switch {
	case !r.Enabled:
		return DisabledGlyph
	case r.Selected:
		return Checked.Glyph()
	default:
		return Unchecked.Glyph()
	}
}

// Highlight is the background treatment of a row.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightHover
	HighlightSelected
)

func (h Highlight) String() string {
	switch h {
	case HighlightHover:
		return "hover"
	case HighlightSelected:
		return "selected"
	default:
		return "none"
	}
}

// Aggregate is derived from the selection on every read.
type Aggregate struct {
	Selected float64
	State    AllState
}

// Checkbox is shorthand for a.State.Checkbox().
func (a Aggregate) Checkbox() CheckboxState { return a.State.Checkbox() }

// RowView is what a renderer needs to draw one row.
type RowView struct {
	Selected  bool
	Enabled   bool
	Highlight Highlight
}

// SummaryLabel renders the header text next to the select-all control.
func SummaryLabel(a Aggregate) string {
	if a.Selected == 0 {
		return "None selected"
	}
	return "Selected " + strconv.FormatFloat(a.Selected, 'f', -1, 64)
}
