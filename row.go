package termtext

import (
	"iter"
	"slices"
	"strings"
)

// Row is an ordered sequence of Units forming one logical terminal line,
// before any wrapping. Units are drawn left to right in order.
//
// A Row owns its Units: constructors copy their input and accessors never
// expose the internal slice. The zero value is an empty Row of width 0.
type Row struct {
	units []Unit
}

// NewRow creates a Row holding a single unstyled Unit with the given text.
func NewRow(s string) Row {
	return Row{units: []Unit{Raw(s)}}
}

// RowFromUnit creates a Row holding a single Unit.
func RowFromUnit(u Unit) Row {
	return Row{units: []Unit{u}}
}

// RowWithUnits creates a Row from an ordered list of Units.
func RowWithUnits(units ...Unit) Row {
	return Row{units: slices.Clone(units)}
}

// RowFromSeq creates a Row from an ordered sequence of Units.
func RowFromSeq(seq iter.Seq[Unit]) Row {
	return Row{units: slices.Collect(seq)}
}

// Width returns the sum of the Unit widths.
// It is recomputed on every call, in O(number of Units).
func (r Row) Width() int {
	w := 0
	for _, u := range r.units {
		w += u.Width()
	}
	return w
}

// Len returns the number of Units.
func (r Row) Len() int {
	return len(r.units)
}

// Unit returns the Unit at index i. It panics if i is out of range.
func (r Row) Unit(i int) Unit {
	return r.units[i]
}

// All returns an iterator over the Units in rendering order.
func (r Row) All() iter.Seq2[int, Unit] {
	return slices.All(r.units)
}

// Units returns a copy of the Units in rendering order.
func (r Row) Units() []Unit {
	return slices.Clone(r.units)
}

// String concatenates the Unit contents, discarding style.
func (r Row) String() string {
	if len(r.units) == 1 {
		return r.units[0].content
	}

	n := 0
	for _, u := range r.units {
		n += len(u.content)
	}

	var sb strings.Builder
	sb.Grow(n)
	for _, u := range r.units {
		sb.WriteString(u.content)
	}
	return sb.String()
}

// Equal returns true if both Rows hold equal Units in the same order.
func (r Row) Equal(other Row) bool {
	return slices.Equal(r.units, other.units)
}
