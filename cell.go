package termtext

// CellFlags is a bitmask of grid bookkeeping flags.
type CellFlags uint8

const (
	CellFlagWideChar CellFlags = 1 << iota
	CellFlagWideCharSpacer
	CellFlagDirty
)

// Cell stores one grid position: a grapheme cluster and its style.
// Wide clusters (2+ columns) use spacer cells for the trailing positions;
// a spacer has empty Content.
type Cell struct {
	Content string
	Style   Style
	Flags   CellFlags
}

// NewCell creates a cell holding a space with the default style.
func NewCell() Cell {
	return Cell{Content: " "}
}

// Reset clears the cell to its default state (space, default style, no flags).
func (c *Cell) Reset() {
	c.Content = " "
	c.Style = Style{}
	c.Flags = 0
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsDirty returns true if the cell was modified since the last ClearAllDirty call.
func (c *Cell) IsDirty() bool {
	return c.HasFlag(CellFlagDirty)
}

// MarkDirty marks the cell as modified for dirty tracking.
func (c *Cell) MarkDirty() {
	c.SetFlag(CellFlagDirty)
}

// ClearDirty resets the dirty tracking flag.
func (c *Cell) ClearDirty() {
	c.ClearFlag(CellFlagDirty)
}

// IsWide returns true if this cell starts a cluster that occupies more than one column.
func (c *Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is a trailing cell of a wide cluster (skipped during rendering).
func (c *Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// Width returns the number of columns the cell's cluster occupies, 0 for spacers.
func (c *Cell) Width() int {
	if c.IsWideSpacer() {
		return 0
	}
	return StringWidth(c.Content)
}
