package termtext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Buffer stores a 2D grid of cells that Units, Rows and Blocks are painted into.
// It tracks which cells changed so renderers can redraw incrementally.
//
// Buffer is not safe for concurrent mutation.
type Buffer struct {
	rows     int
	cols     int
	cells    [][]Cell
	hasDirty bool
}

// NewBuffer creates a buffer with the given dimensions, filled with blank cells.
// Negative dimensions are treated as 0.
func NewBuffer(rows, cols int) *Buffer {
	rows = max(rows, 0)
	cols = max(cols, 0)

	b := &Buffer{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}

	for i := range b.cells {
		b.cells[i] = make([]Cell, cols)
		for j := range b.cells[i] {
			b.cells[i][j] = NewCell()
		}
	}

	return b
}

// Rows returns the buffer height in character rows.
func (b *Buffer) Rows() int {
	return b.rows
}

// Cols returns the buffer width in character columns.
func (b *Buffer) Cols() int {
	return b.cols
}

// Cell returns a pointer to the cell at (row, col).
// Returns nil if coordinates are out of bounds.
func (b *Buffer) Cell(row, col int) *Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return nil
	}
	return &b.cells[row][col]
}

// SetCell replaces the cell at (row, col) and marks it dirty.
// Does nothing if coordinates are out of bounds.
func (b *Buffer) SetCell(row, col int, cell Cell) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	cell.MarkDirty()
	b.cells[row][col] = cell
	b.hasDirty = true
}

// HasDirty returns true if any cell has been modified since the last ClearAllDirty call.
func (b *Buffer) HasDirty() bool {
	return b.hasDirty
}

// DirtyCells returns positions of all modified cells.
func (b *Buffer) DirtyCells() []Position {
	var positions []Position
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col].IsDirty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// ClearAllDirty resets the dirty state of all cells.
func (b *Buffer) ClearAllDirty() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col].ClearDirty()
		}
	}
	b.hasDirty = false
}

// ClearRow resets all cells in the row to default state and marks them dirty.
func (b *Buffer) ClearRow(row int) {
	if row < 0 || row >= b.rows {
		return
	}
	for col := range b.cells[row] {
		b.cells[row][col].Reset()
		b.cells[row][col].MarkDirty()
	}
	b.hasDirty = true
}

// ClearAll resets all cells in the buffer to default state.
func (b *Buffer) ClearAll() {
	for row := range b.cells {
		b.ClearRow(row)
	}
}

// --- Painting ---

// SetString paints s with style starting at (row, col), using at most
// maxWidth columns, and returns the column following the last painted cluster.
//
// Text is split into grapheme clusters. Each cluster advances by its display
// width, so an unclipped string advances exactly StringWidth(s) columns.
// Painting stops at the first cluster that does not fit before the limit; a
// wide character is never split. Zero-width clusters are merged into the
// previously painted cell and control characters are dropped.
func (b *Buffer) SetString(row, col int, s string, style Style, maxWidth int) int {
	next, _ := b.paint(row, col, s, style, maxWidth, -1)
	return next
}

// paint implements SetString. last is the column of the previously painted
// head cell on this row, or -1; the updated value is returned so a Row can
// carry it from one Unit to the next.
func (b *Buffer) paint(row, col int, s string, style Style, maxWidth, last int) (int, int) {
	if row < 0 || row >= b.rows || col < 0 {
		return col, last
	}

	// maxWidth may be math.MaxInt, so compare before adding.
	limit := b.cols
	if maxWidth < b.cols-col {
		limit = col + maxWidth
	}

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := StringWidth(cluster)

		if w == 0 {
			if last >= 0 && !isControlCluster(cluster) {
				b.cells[row][last].Content += cluster
				b.cells[row][last].MarkDirty()
				b.hasDirty = true
			}
			continue
		}

		if col+w > limit {
			break
		}

		b.releaseWide(row, col, w)

		head := &b.cells[row][col]
		head.Content = cluster
		head.Style = style
		head.Flags = CellFlagDirty
		if w > 1 {
			head.SetFlag(CellFlagWideChar)
		}
		for i := 1; i < w; i++ {
			spacer := &b.cells[row][col+i]
			spacer.Content = ""
			spacer.Style = style
			spacer.Flags = CellFlagWideCharSpacer | CellFlagDirty
		}

		b.hasDirty = true
		last = col
		col += w
	}

	return col, last
}

// SetUnit paints a Unit with its style. See SetString.
func (b *Buffer) SetUnit(row, col int, u Unit, maxWidth int) int {
	return b.SetString(row, col, u.Content(), u.Style(), maxWidth)
}

// SetRow paints the Units of r left to right, using at most maxWidth columns,
// and returns the column following the last painted cluster.
// A zero-width cluster at the start of a Unit joins the last cell painted by
// the previous Unit. Painting stops at the first Unit that had to be clipped.
func (b *Buffer) SetRow(row, col int, r Row, maxWidth int) int {
	start := col
	last := -1
	for _, u := range r.units {
		var next int
		next, last = b.paint(row, col, u.Content(), u.Style(), maxWidth-(col-start), last)
		if next-col < u.Width() {
			return next
		}
		col = next
	}
	return col
}

// SetBlock paints the Rows of blk top to bottom inside area.
// Rows beyond the area height and columns beyond its width are clipped.
func (b *Buffer) SetBlock(area Rect, blk Block) {
	if area.IsEmpty() {
		return
	}
	for i, r := range blk.rows {
		if i >= area.Height {
			break
		}
		b.SetRow(area.Row+i, area.Col, r, area.Width)
	}
}

// releaseWide blanks the parts of wide clusters that overlap [col, col+w)
// but extend outside it, so no head or spacer is left orphaned.
func (b *Buffer) releaseWide(row, col, w int) {
	cells := b.cells[row]

	start := col
	for start > 0 && cells[start].IsWideSpacer() {
		start--
	}
	for c := start; c < col; c++ {
		cells[c].Reset()
		cells[c].MarkDirty()
	}

	for c := col + w; c < b.cols && cells[c].IsWideSpacer(); c++ {
		cells[c].Reset()
		cells[c].MarkDirty()
	}
}

func isControlCluster(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsControl(r)
}

// --- Reading back ---

// LineContent returns the text content of a line, trimming trailing spaces.
// Wide character spacers are skipped. Returns empty string if the line is empty or out of bounds.
func (b *Buffer) LineContent(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}

	var sb strings.Builder
	for col := range b.cells[row] {
		cell := &b.cells[row][col]
		if cell.IsWideSpacer() {
			continue
		}
		sb.WriteString(cell.Content)
	}

	return strings.TrimRight(sb.String(), " ")
}

// Lines returns LineContent for every row.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.rows)
	for row := range lines {
		lines[row] = b.LineContent(row)
	}
	return lines
}

// String returns the buffer text, one line per row, trailing spaces trimmed.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// RowAt converts a grid line back into a Row. Adjacent cells with equal
// styles form one Unit; runs with the default style become unstyled Units.
// The Row spans the full buffer width, trailing blanks included.
// Returns an empty Row if row is out of bounds.
func (b *Buffer) RowAt(row int) Row {
	if row < 0 || row >= b.rows {
		return Row{}
	}

	var units []Unit
	var sb strings.Builder
	var current Style
	open := false

	flush := func() {
		if !open {
			return
		}
		if current.IsDefault() {
			units = append(units, Raw(sb.String()))
		} else {
			units = append(units, Styled(sb.String(), current))
		}
		sb.Reset()
	}

	for col := range b.cells[row] {
		cell := &b.cells[row][col]
		if cell.IsWideSpacer() {
			continue
		}
		if !open || cell.Style != current {
			flush()
			current = cell.Style
			open = true
		}
		sb.WriteString(cell.Content)
	}
	flush()

	return Row{units: units}
}

// Block converts the whole grid into a Block, one Row per grid line.
func (b *Buffer) Block() Block {
	rows := make([]Row, b.rows)
	for row := range rows {
		rows[row] = b.RowAt(row)
	}
	return Block{rows: rows}
}

// Position identifies a cell location in the grid (0-based).
type Position struct {
	Row int
	Col int
}

// Rect is a rectangular area of the grid: top-left corner plus size in cells.
type Rect struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// IsEmpty returns true if the area covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
