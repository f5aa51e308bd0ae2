package termtext

import (
	"fmt"
	"image/color"
)

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data (Buffer only; a Block treats it as styled).
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a serializable capture of a Block or Buffer.
type Snapshot struct {
	Size  SnapshotSize   `json:"size"`
	Lines []SnapshotLine `json:"lines"`
}

// SnapshotSize holds dimensions in cells.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Width    int               `json:"width"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment represents a styled text segment within a line.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Width      int           `json:"width"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotCell represents a single cell with full attributes.
type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Wide       bool          `json:"wide,omitempty"`
	WideSpacer bool          `json:"wide_spacer,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Snapshot captures the Block. Size.Cols is the Block width.
// Styled and full detail emit one segment per Unit; Units are never merged.
func (b Block) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Size:  SnapshotSize{Rows: len(b.rows), Cols: b.Width()},
		Lines: make([]SnapshotLine, len(b.rows)),
	}

	for i, r := range b.rows {
		line := SnapshotLine{
			Text:  r.String(),
			Width: r.Width(),
		}
		if detail == SnapshotDetailStyled || detail == SnapshotDetailFull {
			line.Segments = make([]SnapshotSegment, len(r.units))
			for j, u := range r.units {
				line.Segments[j] = styleToSegment(u.Content(), u.Width(), u.Style())
			}
		}
		snap.Lines[i] = line
	}

	return snap
}

// Snapshot captures the Buffer contents.
func (b *Buffer) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Size:  SnapshotSize{Rows: b.rows, Cols: b.cols},
		Lines: make([]SnapshotLine, b.rows),
	}

	for row := 0; row < b.rows; row++ {
		snap.Lines[row] = b.snapshotLine(row, detail)
	}

	return snap
}

// snapshotLine creates a snapshot of a single grid line.
func (b *Buffer) snapshotLine(row int, detail SnapshotDetail) SnapshotLine {
	text := b.LineContent(row)
	line := SnapshotLine{
		Text:  text,
		Width: StringWidth(text),
	}

	switch detail {
	case SnapshotDetailText:
		// Just text, already set

	case SnapshotDetailStyled:
		for _, u := range b.RowAt(row).units {
			line.Segments = append(line.Segments, styleToSegment(u.Content(), u.Width(), u.Style()))
		}

	case SnapshotDetailFull:
		line.Cells = b.lineToCells(row)
	}

	return line
}

// lineToCells converts a line to full cell data.
func (b *Buffer) lineToCells(row int) []SnapshotCell {
	cells := make([]SnapshotCell, 0, b.cols)

	for col := 0; col < b.cols; col++ {
		cell := &b.cells[row][col]
		cells = append(cells, SnapshotCell{
			Char:       cell.Content,
			Fg:         colorToHex(cell.Style.Fg),
			Bg:         colorToHex(cell.Style.Bg),
			Attributes: styleAttrsToSnapshot(cell.Style),
			Wide:       cell.IsWide(),
			WideSpacer: cell.IsWideSpacer(),
		})
	}

	return cells
}

func styleToSegment(text string, width int, style Style) SnapshotSegment {
	return SnapshotSegment{
		Text:       text,
		Width:      width,
		Fg:         colorToHex(style.Fg),
		Bg:         colorToHex(style.Bg),
		Attributes: styleAttrsToSnapshot(style),
	}
}

// colorToHex converts a color to hex string. Nil (terminal default) becomes "".
func colorToHex(c color.Color) string {
	if c == nil {
		return ""
	}

	rgba := ResolveColor(c, true)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// styleAttrsToSnapshot extracts style attributes.
func styleAttrsToSnapshot(s Style) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          s.Has(StyleBold),
		Dim:           s.Has(StyleDim),
		Italic:        s.Has(StyleItalic),
		Underline:     s.Flags&styleAnyUnderline != 0,
		Blink:         s.Flags&(StyleBlinkSlow|StyleBlinkFast) != 0,
		Reverse:       s.Has(StyleReverse),
		Hidden:        s.Has(StyleHidden),
		Strikethrough: s.Has(StyleStrike),
	}
}
