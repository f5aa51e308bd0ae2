package termtext

import (
	"iter"
	"slices"
	"strings"
)

// Block is an ordered sequence of Rows forming a multi-line region.
// Rows are drawn top to bottom in order.
//
// A Block owns its Rows. The zero value is an empty Block of width 0.
type Block struct {
	rows []Row
}

// NewBlock returns an empty Block.
func NewBlock() Block {
	return Block{}
}

// BlockWithRows creates a Block from an ordered list of Rows.
func BlockWithRows(rows ...Row) Block {
	return Block{rows: slices.Clone(rows)}
}

// BlockFromSeq creates a Block from an ordered sequence of Rows.
func BlockFromSeq(seq iter.Seq[Row]) Block {
	return Block{rows: slices.Collect(seq)}
}

// BlockFromStrings creates a Block with one unstyled Row per string.
func BlockFromStrings(lines ...string) Block {
	rows := make([]Row, len(lines))
	for i, l := range lines {
		rows[i] = NewRow(l)
	}
	return Block{rows: rows}
}

// BlockFromString splits s on "\n" and creates one unstyled Row per line.
// A trailing "\r" on each line is dropped. An empty string yields an empty Block.
func BlockFromString(s string) Block {
	if s == "" {
		return Block{}
	}
	var rows []Row
	for line := range strings.SplitSeq(s, "\n") {
		rows = append(rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
	return Block{rows: rows}
}

// Width returns the widest Row width, or 0 for an empty Block.
// This is the minimum column count needed to draw the Block without clipping.
// It walks every Unit on each call; callers that need it repeatedly should
// keep the result.
func (b Block) Width() int {
	w := 0
	for _, r := range b.rows {
		w = max(w, r.Width())
	}
	return w
}

// Height returns the number of Rows.
func (b Block) Height() int {
	return len(b.rows)
}

// Row returns the Row at index i. It panics if i is out of range.
func (b Block) Row(i int) Row {
	return b.rows[i]
}

// All returns an iterator over the Rows in rendering order.
func (b Block) All() iter.Seq2[int, Row] {
	return slices.All(b.rows)
}

// Rows returns a copy of the Rows in rendering order.
// The Rows share their Units with the Block, which is safe because Rows
// expose no mutation.
func (b Block) Rows() []Row {
	return slices.Clone(b.rows)
}

// String joins the Row texts with "\n", discarding style.
func (b Block) String() string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Equal returns true if both Blocks hold equal Rows in the same order.
func (b Block) Equal(other Block) bool {
	return slices.EqualFunc(b.rows, other.rows, Row.Equal)
}
