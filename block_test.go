package termtext

import (
	"slices"
	"testing"
)

func TestBlockEmpty(t *testing.T) {
	var zero Block
	b := NewBlock()

	if zero.Width() != 0 || b.Width() != 0 {
		t.Error("expected width 0 for empty blocks")
	}
	if b.Height() != 0 {
		t.Errorf("expected height 0, got %d", b.Height())
	}
	if b.String() != "" {
		t.Errorf("expected empty string, got %q", b.String())
	}
	if !zero.Equal(b) {
		t.Error("expected zero block to equal NewBlock")
	}
}

func TestBlockWidthIsMaxRowWidth(t *testing.T) {
	tests := []struct {
		name     string
		block    Block
		expected int
	}{
		{"mixed", BlockFromStrings("ab", "你好"), 4},
		{"title", BlockFromStrings("Title", "x"), 5},
		{"empty rows", BlockWithRows(Row{}, NewRow("")), 0},
		{"styled", BlockWithRows(
			RowWithUnits(Raw("a"), Styled("bc", DefaultStyle().Add(StyleBold))),
			NewRow("d"),
		), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.Width(); got != tt.expected {
				t.Errorf("expected width %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestBlockFromString(t *testing.T) {
	b := BlockFromString("one\r\ntwo\n\nfour")

	if b.Height() != 4 {
		t.Fatalf("expected 4 rows, got %d", b.Height())
	}
	want := []string{"one", "two", "", "four"}
	for i, r := range b.All() {
		if r.String() != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], r.String())
		}
	}
	if b.String() != "one\ntwo\n\nfour" {
		t.Errorf("unexpected string %q", b.String())
	}
}

func TestBlockFromStringEmpty(t *testing.T) {
	if h := BlockFromString("").Height(); h != 0 {
		t.Errorf("expected 0 rows, got %d", h)
	}
}

func TestBlockWithRowsCopiesInput(t *testing.T) {
	rows := []Row{NewRow("a"), NewRow("b")}
	b := BlockWithRows(rows...)

	rows[1] = NewRow("changed")

	if b.Row(1).String() != "b" {
		t.Errorf("expected 'b', got %q", b.Row(1).String())
	}

	out := b.Rows()
	out[0] = NewRow("changed")
	if b.Row(0).String() != "a" {
		t.Errorf("expected 'a', got %q", b.Row(0).String())
	}
}

func TestBlockFromSeq(t *testing.T) {
	rows := []Row{NewRow("x"), NewRow("yy")}
	b := BlockFromSeq(slices.Values(rows))

	if !b.Equal(BlockWithRows(rows...)) {
		t.Error("expected blocks built from seq and slice to be equal")
	}
	if b.Width() != 2 {
		t.Errorf("expected width 2, got %d", b.Width())
	}
}

func TestBlockEqual(t *testing.T) {
	a := BlockFromStrings("a", "b")

	if !a.Equal(BlockFromStrings("a", "b")) {
		t.Error("expected equal blocks")
	}
	if a.Equal(BlockFromStrings("a")) {
		t.Error("expected blocks of different height to differ")
	}
	if a.Equal(BlockFromStrings("a", "c")) {
		t.Error("expected blocks with different text to differ")
	}
}

func TestEndToEndTitleWidths(t *testing.T) {
	blue := DefaultStyle().Foreground(ColorLightBlue)

	if w := Styled("Title", blue).Width(); w != 5 {
		t.Errorf("expected unit width 5, got %d", w)
	}
	if w := NewRow("Title").Width(); w != 5 {
		t.Errorf("expected row width 5, got %d", w)
	}
	if w := BlockFromStrings("Title", "x").Width(); w != 5 {
		t.Errorf("expected block width 5, got %d", w)
	}
}
