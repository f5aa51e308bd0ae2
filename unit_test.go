package termtext

import (
	"testing"
)

func TestUnitWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"", 0},
		{"ab", 2},
		{"你好", 4},
		{"Title", 5},
		{"e\u0301", 1},
		{"a中b", 4},
	}

	for _, tt := range tests {
		if got := Raw(tt.s).Width(); got != tt.expected {
			t.Errorf("Raw(%q).Width() = %d, want %d", tt.s, got, tt.expected)
		}
		if got := Styled(tt.s, DefaultStyle().Add(StyleBold)).Width(); got != tt.expected {
			t.Errorf("Styled(%q).Width() = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestUnitDefaultStyle(t *testing.T) {
	u := Raw("plain")

	if u.IsStyled() {
		t.Error("expected unstyled unit")
	}
	if u.Style() != DefaultStyle() {
		t.Errorf("expected default style, got %+v", u.Style())
	}
	if !u.Style().IsDefault() {
		t.Error("expected IsDefault on unstyled unit style")
	}
}

func TestUnitStyledKeepsStyle(t *testing.T) {
	blue := DefaultStyle().Foreground(ColorLightBlue)
	u := Styled("Title", blue)

	for i := 0; i < 3; i++ {
		if u.Width() != 5 {
			t.Errorf("expected width 5, got %d", u.Width())
		}
		if u.Content() != "Title" {
			t.Errorf("expected content 'Title', got %q", u.Content())
		}
		if u.Style() != blue {
			t.Errorf("expected style %+v, got %+v", blue, u.Style())
		}
	}
	if !u.IsStyled() {
		t.Error("expected styled unit")
	}
}

func TestUnitStyledWithDefaultStyle(t *testing.T) {
	u := Styled("x", DefaultStyle())

	if !u.IsStyled() {
		t.Error("expected unit to report explicit style")
	}
	if u.Style() != DefaultStyle() {
		t.Error("expected default style")
	}
	if u == Raw("x") {
		t.Error("expected explicit default style to differ from unstyled unit")
	}
}

func TestUnitOwnershipModesAgree(t *testing.T) {
	for _, s := range []string{"", "hello", "你好", "e\u0301x"} {
		raw := Raw(s)
		owned := Owned(s)
		fromBytes := FromBytes([]byte(s))

		if raw.Width() != owned.Width() || raw.Width() != fromBytes.Width() {
			t.Errorf("%q: widths differ: raw=%d owned=%d bytes=%d", s, raw.Width(), owned.Width(), fromBytes.Width())
		}
		if raw.Content() != owned.Content() || raw.Content() != fromBytes.Content() {
			t.Errorf("%q: contents differ", s)
		}
		if raw != owned || raw != fromBytes {
			t.Errorf("%q: expected units to compare equal", s)
		}
	}
}

func TestUnitFromBytesCopies(t *testing.T) {
	buf := []byte("abc")
	u := FromBytes(buf)

	buf[0] = 'z'

	if u.Content() != "abc" {
		t.Errorf("expected 'abc', got %q", u.Content())
	}
}

func TestUnitContentDoesNotAllocate(t *testing.T) {
	u := Raw("borrowed content")

	allocs := testing.AllocsPerRun(100, func() {
		_ = u.Content()
	})
	if allocs != 0 {
		t.Errorf("expected 0 allocations, got %v", allocs)
	}
}

func TestUnitWithStyle(t *testing.T) {
	u := Raw("abc")
	red := DefaultStyle().Foreground(ColorRed)

	styled := u.WithStyle(red)

	if styled.Style() != red {
		t.Errorf("expected red style, got %+v", styled.Style())
	}
	if u.IsStyled() {
		t.Error("expected original unit to stay unstyled")
	}
	if styled.Content() != "abc" {
		t.Errorf("expected 'abc', got %q", styled.Content())
	}
}

func TestUnitString(t *testing.T) {
	u := Styled("hi", DefaultStyle().Add(StyleItalic))
	if u.String() != "hi" {
		t.Errorf("expected 'hi', got %q", u.String())
	}
}
