package termtext

import "image/color"

// StyleFlags is a bitmask of text rendering attributes.
type StyleFlags uint16

const (
	StyleBold StyleFlags = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleDoubleUnderline
	StyleCurlyUnderline
	StyleDottedUnderline
	StyleDashedUnderline
	StyleBlinkSlow
	StyleBlinkFast
	StyleReverse
	StyleHidden
	StyleStrike
)

// styleAnyUnderline covers every underline variant.
const styleAnyUnderline = StyleUnderline | StyleDoubleUnderline | StyleCurlyUnderline | StyleDottedUnderline | StyleDashedUnderline

// Style describes how text is drawn: colors plus attribute flags.
//
// The zero value is the neutral style: no colors (terminal defaults) and no
// attributes. Style is a small value type; methods return modified copies.
// Two styles compare equal with == when their colors are comparable, which is
// true for every color type in this package and for color.RGBA.
type Style struct {
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          StyleFlags
}

// DefaultStyle returns the neutral style (no colors, no attributes).
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a copy of s with the foreground color set.
func (s Style) Foreground(c color.Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with the background color set.
func (s Style) Background(c color.Color) Style {
	s.Bg = c
	return s
}

// Underline returns a copy of s with the underline color set.
// It does not enable an underline attribute by itself.
func (s Style) Underline(c color.Color) Style {
	s.UnderlineColor = c
	return s
}

// Add returns a copy of s with the given flags enabled.
func (s Style) Add(flags StyleFlags) Style {
	s.Flags |= flags
	return s
}

// Remove returns a copy of s with the given flags disabled.
func (s Style) Remove(flags StyleFlags) Style {
	s.Flags &^= flags
	return s
}

// Has returns true if all of the given flags are set.
func (s Style) Has(flags StyleFlags) bool {
	return s.Flags&flags == flags
}

// IsDefault returns true if s is the neutral style.
func (s Style) IsDefault() bool {
	return s == Style{}
}
