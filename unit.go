package termtext

import "strings"

// Unit is an atomic span of text drawn with a single style.
//
// A Unit never changes after construction. Its width is derived from the
// content on every call to Width and is never cached. Units are comparable
// with ==.
//
// Go strings are immutable, so a Unit can safely share the caller's string
// storage (see Raw). Use Owned or FromBytes when the Unit should not keep a
// larger backing string alive, or when the source is a mutable byte slice.
type Unit struct {
	content string
	style   Style
	styled  bool
}

// Raw creates an unstyled Unit that shares the storage of s.
func Raw(s string) Unit {
	return Unit{content: s}
}

// Owned creates an unstyled Unit holding an independent copy of s.
func Owned(s string) Unit {
	return Unit{content: strings.Clone(s)}
}

// FromBytes creates an unstyled Unit from a copy of b.
// Later writes to b do not affect the Unit.
func FromBytes(b []byte) Unit {
	return Unit{content: string(b)}
}

// Styled creates a Unit drawn with the given style.
func Styled(s string, style Style) Unit {
	return Unit{content: s, style: style, styled: true}
}

// Width returns the number of terminal columns the content occupies.
func (u Unit) Width() int {
	return StringWidth(u.content)
}

// Style returns the attached style, or DefaultStyle if none was attached.
func (u Unit) Style() Style {
	if !u.styled {
		return DefaultStyle()
	}
	return u.style
}

// IsStyled returns true if the Unit was created with an explicit style.
func (u Unit) IsStyled() bool {
	return u.styled
}

// Content returns the raw text without style.
func (u Unit) Content() string {
	return u.content
}

// String implements fmt.Stringer and returns the raw text.
func (u Unit) String() string {
	return u.content
}

// WithStyle returns a new Unit with the same content and the given style.
func (u Unit) WithStyle(style Style) Unit {
	return Styled(u.content, style)
}
