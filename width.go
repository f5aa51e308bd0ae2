package termtext

import "github.com/unilibs/uniwidth"

// RuneWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
//
// East Asian ambiguous-width runes (box drawing, Greek, '±', ...) are treated
// as narrow, which matches the default of most terminals. A terminal
// configured for wide ambiguous characters will render them one column wider
// than reported here.
func RuneWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// IsWideRune returns true if the rune occupies 2 columns (CJK ideographs, fullwidth forms, emoji).
func IsWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += uniwidth.RuneWidth(r)
	}
	return w
}
