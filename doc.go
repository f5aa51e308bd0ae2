// Package termtext provides the styled text model used to paint terminal user interfaces.
//
// Widgets describe what they draw as styled text. This package holds that text
// and answers the question every layout decision depends on: how many terminal
// columns does it occupy?
//
// # Quick Start
//
// Build styled text and measure it:
//
//	title := termtext.Styled("Title", termtext.DefaultStyle().Foreground(termtext.ColorLightBlue))
//	row := termtext.RowWithUnits(title, termtext.Raw(" - 你好"))
//	fmt.Println(row.Width()) // 12
//
// # Architecture
//
// The package is organized around these core types, each built on the previous:
//
//   - [Unit]: an atomic span of text drawn with one [Style]
//   - [Row]: an ordered sequence of Units, one terminal line before wrapping
//   - [Block]: an ordered sequence of Rows, a multi-line region
//
// Consumers of the model:
//
//   - [Buffer]: a grid of [Cell] values that Units, Rows and Blocks are painted into
//   - [Snapshot]: a JSON-friendly capture of a Block or Buffer
//   - [Buffer.Screenshot]: renders a Buffer to an [image.RGBA]
//
// # Units
//
// A Unit is text plus an optional style. An unstyled Unit reports
// [DefaultStyle] from [Unit.Style]:
//
//	u := termtext.Raw("plain")          // shares the string's storage
//	o := termtext.Owned(big[10:20])     // independent copy, does not pin big
//	b := termtext.FromBytes(buf)        // copy of a mutable byte slice
//	s := termtext.Styled("warn", style) // explicit style
//
// All constructors behave identically for Width and Content. Units never
// change after construction; [Unit.WithStyle] returns a new Unit.
//
// # Display Width
//
// Width is derived from the content on every call. Each rune contributes its
// terminal column count: 2 for wide characters (CJK ideographs, fullwidth
// forms, emoji), 0 for combining marks and control characters, 1 otherwise.
//
//	termtext.Raw("ab").Width()   // 2
//	termtext.Raw("你好").Width() // 4
//	termtext.Raw("").Width()     // 0
//
// East Asian ambiguous-width characters are counted as narrow. Terminals
// configured to draw them wide will use one more column per such character.
//
// A Row is as wide as the sum of its Units, and a Block as wide as its widest
// Row. Neither caches the result; callers measuring the same Block repeatedly
// should keep the value.
//
// # Rows and Blocks
//
// Rows and Blocks own their contents. Constructors copy the slices they are
// given and accessors return copies or iterators:
//
//	row := termtext.RowWithUnits(units...)
//	for i, u := range row.All() {
//	    // paint u
//	}
//
//	blk := termtext.BlockFromStrings("Title", "x")
//	fmt.Println(blk.Width()) // 5
//
// [Row.String] and [Block.String] drop all style information.
//
// # Painting
//
// A [Buffer] paints text cell by cell. Text is split into grapheme clusters so
// a combining mark stays with its base character, and wide clusters occupy a
// head cell plus spacer cells:
//
//	buf := termtext.NewBuffer(10, 10)
//	buf.SetRow(0, 1, row, 6)                       // clipped to 6 columns
//	buf.SetBlock(termtext.Rect{Row: 1, Col: 1, Width: 6, Height: 4}, blk)
//	fmt.Println(buf.String())
//
// A Row painted without clipping advances exactly [Row.Width] columns. A wide
// character that does not fit is not drawn. [Buffer.RowAt] and [Buffer.Block]
// convert the grid back into the text model.
//
// # Thread Safety
//
// Unit, Row, Block and Style are immutable values and may be shared between
// goroutines without locking. Buffer is a mutable grid and must not be
// modified concurrently.
package termtext
