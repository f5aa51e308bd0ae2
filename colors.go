package termtext

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// IndexedColor references a color by palette index (0-255).
// Resolution to actual RGBA happens at render time using the palette.
type IndexedColor struct {
	Index int
}

// RGBA implements color.Color by resolving against DefaultPalette.
func (c IndexedColor) RGBA() (r, g, b, a uint32) {
	return ResolveColor(c, true).RGBA()
}

// NamedColor references a color by semantic name (foreground, background, dim variants).
// Resolution to actual RGBA happens at render time using the palette and defaults.
type NamedColor struct {
	Name int
}

// RGBA implements color.Color by resolving against DefaultPalette.
func (c NamedColor) RGBA() (r, g, b, a uint32) {
	return ResolveColor(c, true).RGBA()
}

// Named color indices for semantic colors (used with NamedColor).
const (
	NamedColorForeground       = 256 // Default foreground text color
	NamedColorBackground       = 257 // Default background color
	NamedColorDimBlack         = 259 // Dim black
	NamedColorDimRed           = 260 // Dim red
	NamedColorDimGreen         = 261 // Dim green
	NamedColorDimYellow        = 262 // Dim yellow
	NamedColorDimBlue          = 263 // Dim blue
	NamedColorDimMagenta       = 264 // Dim magenta
	NamedColorDimCyan          = 265 // Dim cyan
	NamedColorDimWhite         = 266 // Dim white
	NamedColorBrightForeground = 267 // Bright foreground (white)
	NamedColorDimForeground    = 268 // Dim foreground
)

// The 16 ANSI colors, addressed through the palette so themes can remap them.
var (
	ColorBlack        = IndexedColor{Index: 0}
	ColorRed          = IndexedColor{Index: 1}
	ColorGreen        = IndexedColor{Index: 2}
	ColorYellow       = IndexedColor{Index: 3}
	ColorBlue         = IndexedColor{Index: 4}
	ColorMagenta      = IndexedColor{Index: 5}
	ColorCyan         = IndexedColor{Index: 6}
	ColorWhite        = IndexedColor{Index: 7}
	ColorLightBlack   = IndexedColor{Index: 8}
	ColorLightRed     = IndexedColor{Index: 9}
	ColorLightGreen   = IndexedColor{Index: 10}
	ColorLightYellow  = IndexedColor{Index: 11}
	ColorLightBlue    = IndexedColor{Index: 12}
	ColorLightMagenta = IndexedColor{Index: 13}
	ColorLightCyan    = IndexedColor{Index: 14}
	ColorLightWhite   = IndexedColor{Index: 15}
)

// ResolveColor converts a color.Color to RGBA using DefaultPalette.
// If c is nil, returns the default foreground or background based on fg.
func ResolveColor(c color.Color, fg bool) color.RGBA {
	return resolveColorWithPalette(c, fg, &DefaultPalette, &DefaultForeground, &DefaultBackground)
}

// resolveColorWithPalette resolves a color using a custom palette.
func resolveColorWithPalette(c color.Color, fg bool, palette *[256]color.RGBA, defaultFG, defaultBG *color.RGBA) color.RGBA {
	if c == nil {
		if fg {
			return *defaultFG
		}
		return *defaultBG
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return palette[v.Index]
		}
		if fg {
			return *defaultFG
		}
		return *defaultBG
	case NamedColor:
		return resolveNamedColorWithPalette(v.Name, fg, palette, defaultFG, defaultBG)
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
}

// resolveNamedColorWithPalette resolves a named color using a custom palette.
func resolveNamedColorWithPalette(name int, fg bool, palette *[256]color.RGBA, defaultFG, defaultBG *color.RGBA) color.RGBA {
	switch {
	case name >= 0 && name < 16:
		return palette[name]
	case name == NamedColorForeground:
		return *defaultFG
	case name == NamedColorBackground:
		return *defaultBG
	case name >= NamedColorDimBlack && name <= NamedColorDimWhite:
		return dim(palette[name-NamedColorDimBlack])
	case name == NamedColorBrightForeground:
		return palette[15]
	case name == NamedColorDimForeground:
		return dim(*defaultFG)
	default:
		if fg {
			return *defaultFG
		}
		return *defaultBG
	}
}

// dim darkens a color the way terminals render SGR 2.
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: c.A,
	}
}
