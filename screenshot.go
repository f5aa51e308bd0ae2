package termtext

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how a Buffer is rendered to an image.
// Zero values select defaults.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette is the 256-color palette. If nil, uses DefaultPalette.
	Palette *[256]color.RGBA

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return face, nil
}

// Screenshot renders the buffer to an RGBA image using default settings (basicfont, default palette).
func (b *Buffer) Screenshot() *image.RGBA {
	return b.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the buffer to an RGBA image with a custom font and colors.
// A wide cluster is drawn across all the cells it spans.
func (b *Buffer) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	if cfg == nil {
		cfg = &ScreenshotConfig{}
	}

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &DefaultPalette
	}

	defaultFG := cfg.DefaultFG
	if defaultFG == nil {
		defaultFG = &DefaultForeground
	}

	defaultBG := cfg.DefaultBG
	if defaultBG == nil {
		defaultBG = &DefaultBackground
	}

	imgWidth := b.cols * cellWidth
	imgHeight := b.rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(*defaultBG), image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent.Ceil()

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cell := &b.cells[row][col]
			if cell.IsWideSpacer() {
				continue
			}

			style := cell.Style
			fg := resolveColorWithPalette(style.Fg, true, palette, defaultFG, defaultBG)
			bg := resolveColorWithPalette(style.Bg, false, palette, defaultFG, defaultBG)

			if style.Has(StyleReverse) {
				fg, bg = bg, fg
			}
			if style.Has(StyleDim) {
				fg = dim(fg)
			}

			span := max(cell.Width(), 1)
			x := col * cellWidth
			y := row * cellHeight
			w := min(span*cellWidth, imgWidth-x)

			draw.Draw(img, image.Rect(x, y, x+w, y+cellHeight), image.NewUniform(bg), image.Point{}, draw.Src)

			if style.Has(StyleHidden) || cell.Content == "" || cell.Content == " " {
				continue
			}

			baseline := y + ascent
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(cell.Content)

			if style.Flags&styleAnyUnderline != 0 {
				underlineColor := fg
				if style.UnderlineColor != nil {
					underlineColor = resolveColorWithPalette(style.UnderlineColor, true, palette, defaultFG, defaultBG)
				}
				if underlineY := baseline + 2; underlineY < imgHeight {
					for px := 0; px < w; px++ {
						img.SetRGBA(x+px, underlineY, underlineColor)
					}
				}
			}

			if style.Has(StyleStrike) {
				strikeY := y + cellHeight/2
				for px := 0; px < w; px++ {
					img.SetRGBA(x+px, strikeY, fg)
				}
			}
		}
	}

	return img
}
