package core

import "image/color"

// Color is an index into the 16-color palette shared by every frontend,
// plus ColorDefault for the terminal's own foreground.
type Color uint8

// Palette entries in index order.
const (
	ColorBlack Color = iota
	ColorNavy
	ColorPurple
	ColorTeal
	ColorBrown
	ColorDarkBlue
	ColorLightBlue
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorLime
	ColorCyan
	ColorGray
	ColorPink
	ColorPeach
	ColorDefault
)

// PaletteSize is the number of indexable palette entries.
const PaletteSize = int(ColorDefault)

var paletteRGB = [PaletteSize]uint32{
	0x000000, 0x2b335f, 0x7e2072, 0x19959c,
	0x8b4852, 0x395c98, 0xa9c1ff, 0xeeeeee,
	0xd4186c, 0xd38441, 0xe9c35b, 0x70c6a9,
	0x7696de, 0xa3a3a3, 0xff9798, 0xedc7b0,
}

// PaletteColor converts an integer palette index into a Color,
// wrapping out-of-range values.
func PaletteColor(i int) Color {
	i %= PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return Color(i)
}

// RGBA returns the palette entry as an opaque color.
// ColorDefault maps to white.
func (c Color) RGBA() color.RGBA {
	v := uint32(0xeeeeee)
	if int(c) < PaletteSize {
		v = paletteRGB[c]
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Hex returns the palette entry as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if int(c) >= PaletteSize {
		return ""
	}
	const digits = "0123456789abcdef"
	v := paletteRGB[c]
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i := 6; i >= 1; i-- {
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf)
}
