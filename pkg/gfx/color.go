package gfx

import "image/color"

// Color is a 16-bit packed RGB565 value, the native pixel format of the ST7735.
//
// Bits 15-11 hold red, bits 10-5 green and bits 4-0 blue.
type Color uint16

// Named colors, matching the ST77XX_* constants of the Arduino driver.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
	Orange  Color = 0xFC00
)

// RGB packs 8-bit channels into an RGB565 color, dropping the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// FromRGBA converts any color to RGB565. Alpha is ignored.
func FromRGBA(c color.Color) Color {
	if c == nil {
		return Black
	}
	if c565, ok := c.(Color); ok {
		return c565
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ToRGBA expands the color to 8 bits per channel.
// The low bits are filled by replicating the high bits so that
// White maps to 0xFFFFFF and the conversion round-trips through FromRGBA.
func (c Color) ToRGBA() color.RGBA {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return color.RGBA{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
		A: 0xFF,
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToRGBA().RGBA()
}

// Model converts arbitrary colors to RGB565.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromRGBA(c)
})
