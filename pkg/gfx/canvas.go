package gfx

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Canvas is an in-memory RGB565 pixel buffer.
//
// It satisfies drivers.Displayer so a GFX can draw into it exactly as it
// would into a hardware driver, and image.Image so its contents can be
// saved or compared. Pixels are stored row-major, one uint16 per pixel.
type Canvas struct {
	w, h int16
	pix  []uint16
}

var (
	_ drivers.Displayer = (*Canvas)(nil)
	_ image.Image       = (*Canvas)(nil)
)

// ErrBufferSize is returned by SetBytes when the input does not match the
// canvas dimensions.
var ErrBufferSize = errors.New("gfx: buffer size does not match canvas")

// NewCanvas creates a black canvas of the given size.
// Non-positive dimensions give an empty canvas.
func NewCanvas(w, h int16) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{
		w:   w,
		h:   h,
		pix: make([]uint16, int(w)*int(h)),
	}
}

// Size returns the canvas dimensions.
func (cv *Canvas) Size() (x, y int16) {
	return cv.w, cv.h
}

// SetPixel sets a pixel. Coordinates outside the canvas are ignored.
func (cv *Canvas) SetPixel(x, y int16, c color.RGBA) {
	cv.Set565(x, y, FromRGBA(c))
}

// Set565 sets a pixel from an RGB565 value without conversion.
func (cv *Canvas) Set565(x, y int16, c Color) {
	if x < 0 || x >= cv.w || y < 0 || y >= cv.h {
		return
	}
	cv.pix[int(y)*int(cv.w)+int(x)] = uint16(c)
}

// Pixel returns the RGB565 value at (x, y), or Black when out of bounds.
func (cv *Canvas) Pixel(x, y int16) Color {
	if x < 0 || x >= cv.w || y < 0 || y >= cv.h {
		return Black
	}
	return Color(cv.pix[int(y)*int(cv.w)+int(x)])
}

// Display is a no-op; the canvas is always up to date.
func (cv *Canvas) Display() error {
	return nil
}

// FillRectangle fills a clipped rectangle. It matches the optional fast
// path exposed by TinyGo display drivers.
func (cv *Canvas) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	cv.fill(x, y, width, height, FromRGBA(c))
	return nil
}

func (cv *Canvas) fill(x, y, w, h int16, c Color) {
	x0, y0 := int(x), int(y)
	x1, y1 := x0+int(w), y0+int(h)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > int(cv.w) {
		x1 = int(cv.w)
	}
	if y1 > int(cv.h) {
		y1 = int(cv.h)
	}
	for py := y0; py < y1; py++ {
		row := cv.pix[py*int(cv.w) : (py+1)*int(cv.w)]
		for px := x0; px < x1; px++ {
			row[px] = uint16(c)
		}
	}
}

// Fill sets every pixel to c.
func (cv *Canvas) Fill(c Color) {
	for i := range cv.pix {
		cv.pix[i] = uint16(c)
	}
}

// Clear resets all pixels to black.
func (cv *Canvas) Clear() {
	cv.Fill(Black)
}

// Copy returns an independent copy of the canvas.
func (cv *Canvas) Copy() *Canvas {
	cp := &Canvas{w: cv.w, h: cv.h, pix: make([]uint16, len(cv.pix))}
	copy(cp.pix, cv.pix)
	return cp
}

// Equal reports whether both canvases have the same size and pixels.
func (cv *Canvas) Equal(other *Canvas) bool {
	if other == nil || cv.w != other.w || cv.h != other.h {
		return false
	}
	for i, p := range cv.pix {
		if other.pix[i] != p {
			return false
		}
	}
	return true
}

// Count returns how many pixels have the color c.
func (cv *Canvas) Count(c Color) int {
	n := 0
	for _, p := range cv.pix {
		if p == uint16(c) {
			n++
		}
	}
	return n
}

// Bytes returns the canvas in ST7735 wire format: row-major, two bytes per
// pixel, big-endian RGB565. Its length is width*height*2.
func (cv *Canvas) Bytes() []byte {
	buf := make([]byte, len(cv.pix)*2)
	for i, p := range cv.pix {
		binary.BigEndian.PutUint16(buf[i*2:], p)
	}
	return buf
}

// SetBytes loads the canvas from wire format data produced by Bytes.
func (cv *Canvas) SetBytes(data []byte) error {
	if len(data) != len(cv.pix)*2 {
		return ErrBufferSize
	}
	for i := range cv.pix {
		cv.pix[i] = binary.BigEndian.Uint16(data[i*2:])
	}
	return nil
}

// Checksum returns an FNV-1a hash of the wire format bytes.
// Two canvases with equal contents have equal checksums.
func (cv *Canvas) Checksum() uint64 {
	h := fnv.New64a()
	h.Write(cv.Bytes())
	return h.Sum64()
}

// ColorModel implements image.Image.
func (cv *Canvas) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (cv *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(cv.w), int(cv.h))
}

// At implements image.Image.
func (cv *Canvas) At(x, y int) color.Color {
	if !image.Pt(x, y).In(cv.Bounds()) {
		return Black
	}
	return cv.Pixel(int16(x), int16(y))
}
