// Package gfxtest draws the classic ST7735 graphics test patterns.
//
// Each function takes an initialized Surface, issues a fixed sequence of
// primitive draw calls against it and returns. The functions keep no state
// between calls; they only overlay each other on screen. Pixels are not
// flushed to hardware here: callers owning a buffered surface call its
// Display method when they want the result shown.
package gfxtest

import (
	"github.com/sagostin/st7735-gfxtest/pkg/gfx"
)

// DrawText prints text in color c at size 1 from the top-left corner with
// wrapping on. Empty text draws nothing and leaves the cursor where it was.
func DrawText(s gfx.Surface, text string, c gfx.Color) {
	if text == "" {
		return
	}
	s.SetCursor(0, 0)
	s.SetTextColor(c)
	s.SetTextWrap(true)
	s.SetTextSize(1)
	s.Print(text)
}

// Lines draws four fans of lines, one from each corner, clearing the
// screen before each fan.
func Lines(s gfx.Surface, c gfx.Color) {
	w, h := s.Size()

	fan := func(x0, y0, xEdge, yEdge int16) {
		s.FillScreen(gfx.Black)
		for x := int16(0); x < w; x += 6 {
			s.DrawLine(x0, y0, x, yEdge, c)
		}
		for y := int16(0); y < h; y += 6 {
			s.DrawLine(x0, y0, xEdge, y, c)
		}
	}

	fan(0, 0, w-1, h-1) // top-left
	fan(w-1, 0, 0, h-1) // top-right
	fan(0, h-1, w-1, 0) // bottom-left
	fan(w-1, h-1, 0, 0) // bottom-right
}

// FastLines draws a grid: full-width horizontal lines every 5 pixels in c1,
// then full-height vertical lines every 5 pixels in c2.
func FastLines(s gfx.Surface, c1, c2 gfx.Color) {
	w, h := s.Size()
	s.FillScreen(gfx.Black)
	for y := int16(0); y < h; y += 5 {
		s.DrawFastHLine(0, y, w, c1)
	}
	for x := int16(0); x < w; x += 5 {
		s.DrawFastVLine(x, 0, h, c2)
	}
}

// DrawRects draws concentric square outlines growing by 6 pixels.
func DrawRects(s gfx.Surface, c gfx.Color) {
	w, h := s.Size()
	s.FillScreen(gfx.Black)
	for x := int16(6); x < w; x += 6 {
		s.DrawRect(w/2-x/2, h/2-x/2, x, x, c)
	}
}

// FillRects draws concentric filled squares in c1, each outlined in c2,
// from the screen width down to 7 pixels.
func FillRects(s gfx.Surface, c1, c2 gfx.Color) {
	w, h := s.Size()
	s.FillScreen(gfx.Black)
	for x := w - 1; x > 6; x -= 6 {
		s.FillRect(w/2-x/2, h/2-x/2, x, x, c1)
		s.DrawRect(w/2-x/2, h/2-x/2, x, x, c2)
	}
}

// FillCircles tiles filled circles of the given radius, starting at
// (radius, radius). A zero radius draws nothing.
func FillCircles(s gfx.Surface, radius uint8, c gfx.Color) {
	if radius == 0 {
		return
	}
	w, h := s.Size()
	r := int(radius)
	for x := r; x < int(w); x += 2 * r {
		for y := r; y < int(h); y += 2 * r {
			s.FillCircle(int16(x), int16(y), int16(r), c)
		}
	}
}

// DrawCircles tiles circle outlines of the given radius from (0, 0), one
// radius past the right and bottom edges. A zero radius draws nothing.
func DrawCircles(s gfx.Surface, radius uint8, c gfx.Color) {
	if radius == 0 {
		return
	}
	w, h := s.Size()
	r := int(radius)
	for x := 0; x < int(w)+r; x += 2 * r {
		for y := 0; y < int(h)+r; y += 2 * r {
			s.DrawCircle(int16(x), int16(y), int16(r), c)
		}
	}
}

// Triangles draws 16 nested triangles hanging from the top center, shifting
// the color by 100 each step.
func Triangles(s gfx.Surface) {
	w, h := s.Size()
	s.FillScreen(gfx.Black)

	c := gfx.Color(0xF800)
	apex := w / 2
	bottom := h - 1
	left := int16(0)
	right := w
	for t := 0; t <= 15; t++ {
		s.DrawTriangle(apex, left, left, bottom, right, bottom, c)
		bottom -= 4
		left += 4
		right -= 4
		c += 100
	}
}

// RoundRects draws five passes of 17 nested rounded rectangles.
func RoundRects(s gfx.Surface) {
	w, h := s.Size()
	s.FillScreen(gfx.Black)

	c := gfx.Color(100)
	for t := 0; t <= 4; t++ {
		x, y := int16(0), int16(0)
		rw, rh := w-2, h-2
		for i := 0; i <= 16; i++ {
			s.DrawRoundRect(x, y, rw, rh, 5, c)
			x += 2
			y += 3
			rw -= 4
			rh -= 6
			c += 1100
		}
		c += 100
	}
}

// DefaultPi is the value printed by PrintTestDefault.
const DefaultPi = 3.1415926

// PrintTest exercises text sizes, colors and number formatting without
// pausing between its two pages. See Runner.PrintTest.
func PrintTest(s gfx.Surface, p float64) {
	defaultRunner.PrintTest(s, p)
}

// PrintTestDefault runs PrintTest with DefaultPi.
func PrintTestDefault(s gfx.Surface) {
	defaultRunner.PrintTest(s, DefaultPi)
}

// MediaButtons draws play and pause buttons and recolors them, without
// pausing between steps. See Runner.MediaButtons.
func MediaButtons(s gfx.Surface) {
	defaultRunner.MediaButtons(s)
}
