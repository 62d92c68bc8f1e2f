// Package gfx provides the drawing surface used by the display test harness.
//
// Surface is the capability the harness draws through. GFX implements it on
// top of any tinygo.org/x/drivers Displayer, so the same drawing code runs
// against a TinyGo SPI driver, the periph-based ST7735 driver in this module,
// or the in-memory Canvas used by tests and PNG previews.
package gfx

// Surface is a pixel-addressable screen supporting primitive draw operations
// and a text cursor. Coordinates are in pixels with (0, 0) at the top-left.
//
// Implementations clip everything to the screen bounds. None of the methods
// report errors: a surface that can fail (a bus transfer, say) surfaces the
// failure when its contents are flushed, not while drawing.
type Surface interface {
	// Size returns the current width and height in pixels.
	Size() (w, h int16)

	DrawPixel(x, y int16, c Color)
	FillScreen(c Color)

	DrawLine(x0, y0, x1, y1 int16, c Color)
	DrawFastHLine(x, y, w int16, c Color)
	DrawFastVLine(x, y, h int16, c Color)

	DrawRect(x, y, w, h int16, c Color)
	FillRect(x, y, w, h int16, c Color)

	DrawCircle(x0, y0, r int16, c Color)
	FillCircle(x0, y0, r int16, c Color)

	DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int16, c Color)

	DrawRoundRect(x, y, w, h, r int16, c Color)
	FillRoundRect(x, y, w, h, r int16, c Color)

	// SetCursor moves the text cursor. The cursor is the top-left corner
	// of the next glyph cell.
	SetCursor(x, y int16)
	Cursor() (x, y int16)
	SetTextColor(c Color)
	// SetTextSize sets the integer magnification of text. 0 is treated as 1.
	SetTextSize(size uint8)
	SetTextWrap(wrap bool)

	// Print renders text at the cursor and advances it.
	Print(text string)
	// Println renders text followed by a newline.
	Println(text string)
}
