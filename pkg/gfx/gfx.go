package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// rectFiller is the optional fast fill implemented by most TinyGo display
// drivers and by Canvas.
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// GFX implements Surface on top of a drivers.Displayer.
//
// Every primitive eventually reduces to SetPixel calls on the Displayer, or
// to FillRectangle when the Displayer provides it. Nothing is sent to the
// hardware until Display is called.
type GFX struct {
	d    drivers.Displayer
	fill rectFiller // nil when d has no fast fill

	cursorX, cursorY int16
	textColor        Color
	textSize         int16
	wrap             bool
	font             tinyfont.Fonter
	ascent           int16

	err error // first FillRectangle failure, reported by Display
}

var _ Surface = (*GFX)(nil)

// New wraps a Displayer. Text defaults to white, size 1, wrapping on, in the
// proggy TinySZ8pt7b font.
func New(d drivers.Displayer) *GFX {
	g := &GFX{
		d:         d,
		textColor: White,
		textSize:  1,
		wrap:      true,
	}
	g.fill, _ = d.(rectFiller)
	g.SetFont(&proggy.TinySZ8pt7b)
	return g
}

// Displayer returns the wrapped Displayer.
func (g *GFX) Displayer() drivers.Displayer {
	return g.d
}

// Display flushes the Displayer. It also reports the first error returned by
// a fast fill since the previous Display.
func (g *GFX) Display() error {
	err := g.err
	g.err = nil
	if derr := g.d.Display(); err == nil {
		err = derr
	}
	return err
}

// Size returns the Displayer size.
func (g *GFX) Size() (w, h int16) {
	return g.d.Size()
}

// DrawPixel sets a single pixel.
func (g *GFX) DrawPixel(x, y int16, c Color) {
	g.d.SetPixel(x, y, c.ToRGBA())
}

// pixel sets one pixel, skipping it when it lies off the screen. Callers
// work in int, so the check has to happen before narrowing to int16.
func (g *GFX) pixel(x, y int, c color.RGBA) {
	w, h := g.Size()
	if x < 0 || y < 0 || x >= int(w) || y >= int(h) {
		return
	}
	g.d.SetPixel(int16(x), int16(y), c)
}

// FillScreen paints the whole surface.
func (g *GFX) FillScreen(c Color) {
	w, h := g.Size()
	g.FillRect(0, 0, w, h, c)
}

// FillRect fills a rectangle. Non-positive sizes draw nothing.
func (g *GFX) FillRect(x, y, w, h int16, c Color) {
	g.fillRect(int(x), int(y), int(w), int(h), c.ToRGBA())
}

func (g *GFX) fillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	sw, sh := g.Size()
	// Clip before touching the driver; TinyGo drivers reject rectangles
	// that leave the screen.
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > int(sw) {
		w = int(sw) - x
	}
	if y+h > int(sh) {
		h = int(sh) - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	if g.fill != nil {
		if err := g.fill.FillRectangle(int16(x), int16(y), int16(w), int16(h), c); err != nil && g.err == nil {
			g.err = err
		}
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			g.pixel(px, py, c)
		}
	}
}

// DrawFastHLine draws a horizontal line of width w starting at (x, y).
func (g *GFX) DrawFastHLine(x, y, w int16, c Color) {
	g.fillRect(int(x), int(y), int(w), 1, c.ToRGBA())
}

// DrawFastVLine draws a vertical line of height h starting at (x, y).
func (g *GFX) DrawFastVLine(x, y, h int16, c Color) {
	g.fillRect(int(x), int(y), 1, int(h), c.ToRGBA())
}

// DrawLine draws a line from (x0, y0) to (x1, y1) inclusive using
// Bresenham's algorithm.
func (g *GFX) DrawLine(x0, y0, x1, y1 int16, c Color) {
	g.line(int(x0), int(y0), int(x1), int(y1), c.ToRGBA())
}

func (g *GFX) line(x1, y1, x2, y2 int, c color.RGBA) {
	if x1 == x2 {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		g.fillRect(x1, y1, 1, y2-y1+1, c)
		return
	}
	if y1 == y2 {
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		g.fillRect(x1, y1, x2-x1+1, 1, c)
		return
	}

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		g.pixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DrawRect draws a rectangle outline.
func (g *GFX) DrawRect(x, y, w, h int16, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rgba := c.ToRGBA()
	xi, yi, wi, hi := int(x), int(y), int(w), int(h)
	g.fillRect(xi, yi, wi, 1, rgba)      // top
	g.fillRect(xi, yi+hi-1, wi, 1, rgba) // bottom
	g.fillRect(xi, yi, 1, hi, rgba)      // left
	g.fillRect(xi+wi-1, yi, 1, hi, rgba) // right
}

// DrawCircle draws a circle outline centered at (x0, y0) with the midpoint
// algorithm. A radius of 0 draws the center pixel; a negative radius draws
// nothing.
func (g *GFX) DrawCircle(x0, y0, r int16, c Color) {
	if r < 0 {
		return
	}
	rgba := c.ToRGBA()
	cx, cy, ri := int(x0), int(y0), int(r)

	g.pixel(cx, cy+ri, rgba)
	g.pixel(cx, cy-ri, rgba)
	g.pixel(cx+ri, cy, rgba)
	g.pixel(cx-ri, cy, rgba)

	f := 1 - ri
	ddx := 1
	ddy := -2 * ri
	x, y := 0, ri
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		g.pixel(cx+x, cy+y, rgba)
		g.pixel(cx-x, cy+y, rgba)
		g.pixel(cx+x, cy-y, rgba)
		g.pixel(cx-x, cy-y, rgba)
		g.pixel(cx+y, cy+x, rgba)
		g.pixel(cx-y, cy+x, rgba)
		g.pixel(cx+y, cy-x, rgba)
		g.pixel(cx-y, cy-x, rgba)
	}
}

// Corner masks for the quarter-circle helpers.
const (
	cornerTopLeft     = 1
	cornerTopRight    = 2
	cornerBottomRight = 4
	cornerBottomLeft  = 8
)

// drawCorner draws the quarter circle outlines selected by corners.
func (g *GFX) drawCorner(cx, cy, r, corners int, c color.RGBA) {
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x, y := 0, r
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		if corners&cornerBottomRight != 0 {
			g.pixel(cx+x, cy+y, c)
			g.pixel(cx+y, cy+x, c)
		}
		if corners&cornerTopRight != 0 {
			g.pixel(cx+x, cy-y, c)
			g.pixel(cx+y, cy-x, c)
		}
		if corners&cornerBottomLeft != 0 {
			g.pixel(cx-y, cy+x, c)
			g.pixel(cx-x, cy+y, c)
		}
		if corners&cornerTopLeft != 0 {
			g.pixel(cx-y, cy-x, c)
			g.pixel(cx-x, cy-y, c)
		}
	}
}

// fillCorner fills the right (sides&1) and/or left (sides&2) halves of a
// circle with vertical spans, stretched by delta pixels. It is shared by
// FillCircle and FillRoundRect.
func (g *GFX) fillCorner(cx, cy, r, sides, delta int, c color.RGBA) {
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x, y := 0, r
	px, py := x, y

	delta++
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		// Skip spans already drawn by the previous step so each column
		// is written exactly once.
		if x < y+1 {
			if sides&1 != 0 {
				g.fillRect(cx+x, cy-y, 1, 2*y+delta, c)
			}
			if sides&2 != 0 {
				g.fillRect(cx-x, cy-y, 1, 2*y+delta, c)
			}
		}
		if y != py {
			if sides&1 != 0 {
				g.fillRect(cx+py, cy-px, 1, 2*px+delta, c)
			}
			if sides&2 != 0 {
				g.fillRect(cx-py, cy-px, 1, 2*px+delta, c)
			}
			py = y
		}
		px = x
	}
}

// FillCircle draws a filled circle. A radius of 0 draws the center pixel;
// a negative radius draws nothing.
func (g *GFX) FillCircle(x0, y0, r int16, c Color) {
	if r < 0 {
		return
	}
	rgba := c.ToRGBA()
	cx, cy, ri := int(x0), int(y0), int(r)
	g.fillRect(cx, cy-ri, 1, 2*ri+1, rgba)
	g.fillCorner(cx, cy, ri, 3, 0, rgba)
}

// DrawTriangle draws a triangle outline.
func (g *GFX) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c Color) {
	rgba := c.ToRGBA()
	g.line(int(x0), int(y0), int(x1), int(y1), rgba)
	g.line(int(x1), int(y1), int(x2), int(y2), rgba)
	g.line(int(x2), int(y2), int(x0), int(y0), rgba)
}

// FillTriangle fills a triangle with horizontal scanlines.
func (g *GFX) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c Color) {
	rgba := c.ToRGBA()
	ax, ay := int(x0), int(y0)
	bx, by := int(x1), int(y1)
	cx, cy := int(x2), int(y2)

	// Sort vertices by y so that ay <= by <= cy.
	if ay > by {
		ax, ay, bx, by = bx, by, ax, ay
	}
	if by > cy {
		bx, by, cx, cy = cx, cy, bx, by
	}
	if ay > by {
		ax, ay, bx, by = bx, by, ax, ay
	}

	if ay == cy {
		// All on one line.
		lo, hi := ax, ax
		for _, x := range []int{bx, cx} {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		g.fillRect(lo, ay, hi-lo+1, 1, rgba)
		return
	}

	dxAB, dyAB := bx-ax, by-ay
	dxAC, dyAC := cx-ax, cy-ay
	dxBC, dyBC := cx-bx, cy-by
	sa, sb := 0, 0

	// Upper part: rows ay..by, or ay..by-1 when the lower part has height.
	last := by - 1
	if by == cy {
		last = by
	}
	y := ay
	for ; y <= last; y++ {
		a := ax + sa/dyAB
		b := ax + sb/dyAC
		sa += dxAB
		sb += dxAC
		if a > b {
			a, b = b, a
		}
		g.fillRect(a, y, b-a+1, 1, rgba)
	}

	// Lower part: rows y..cy.
	sa = dxBC * (y - by)
	sb = dxAC * (y - ay)
	for ; y <= cy; y++ {
		a := bx + sa/dyBC
		b := ax + sb/dyAC
		sa += dxBC
		sb += dxAC
		if a > b {
			a, b = b, a
		}
		g.fillRect(a, y, b-a+1, 1, rgba)
	}
}

// clampRadius limits r to half the shorter side of a w×h rectangle.
func clampRadius(w, h, r int) int {
	limit := w
	if h < limit {
		limit = h
	}
	limit /= 2
	if r > limit {
		r = limit
	}
	if r < 0 {
		r = 0
	}
	return r
}

// DrawRoundRect draws a rectangle outline with corners of radius r.
func (g *GFX) DrawRoundRect(x, y, w, h, r int16, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rgba := c.ToRGBA()
	xi, yi, wi, hi := int(x), int(y), int(w), int(h)
	ri := clampRadius(wi, hi, int(r))

	g.fillRect(xi+ri, yi, wi-2*ri, 1, rgba)      // top
	g.fillRect(xi+ri, yi+hi-1, wi-2*ri, 1, rgba) // bottom
	g.fillRect(xi, yi+ri, 1, hi-2*ri, rgba)      // left
	g.fillRect(xi+wi-1, yi+ri, 1, hi-2*ri, rgba) // right

	g.drawCorner(xi+ri, yi+ri, ri, cornerTopLeft, rgba)
	g.drawCorner(xi+wi-ri-1, yi+ri, ri, cornerTopRight, rgba)
	g.drawCorner(xi+wi-ri-1, yi+hi-ri-1, ri, cornerBottomRight, rgba)
	g.drawCorner(xi+ri, yi+hi-ri-1, ri, cornerBottomLeft, rgba)
}

// FillRoundRect fills a rectangle with corners of radius r.
func (g *GFX) FillRoundRect(x, y, w, h, r int16, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rgba := c.ToRGBA()
	xi, yi, wi, hi := int(x), int(y), int(w), int(h)
	ri := clampRadius(wi, hi, int(r))

	g.fillRect(xi+ri, yi, wi-2*ri, hi, rgba)
	g.fillCorner(xi+wi-ri-1, yi+ri, ri, 1, hi-2*ri-1, rgba)
	g.fillCorner(xi+ri, yi+ri, ri, 2, hi-2*ri-1, rgba)
}
