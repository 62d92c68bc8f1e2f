package gfx

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// SetFont changes the font used by Print. The line height is the font's
// y-advance; the cursor-to-baseline distance is taken from the glyph 'A'.
func (g *GFX) SetFont(f tinyfont.Fonter) {
	g.font = f
	g.ascent = -int16(f.GetGlyph('A').Info().YOffset)
	if g.ascent <= 0 {
		g.ascent = int16(f.GetYAdvance())
	}
}

// SetCursor moves the text cursor.
func (g *GFX) SetCursor(x, y int16) {
	g.cursorX, g.cursorY = x, y
}

// Cursor returns the text cursor position.
func (g *GFX) Cursor() (x, y int16) {
	return g.cursorX, g.cursorY
}

// SetTextColor sets the foreground color of text. Text has no background.
func (g *GFX) SetTextColor(c Color) {
	g.textColor = c
}

// SetTextSize sets the text magnification.
func (g *GFX) SetTextSize(size uint8) {
	if size == 0 {
		size = 1
	}
	g.textSize = int16(size)
}

// SetTextWrap controls whether text continues on the next line when it
// reaches the right edge.
func (g *GFX) SetTextWrap(wrap bool) {
	g.wrap = wrap
}

// LineHeight returns the distance between text lines at the current size.
func (g *GFX) LineHeight() int16 {
	return int16(g.font.GetYAdvance()) * g.textSize
}

// Print draws text at the cursor and advances it.
func (g *GFX) Print(text string) {
	for _, r := range text {
		g.writeRune(r)
	}
}

// Println draws text and moves the cursor to the start of the next line.
func (g *GFX) Println(text string) {
	g.Print(text)
	g.newline()
}

func (g *GFX) newline() {
	g.cursorX = 0
	g.cursorY += g.LineHeight()
}

func (g *GFX) writeRune(r rune) {
	switch r {
	case '\n':
		g.newline()
		return
	case '\r':
		return
	}

	glyph := g.font.GetGlyph(r)
	adv := int16(glyph.Info().XAdvance) * g.textSize
	if g.wrap && g.cursorX > 0 {
		if w, _ := g.Size(); g.cursorX+adv > w {
			g.newline()
		}
	}

	pen := &glyphPen{
		g:    g,
		x:    int(g.cursorX),
		y:    int(g.cursorY) + int(g.ascent*g.textSize),
		size: int(g.textSize),
	}
	glyph.Draw(pen, 0, 0, g.textColor.ToRGBA())
	g.cursorX += adv
}

// glyphPen is the Displayer handed to tinyfont glyphs. Glyphs are drawn
// relative to (0, 0) at the baseline; the pen translates them to the cursor
// and magnifies each pixel to a size×size block.
type glyphPen struct {
	g    *GFX
	x, y int
	size int
}

func (p *glyphPen) Size() (x, y int16) {
	return p.g.Size()
}

func (p *glyphPen) SetPixel(x, y int16, c color.RGBA) {
	px := p.x + int(x)*p.size
	py := p.y + int(y)*p.size
	if p.size == 1 {
		p.g.pixel(px, py, c)
		return
	}
	p.g.fillRect(px, py, p.size, p.size, c)
}

func (p *glyphPen) Display() error {
	return nil
}
