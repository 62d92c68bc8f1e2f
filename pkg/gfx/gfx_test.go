package gfx

import (
	"errors"
	"image/color"
	"testing"
)

func newTestGFX(w, h int16) (*GFX, *Canvas) {
	cv := NewCanvas(w, h)
	return New(cv), cv
}

// pixelOnly hides the Canvas fast fill so GFX falls back to SetPixel.
type pixelOnly struct {
	cv *Canvas
}

func (p pixelOnly) Size() (x, y int16) { return p.cv.Size() }

func (p pixelOnly) SetPixel(x, y int16, c color.RGBA) { p.cv.SetPixel(x, y, c) }

func (p pixelOnly) Display() error { return nil }

// failingFill reports an error from every fast fill.
type failingFill struct {
	*Canvas
}

var errFill = errors.New("bus fault")

func (f failingFill) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return errFill
}

func TestGFX_FillRect(t *testing.T) {
	g, cv := newTestGFX(64, 64)

	g.FillRect(10, 10, 20, 15, White)

	for y := int16(10); y < 25; y++ {
		for x := int16(10); x < 30; x++ {
			if cv.Pixel(x, y) != White {
				t.Fatalf("Pixel (%d,%d) should be on inside filled rect", x, y)
			}
		}
	}
	if cv.Pixel(9, 15) != Black || cv.Pixel(30, 15) != Black {
		t.Error("Pixels outside rectangle should be off")
	}
}

func TestGFX_FillRectDegenerate(t *testing.T) {
	g, cv := newTestGFX(32, 32)

	g.FillRect(5, 5, 0, 10, White)
	g.FillRect(5, 5, 10, -1, White)
	g.DrawRect(5, 5, 0, 0, White)
	g.DrawRoundRect(5, 5, -4, 4, 2, White)

	if cv.Count(White) != 0 {
		t.Error("Zero or negative sizes should draw nothing")
	}
}

func TestGFX_FillRectClipped(t *testing.T) {
	g, cv := newTestGFX(16, 16)

	g.FillRect(-4, 12, 8, 10, Red)

	if got := cv.Count(Red); got != 4*4 {
		t.Errorf("Expected 16 visible pixels, got %d", got)
	}
}

func TestGFX_PixelFallbackMatchesFastFill(t *testing.T) {
	fast, fastCV := newTestGFX(48, 48)
	slowCV := NewCanvas(48, 48)
	slow := New(pixelOnly{slowCV})

	for _, s := range []*GFX{fast, slow} {
		s.FillRect(3, 4, 20, 10, Green)
		s.FillCircle(30, 30, 9, Blue)
		s.FillRoundRect(2, 20, 20, 20, 6, Red)
		s.FillTriangle(40, 2, 47, 20, 25, 15, Yellow)
	}

	if !fastCV.Equal(slowCV) {
		t.Error("SetPixel fallback should render the same pixels as FillRectangle")
	}
}

func TestGFX_DisplayReportsFillError(t *testing.T) {
	g := New(failingFill{NewCanvas(8, 8)})

	g.FillScreen(Red)
	if err := g.Display(); !errors.Is(err, errFill) {
		t.Errorf("Expected fill error from Display, got %v", err)
	}
	if err := g.Display(); err != nil {
		t.Errorf("Error should be reported once, got %v", err)
	}
}

func TestGFX_FastLines(t *testing.T) {
	g, cv := newTestGFX(64, 64)

	g.DrawFastHLine(10, 20, 41, White)
	for x := int16(10); x <= 50; x++ {
		if cv.Pixel(x, 20) != White {
			t.Errorf("Pixel (%d,20) should be on", x)
		}
	}
	if cv.Pixel(9, 20) != Black || cv.Pixel(51, 20) != Black {
		t.Error("Pixels outside the line should be off")
	}

	g.DrawFastVLine(30, 10, 41, Red)
	for y := int16(10); y <= 50; y++ {
		if cv.Pixel(30, y) != Red {
			t.Errorf("Pixel (30,%d) should be red", y)
		}
	}
}

func TestGFX_DrawLine(t *testing.T) {
	g, cv := newTestGFX(64, 64)

	// Horizontal line
	g.DrawLine(0, 0, 50, 0, White)
	if cv.Pixel(0, 0) != White || cv.Pixel(25, 0) != White || cv.Pixel(50, 0) != White {
		t.Error("Horizontal line should have start, middle, and end pixels set")
	}

	// Diagonal line
	cv.Clear()
	g.DrawLine(20, 20, 0, 0, White)
	if cv.Pixel(0, 0) != White || cv.Pixel(10, 10) != White || cv.Pixel(20, 20) != White {
		t.Error("Diagonal line should have start, middle, and end pixels set")
	}
	if got := cv.Count(White); got != 21 {
		t.Errorf("Diagonal line should set 21 pixels, got %d", got)
	}

	// Steep line
	cv.Clear()
	g.DrawLine(0, 0, 5, 20, White)
	if cv.Pixel(0, 0) != White || cv.Pixel(5, 20) != White {
		t.Error("Steep line should have start and end pixels set")
	}

	// Line leaving the screen is clipped, not wrapped
	cv.Clear()
	g.DrawLine(60, 60, 80, 80, White)
	if cv.Pixel(63, 63) != White {
		t.Error("Visible part of an off-screen line should be drawn")
	}
}

func TestGFX_DrawRect(t *testing.T) {
	g, cv := newTestGFX(64, 64)

	g.DrawRect(10, 10, 20, 15, White)

	if cv.Pixel(10, 10) != White || cv.Pixel(29, 10) != White ||
		cv.Pixel(10, 24) != White || cv.Pixel(29, 24) != White {
		t.Error("Rectangle corners should be on")
	}
	if cv.Pixel(15, 15) != Black {
		t.Error("Rectangle interior should not be filled by DrawRect")
	}
	if got := cv.Count(White); got != 2*20+2*13 {
		t.Errorf("Outline should have %d pixels, got %d", 2*20+2*13, got)
	}
}

func TestGFX_Circles(t *testing.T) {
	g, cv := newTestGFX(64, 64)

	g.DrawCircle(32, 32, 10, White)
	if cv.Pixel(42, 32) != White || cv.Pixel(22, 32) != White ||
		cv.Pixel(32, 42) != White || cv.Pixel(32, 22) != White {
		t.Error("Circle outline should touch the four axis points")
	}
	if cv.Pixel(32, 32) != Black {
		t.Error("Circle outline should not fill the center")
	}

	cv.Clear()
	g.FillCircle(32, 32, 10, White)
	if cv.Pixel(32, 32) != White || cv.Pixel(40, 32) != White || cv.Pixel(32, 42) != White {
		t.Error("Filled circle should cover its interior and axis points")
	}
	if cv.Pixel(43, 32) != Black || cv.Pixel(40, 40) != Black {
		t.Error("Filled circle should not extend past its radius")
	}
}

func TestGFX_CircleRadiusZero(t *testing.T) {
	g, cv := newTestGFX(16, 16)

	g.FillCircle(8, 8, 0, White)
	if cv.Count(White) != 1 || cv.Pixel(8, 8) != White {
		t.Error("FillCircle with radius 0 should set only the center")
	}

	cv.Clear()
	g.DrawCircle(8, 8, 0, White)
	if cv.Count(White) != 1 {
		t.Error("DrawCircle with radius 0 should set only the center")
	}

	cv.Clear()
	g.DrawCircle(8, 8, -1, White)
	g.FillCircle(8, 8, -3, White)
	if cv.Count(White) != 0 {
		t.Error("Negative radius should draw nothing")
	}
}

func TestGFX_CircleFarOffScreen(t *testing.T) {
	// The rightmost point is at x=-5; nothing may wrap onto the screen.
	g, cv := newTestGFX(16, 16)
	g.DrawCircle(-32768, 8, 32763, White)
	g.FillCircle(-32768, 8, 32763, White)
	g.DrawRoundRect(-32768, 0, 32763, 16, 32000, White)
	if n := cv.Count(White); n != 0 {
		t.Errorf("Expected no pixels on screen, got %d", n)
	}

	// Same through the SetPixel fallback.
	cv2 := NewCanvas(16, 16)
	g2 := New(pixelOnly{cv2})
	g2.DrawCircle(-32768, 8, 32763, White)
	g2.FillCircle(-32768, 8, 32763, White)
	if n := cv2.Count(White); n != 0 {
		t.Errorf("Expected no pixels on screen without fast fill, got %d", n)
	}
}

func TestGFX_Triangles(t *testing.T) {
	g, cv := newTestGFX(64, 64)

	g.DrawTriangle(10, 50, 32, 5, 54, 50, White)
	if cv.Pixel(10, 50) != White || cv.Pixel(32, 5) != White || cv.Pixel(54, 50) != White {
		t.Error("Triangle outline should include its vertices")
	}
	if cv.Pixel(32, 40) != Black {
		t.Error("Triangle outline should not fill the interior")
	}

	cv.Clear()
	g.FillTriangle(54, 50, 32, 5, 10, 50, White)
	if cv.Pixel(32, 40) != White || cv.Pixel(32, 5) != White {
		t.Error("Filled triangle should cover its interior")
	}
	if cv.Pixel(5, 5) != Black || cv.Pixel(60, 20) != Black {
		t.Error("Filled triangle should not cover the corners of the screen")
	}

	// Flat triangle collapses to a single span.
	cv.Clear()
	g.FillTriangle(5, 10, 20, 10, 12, 10, White)
	if got := cv.Count(White); got != 16 {
		t.Errorf("Flat triangle should draw a 16 pixel span, got %d", got)
	}
}

func TestGFX_RoundRects(t *testing.T) {
	g, cv := newTestGFX(64, 64)

	g.DrawRoundRect(10, 10, 40, 30, 5, White)
	if cv.Pixel(10, 10) != Black {
		t.Error("Round rect corner should be cut off")
	}
	if cv.Pixel(30, 10) != White || cv.Pixel(10, 25) != White {
		t.Error("Round rect edges should be drawn")
	}
	if cv.Pixel(30, 25) != Black {
		t.Error("Round rect outline should not fill the interior")
	}

	cv.Clear()
	g.FillRoundRect(10, 10, 40, 30, 5, White)
	if cv.Pixel(10, 10) != Black || cv.Pixel(49, 39) != Black {
		t.Error("Filled round rect corners should be cut off")
	}
	if cv.Pixel(30, 25) != White || cv.Pixel(10, 25) != White || cv.Pixel(49, 25) != White {
		t.Error("Filled round rect should cover its interior and sides")
	}

	// Oversized radius is clamped to a pill shape without panicking.
	cv.Clear()
	g.FillRoundRect(0, 0, 20, 10, 50, White)
	if cv.Pixel(10, 5) != White {
		t.Error("Clamped round rect should still be filled")
	}
}

func TestGFX_FillScreen(t *testing.T) {
	g, cv := newTestGFX(20, 10)

	g.FillScreen(Cyan)

	if cv.Count(Cyan) != 200 {
		t.Error("FillScreen should paint every pixel")
	}
}
