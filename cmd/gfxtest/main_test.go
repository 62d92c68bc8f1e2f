package main

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	qt "github.com/frankban/quicktest"

	"github.com/sagostin/st7735-gfxtest/pkg/gfx"
	"github.com/sagostin/st7735-gfxtest/pkg/gfxtest"
)

func TestPNGTargetSavesNumberedSnapshots(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	p, err := newPNGTarget(128, 160, dir, 2)
	c.Assert(err, qt.IsNil)

	r := &gfxtest.Runner{Done: p.Flush}
	err = r.Run(context.Background(), gfx.New(p.Displayer()), "lines", "mediabuttons")
	c.Assert(err, qt.IsNil)

	entries, err := os.ReadDir(dir)
	c.Assert(err, qt.IsNil)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	c.Assert(names, qt.DeepEquals, []string{"01-lines.png", "02-mediabuttons.png"})

	img, err := imaging.Open(filepath.Join(dir, "02-mediabuttons.png"))
	c.Assert(err, qt.IsNil)
	c.Assert(img.Bounds().Dx(), qt.Equals, 256)
	c.Assert(img.Bounds().Dy(), qt.Equals, 320)

	// One panel pixel becomes a 2x2 block.
	want := gfx.Green.ToRGBA()
	for _, pt := range [][2]int{{100, 80}, {101, 80}, {100, 81}, {101, 81}} {
		r, g, b, _ := img.At(pt[0], pt[1]).RGBA()
		c.Check([]uint32{r >> 8, g >> 8, b >> 8}, qt.DeepEquals,
			[]uint32{uint32(want.R), uint32(want.G), uint32(want.B)})
	}
}

func TestPNGTargetRejectsBadOptions(t *testing.T) {
	c := qt.New(t)

	_, err := newPNGTarget(0, 160, c.TempDir(), 1)
	c.Assert(err, qt.ErrorMatches, `invalid canvas size 0x160`)

	_, err = newPNGTarget(128, 160, c.TempDir(), 0)
	c.Assert(err, qt.ErrorMatches, `scale must be at least 1, got 0`)
}

func TestWriteSummary(t *testing.T) {
	c := qt.New(t)

	cv := gfx.NewCanvas(128, 160)
	err := writeSummary(cv, []testCount{{"lines", 196}, {"rects", 21}})
	c.Assert(err, qt.IsNil)
	c.Assert(cv.Count(gfx.Black) < 128*160, qt.IsTrue, qt.Commentf("summary drew nothing"))
}

func TestWriteSummaryNeedsFill(t *testing.T) {
	c := qt.New(t)

	err := writeSummary(pixelsOnly{gfx.NewCanvas(8, 8)}, nil)
	c.Assert(err, qt.ErrorMatches, `summary needs a display with FillRectangle, .*`)
}

// pixelsOnly hides the canvas fast fill.
type pixelsOnly struct {
	cv *gfx.Canvas
}

func (p pixelsOnly) Size() (x, y int16) { return p.cv.Size() }

func (p pixelsOnly) SetPixel(x, y int16, c color.RGBA) { p.cv.SetPixel(x, y, c) }

func (p pixelsOnly) Display() error { return nil }
