package main

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// testCount is the number of draw calls one test issued.
type testCount struct {
	Name  string
	Draws int
}

// fillDisplayer is a Displayer with a rectangle fill, which the terminal
// uses to clear lines.
type fillDisplayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// softScroll hands a Displayer to the terminal. Neither the canvas nor the
// SPI panel support hardware scrolling, so SetScroll does nothing and the
// terminal is configured for software scroll.
type softScroll struct {
	fillDisplayer
}

func (softScroll) SetScroll(line int16) {}

// writeSummary prints one line per test with its draw call count using a
// tinyterm console on d.
func writeSummary(d drivers.Displayer, counts []testCount) error {
	fd, ok := d.(fillDisplayer)
	if !ok {
		return fmt.Errorf("summary needs a display with FillRectangle, got %T", d)
	}

	terminal := tinyterm.NewTerminal(softScroll{fd})
	terminal.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})

	total := 0
	fmt.Fprintf(terminal, "gfxtest: %d tests\n", len(counts))
	for _, c := range counts {
		fmt.Fprintf(terminal, "%-12s %5d\n", c.Name, c.Draws)
		total += c.Draws
	}
	fmt.Fprintf(terminal, "%-12s %5d\n", "total", total)
	return nil
}
