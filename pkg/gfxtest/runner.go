package gfxtest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sagostin/st7735-gfxtest/pkg/gfx"
)

// Verbose enables debug output when set to true
var Verbose = false

// SetVerbose enables or disables verbose debug output globally
func SetVerbose(v bool) {
	Verbose = v
}

// debugf prints debug output if verbose mode is enabled
func debugf(format string, args ...interface{}) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "[GFXTEST] "+format+"\n", args...)
	}
}

// ErrUnknownTest is returned by Runner.Run for a name not in Suite.
var ErrUnknownTest = errors.New("unknown test")

// Runner runs tests with pauses suited to watching a real screen.
// The zero value runs everything back to back with an uptime of zero.
type Runner struct {
	// Sleep is called for the pauses inside PrintTest and MediaButtons.
	// Nil skips them.
	Sleep func(time.Duration)

	// Uptime reports how long the program has been running, shown by
	// PrintTest. Nil reports zero.
	Uptime func() time.Duration

	// Pause is the delay between tests in Run.
	Pause time.Duration

	// Done is called after each test in Run, typically to flush the
	// surface or save a snapshot. A non-nil error stops the run.
	Done func(name string) error
}

var defaultRunner = &Runner{}

// NewRunner returns a Runner that really sleeps and reports the time since
// it was created, like the Arduino sketch.
func NewRunner(pause time.Duration) *Runner {
	start := time.Now()
	return &Runner{
		Sleep:  time.Sleep,
		Uptime: func() time.Duration { return time.Since(start) },
		Pause:  pause,
	}
}

func (r *Runner) sleep(d time.Duration) {
	if r.Sleep != nil {
		r.Sleep(d)
	}
}

func (r *Runner) uptime() time.Duration {
	if r.Uptime == nil {
		return 0
	}
	return r.Uptime()
}

// PrintTest draws two pages of text. The first shows "Hello World!" at
// sizes 1 to 3 and a number at size 4. The second prints p with six
// decimals, a number in hex and the uptime in whole seconds.
func (r *Runner) PrintTest(s gfx.Surface, p float64) {
	s.SetTextWrap(false)
	s.FillScreen(gfx.Black)
	s.SetCursor(0, 30)
	s.SetTextColor(gfx.Red)
	s.SetTextSize(1)
	s.Println("Hello World!")
	s.SetTextColor(gfx.Yellow)
	s.SetTextSize(2)
	s.Println("Hello World!")
	s.SetTextColor(gfx.Green)
	s.SetTextSize(3)
	s.Println("Hello World!")
	s.SetTextColor(gfx.Blue)
	s.SetTextSize(4)
	s.Print(FormatFloat(1234.567, 2))
	r.sleep(1500 * time.Millisecond)

	s.SetCursor(0, 0)
	s.FillScreen(gfx.Black)
	s.SetTextColor(gfx.White)
	s.SetTextSize(0)
	s.Println("Hello World!")
	s.SetTextSize(1)
	s.SetTextColor(gfx.Green)
	s.Print(FormatFloat(p, 6))
	s.Println(" Want pi?")
	s.Println(" ")
	s.Print(strings.ToUpper(strconv.FormatInt(8675309, 16)))
	s.Println(" Print HEX!")
	s.Println(" ")
	s.SetTextColor(gfx.White)
	s.Println("Sketch has been")
	s.Println("running for: ")
	s.SetTextColor(gfx.Magenta)
	s.Print(strconv.FormatInt(int64(r.uptime()/time.Second), 10))
	s.SetTextColor(gfx.White)
	s.Print(" seconds.")
}

// MediaButtons draws a play button and a pause button, then recolors them.
// It fills the screen first, so repeated calls give identical output.
func (r *Runner) MediaButtons(s gfx.Surface) {
	// play
	s.FillScreen(gfx.Black)
	s.FillRoundRect(25, 10, 78, 60, 8, gfx.White)
	s.FillTriangle(42, 20, 42, 60, 90, 40, gfx.Red)
	r.sleep(500 * time.Millisecond)
	// pause
	s.FillRoundRect(25, 90, 78, 60, 8, gfx.White)
	s.FillRoundRect(39, 98, 20, 45, 5, gfx.Green)
	s.FillRoundRect(69, 98, 20, 45, 5, gfx.Green)
	r.sleep(500 * time.Millisecond)
	// play color
	s.FillTriangle(42, 20, 42, 60, 90, 40, gfx.Blue)
	r.sleep(50 * time.Millisecond)
	// pause color
	s.FillRoundRect(39, 98, 20, 45, 5, gfx.Red)
	s.FillRoundRect(69, 98, 20, 45, 5, gfx.Red)
	// play color
	s.FillTriangle(42, 20, 42, 60, 90, 40, gfx.Green)
}

// FormatFloat formats v with the given number of decimals the way the
// Arduino Print class does: "nan", "inf" and "ovf" stand in for values it
// cannot print, so the result is never longer than 11 digits plus sign,
// point and decimals.
func FormatFloat(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 0):
		return "inf"
	case v > 4294967040.0 || v < -4294967040.0:
		return "ovf"
	}
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// Test is one named entry of the suite.
type Test struct {
	Name string
	Run  func(r *Runner, s gfx.Surface)
}

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Curabitur adipiscing ante sed nibh tincidunt feugiat. Maecenas enim massa, " +
	"fringilla sed malesuada et, malesuada sit amet turpis. Sed porttitor neque ut " +
	"ante pretium vitae malesuada nunc bibendum. Nullam aliquet ultrices massa eu " +
	"hendrerit. Ut sed nisi lorem. In vestibulum purus a tortor imperdiet posuere. "

// Suite lists the tests in the order of the Adafruit graphicstest sketch.
var Suite = []Test{
	{"text", func(r *Runner, s gfx.Surface) {
		s.FillScreen(gfx.Black)
		DrawText(s, lorem, gfx.White)
	}},
	{"print", func(r *Runner, s gfx.Surface) {
		r.PrintTest(s, DefaultPi)
	}},
	{"pixel", func(r *Runner, s gfx.Surface) {
		w, h := s.Size()
		s.DrawPixel(w/2, h/2, gfx.Green)
	}},
	{"lines", func(r *Runner, s gfx.Surface) {
		Lines(s, gfx.Yellow)
	}},
	{"fastlines", func(r *Runner, s gfx.Surface) {
		FastLines(s, gfx.Red, gfx.Blue)
	}},
	{"rects", func(r *Runner, s gfx.Surface) {
		DrawRects(s, gfx.Green)
	}},
	{"fillrects", func(r *Runner, s gfx.Surface) {
		FillRects(s, gfx.Yellow, gfx.Magenta)
	}},
	{"circles", func(r *Runner, s gfx.Surface) {
		s.FillScreen(gfx.Black)
		FillCircles(s, 10, gfx.Blue)
		DrawCircles(s, 10, gfx.White)
	}},
	{"roundrects", func(r *Runner, s gfx.Surface) {
		RoundRects(s)
	}},
	{"triangles", func(r *Runner, s gfx.Surface) {
		Triangles(s)
	}},
	{"mediabuttons", func(r *Runner, s gfx.Surface) {
		r.MediaButtons(s)
	}},
}

// Names returns the names of the tests in Suite, in order.
func Names() []string {
	names := make([]string, len(Suite))
	for i, t := range Suite {
		names[i] = t.Name
	}
	return names
}

func lookup(name string) (Test, bool) {
	for _, t := range Suite {
		if t.Name == name {
			return t, true
		}
	}
	return Test{}, false
}

// Run runs the named tests in the given order, or the whole Suite when no
// names are given. Unknown names are rejected before anything is drawn.
// The context is checked between tests only.
func (r *Runner) Run(ctx context.Context, s gfx.Surface, names ...string) error {
	tests := Suite
	if len(names) > 0 {
		tests = make([]Test, 0, len(names))
		for _, name := range names {
			t, ok := lookup(name)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownTest, name)
			}
			tests = append(tests, t)
		}
	}

	for i, t := range tests {
		if err := ctx.Err(); err != nil {
			return err
		}
		debugf("Running %s (%d/%d)", t.Name, i+1, len(tests))
		start := time.Now()
		t.Run(r, s)
		debugf("Finished %s in %v", t.Name, time.Since(start))

		if r.Done != nil {
			if err := r.Done(t.Name); err != nil {
				return fmt.Errorf("after %s: %w", t.Name, err)
			}
		}

		if i < len(tests)-1 && r.Pause > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.Pause):
			}
		}
	}
	return nil
}
