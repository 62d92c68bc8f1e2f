// gfxtest runs the ST7735 graphics test suite.
//
// Usage:
//
//	gfxtest [options] <command> [arguments]
//
// Commands:
//
//	list                 List the tests in run order
//	run [names...]       Run all tests, or only the named ones
//
// The png target draws into memory and saves one PNG per test. The st7735
// target drives a panel on a Linux SPI bus through periph.io.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sagostin/st7735-gfxtest/pkg/gfx"
	"github.com/sagostin/st7735-gfxtest/pkg/gfxtest"
	"github.com/sagostin/st7735-gfxtest/pkg/st7735"
)

var (
	targetName = flag.String("target", "png", "Output target: png or st7735")
	outDir     = flag.String("out", "out", "Directory for PNG snapshots (png target)")
	scale      = flag.Int("scale", 1, "Enlarge PNG snapshots by this factor")
	width      = flag.Int("width", st7735.DefaultWidth, "Panel width in portrait orientation")
	height     = flag.Int("height", st7735.DefaultHeight, "Panel height in portrait orientation")
	rotation   = flag.Int("rotation", 0, "Rotation in quarter turns (0-3)")
	spiPort    = flag.String("spi", "", "SPI port name, empty for the first one (st7735 target)")
	dcPin      = flag.String("dc", "GPIO25", "Data/command pin (st7735 target)")
	rstPin     = flag.String("rst", "GPIO24", "Reset pin, empty if not wired (st7735 target)")
	pause      = flag.Duration("pause", 0, "Pause between tests")
	summary    = flag.Bool("summary", false, "Finish with a page listing draw calls per test")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [arguments]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  list                 List the tests in run order")
		fmt.Fprintln(os.Stderr, "  run [names...]       Run all tests, or only the named ones")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	// Enable verbose mode for debugging
	if *verbose {
		gfxtest.SetVerbose(true)
		st7735.SetVerbose(true)
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)

	switch cmd {
	case "list":
		cmdList()

	case "run":
		if err := cmdRun(flag.Args()[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		flag.Usage()
		os.Exit(1)
	}
}

func cmdList() {
	for i, name := range gfxtest.Names() {
		fmt.Printf("%2d  %s\n", i+1, name)
	}
}

func cmdRun(names []string) error {
	if *rotation < 0 || *rotation > 3 {
		return fmt.Errorf("rotation must be 0-3, got %d", *rotation)
	}

	var (
		t   target
		err error
	)
	switch *targetName {
	case "png":
		w, h := int16(*width), int16(*height)
		if *rotation%2 == 1 {
			w, h = h, w
		}
		t, err = newPNGTarget(w, h, *outDir, *scale)
	case "st7735":
		t, err = openPanel(*spiPort, *dcPin, *rstPin, &st7735.Opts{
			Width:    int16(*width),
			Height:   int16(*height),
			Rotation: st7735.Rotation(*rotation),
		})
	default:
		return fmt.Errorf("unknown target: %s (use png or st7735)", *targetName)
	}
	if err != nil {
		return err
	}
	defer t.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := gfx.New(t.Displayer())
	rec := gfx.NewRecorder(g)

	var counts []testCount
	r := gfxtest.NewRunner(*pause)
	r.Done = func(name string) error {
		counts = append(counts, testCount{Name: name, Draws: rec.Draws()})
		rec.Reset()
		if err := g.Display(); err != nil {
			return err
		}
		return t.Flush(name)
	}

	start := time.Now()
	if err := r.Run(ctx, rec, names...); err != nil {
		return err
	}
	fmt.Printf("Ran %d tests in %v on %s\n", len(counts), time.Since(start).Round(time.Millisecond), t)

	if *summary {
		g.FillScreen(gfx.Black)
		if err := writeSummary(t.Displayer(), counts); err != nil {
			return err
		}
		if err := g.Display(); err != nil {
			return err
		}
		return t.Flush("summary")
	}
	return nil
}
