package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"

	"github.com/sagostin/st7735-gfxtest/pkg/gfx"
	"github.com/sagostin/st7735-gfxtest/pkg/st7735"
)

// target is where the suite draws.
type target interface {
	fmt.Stringer
	// Displayer is the surface the tests draw on.
	Displayer() drivers.Displayer
	// Flush is called after each test, once the frame is complete.
	Flush(name string) error
	Close() error
}

// pngTarget draws into a canvas and saves a numbered PNG after each test.
type pngTarget struct {
	canvas *gfx.Canvas
	dir    string
	scale  int
	n      int
}

func newPNGTarget(w, h int16, dir string, scale int) (*pngTarget, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}
	if scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &pngTarget{canvas: gfx.NewCanvas(w, h), dir: dir, scale: scale}, nil
}

func (p *pngTarget) String() string {
	w, h := p.canvas.Size()
	return fmt.Sprintf("png %dx%d in %s", w, h, p.dir)
}

func (p *pngTarget) Displayer() drivers.Displayer {
	return p.canvas
}

func (p *pngTarget) Flush(name string) error {
	p.n++
	path := filepath.Join(p.dir, fmt.Sprintf("%02d-%s.png", p.n, name))
	if err := imaging.Save(p.snapshot(), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// snapshot returns the canvas enlarged by the scale factor. Nearest
// neighbour keeps every panel pixel a sharp square.
func (p *pngTarget) snapshot() image.Image {
	if p.scale == 1 {
		return imaging.Clone(p.canvas)
	}
	b := p.canvas.Bounds()
	return imaging.Resize(p.canvas, b.Dx()*p.scale, b.Dy()*p.scale, imaging.NearestNeighbor)
}

func (p *pngTarget) Close() error {
	return nil
}

// panelTarget drives a real ST7735 over periph.io.
type panelTarget struct {
	port spi.PortCloser
	dev  *st7735.Dev
}

func openPanel(portName, dcName, rstName string, opts *st7735.Opts) (*panelTarget, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph: %w", err)
	}

	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port: %w", err)
	}

	dc := gpioreg.ByName(dcName)
	if dc == nil {
		port.Close()
		return nil, fmt.Errorf("unknown dc pin: %s", dcName)
	}

	var rst gpio.PinOut
	if rstName != "" {
		p := gpioreg.ByName(rstName)
		if p == nil {
			port.Close()
			return nil, fmt.Errorf("unknown reset pin: %s", rstName)
		}
		rst = p
	}

	dev, err := st7735.New(port, dc, rst, opts)
	if err != nil {
		port.Close()
		return nil, err
	}
	return &panelTarget{port: port, dev: dev}, nil
}

func (p *panelTarget) String() string {
	return p.dev.String()
}

func (p *panelTarget) Displayer() drivers.Displayer {
	return p.dev
}

// Flush does nothing; the frame has already been sent by Display.
func (p *panelTarget) Flush(name string) error {
	return nil
}

func (p *panelTarget) Close() error {
	return p.port.Close()
}
