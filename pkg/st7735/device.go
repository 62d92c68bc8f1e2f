// Package st7735 drives an ST7735 TFT controller over a periph.io SPI port.
//
// The driver keeps a full RGB565 frame in memory. Drawing only touches that
// buffer; Display sends the whole frame to the panel in one address window.
// Dev satisfies tinygo.org/x/drivers.Displayer, so gfx.New can draw on it,
// and periph's display.Drawer.
package st7735

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"tinygo.org/x/drivers"

	"github.com/sagostin/st7735-gfxtest/pkg/gfx"
)

const (
	// DefaultWidth and DefaultHeight are the panel size of the common 1.8"
	// module in portrait orientation.
	DefaultWidth  = 128
	DefaultHeight = 160

	// DefaultFrequency is the SPI clock used when Opts.Frequency is zero.
	DefaultFrequency = 16 * physic.MegaHertz

	// defaultMaxTxSize is used when the SPI connection does not report
	// a transfer limit.
	defaultMaxTxSize = 4096
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
		fmt.Fprintf(os.Stderr, "[ST7735] "+format+"\n", args...)
	}
}

// sleep is replaced in tests to skip the controller delays.
var sleep = time.Sleep

// Rotation is the panel orientation in quarter turns clockwise.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// Opts configures a Dev. The zero value is a 128x160 panel at 16 MHz in
// portrait orientation.
type Opts struct {
	// Width and Height of the panel in its native portrait orientation.
	Width, Height int16
	// ColOffset and RowOffset shift the RAM window for panels that do not
	// start at controller address 0.
	ColOffset, RowOffset int16
	Rotation             Rotation
	// BGR sets the BGR filter bit for panels with swapped red and blue.
	BGR       bool
	Frequency physic.Frequency
}

// Dev is a handle to an ST7735 controller. Drawing into the frame buffer and
// sending it are serialized by one mutex, so a Dev may be drawn on from one
// goroutine while another calls Display.
type Dev struct {
	c conn.Conn
	// dc is low when sending a command, high when sending data.
	dc gpio.PinOut
	// rst is the reset pin, active low. May be nil.
	rst       gpio.PinOut
	maxTxSize int
	mu        sync.Mutex

	w, h      int16 // after rotation
	colOffset int16
	rowOffset int16
	buf       *gfx.Canvas
	inverted  bool
}

var (
	_ drivers.Displayer = (*Dev)(nil)
	_ display.Drawer    = (*Dev)(nil)
)

// New opens a handle to an ST7735 on the given SPI port and runs the
// power-up sequence. rst may be nil when the reset line is not wired; a
// software reset is always sent.
func New(p spi.Port, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Frequency == 0 {
		o.Frequency = DefaultFrequency
	}
	if o.Rotation > Rotation270 {
		return nil, fmt.Errorf("st7735: invalid rotation %d", o.Rotation)
	}
	if dc == nil {
		return nil, fmt.Errorf("st7735: dc pin is required")
	}

	c, err := p.Connect(o.Frequency, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7735: failed to connect to SPI port: %w", err)
	}

	// Get the maxTxSize from the conn if it implements the conn.Limits
	// interface, otherwise use a conservative default.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize <= 0 {
		maxTxSize = defaultMaxTxSize
	}

	w, h := o.Width, o.Height
	colOffset, rowOffset := o.ColOffset, o.RowOffset
	madctl := byte(0)
	switch o.Rotation {
	case Rotation0:
		madctl = madctlMX | madctlMY
	case Rotation90:
		madctl = madctlMY | madctlMV
		w, h = h, w
		colOffset, rowOffset = rowOffset, colOffset
	case Rotation180:
		madctl = 0
	case Rotation270:
		madctl = madctlMX | madctlMV
		w, h = h, w
		colOffset, rowOffset = rowOffset, colOffset
	}
	if o.BGR {
		madctl |= madctlBGR
	}

	d := &Dev{
		c:         c,
		dc:        dc,
		rst:       rst,
		maxTxSize: maxTxSize,
		w:         w,
		h:         h,
		colOffset: colOffset,
		rowOffset: rowOffset,
		buf:       gfx.NewCanvas(w, h),
	}
	debugf("Opening %dx%d panel at %s, rotation %d, max tx %d bytes", w, h, o.Frequency, o.Rotation, maxTxSize)

	if err := d.reset(); err != nil {
		return nil, err
	}
	for _, cmd := range initSequence(madctl) {
		if err := d.send(cmd); err != nil {
			return nil, fmt.Errorf("st7735: init command %#02x: %w", cmd.cmd, err)
		}
	}
	return d, nil
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("ST7735{%s, %dx%d}", d.c, d.w, d.h)
}

// Halt turns the display off. The frame buffer is kept.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	debugf("Halting")
	return d.send(command{cmd: cmdDispOff})
}

// Size returns the visible size after rotation.
func (d *Dev) Size() (x, y int16) {
	return d.w, d.h
}

// SetPixel writes a pixel to the frame buffer.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf.SetPixel(x, y, c)
}

// FillRectangle fills a rectangle in the frame buffer.
func (d *Dev) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.FillRectangle(x, y, width, height, c)
}

// Buffer returns the frame buffer that Display sends. Access through it is
// not locked; do not write to it while another goroutine draws or displays.
func (d *Dev) Buffer() *gfx.Canvas {
	return d.buf
}

// Display sends the frame buffer to the panel.
func (d *Dev) Display() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.setWindow(0, 0, d.w-1, d.h-1); err != nil {
		return err
	}
	data := d.buf.Bytes()
	debugf("Sending frame: %d bytes", len(data))
	if err := d.sendData(data); err != nil {
		return fmt.Errorf("st7735: failed to send frame: %w", err)
	}
	return nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return gfx.Model
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(d.w), int(d.h))
}

// Draw implements display.Drawer. It copies src into the frame buffer and
// sends the frame.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	d.mu.Lock()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			d.buf.Set565(int16(x), int16(y), gfx.FromRGBA(c))
		}
	}
	d.mu.Unlock()
	return d.Display()
}

// SetInverted enables or disables color inversion on the panel.
func (d *Dev) SetInverted(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cmd := byte(cmdInvOff)
	if on {
		cmd = cmdInvOn
	}
	if err := d.send(command{cmd: cmd}); err != nil {
		return err
	}
	d.inverted = on
	return nil
}

// Inverted reports whether color inversion is on.
func (d *Dev) Inverted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inverted
}

// Sleep puts the controller in or out of sleep mode.
func (d *Dev) Sleep(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if on {
		return d.send(command{cmd: cmdSleepIn, delay: 5 * time.Millisecond})
	}
	return d.send(command{cmd: cmdSleepOut, delay: 120 * time.Millisecond})
}

// setWindow selects the RAM area written by the next data transfer and
// starts the memory write.
func (d *Dev) setWindow(x0, y0, x1, y1 int16) error {
	col := make([]byte, 4)
	binary.BigEndian.PutUint16(col[0:], uint16(x0+d.colOffset))
	binary.BigEndian.PutUint16(col[2:], uint16(x1+d.colOffset))
	if err := d.send(command{cmd: cmdCASet, data: col}); err != nil {
		return err
	}

	row := make([]byte, 4)
	binary.BigEndian.PutUint16(row[0:], uint16(y0+d.rowOffset))
	binary.BigEndian.PutUint16(row[2:], uint16(y1+d.rowOffset))
	if err := d.send(command{cmd: cmdRASet, data: row}); err != nil {
		return err
	}

	return d.send(command{cmd: cmdRAMWrite})
}

func (d *Dev) send(c command) error {
	if err := d.sendCommand(c.cmd); err != nil {
		return err
	}
	if len(c.data) > 0 {
		if err := d.sendData(c.data); err != nil {
			return err
		}
	}
	if c.delay > 0 {
		sleep(c.delay)
	}
	return nil
}

func (d *Dev) sendCommand(c byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7735: failed to set dc: %w", err)
	}
	return d.c.Tx([]byte{c}, nil)
}

// sendData writes data in chunks no larger than the connection allows.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("st7735: failed to set dc: %w", err)
	}
	for len(data) != 0 {
		chunk := data
		if len(chunk) > d.maxTxSize {
			chunk = data[:d.maxTxSize]
		}
		if err := d.c.Tx(chunk, nil); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// reset pulses the reset line. It does nothing when rst is nil.
func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	for _, l := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := d.rst.Out(l); err != nil {
			return fmt.Errorf("st7735: failed to toggle reset: %w", err)
		}
		sleep(50 * time.Millisecond)
	}
	return nil
}
