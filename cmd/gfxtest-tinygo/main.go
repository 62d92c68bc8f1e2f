//go:build pybadge

// gfxtest-tinygo runs the graphics test suite on the built-in ST7735 of an
// Adafruit PyBadge, then blinks color inversion forever.
//
//	tinygo flash -target pybadge ./cmd/gfxtest-tinygo
package main

import (
	"context"
	"machine"
	"time"

	"tinygo.org/x/drivers/st7735"

	"github.com/sagostin/st7735-gfxtest/pkg/gfx"
	"github.com/sagostin/st7735-gfxtest/pkg/gfxtest"
)

func main() {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.SPI1_SCK_PIN,
		SDO:       machine.SPI1_SDO_PIN,
		SDI:       machine.SPI1_SDI_PIN,
		Frequency: 8000000,
	})

	display := st7735.New(machine.SPI1, machine.TFT_RST, machine.TFT_DC, machine.TFT_CS, machine.TFT_LITE)
	display.Configure(st7735.Config{})

	g := gfx.New(&display)
	r := gfxtest.NewRunner(time.Second)
	r.Done = func(name string) error {
		println("gfxtest:", name, "done")
		return g.Display()
	}

	if err := r.Run(context.Background(), g); err != nil {
		println("gfxtest:", err.Error())
	}

	for {
		display.InvertColors(true)
		time.Sleep(500 * time.Millisecond)
		display.InvertColors(false)
		time.Sleep(500 * time.Millisecond)
	}
}
