package st7735

import "time"

// Command bytes for the ST7735 controller.
const (
	cmdNOP      = 0x00
	cmdSWReset  = 0x01 // Software reset
	cmdSleepIn  = 0x10
	cmdSleepOut = 0x11
	cmdNormalOn = 0x13 // Normal display mode on
	cmdInvOff   = 0x20 // Display inversion off
	cmdInvOn    = 0x21 // Display inversion on
	cmdDispOff  = 0x28
	cmdDispOn   = 0x29
	cmdCASet    = 0x2A // Column address set
	cmdRASet    = 0x2B // Row address set
	cmdRAMWrite = 0x2C
	cmdMADCtl   = 0x36 // Memory data access control
	cmdColMod   = 0x3A // Interface pixel format

	// Frame rate control
	cmdFrameCtrl1 = 0xB1 // Normal mode
	cmdFrameCtrl2 = 0xB2 // Idle mode
	cmdFrameCtrl3 = 0xB3 // Partial mode
	cmdInvCtrl    = 0xB4 // Display inversion control

	// Power control
	cmdPowerCtrl1 = 0xC0
	cmdPowerCtrl2 = 0xC1
	cmdPowerCtrl3 = 0xC2
	cmdPowerCtrl4 = 0xC3
	cmdPowerCtrl5 = 0xC4
	cmdVMCtrl1    = 0xC5 // VCOM voltage

	// Gamma correction
	cmdGammaPos = 0xE0
	cmdGammaNeg = 0xE1
)

// MADCTL bits.
const (
	madctlMY  = 0x80 // Row address order
	madctlMX  = 0x40 // Column address order
	madctlMV  = 0x20 // Row/column exchange
	madctlBGR = 0x08
)

// colorMode16 selects 16 bits per pixel (RGB565) in COLMOD.
const colorMode16 = 0x05

// command is one controller instruction with its parameters and the time to
// wait after sending it.
type command struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// initSequence returns the power-up commands for a 1.8" ST7735R panel.
// The MADCTL value depends on the rotation and is passed in.
func initSequence(madctl byte) []command {
	return []command{
		{cmd: cmdSWReset, delay: 150 * time.Millisecond},
		{cmd: cmdSleepOut, delay: 500 * time.Millisecond},
		{cmd: cmdFrameCtrl1, data: []byte{0x01, 0x2C, 0x2D}},
		{cmd: cmdFrameCtrl2, data: []byte{0x01, 0x2C, 0x2D}},
		{cmd: cmdFrameCtrl3, data: []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}},
		{cmd: cmdInvCtrl, data: []byte{0x07}},
		{cmd: cmdPowerCtrl1, data: []byte{0xA2, 0x02, 0x84}},
		{cmd: cmdPowerCtrl2, data: []byte{0xC5}},
		{cmd: cmdPowerCtrl3, data: []byte{0x0A, 0x00}},
		{cmd: cmdPowerCtrl4, data: []byte{0x8A, 0x2A}},
		{cmd: cmdPowerCtrl5, data: []byte{0x8A, 0xEE}},
		{cmd: cmdVMCtrl1, data: []byte{0x0E}},
		{cmd: cmdInvOff},
		{cmd: cmdMADCtl, data: []byte{madctl}},
		{cmd: cmdColMod, data: []byte{colorMode16}},
		{cmd: cmdGammaPos, data: []byte{
			0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D,
			0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10,
		}},
		{cmd: cmdGammaNeg, data: []byte{
			0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D,
			0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10,
		}},
		{cmd: cmdNormalOn, delay: 10 * time.Millisecond},
		{cmd: cmdDispOn, delay: 100 * time.Millisecond},
	}
}
