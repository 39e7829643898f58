// Package app provides emulator integration for the main application.
package app

import (
	"fmt"
	"time"

	"godmg/internal/bus"
	"godmg/internal/graphics"
	"godmg/internal/ppu"
)

// FrameDuration is the wall-clock length of one hardware frame:
// 70224 T-cycles at 4194304 Hz.
const FrameDuration = 16742706 * time.Nanosecond

// Emulator manages the emulation loop and timing
type Emulator struct {
	machine *bus.Machine
	config  *Config

	// Post-processed copy of the PPU frame, ready for presentation
	frameBuffer [graphics.FrameWidth * graphics.FrameHeight]uint32
	processor   *graphics.VideoProcessor

	// Pacing for loops that are not driven by a vsynced window
	nextFrameDeadline time.Time

	// Performance monitoring
	actualFrameTime  time.Duration
	emulationTime    time.Duration
	averageFrameTime time.Duration
	frameCount       uint64

	isRunning bool
}

// NewEmulator creates an emulator around an assembled machine
func NewEmulator(machine *bus.Machine, config *Config) *Emulator {
	e := &Emulator{
		machine: machine,
		config:  config,
		processor: graphics.NewVideoProcessor(
			config.Video.Brightness,
			config.Video.Contrast,
			config.Video.Saturation,
		),
	}

	e.Reset()
	return e
}

// Reset clears timing state and the presentation buffer
func (e *Emulator) Reset() {
	e.frameCount = 0
	e.actualFrameTime = 0
	e.emulationTime = 0
	e.averageFrameTime = 0
	e.nextFrameDeadline = time.Now().Add(FrameDuration)

	for i := range e.frameBuffer {
		e.frameBuffer[i] = 0
	}
}

// Start starts the emulator
func (e *Emulator) Start() {
	e.isRunning = true
	e.nextFrameDeadline = time.Now().Add(FrameDuration)
}

// Stop stops the emulator
func (e *Emulator) Stop() {
	e.isRunning = false
}

// IsRunning returns whether the emulator is running
func (e *Emulator) IsRunning() bool {
	return e.isRunning
}

// Update runs exactly one frame of emulation and refreshes the
// presentation buffer. An error from the machine is fatal.
func (e *Emulator) Update() error {
	if !e.isRunning {
		return nil
	}

	frameStart := time.Now()

	if err := e.machine.RunFrame(); err != nil {
		e.isRunning = false
		return fmt.Errorf("frame execution error: %w", err)
	}

	e.emulationTime = time.Since(frameStart)
	e.frameCount++

	src := e.machine.FrameBuffer()
	processed := e.processor.ProcessFrame(src[:])
	copy(e.frameBuffer[:], processed)

	e.actualFrameTime = time.Since(frameStart)
	e.updateAverageFrameTime()

	return nil
}

// WaitNextFrame sleeps until the next frame deadline. When the loop has
// fallen more than one frame behind, the deadline resynchronizes to now
// instead of trying to catch up with a burst.
func (e *Emulator) WaitNextFrame() {
	now := time.Now()
	if d := e.nextFrameDeadline.Sub(now); d > 0 {
		time.Sleep(d)
	}

	e.nextFrameDeadline = e.nextFrameDeadline.Add(FrameDuration)
	if now.After(e.nextFrameDeadline.Add(FrameDuration)) {
		e.nextFrameDeadline = now.Add(FrameDuration)
	}
}

func (e *Emulator) updateAverageFrameTime() {
	if e.averageFrameTime == 0 {
		e.averageFrameTime = e.actualFrameTime
		return
	}
	e.averageFrameTime = time.Duration(
		float64(e.averageFrameTime)*0.95 + float64(e.actualFrameTime)*0.05,
	)
}

// FrameBuffer returns the post-processed presentation buffer
func (e *Emulator) FrameBuffer() *[graphics.FrameWidth * graphics.FrameHeight]uint32 {
	return &e.frameBuffer
}

// FrameCount returns the frames emulated since the last reset
func (e *Emulator) FrameCount() uint64 {
	return e.frameCount
}

// CycleCount returns the machine's total executed T-cycles
func (e *Emulator) CycleCount() uint64 {
	return e.machine.Cycles()
}

// EmulationTime returns the time spent emulating the last frame
func (e *Emulator) EmulationTime() time.Duration {
	return e.emulationTime
}

// AverageFrameTime returns a smoothed frame time
func (e *Emulator) AverageFrameTime() time.Duration {
	return e.averageFrameTime
}

// GetFPS returns the effective frame rate from the smoothed frame time
func (e *Emulator) GetFPS() float64 {
	if e.averageFrameTime == 0 {
		return 0
	}
	return float64(time.Second) / float64(e.averageFrameTime)
}

// TogglePalette switches the PPU between the color and green palettes and
// returns the name of the palette now active.
func (e *Emulator) TogglePalette() string {
	if e.machine.Palette() == ppu.GreenPalette {
		e.machine.SetPalette(ppu.ColorPalette)
		return "color"
	}
	e.machine.SetPalette(ppu.GreenPalette)
	return "green"
}

// Machine exposes the underlying machine
func (e *Emulator) Machine() *bus.Machine {
	return e.machine
}
