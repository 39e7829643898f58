// Package bus wires the emulated components into one machine: cartridge,
// MMU, CPU, PPU, interrupt controller, joypad and the sound register stub.
package bus

import (
	"godmg/internal/apu"
	"godmg/internal/cartridge"
	"godmg/internal/cpu"
	"godmg/internal/input"
	"godmg/internal/interrupt"
	"godmg/internal/memory"
	"godmg/internal/ppu"
	"godmg/internal/timer"
)

// Machine is the assembled Game Boy. One instance owns every component;
// the accessors below are the only surface frontends need.
type Machine struct {
	cart       *cartridge.Cartridge
	interrupts *interrupt.Controller
	joypad     *input.Joypad
	sound      *apu.APU
	mmu        *memory.MMU
	cpu        *cpu.CPU
	ppu        *ppu.PPU

	cycles uint64
}

// New assembles a machine around the cartridge. A nil divider selects the
// default randomized DIV source.
func New(cart *cartridge.Cartridge, divider timer.Divider) *Machine {
	if divider == nil {
		divider = timer.NewRandomDivider(0)
	}

	m := &Machine{
		cart:       cart,
		interrupts: interrupt.New(),
		joypad:     input.New(),
		sound:      apu.New(),
	}
	m.mmu = memory.New(cart.ROM(), m.interrupts, m.joypad, m.sound, divider)
	m.cpu = cpu.New(m.mmu, m.interrupts)
	m.ppu = ppu.New(m.mmu)

	m.ppu.SetVBlankCallback(func() {
		m.interrupts.Request(interrupt.VBlank)
	})

	return m
}

// Step runs one CPU step (an instruction or an interrupt dispatch) and
// advances the PPU and sound clock by the same number of T-cycles. The
// returned error is fatal; the machine must not be stepped again after one.
func (m *Machine) Step() (uint64, error) {
	cycles, err := m.cpu.Step()
	if err != nil {
		return 0, err
	}

	m.ppu.Step(cycles)
	m.sound.AddCycles(cycles)
	m.cycles += cycles

	return cycles, nil
}

// RunFrame steps the machine until the PPU completes a frame.
func (m *Machine) RunFrame() error {
	for {
		if _, err := m.Step(); err != nil {
			return err
		}
		if m.ppu.FrameReady() {
			return nil
		}
	}
}

// Reset restores the post-boot state without reloading the cartridge.
func (m *Machine) Reset() {
	m.interrupts.Reset()
	m.joypad.Reset()
	m.sound.Reset()
	m.mmu.Reset()
	m.cpu.Reset()
	m.ppu.Reset()
	m.cycles = 0
}

// FrameBuffer returns the PPU's rendered frame.
func (m *Machine) FrameBuffer() *[ppu.ScreenWidth * ppu.ScreenHeight]uint32 {
	return m.ppu.FrameBuffer()
}

// SetButtons replaces the whole joypad state in one call. Order: Right,
// Left, Up, Down, A, B, Select, Start.
func (m *Machine) SetButtons(buttons [8]bool) {
	m.joypad.SetButtons(buttons)
}

// Press presses the given buttons.
func (m *Machine) Press(mask input.Button) {
	m.joypad.Press(mask)
}

// Release releases the given buttons.
func (m *Machine) Release(mask input.Button) {
	m.joypad.Release(mask)
}

// SetPalette selects the PPU output palette.
func (m *Machine) SetPalette(palette ppu.Palette) {
	m.ppu.SetPalette(palette)
}

// Palette returns the active PPU output palette.
func (m *Machine) Palette() ppu.Palette {
	return m.ppu.Palette()
}

// Title returns the cartridge title from the header.
func (m *Machine) Title() string {
	return m.cart.Title()
}

// Cycles returns the total T-cycles executed since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// CPU exposes the processor for debugging and tests.
func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}

// MMU exposes the memory map for debugging and tests.
func (m *Machine) MMU() *memory.MMU {
	return m.mmu
}

// PPU exposes the pixel pipeline for debugging and tests.
func (m *Machine) PPU() *ppu.PPU {
	return m.ppu
}

// Interrupts exposes the interrupt controller for debugging and tests.
func (m *Machine) Interrupts() *interrupt.Controller {
	return m.interrupts
}
