// Package memory implements the Game Boy memory map and bus dispatch.
package memory

// OpenBusValue is returned for reads from any address range not backed by an
// implemented region.
const OpenBusValue = 0xFF

// ROMSize is the fixed cartridge window: two 16 KB banks, no mapper.
const ROMSize = 0x8000

// InterruptInterface routes the IE ($FFFF) and IF ($FF0F) registers to the
// interrupt controller.
type InterruptInterface interface {
	ReadEnable() uint8
	WriteEnable(value uint8)
	ReadFlags() uint8
	WriteFlags(value uint8)
}

// JoypadInterface serves the P1 register ($FF00).
type JoypadInterface interface {
	Read() uint8
	Write(value uint8)
}

// APUInterface serves the sound register window ($FF10-$FF3F).
type APUInterface interface {
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, value uint8)
}

// DividerSource produces DIV ($FF04) read values. The timer block is not
// emulated; the source is injectable so tests can fix the sequence.
type DividerSource interface {
	Next() uint8
}

// MMU owns the 64 KB address space and routes every CPU access to the
// correct backing region or side-effecting register. ROM is immutable after
// construction; writes to it are dropped.
type MMU struct {
	rom  [ROMSize]uint8
	vram [0x2000]uint8
	eram [0x2000]uint8
	wram [0x2000]uint8
	oam  [0xA0]uint8
	io   [0x80]uint8
	hram [0x7F]uint8

	interrupts InterruptInterface
	joypad     JoypadInterface
	apu        APUInterface
	divider    DividerSource
}

// New creates an MMU with the ROM image copied in and all RAM regions zeroed.
// The rom slice must be exactly ROMSize bytes (validated at cartridge load).
func New(rom []uint8, ic InterruptInterface, pad JoypadInterface, snd APUInterface, div DividerSource) *MMU {
	m := &MMU{
		interrupts: ic,
		joypad:     pad,
		apu:        snd,
		divider:    div,
	}
	copy(m.rom[:], rom)
	m.applyPostBootRegisters()
	return m
}

// Reset zeroes all RAM regions and restores the documented post-boot I/O
// values. The ROM image is untouched.
func (m *MMU) Reset() {
	m.vram = [0x2000]uint8{}
	m.eram = [0x2000]uint8{}
	m.wram = [0x2000]uint8{}
	m.oam = [0xA0]uint8{}
	m.io = [0x80]uint8{}
	m.hram = [0x7F]uint8{}
	m.applyPostBootRegisters()
}

// applyPostBootRegisters seeds the I/O window with the values the boot ROM
// leaves behind.
func (m *MMU) applyPostBootRegisters() {
	m.io[0x40] = 0x91 // LCDC: LCD on, BG on, tile data at 0x8000
	m.io[0x47] = 0xFC // BGP
	m.io[0x48] = 0xFF // OBP0
	m.io[0x49] = 0xFF // OBP1
}

// Read returns the byte at the given address. Unbacked ranges read as the
// fixed open-bus value.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return m.rom[address]
	case address < 0xA000:
		return m.vram[address-0x8000]
	case address < 0xC000:
		return m.eram[address-0xA000]
	case address < 0xE000:
		return m.wram[address-0xC000]
	case address < 0xFE00:
		// Echo RAM mirrors C000-DDFF.
		return m.wram[address-0xE000]
	case address < 0xFEA0:
		return m.oam[address-0xFE00]
	case address < 0xFF00:
		return OpenBusValue
	case address == 0xFF00:
		return m.joypad.Read()
	case address == 0xFF04:
		return m.divider.Next()
	case address == 0xFF0F:
		return m.interrupts.ReadFlags()
	case address >= 0xFF10 && address <= 0xFF3F:
		return m.apu.ReadRegister(address)
	case address < 0xFF80:
		return m.io[address-0xFF00]
	case address < 0xFFFF:
		return m.hram[address-0xFF80]
	default: // 0xFFFF
		return m.interrupts.ReadEnable()
	}
}

// Write stores the byte at the given address, applying register side effects.
// ROM and unbacked ranges drop the write.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		// ROM, no mapper: dropped.
	case address < 0xA000:
		m.vram[address-0x8000] = value
	case address < 0xC000:
		m.eram[address-0xA000] = value
	case address < 0xE000:
		m.wram[address-0xC000] = value
	case address < 0xFE00:
		m.wram[address-0xE000] = value
	case address < 0xFEA0:
		m.oam[address-0xFE00] = value
	case address < 0xFF00:
		// Unusable region: dropped.
	case address == 0xFF00:
		m.joypad.Write(value)
	case address == 0xFF04:
		// DIV write resets the divider; the injectable source has no
		// position to reset, so the write is accepted without effect.
	case address == 0xFF0F:
		m.interrupts.WriteFlags(value)
	case address >= 0xFF10 && address <= 0xFF3F:
		m.apu.WriteRegister(address, value)
	case address == 0xFF46:
		m.io[0x46] = value
		m.runOAMDMA(value)
	case address < 0xFF80:
		m.io[address-0xFF00] = value
	case address < 0xFFFF:
		m.hram[address-0xFF80] = value
	default: // 0xFFFF
		m.interrupts.WriteEnable(value)
	}
}

// runOAMDMA copies 160 bytes from page<<8 into the sprite attribute table.
// The transfer is immediate; the CPU stall is folded into the instruction
// timing the program already pays for its HRAM wait loop.
func (m *MMU) runOAMDMA(page uint8) {
	source := uint16(page) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.oam[i] = m.Read(source + i)
	}
}
