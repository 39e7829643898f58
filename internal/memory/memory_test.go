package memory

import "testing"

// mockInterrupts implements InterruptInterface and records register traffic.
type mockInterrupts struct {
	enable uint8
	flags  uint8
}

func (m *mockInterrupts) ReadEnable() uint8       { return m.enable }
func (m *mockInterrupts) WriteEnable(value uint8) { m.enable = value }
func (m *mockInterrupts) ReadFlags() uint8        { return m.flags | 0xE0 }
func (m *mockInterrupts) WriteFlags(value uint8)  { m.flags = value & 0x1F }

// mockJoypad implements JoypadInterface with a canned read value.
type mockJoypad struct {
	readValue uint8
	lastWrite uint8
	writes    int
}

func (m *mockJoypad) Read() uint8 { return m.readValue }
func (m *mockJoypad) Write(value uint8) {
	m.lastWrite = value
	m.writes++
}

// mockAPU implements APUInterface over a flat register map.
type mockAPU struct {
	registers map[uint16]uint8
}

func newMockAPU() *mockAPU {
	return &mockAPU{registers: make(map[uint16]uint8)}
}

func (m *mockAPU) ReadRegister(address uint16) uint8 { return m.registers[address] }
func (m *mockAPU) WriteRegister(address uint16, value uint8) {
	m.registers[address] = value
}

// fixedDivider implements DividerSource over a fixed sequence.
type fixedDivider struct {
	values []uint8
	index  int
}

func (d *fixedDivider) Next() uint8 {
	v := d.values[d.index%len(d.values)]
	d.index++
	return v
}

type testRig struct {
	mmu        *MMU
	interrupts *mockInterrupts
	joypad     *mockJoypad
	apu        *mockAPU
}

func newTestRig(rom []uint8) *testRig {
	if rom == nil {
		rom = make([]uint8, ROMSize)
	}
	rig := &testRig{
		interrupts: &mockInterrupts{},
		joypad:     &mockJoypad{readValue: 0xFF},
		apu:        newMockAPU(),
	}
	rig.mmu = New(rom, rig.interrupts, rig.joypad, rig.apu, &fixedDivider{values: []uint8{0xAB}})
	return rig
}

func TestROMIsReadOnly(t *testing.T) {
	rom := make([]uint8, ROMSize)
	rom[0x0100] = 0x42
	rom[0x7FFF] = 0x99
	rig := newTestRig(rom)

	if got := rig.mmu.Read(0x0100); got != 0x42 {
		t.Errorf("Read(0x0100) = %#02x, want 0x42", got)
	}

	rig.mmu.Write(0x0100, 0x00)
	rig.mmu.Write(0x7FFF, 0x00)

	if got := rig.mmu.Read(0x0100); got != 0x42 {
		t.Errorf("Read(0x0100) after write = %#02x, ROM changed", got)
	}
	if got := rig.mmu.Read(0x7FFF); got != 0x99 {
		t.Errorf("Read(0x7FFF) after write = %#02x, ROM changed", got)
	}
}

func TestRAMRegions(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
	}{
		{"VRAM_Start", 0x8000},
		{"VRAM_End", 0x9FFF},
		{"ERAM", 0xA123},
		{"WRAM", 0xC456},
		{"OAM", 0xFE40},
		{"HRAM", 0xFF85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := newTestRig(nil)
			rig.mmu.Write(tt.addr, 0x5A)
			if got := rig.mmu.Read(tt.addr); got != 0x5A {
				t.Errorf("Read(%#04x) = %#02x, want 0x5A", tt.addr, got)
			}
		})
	}
}

func TestEchoRAMMirrorsWRAM(t *testing.T) {
	rig := newTestRig(nil)

	rig.mmu.Write(0xC100, 0x77)
	if got := rig.mmu.Read(0xE100); got != 0x77 {
		t.Errorf("echo read = %#02x, want 0x77", got)
	}

	rig.mmu.Write(0xE200, 0x88)
	if got := rig.mmu.Read(0xC200); got != 0x88 {
		t.Errorf("WRAM read after echo write = %#02x, want 0x88", got)
	}
}

func TestOpenBusIsDeterministic(t *testing.T) {
	rig := newTestRig(nil)

	for i := 0; i < 3; i++ {
		if got := rig.mmu.Read(0xFEA0); got != OpenBusValue {
			t.Errorf("Read(0xFEA0) attempt %d = %#02x, want %#02x", i, got, OpenBusValue)
		}
		if got := rig.mmu.Read(0xFEFF); got != OpenBusValue {
			t.Errorf("Read(0xFEFF) attempt %d = %#02x, want %#02x", i, got, OpenBusValue)
		}
	}

	// Writes into the unusable region never change the read value.
	rig.mmu.Write(0xFEA0, 0x12)
	if got := rig.mmu.Read(0xFEA0); got != OpenBusValue {
		t.Errorf("Read(0xFEA0) after write = %#02x, want %#02x", got, OpenBusValue)
	}
}

func TestJoypadRegisterRouting(t *testing.T) {
	rig := newTestRig(nil)
	rig.joypad.readValue = 0xDE

	rig.mmu.Write(0xFF00, 0x20)
	if rig.joypad.writes != 1 || rig.joypad.lastWrite != 0x20 {
		t.Errorf("joypad write not forwarded: writes=%d last=%#02x", rig.joypad.writes, rig.joypad.lastWrite)
	}

	if got := rig.mmu.Read(0xFF00); got != 0xDE {
		t.Errorf("Read(0xFF00) = %#02x, want joypad value 0xDE", got)
	}
}

func TestDividerReadsFromInjectedSource(t *testing.T) {
	rig := &testRig{
		interrupts: &mockInterrupts{},
		joypad:     &mockJoypad{},
		apu:        newMockAPU(),
	}
	rig.mmu = New(make([]uint8, ROMSize), rig.interrupts, rig.joypad, rig.apu,
		&fixedDivider{values: []uint8{0x11, 0x22, 0x33}})

	want := []uint8{0x11, 0x22, 0x33, 0x11}
	for i, w := range want {
		if got := rig.mmu.Read(0xFF04); got != w {
			t.Errorf("DIV read %d = %#02x, want %#02x", i, got, w)
		}
	}

	// DIV writes are accepted without effect on the injected source.
	rig.mmu.Write(0xFF04, 0x55)
	if got := rig.mmu.Read(0xFF04); got != 0x22 {
		t.Errorf("DIV read after write = %#02x, want 0x22", got)
	}
}

func TestInterruptRegisterRouting(t *testing.T) {
	rig := newTestRig(nil)

	rig.mmu.Write(0xFFFF, 0x1F)
	if rig.interrupts.enable != 0x1F {
		t.Errorf("IE not forwarded: %#02x", rig.interrupts.enable)
	}
	if got := rig.mmu.Read(0xFFFF); got != 0x1F {
		t.Errorf("Read(0xFFFF) = %#02x, want 0x1F", got)
	}

	rig.mmu.Write(0xFF0F, 0x01)
	if rig.interrupts.flags != 0x01 {
		t.Errorf("IF not forwarded: %#02x", rig.interrupts.flags)
	}
	if got := rig.mmu.Read(0xFF0F); got != 0xE1 {
		t.Errorf("Read(0xFF0F) = %#02x, want 0xE1", got)
	}
}

func TestSoundWindowForwardedToAPU(t *testing.T) {
	rig := newTestRig(nil)

	rig.mmu.Write(0xFF26, 0x80)
	if rig.apu.registers[0xFF26] != 0x80 {
		t.Error("NR52 write not forwarded to APU")
	}

	rig.apu.registers[0xFF11] = 0x3F
	if got := rig.mmu.Read(0xFF11); got != 0x3F {
		t.Errorf("Read(0xFF11) = %#02x, want APU value 0x3F", got)
	}
}

func TestOAMDMACopiesPage(t *testing.T) {
	rig := newTestRig(nil)

	// Stage source data in WRAM page 0xC1.
	for i := uint16(0); i < 0xA0; i++ {
		rig.mmu.Write(0xC100+i, uint8(i)+1)
	}

	rig.mmu.Write(0xFF46, 0xC1)

	for i := uint16(0); i < 0xA0; i++ {
		if got := rig.mmu.Read(0xFE00 + i); got != uint8(i)+1 {
			t.Fatalf("OAM[%#02x] = %#02x, want %#02x", i, got, uint8(i)+1)
		}
	}
	if got := rig.mmu.Read(0xFF46); got != 0xC1 {
		t.Errorf("Read(0xFF46) = %#02x, want 0xC1", got)
	}
}

func TestPostBootRegisters(t *testing.T) {
	rig := newTestRig(nil)

	checks := map[uint16]uint8{
		0xFF40: 0x91, // LCDC
		0xFF47: 0xFC, // BGP
		0xFF48: 0xFF, // OBP0
		0xFF49: 0xFF, // OBP1
	}
	for addr, want := range checks {
		if got := rig.mmu.Read(addr); got != want {
			t.Errorf("post-boot Read(%#04x) = %#02x, want %#02x", addr, got, want)
		}
	}

	// Reset restores the layout after the program has scribbled on it.
	rig.mmu.Write(0xFF40, 0x00)
	rig.mmu.Write(0x8000, 0x12)
	rig.mmu.Reset()

	if got := rig.mmu.Read(0xFF40); got != 0x91 {
		t.Errorf("Read(0xFF40) after Reset = %#02x, want 0x91", got)
	}
	if got := rig.mmu.Read(0x8000); got != 0 {
		t.Errorf("VRAM not cleared by Reset: %#02x", got)
	}
}
