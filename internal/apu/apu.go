// Package apu implements the audio register file as a silent stub.
//
// The sound hardware is not emulated: programs read and write the NRxx
// registers and wave RAM freely, the master-enable bit in NR52 is tracked,
// and no samples are ever produced. This keeps the sound I/O window
// well-behaved for the target program without an audio backend.
package apu

// Register window served by the APU.
const (
	RegisterStart = 0xFF10
	RegisterEnd   = 0xFF3F // inclusive; includes wave RAM FF30-FF3F

	nr52 = 0xFF26
)

// APU holds the sound register file and the master enable state.
type APU struct {
	registers    [RegisterEnd - RegisterStart + 1]uint8
	masterEnable bool
	cycles       uint64
}

// New creates an APU stub with all registers cleared.
func New() *APU {
	return &APU{}
}

// Reset clears the register file and disables the master switch.
func (a *APU) Reset() {
	for i := range a.registers {
		a.registers[i] = 0
	}
	a.masterEnable = false
	a.cycles = 0
}

// WriteRegister accepts a write into the sound window. NR52 bit 7 toggles
// the master enable; everything else is stored verbatim.
func (a *APU) WriteRegister(address uint16, value uint8) {
	if address < RegisterStart || address > RegisterEnd {
		return
	}
	a.registers[address-RegisterStart] = value
	if address == nr52 {
		a.masterEnable = value&0x80 != 0
	}
}

// ReadRegister returns the stored value for a sound register.
func (a *APU) ReadRegister(address uint16) uint8 {
	if address < RegisterStart || address > RegisterEnd {
		return 0xFF
	}
	return a.registers[address-RegisterStart]
}

// AddCycles advances the APU clock. The stub only accumulates the count so
// the bus timing contract stays uniform across components.
func (a *APU) AddCycles(cycles uint64) {
	a.cycles += cycles
}

// MasterEnabled reports the NR52 master-enable state.
func (a *APU) MasterEnabled() bool {
	return a.masterEnable
}
