// Package cpu implements the Sharp LR35902 core for the Game Boy.
//
// The instruction set coverage is intentionally partial: only the opcodes the
// target title executes are present in the decode tables. Fetching anything
// else is a fatal condition reported with the opcode value and the program
// counter; it is a scope boundary, not a recoverable error.
package cpu

import (
	"fmt"

	"godmg/internal/interrupt"
)

// Flag register bit masks. Only the high nibble of F is meaningful; the low
// nibble is always zero after any flag-affecting operation.
const (
	flagZ = 0x80 // zero
	flagN = 0x40 // subtract
	flagH = 0x20 // half-carry
	flagC = 0x10 // carry
)

// interruptServiceCycles is the fixed T-cycle cost of an interrupt dispatch.
const interruptServiceCycles = 20

// Instruction describes one table entry: mnemonic, encoded length, base
// T-cycle cost, and the effect. Execute returns any extra cycles consumed by
// a taken branch. Coverage gaps are explicit: a nil table slot is an
// unimplemented opcode.
type Instruction struct {
	Name   string
	Opcode uint8
	Bytes  uint8
	Cycles uint8
	Execute func(*CPU) uint8
}

// MemoryInterface is the CPU's view of the bus.
type MemoryInterface interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// InterruptController is the CPU's view of the interrupt controller. The
// master enable lives in the controller; EI/DI/RETI and the dispatch path
// drive it through this interface.
type InterruptController interface {
	Pending() (interrupt.Source, bool)
	Acknowledge(src interrupt.Source)
	SetMaster(enabled bool)
	Master() bool
}

// OpcodeError reports a fetch of an opcode outside the implemented set.
type OpcodeError struct {
	Opcode   uint8
	PC       uint16
	Prefixed bool
}

func (e *OpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unimplemented CB-prefixed opcode %#02x at PC %#04x", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented opcode %#02x at PC %#04x", e.Opcode, e.PC)
}

// CPU holds the LR35902 register file and the decode tables.
type CPU struct {
	// 8-bit registers, pairable as AF, BC, DE, HL.
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	SP uint16
	PC uint16

	memory     MemoryInterface
	interrupts InterruptController

	// EI raises the master enable at the end of the current step.
	eiPending bool

	instructions   [256]*Instruction
	cbInstructions [256]*Instruction
}

// New creates a CPU in the post-boot state.
func New(memory MemoryInterface, ic InterruptController) *CPU {
	cpu := &CPU{
		memory:     memory,
		interrupts: ic,
	}
	cpu.initInstructions()
	cpu.initCBInstructions()
	cpu.Reset()
	return cpu
}

// Reset restores the documented post-boot register state.
func (c *CPU) Reset() {
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.A = 0x01
	c.F = 0xB0
	c.B = 0x00
	c.C = 0x13
	c.D = 0x00
	c.E = 0xD8
	c.H = 0x01
	c.L = 0x4D
	c.eiPending = false
}

// Step services a pending interrupt or executes one instruction, returning
// the T-cycles consumed. Only the VBlank source is ever dispatched; the
// other sources stay flagged until the program clears them itself.
func (c *CPU) Step() (uint64, error) {
	if src, ok := c.interrupts.Pending(); ok && src == interrupt.VBlank {
		return c.service(src), nil
	}

	fetchPC := c.PC
	opcode := c.memory.Read(fetchPC)
	c.PC++

	var inst *Instruction
	if opcode == 0xCB {
		cbOpcode := c.memory.Read(c.PC)
		c.PC++
		inst = c.cbInstructions[cbOpcode]
		if inst == nil {
			return 0, &OpcodeError{Opcode: cbOpcode, PC: fetchPC, Prefixed: true}
		}
	} else {
		inst = c.instructions[opcode]
		if inst == nil {
			return 0, &OpcodeError{Opcode: opcode, PC: fetchPC}
		}
	}

	extra := inst.Execute(c)
	cycles := uint64(inst.Cycles + extra)

	if c.eiPending {
		c.interrupts.SetMaster(true)
		c.eiPending = false
	}

	return cycles, nil
}

// service dispatches an interrupt: acknowledge (clears the flag and the
// master enable), push PC high byte first, jump to the fixed vector.
func (c *CPU) service(src interrupt.Source) uint64 {
	c.interrupts.Acknowledge(src)
	c.push(c.PC)
	c.PC = src.Vector()
	return interruptServiceCycles
}

// HasOpcode reports whether the opcode is in the decode table. Exposes
// coverage for tests and diagnostics.
func (c *CPU) HasOpcode(opcode uint8) bool {
	return c.instructions[opcode] != nil
}

// HasCBOpcode reports whether the CB-prefixed opcode is in the decode table.
func (c *CPU) HasCBOpcode(opcode uint8) bool {
	return c.cbInstructions[opcode] != nil
}

// ---- immediate fetch ----------------------------------------------------

func (c *CPU) fetchByte() uint8 {
	v := c.memory.Read(c.PC)
	c.PC++
	return v
}

// fetchWord reads a little-endian immediate: low byte first.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetchByte())
	hi := uint16(c.fetchByte())
	return hi<<8 | lo
}

// ---- register pairs -----------------------------------------------------

// AF returns the A and F registers as a 16-bit pair.
func (c *CPU) AF() uint16 { return uint16(c.A)<<8 | uint16(c.F) }

// SetAF sets the AF pair. The low nibble of F is forced to zero.
func (c *CPU) SetAF(v uint16) {
	c.A = uint8(v >> 8)
	c.F = uint8(v) & 0xF0
}

// BC returns the B and C registers as a 16-bit pair.
func (c *CPU) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }

// SetBC sets the BC pair.
func (c *CPU) SetBC(v uint16) {
	c.B = uint8(v >> 8)
	c.C = uint8(v)
}

// DE returns the D and E registers as a 16-bit pair.
func (c *CPU) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }

// SetDE sets the DE pair.
func (c *CPU) SetDE(v uint16) {
	c.D = uint8(v >> 8)
	c.E = uint8(v)
}

// HL returns the H and L registers as a 16-bit pair.
func (c *CPU) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

// SetHL sets the HL pair.
func (c *CPU) SetHL(v uint16) {
	c.H = uint8(v >> 8)
	c.L = uint8(v)
}

// ---- flags --------------------------------------------------------------

func (c *CPU) setZ(v bool) { c.setFlag(flagZ, v) }
func (c *CPU) setN(v bool) { c.setFlag(flagN, v) }
func (c *CPU) setH(v bool) { c.setFlag(flagH, v) }
func (c *CPU) setC(v bool) { c.setFlag(flagC, v) }

func (c *CPU) setFlag(mask uint8, v bool) {
	if v {
		c.F |= mask
	} else {
		c.F &^= mask
	}
}

func (c *CPU) flagZ() bool { return c.F&flagZ != 0 }
func (c *CPU) flagN() bool { return c.F&flagN != 0 }
func (c *CPU) flagH() bool { return c.F&flagH != 0 }
func (c *CPU) flagC() bool { return c.F&flagC != 0 }

// ---- stack --------------------------------------------------------------

// push stores a word on the stack, high byte at the higher address.
func (c *CPU) push(v uint16) {
	c.SP -= 2
	c.memory.Write(c.SP, uint8(v))
	c.memory.Write(c.SP+1, uint8(v>>8))
}

func (c *CPU) pop() uint16 {
	lo := uint16(c.memory.Read(c.SP))
	hi := uint16(c.memory.Read(c.SP + 1))
	c.SP += 2
	return hi<<8 | lo
}

// ---- arithmetic helpers -------------------------------------------------

// add8 adds b (plus carry-in when withCarry and C is set) to a, updating
// Z, N, H and C per the byte/nibble overflow rules.
func (c *CPU) add8(a, b uint8, withCarry bool) uint8 {
	var carry uint8
	if withCarry && c.flagC() {
		carry = 1
	}
	result := a + b + carry
	c.setZ(result == 0)
	c.setN(false)
	c.setH((a&0x0F)+(b&0x0F)+carry > 0x0F)
	c.setC(uint16(a)+uint16(b)+uint16(carry) > 0xFF)
	return result
}

// sub8 subtracts b (plus borrow-in when withCarry and C is set) from a,
// updating Z, N, H and C per the borrow rules.
func (c *CPU) sub8(a, b uint8, withCarry bool) uint8 {
	var carry uint8
	if withCarry && c.flagC() {
		carry = 1
	}
	result := a - b - carry
	c.setZ(result == 0)
	c.setN(true)
	c.setH(a&0x0F < (b&0x0F)+carry)
	c.setC(uint16(a) < uint16(b)+uint16(carry))
	return result
}

// addHL adds v to HL. Z is preserved; N cleared; H/C per 12-bit/16-bit carry.
func (c *CPU) addHL(v uint16) {
	hl := c.HL()
	c.setN(false)
	c.setH((hl&0x0FFF)+(v&0x0FFF) > 0x0FFF)
	c.setC(hl > 0xFFFF-v)
	c.SetHL(hl + v)
}

// incReg increments an 8-bit register. Carry is preserved.
func (c *CPU) incReg(v uint8) uint8 {
	result := v + 1
	c.setZ(result == 0)
	c.setN(false)
	c.setH(v&0x0F == 0x0F)
	return result
}

// decReg decrements an 8-bit register. Carry is preserved.
func (c *CPU) decReg(v uint8) uint8 {
	result := v - 1
	c.setZ(result == 0)
	c.setN(true)
	c.setH(result&0x0F == 0x0F)
	return result
}

// and performs A &= v: Z per result, H set, N and C cleared.
func (c *CPU) and(v uint8) {
	c.A &= v
	c.setZ(c.A == 0)
	c.setN(false)
	c.setH(true)
	c.setC(false)
}

// or performs A |= v: Z per result, N, H and C cleared.
func (c *CPU) or(v uint8) {
	c.A |= v
	c.setZ(c.A == 0)
	c.setN(false)
	c.setH(false)
	c.setC(false)
}

// xor performs A ^= v: Z per result, N, H and C cleared.
func (c *CPU) xor(v uint8) {
	c.A ^= v
	c.setZ(c.A == 0)
	c.setN(false)
	c.setH(false)
	c.setC(false)
}

// compare sets the flags of A-v without storing the result.
func (c *CPU) compare(v uint8) {
	c.setZ(c.A == v)
	c.setN(true)
	c.setH(c.A&0x0F < v&0x0F)
	c.setC(c.A < v)
}

// jumpRelative applies a signed 8-bit displacement to PC.
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// bit tests bit n of v: Z set when clear, N cleared, H set, C preserved.
func (c *CPU) bit(n uint8, v uint8) {
	c.setZ(v&(1<<n) == 0)
	c.setN(false)
	c.setH(true)
}
