// Package interrupt implements the Game Boy interrupt controller.
package interrupt

// Source identifies an interrupt source, in dispatch priority order.
type Source uint8

const (
	VBlank Source = iota
	LCDStat
	Timer
	Serial
	Joypad

	numSources
)

// Vector returns the fixed handler address for the source.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

// String returns the conventional name of the source.
func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	default:
		return "Unknown"
	}
}

// Controller holds the interrupt enable register (IE, $FFFF), the pending
// flags register (IF, $FF0F) and the master enable (IME). Each bit of IE/IF
// corresponds to one Source. All five sources can be flagged and polled, but
// only VBlank is ever serviced by the CPU; the other four remain readable
// pending state.
type Controller struct {
	enable uint8 // IE
	flags  uint8 // IF
	master bool  // IME
}

// New creates a controller in the post-boot state: nothing enabled,
// nothing pending, master enable off.
func New() *Controller {
	return &Controller{}
}

// Reset restores the post-boot state.
func (c *Controller) Reset() {
	c.enable = 0
	c.flags = 0
	c.master = false
}

// Request sets the pending flag for a source. Called by the component that
// owns the condition (the PPU for VBlank).
func (c *Controller) Request(s Source) {
	c.flags |= 1 << s
}

// Pending returns the highest-priority source that is both enabled and
// flagged, if the master enable is set. Priority follows bit order:
// VBlank first.
func (c *Controller) Pending() (Source, bool) {
	if !c.master {
		return 0, false
	}
	ready := c.enable & c.flags & 0x1F
	if ready == 0 {
		return 0, false
	}
	for s := Source(0); s < numSources; s++ {
		if ready&(1<<s) != 0 {
			return s, true
		}
	}
	return 0, false
}

// Acknowledge clears the source's pending flag and the master enable.
// Invoked only by the CPU's dispatch path.
func (c *Controller) Acknowledge(s Source) {
	c.flags &^= 1 << s
	c.master = false
}

// SetMaster sets the master enable (EI/DI/RETI and dispatch).
func (c *Controller) SetMaster(enabled bool) {
	c.master = enabled
}

// Master returns the master enable state.
func (c *Controller) Master() bool {
	return c.master
}

// ReadEnable returns the IE register value.
func (c *Controller) ReadEnable() uint8 {
	return c.enable
}

// WriteEnable stores the IE register value.
func (c *Controller) WriteEnable(value uint8) {
	c.enable = value
}

// ReadFlags returns the IF register value. The upper three bits of IF are
// unimplemented on hardware and read back as 1.
func (c *Controller) ReadFlags() uint8 {
	return c.flags | 0xE0
}

// WriteFlags stores the IF register value. Only the five source bits are kept.
func (c *Controller) WriteFlags(value uint8) {
	c.flags = value & 0x1F
}
