package cpu

// initCBInstructions fills the CB-prefixed decode table. Cycle counts
// include the 4 cycles of the prefix fetch.
func (c *CPU) initCBInstructions() {
	table := []*Instruction{
		{Name: "SLA A", Opcode: 0x27, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			carry := c.A&0x80 != 0
			c.A <<= 1
			c.setZ(c.A == 0)
			c.setN(false)
			c.setH(false)
			c.setC(carry)
			return 0
		}},
		{Name: "SWAP A", Opcode: 0x37, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.A<<4 | c.A>>4
			c.setZ(c.A == 0)
			c.setN(false)
			c.setH(false)
			c.setC(false)
			return 0
		}},
		{Name: "SRL A", Opcode: 0x3F, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			carry := c.A&0x01 != 0
			c.A >>= 1
			c.setZ(c.A == 0)
			c.setN(false)
			c.setH(false)
			c.setC(carry)
			return 0
		}},
		{Name: "BIT 0,B", Opcode: 0x40, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(0, c.B)
			return 0
		}},
		{Name: "BIT 0,C", Opcode: 0x41, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(0, c.C)
			return 0
		}},
		{Name: "BIT 0,A", Opcode: 0x47, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(0, c.A)
			return 0
		}},
		{Name: "BIT 1,B", Opcode: 0x48, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(1, c.B)
			return 0
		}},
		{Name: "BIT 2,B", Opcode: 0x50, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(2, c.B)
			return 0
		}},
		{Name: "BIT 2,A", Opcode: 0x57, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(2, c.A)
			return 0
		}},
		{Name: "BIT 3,B", Opcode: 0x58, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(3, c.B)
			return 0
		}},
		{Name: "BIT 3,A", Opcode: 0x5F, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(3, c.A)
			return 0
		}},
		{Name: "BIT 4,B", Opcode: 0x60, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(4, c.B)
			return 0
		}},
		{Name: "BIT 4,C", Opcode: 0x61, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(4, c.C)
			return 0
		}},
		{Name: "BIT 5,B", Opcode: 0x68, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(5, c.B)
			return 0
		}},
		{Name: "BIT 5,C", Opcode: 0x69, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(5, c.C)
			return 0
		}},
		{Name: "BIT 5,A", Opcode: 0x6F, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(5, c.A)
			return 0
		}},
		{Name: "BIT 6,B", Opcode: 0x70, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(6, c.B)
			return 0
		}},
		{Name: "BIT 6,C", Opcode: 0x71, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(6, c.C)
			return 0
		}},
		{Name: "BIT 6,A", Opcode: 0x77, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(6, c.A)
			return 0
		}},
		{Name: "BIT 7,B", Opcode: 0x78, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(7, c.B)
			return 0
		}},
		{Name: "BIT 7,C", Opcode: 0x79, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(7, c.C)
			return 0
		}},
		{Name: "BIT 7,(HL)", Opcode: 0x7E, Bytes: 2, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.bit(7, c.memory.Read(c.HL()))
			return 0
		}},
		{Name: "BIT 7,A", Opcode: 0x7F, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.bit(7, c.A)
			return 0
		}},
		{Name: "RES 0,(HL)", Opcode: 0x86, Bytes: 2, Cycles: 16, Execute: func(c *CPU) uint8 {
			addr := c.HL()
			c.memory.Write(addr, c.memory.Read(addr)&^uint8(1<<0))
			return 0
		}},
		{Name: "RES 0,A", Opcode: 0x87, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A &^= 1 << 0
			return 0
		}},
		{Name: "RES 3,(HL)", Opcode: 0x9E, Bytes: 2, Cycles: 16, Execute: func(c *CPU) uint8 {
			addr := c.HL()
			c.memory.Write(addr, c.memory.Read(addr)&^uint8(1<<3))
			return 0
		}},
		{Name: "RES 7,(HL)", Opcode: 0xBE, Bytes: 2, Cycles: 16, Execute: func(c *CPU) uint8 {
			addr := c.HL()
			c.memory.Write(addr, c.memory.Read(addr)&^uint8(1<<7))
			return 0
		}},
		{Name: "SET 3,(HL)", Opcode: 0xDE, Bytes: 2, Cycles: 16, Execute: func(c *CPU) uint8 {
			addr := c.HL()
			c.memory.Write(addr, c.memory.Read(addr)|1<<3)
			return 0
		}},
		{Name: "SET 7,(HL)", Opcode: 0xFE, Bytes: 2, Cycles: 16, Execute: func(c *CPU) uint8 {
			addr := c.HL()
			c.memory.Write(addr, c.memory.Read(addr)|1<<7)
			return 0
		}},
	}

	for _, inst := range table {
		c.cbInstructions[inst.Opcode] = inst
	}
}
