package cpu

// initInstructions fills the base decode table. Slots left nil are opcodes
// outside the supported set; fetching one is fatal.
func (c *CPU) initInstructions() {
	table := []*Instruction{
		{Name: "NOP", Opcode: 0x00, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			return 0
		}},
		{Name: "LD BC,d16", Opcode: 0x01, Bytes: 3, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SetBC(c.fetchWord())
			return 0
		}},
		{Name: "LD (BC),A", Opcode: 0x02, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.BC(), c.A)
			return 0
		}},
		{Name: "INC BC", Opcode: 0x03, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.SetBC(c.BC() + 1)
			return 0
		}},
		{Name: "INC B", Opcode: 0x04, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.B = c.incReg(c.B)
			return 0
		}},
		{Name: "DEC B", Opcode: 0x05, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.B = c.decReg(c.B)
			return 0
		}},
		{Name: "LD B,d8", Opcode: 0x06, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.B = c.fetchByte()
			return 0
		}},
		{Name: "RLCA", Opcode: 0x07, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			carry := c.A&0x80 != 0
			c.A = c.A<<1 | c.A>>7
			c.setZ(false)
			c.setN(false)
			c.setH(false)
			c.setC(carry)
			return 0
		}},
		{Name: "ADD HL,BC", Opcode: 0x09, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.addHL(c.BC())
			return 0
		}},
		{Name: "LD A,(BC)", Opcode: 0x0A, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.memory.Read(c.BC())
			return 0
		}},
		{Name: "DEC BC", Opcode: 0x0B, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.SetBC(c.BC() - 1)
			return 0
		}},
		{Name: "INC C", Opcode: 0x0C, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.C = c.incReg(c.C)
			return 0
		}},
		{Name: "DEC C", Opcode: 0x0D, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.C = c.decReg(c.C)
			return 0
		}},
		{Name: "LD C,d8", Opcode: 0x0E, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.C = c.fetchByte()
			return 0
		}},
		{Name: "LD DE,d16", Opcode: 0x11, Bytes: 3, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SetDE(c.fetchWord())
			return 0
		}},
		{Name: "LD (DE),A", Opcode: 0x12, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.DE(), c.A)
			return 0
		}},
		{Name: "INC DE", Opcode: 0x13, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.SetDE(c.DE() + 1)
			return 0
		}},
		{Name: "LD D,d8", Opcode: 0x16, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.D = c.fetchByte()
			return 0
		}},
		{Name: "JR r8", Opcode: 0x18, Bytes: 2, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.jumpRelative(c.fetchByte())
			return 0
		}},
		{Name: "ADD HL,DE", Opcode: 0x19, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.addHL(c.DE())
			return 0
		}},
		{Name: "LD A,(DE)", Opcode: 0x1A, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.memory.Read(c.DE())
			return 0
		}},
		{Name: "DEC DE", Opcode: 0x1B, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.SetDE(c.DE() - 1)
			return 0
		}},
		{Name: "INC E", Opcode: 0x1C, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.E = c.incReg(c.E)
			return 0
		}},
		{Name: "DEC E", Opcode: 0x1D, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.E = c.decReg(c.E)
			return 0
		}},
		{Name: "LD E,d8", Opcode: 0x1E, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.E = c.fetchByte()
			return 0
		}},
		{Name: "JR NZ,r8", Opcode: 0x20, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			offset := c.fetchByte()
			if !c.flagZ() {
				c.jumpRelative(offset)
				return 4
			}
			return 0
		}},
		{Name: "LD HL,d16", Opcode: 0x21, Bytes: 3, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SetHL(c.fetchWord())
			return 0
		}},
		{Name: "LD (HL+),A", Opcode: 0x22, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.A)
			c.SetHL(c.HL() + 1)
			return 0
		}},
		{Name: "INC HL", Opcode: 0x23, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.SetHL(c.HL() + 1)
			return 0
		}},
		{Name: "DEC H", Opcode: 0x25, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.H = c.decReg(c.H)
			return 0
		}},
		{Name: "LD H,d8", Opcode: 0x26, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.H = c.fetchByte()
			return 0
		}},
		{Name: "DAA", Opcode: 0x27, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			var adjust uint8
			if c.flagC() {
				adjust = 0x60
			}
			if c.flagH() {
				adjust |= 0x06
			}
			if !c.flagN() {
				if c.A&0x0F > 0x09 {
					adjust |= 0x06
				}
				if c.A > 0x99 {
					adjust |= 0x60
				}
				c.A += adjust
			} else {
				c.A -= adjust
			}
			c.setZ(c.A == 0)
			c.setH(false)
			c.setC(adjust >= 0x60)
			return 0
		}},
		{Name: "JR Z,r8", Opcode: 0x28, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			offset := c.fetchByte()
			if c.flagZ() {
				c.jumpRelative(offset)
				return 4
			}
			return 0
		}},
		{Name: "LD A,(HL+)", Opcode: 0x2A, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.memory.Read(c.HL())
			c.SetHL(c.HL() + 1)
			return 0
		}},
		{Name: "DEC HL", Opcode: 0x2B, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.SetHL(c.HL() - 1)
			return 0
		}},
		{Name: "INC L", Opcode: 0x2C, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.L = c.incReg(c.L)
			return 0
		}},
		{Name: "DEC L", Opcode: 0x2D, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.L = c.decReg(c.L)
			return 0
		}},
		{Name: "LD L,d8", Opcode: 0x2E, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.L = c.fetchByte()
			return 0
		}},
		{Name: "CPL", Opcode: 0x2F, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = ^c.A
			c.setN(true)
			c.setH(true)
			return 0
		}},
		{Name: "JR NC,r8", Opcode: 0x30, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			offset := c.fetchByte()
			if !c.flagC() {
				c.jumpRelative(offset)
				return 4
			}
			return 0
		}},
		{Name: "LD SP,d16", Opcode: 0x31, Bytes: 3, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SP = c.fetchWord()
			return 0
		}},
		{Name: "LD (HL-),A", Opcode: 0x32, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.A)
			c.SetHL(c.HL() - 1)
			return 0
		}},
		{Name: "INC (HL)", Opcode: 0x34, Bytes: 1, Cycles: 12, Execute: func(c *CPU) uint8 {
			addr := c.HL()
			c.memory.Write(addr, c.incReg(c.memory.Read(addr)))
			return 0
		}},
		{Name: "DEC (HL)", Opcode: 0x35, Bytes: 1, Cycles: 12, Execute: func(c *CPU) uint8 {
			addr := c.HL()
			c.memory.Write(addr, c.decReg(c.memory.Read(addr)))
			return 0
		}},
		{Name: "LD (HL),d8", Opcode: 0x36, Bytes: 2, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.fetchByte())
			return 0
		}},
		{Name: "JR C,r8", Opcode: 0x38, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			offset := c.fetchByte()
			if c.flagC() {
				c.jumpRelative(offset)
				return 4
			}
			return 0
		}},
		{Name: "LD A,(HL-)", Opcode: 0x3A, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.memory.Read(c.HL())
			c.SetHL(c.HL() - 1)
			return 0
		}},
		{Name: "INC A", Opcode: 0x3C, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.incReg(c.A)
			return 0
		}},
		{Name: "DEC A", Opcode: 0x3D, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.decReg(c.A)
			return 0
		}},
		{Name: "LD A,d8", Opcode: 0x3E, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.fetchByte()
			return 0
		}},
		{Name: "LD B,B", Opcode: 0x40, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			return 0
		}},
		{Name: "LD B,(HL)", Opcode: 0x46, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.B = c.memory.Read(c.HL())
			return 0
		}},
		{Name: "LD B,A", Opcode: 0x47, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.B = c.A
			return 0
		}},
		{Name: "LD C,(HL)", Opcode: 0x4E, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.C = c.memory.Read(c.HL())
			return 0
		}},
		{Name: "LD C,A", Opcode: 0x4F, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.C = c.A
			return 0
		}},
		{Name: "LD D,H", Opcode: 0x54, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.D = c.H
			return 0
		}},
		{Name: "LD D,(HL)", Opcode: 0x56, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.D = c.memory.Read(c.HL())
			return 0
		}},
		{Name: "LD D,A", Opcode: 0x57, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.D = c.A
			return 0
		}},
		{Name: "LD E,L", Opcode: 0x5D, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.E = c.L
			return 0
		}},
		{Name: "LD E,(HL)", Opcode: 0x5E, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.E = c.memory.Read(c.HL())
			return 0
		}},
		{Name: "LD E,A", Opcode: 0x5F, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.E = c.A
			return 0
		}},
		{Name: "LD H,B", Opcode: 0x60, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.H = c.B
			return 0
		}},
		{Name: "LD H,C", Opcode: 0x61, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.H = c.C
			return 0
		}},
		{Name: "LD H,D", Opcode: 0x62, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.H = c.D
			return 0
		}},
		{Name: "LD H,A", Opcode: 0x67, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.H = c.A
			return 0
		}},
		{Name: "LD L,C", Opcode: 0x69, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.L = c.C
			return 0
		}},
		{Name: "LD L,E", Opcode: 0x6B, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.L = c.E
			return 0
		}},
		{Name: "LD L,A", Opcode: 0x6F, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.L = c.A
			return 0
		}},
		{Name: "LD (HL),B", Opcode: 0x70, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.B)
			return 0
		}},
		{Name: "LD (HL),C", Opcode: 0x71, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.C)
			return 0
		}},
		{Name: "LD (HL),D", Opcode: 0x72, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.D)
			return 0
		}},
		{Name: "LD (HL),E", Opcode: 0x73, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.E)
			return 0
		}},
		{Name: "LD (HL),A", Opcode: 0x77, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.HL(), c.A)
			return 0
		}},
		{Name: "LD A,B", Opcode: 0x78, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.B
			return 0
		}},
		{Name: "LD A,C", Opcode: 0x79, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.C
			return 0
		}},
		{Name: "LD A,D", Opcode: 0x7A, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.D
			return 0
		}},
		{Name: "LD A,E", Opcode: 0x7B, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.E
			return 0
		}},
		{Name: "LD A,H", Opcode: 0x7C, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.H
			return 0
		}},
		{Name: "LD A,L", Opcode: 0x7D, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.L
			return 0
		}},
		{Name: "LD A,(HL)", Opcode: 0x7E, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.memory.Read(c.HL())
			return 0
		}},
		{Name: "ADD A,B", Opcode: 0x80, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.B, false)
			return 0
		}},
		{Name: "ADD A,D", Opcode: 0x82, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.D, false)
			return 0
		}},
		{Name: "ADD A,E", Opcode: 0x83, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.E, false)
			return 0
		}},
		{Name: "ADD A,L", Opcode: 0x85, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.L, false)
			return 0
		}},
		{Name: "ADD A,(HL)", Opcode: 0x86, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.memory.Read(c.HL()), false)
			return 0
		}},
		{Name: "ADD A,A", Opcode: 0x87, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.A, false)
			return 0
		}},
		{Name: "ADC A,C", Opcode: 0x89, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.C, true)
			return 0
		}},
		{Name: "ADC A,(HL)", Opcode: 0x8E, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.memory.Read(c.HL()), true)
			return 0
		}},
		{Name: "SUB B", Opcode: 0x90, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.A = c.sub8(c.A, c.B, false)
			return 0
		}},
		{Name: "SUB (HL)", Opcode: 0x96, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.sub8(c.A, c.memory.Read(c.HL()), false)
			return 0
		}},
		{Name: "AND B", Opcode: 0xA0, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.and(c.B)
			return 0
		}},
		{Name: "AND C", Opcode: 0xA1, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.and(c.C)
			return 0
		}},
		{Name: "AND A", Opcode: 0xA7, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.and(c.A)
			return 0
		}},
		{Name: "XOR B", Opcode: 0xA8, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.xor(c.B)
			return 0
		}},
		{Name: "XOR C", Opcode: 0xA9, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.xor(c.C)
			return 0
		}},
		{Name: "XOR A", Opcode: 0xAF, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.xor(c.A)
			return 0
		}},
		{Name: "OR B", Opcode: 0xB0, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.or(c.B)
			return 0
		}},
		{Name: "OR C", Opcode: 0xB1, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.or(c.C)
			return 0
		}},
		{Name: "OR D", Opcode: 0xB2, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.or(c.D)
			return 0
		}},
		{Name: "OR A", Opcode: 0xB7, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.or(c.A)
			return 0
		}},
		{Name: "CP B", Opcode: 0xB8, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.compare(c.B)
			return 0
		}},
		{Name: "CP C", Opcode: 0xB9, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.compare(c.C)
			return 0
		}},
		{Name: "CP (HL)", Opcode: 0xBE, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.compare(c.memory.Read(c.HL()))
			return 0
		}},
		{Name: "RET NZ", Opcode: 0xC0, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			if !c.flagZ() {
				c.PC = c.pop()
				return 12
			}
			return 0
		}},
		{Name: "POP BC", Opcode: 0xC1, Bytes: 1, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SetBC(c.pop())
			return 0
		}},
		{Name: "JP NZ,a16", Opcode: 0xC2, Bytes: 3, Cycles: 12, Execute: func(c *CPU) uint8 {
			target := c.fetchWord()
			if !c.flagZ() {
				c.PC = target
				return 4
			}
			return 0
		}},
		{Name: "JP a16", Opcode: 0xC3, Bytes: 3, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.PC = c.fetchWord()
			return 0
		}},
		{Name: "PUSH BC", Opcode: 0xC5, Bytes: 1, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.push(c.BC())
			return 0
		}},
		{Name: "ADD A,d8", Opcode: 0xC6, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.add8(c.A, c.fetchByte(), false)
			return 0
		}},
		{Name: "RET Z", Opcode: 0xC8, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			if c.flagZ() {
				c.PC = c.pop()
				return 12
			}
			return 0
		}},
		{Name: "RET", Opcode: 0xC9, Bytes: 1, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.PC = c.pop()
			return 0
		}},
		{Name: "JP Z,a16", Opcode: 0xCA, Bytes: 3, Cycles: 12, Execute: func(c *CPU) uint8 {
			target := c.fetchWord()
			if c.flagZ() {
				c.PC = target
				return 4
			}
			return 0
		}},
		{Name: "CALL a16", Opcode: 0xCD, Bytes: 3, Cycles: 24, Execute: func(c *CPU) uint8 {
			target := c.fetchWord()
			c.push(c.PC)
			c.PC = target
			return 0
		}},
		{Name: "RET NC", Opcode: 0xD0, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			if !c.flagC() {
				c.PC = c.pop()
				return 12
			}
			return 0
		}},
		{Name: "POP DE", Opcode: 0xD1, Bytes: 1, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SetDE(c.pop())
			return 0
		}},
		{Name: "PUSH DE", Opcode: 0xD5, Bytes: 1, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.push(c.DE())
			return 0
		}},
		{Name: "SUB d8", Opcode: 0xD6, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.A = c.sub8(c.A, c.fetchByte(), false)
			return 0
		}},
		{Name: "RET C", Opcode: 0xD8, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			if c.flagC() {
				c.PC = c.pop()
				return 12
			}
			return 0
		}},
		{Name: "RETI", Opcode: 0xD9, Bytes: 1, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.PC = c.pop()
			c.interrupts.SetMaster(true)
			return 0
		}},
		{Name: "LDH (a8),A", Opcode: 0xE0, Bytes: 2, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.memory.Write(0xFF00+uint16(c.fetchByte()), c.A)
			return 0
		}},
		{Name: "POP HL", Opcode: 0xE1, Bytes: 1, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SetHL(c.pop())
			return 0
		}},
		{Name: "LD (C),A", Opcode: 0xE2, Bytes: 1, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.memory.Write(0xFF00+uint16(c.C), c.A)
			return 0
		}},
		{Name: "PUSH HL", Opcode: 0xE5, Bytes: 1, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.push(c.HL())
			return 0
		}},
		{Name: "AND d8", Opcode: 0xE6, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.and(c.fetchByte())
			return 0
		}},
		{Name: "JP (HL)", Opcode: 0xE9, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.PC = c.HL()
			return 0
		}},
		{Name: "LD (a16),A", Opcode: 0xEA, Bytes: 3, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.memory.Write(c.fetchWord(), c.A)
			return 0
		}},
		{Name: "XOR d8", Opcode: 0xEE, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.xor(c.fetchByte())
			return 0
		}},
		{Name: "RST 28H", Opcode: 0xEF, Bytes: 1, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.push(c.PC)
			c.PC = 0x0028
			return 0
		}},
		{Name: "LDH A,(a8)", Opcode: 0xF0, Bytes: 2, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.A = c.memory.Read(0xFF00 + uint16(c.fetchByte()))
			return 0
		}},
		{Name: "POP AF", Opcode: 0xF1, Bytes: 1, Cycles: 12, Execute: func(c *CPU) uint8 {
			c.SetAF(c.pop())
			return 0
		}},
		{Name: "DI", Opcode: 0xF3, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.interrupts.SetMaster(false)
			c.eiPending = false
			return 0
		}},
		{Name: "PUSH AF", Opcode: 0xF5, Bytes: 1, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.push(c.AF())
			return 0
		}},
		{Name: "OR d8", Opcode: 0xF6, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.or(c.fetchByte())
			return 0
		}},
		{Name: "LD A,(a16)", Opcode: 0xFA, Bytes: 3, Cycles: 16, Execute: func(c *CPU) uint8 {
			c.A = c.memory.Read(c.fetchWord())
			return 0
		}},
		{Name: "EI", Opcode: 0xFB, Bytes: 1, Cycles: 4, Execute: func(c *CPU) uint8 {
			c.eiPending = true
			return 0
		}},
		{Name: "CP d8", Opcode: 0xFE, Bytes: 2, Cycles: 8, Execute: func(c *CPU) uint8 {
			c.compare(c.fetchByte())
			return 0
		}},
	}

	for _, inst := range table {
		c.instructions[inst.Opcode] = inst
	}
}
