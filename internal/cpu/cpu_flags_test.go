package cpu

import "testing"

func TestAdd8Flags(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint8
		carry  bool
		want   uint8
		wantF  uint8
	}{
		{"no flags", 0x01, 0x02, false, 0x03, 0x00},
		{"half carry", 0x0F, 0x01, false, 0x10, flagH},
		{"carry", 0xF0, 0x20, false, 0x10, flagC},
		{"zero with carry out", 0xFF, 0x01, false, 0x00, flagZ | flagH | flagC},
		{"carry in used", 0x01, 0x01, true, 0x03, 0x00},
		{"carry in half carry", 0x0F, 0x00, true, 0x10, flagH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU()
			if tt.carry {
				c.F = flagC
			} else {
				c.F = 0
			}

			got := c.add8(tt.a, tt.b, tt.carry)

			if got != tt.want {
				t.Errorf("add8(%#02x, %#02x) = %#02x, want %#02x", tt.a, tt.b, got, tt.want)
			}
			if c.F != tt.wantF {
				t.Errorf("F = %#02x, want %#02x", c.F, tt.wantF)
			}
		})
	}
}

func TestSub8Flags(t *testing.T) {
	tests := []struct {
		name  string
		a, b  uint8
		carry bool
		want  uint8
		wantF uint8
	}{
		{"no borrow", 0x05, 0x02, false, 0x03, flagN},
		{"zero", 0x42, 0x42, false, 0x00, flagZ | flagN},
		{"half borrow", 0x10, 0x01, false, 0x0F, flagN | flagH},
		{"full borrow", 0x00, 0x01, false, 0xFF, flagN | flagH | flagC},
		{"borrow in used", 0x05, 0x02, true, 0x02, flagN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU()
			if tt.carry {
				c.F = flagC
			} else {
				c.F = 0
			}

			got := c.sub8(tt.a, tt.b, tt.carry)

			if got != tt.want {
				t.Errorf("sub8(%#02x, %#02x) = %#02x, want %#02x", tt.a, tt.b, got, tt.want)
			}
			if c.F != tt.wantF {
				t.Errorf("F = %#02x, want %#02x", c.F, tt.wantF)
			}
		})
	}
}

func TestIncPreservesCarry(t *testing.T) {
	c, _, _ := newTestCPU()
	c.F = flagC

	got := c.incReg(0x0F)

	if got != 0x10 {
		t.Errorf("incReg(0x0F) = %#02x, want 0x10", got)
	}
	if c.F != flagH|flagC {
		t.Errorf("F = %#02x, want H and C set", c.F)
	}
}

func TestDecFlags(t *testing.T) {
	tests := []struct {
		name  string
		v     uint8
		want  uint8
		wantF uint8
	}{
		{"simple", 0x02, 0x01, flagN},
		{"to zero", 0x01, 0x00, flagZ | flagN},
		{"half borrow", 0x10, 0x0F, flagN | flagH},
		{"wrap", 0x00, 0xFF, flagN | flagH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU()
			c.F = 0

			got := c.decReg(tt.v)

			if got != tt.want {
				t.Errorf("decReg(%#02x) = %#02x, want %#02x", tt.v, got, tt.want)
			}
			if c.F != tt.wantF {
				t.Errorf("F = %#02x, want %#02x", c.F, tt.wantF)
			}
		})
	}
}

func TestAddHLPreservesZero(t *testing.T) {
	c, _, _ := newTestCPU()
	c.F = flagZ
	c.SetHL(0x0FFF)

	c.addHL(0x0001)

	if c.HL() != 0x1000 {
		t.Errorf("HL = %#04x, want 0x1000", c.HL())
	}
	if c.F != flagZ|flagH {
		t.Errorf("F = %#02x, want Z preserved and H set", c.F)
	}
}

func TestAddHLCarry(t *testing.T) {
	c, _, _ := newTestCPU()
	c.F = 0
	c.SetHL(0xFFFF)

	c.addHL(0x0001)

	if c.HL() != 0x0000 {
		t.Errorf("HL = %#04x, want 0x0000", c.HL())
	}
	if !c.flagH() || !c.flagC() {
		t.Errorf("F = %#02x, want H and C set", c.F)
	}
}

func TestLogicalFlags(t *testing.T) {
	t.Run("AND sets H", func(t *testing.T) {
		c, _, _ := newTestCPU()
		c.A = 0xF0
		c.F = flagC

		c.and(0x0F)

		if c.A != 0x00 {
			t.Errorf("A = %#02x, want 0x00", c.A)
		}
		if c.F != flagZ|flagH {
			t.Errorf("F = %#02x, want Z and H only", c.F)
		}
	})

	t.Run("OR clears all but Z", func(t *testing.T) {
		c, _, _ := newTestCPU()
		c.A = 0x00
		c.F = flagN | flagH | flagC

		c.or(0x55)

		if c.A != 0x55 {
			t.Errorf("A = %#02x, want 0x55", c.A)
		}
		if c.F != 0x00 {
			t.Errorf("F = %#02x, want 0x00", c.F)
		}
	})

	t.Run("XOR self zeroes A", func(t *testing.T) {
		c, _, _ := newTestCPU()
		c.A = 0xA5
		c.F = flagN | flagH | flagC

		c.xor(0xA5)

		if c.A != 0x00 {
			t.Errorf("A = %#02x, want 0x00", c.A)
		}
		if c.F != flagZ {
			t.Errorf("F = %#02x, want Z only", c.F)
		}
	})
}

func TestCompareFlags(t *testing.T) {
	tests := []struct {
		name  string
		a, v  uint8
		wantF uint8
	}{
		{"equal", 0x42, 0x42, flagZ | flagN},
		{"greater", 0x50, 0x10, flagN},
		{"less", 0x10, 0x50, flagN | flagC},
		{"half borrow only", 0x10, 0x01, flagN | flagH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU()
			c.A = tt.a
			c.F = 0

			c.compare(tt.v)

			if c.A != tt.a {
				t.Errorf("A = %#02x, compare must not modify A", c.A)
			}
			if c.F != tt.wantF {
				t.Errorf("F = %#02x, want %#02x", c.F, tt.wantF)
			}
		})
	}
}

func TestDecimalAdjust(t *testing.T) {
	tests := []struct {
		name  string
		a, f  uint8
		wantA uint8
		wantF uint8
	}{
		{"after 0x09+0x01", 0x0A, 0x00, 0x10, 0x00},
		{"after 0x15+0x27", 0x3C, 0x00, 0x42, 0x00},
		{"after 0x90+0x10", 0xA0, 0x00, 0x00, flagZ | flagC},
		{"after BCD add with half carry", 0x10, flagH, 0x16, 0x00},
		{"after subtraction with borrow flags", 0x05, flagN | flagH, 0xFF, flagN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mem, _ := newTestCPU()
			loadProgram(mem, 0x27) // DAA
			c.A = tt.a
			c.F = tt.f

			mustStep(t, c)

			if c.A != tt.wantA {
				t.Errorf("A = %#02x, want %#02x", c.A, tt.wantA)
			}
			if c.F != tt.wantF {
				t.Errorf("F = %#02x, want %#02x", c.F, tt.wantF)
			}
		})
	}
}

func TestComplementFlags(t *testing.T) {
	c, mem, _ := newTestCPU()
	loadProgram(mem, 0x2F) // CPL
	c.A = 0x35
	c.F = flagZ | flagC

	mustStep(t, c)

	if c.A != 0xCA {
		t.Errorf("A = %#02x, want 0xCA", c.A)
	}
	if c.F != flagZ|flagN|flagH|flagC {
		t.Errorf("F = %#02x, want Z and C preserved, N and H set", c.F)
	}
}

func TestBitTestFlags(t *testing.T) {
	tests := []struct {
		name  string
		n     uint8
		v     uint8
		wantZ bool
	}{
		{"bit set", 7, 0x80, false},
		{"bit clear", 7, 0x7F, true},
		{"bit 0 set", 0, 0x01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU()
			c.F = flagC

			c.bit(tt.n, tt.v)

			if c.flagZ() != tt.wantZ {
				t.Errorf("Z = %v, want %v", c.flagZ(), tt.wantZ)
			}
			if c.flagN() || !c.flagH() {
				t.Errorf("F = %#02x, want N clear and H set", c.F)
			}
			if !c.flagC() {
				t.Error("C flag not preserved by bit test")
			}
		})
	}
}

func TestRotateAndShiftA(t *testing.T) {
	t.Run("RLCA", func(t *testing.T) {
		c, mem, _ := newTestCPU()
		loadProgram(mem, 0x07)
		c.A = 0x85
		c.F = flagZ

		mustStep(t, c)

		if c.A != 0x0B {
			t.Errorf("A = %#02x, want 0x0B", c.A)
		}
		if c.F != flagC {
			t.Errorf("F = %#02x, want C only (Z forced clear)", c.F)
		}
	})

	t.Run("SLA A", func(t *testing.T) {
		c, mem, _ := newTestCPU()
		loadProgram(mem, 0xCB, 0x27)
		c.A = 0x80
		c.F = 0

		cycles := mustStep(t, c)

		if cycles != 8 {
			t.Errorf("cycles = %d, want 8", cycles)
		}
		if c.A != 0x00 {
			t.Errorf("A = %#02x, want 0x00", c.A)
		}
		if c.F != flagZ|flagC {
			t.Errorf("F = %#02x, want Z and C", c.F)
		}
	})

	t.Run("SRL A", func(t *testing.T) {
		c, mem, _ := newTestCPU()
		loadProgram(mem, 0xCB, 0x3F)
		c.A = 0x01
		c.F = 0

		mustStep(t, c)

		if c.A != 0x00 {
			t.Errorf("A = %#02x, want 0x00", c.A)
		}
		if c.F != flagZ|flagC {
			t.Errorf("F = %#02x, want Z and C", c.F)
		}
	})

	t.Run("SWAP A", func(t *testing.T) {
		c, mem, _ := newTestCPU()
		loadProgram(mem, 0xCB, 0x37)
		c.A = 0x5A
		c.F = flagN | flagH | flagC

		mustStep(t, c)

		if c.A != 0xA5 {
			t.Errorf("A = %#02x, want 0xA5", c.A)
		}
		if c.F != 0x00 {
			t.Errorf("F = %#02x, want all clear", c.F)
		}
	})
}

func TestBitSetAndClearInMemory(t *testing.T) {
	c, mem, _ := newTestCPU()
	loadProgram(mem,
		0x21, 0x00, 0xC0, // LD HL,0xC000
		0xCB, 0xDE, // SET 3,(HL)
		0xCB, 0x9E, // RES 3,(HL)
	)

	mustStep(t, c)
	cycles := mustStep(t, c)

	if cycles != 16 {
		t.Errorf("SET (HL) cycles = %d, want 16", cycles)
	}
	if mem.data[0xC000] != 0x08 {
		t.Errorf("[0xC000] = %#02x, want 0x08", mem.data[0xC000])
	}

	mustStep(t, c)

	if mem.data[0xC000] != 0x00 {
		t.Errorf("[0xC000] = %#02x, want 0x00", mem.data[0xC000])
	}
}
