package z80

// block.go implements the LDI/LDD/CPI/CPD family and their repeating
// forms as internal loops that run to completion within one
// ExecuteInstruction call, plus the INI/IND/OUTI/OUTD block I/O
// family.

func (c *CPU) ldiCore(dir int) {
	val := c.Mem.GetByte(c.Reg.HL())
	c.Mem.SetByte(c.Reg.DE(), val)
	c.Reg.SetHL(uint16(int(c.Reg.HL()) + dir))
	c.Reg.SetDE(uint16(int(c.Reg.DE()) + dir))
	bc := c.Reg.BC() - 1
	c.Reg.SetBC(bc)

	n := c.Reg.A() + val
	f := c.Reg.F() & (sMask | zMask | cMask)
	if bc != 0 {
		f |= vMask
	}
	if (n>>1)&1 != 0 {
		f |= yMask
	}
	if n&xMask != 0 {
		f |= xMask
	}
	c.Reg.SetF(f)
}

func opLDI(cpu *CPU) { cpu.ldiCore(1) }
func opLDD(cpu *CPU) { cpu.ldiCore(-1) }

func opLDIR(cpu *CPU) {
	for {
		cpu.ldiCore(1)
		if cpu.Reg.BC() == 0 {
			break
		}
	}
}

func opLDDR(cpu *CPU) {
	for {
		cpu.ldiCore(-1)
		if cpu.Reg.BC() == 0 {
			break
		}
	}
}

func (c *CPU) cpiCore(dir int) {
	val := c.Mem.GetByte(c.Reg.HL())
	a := c.Reg.A()
	result := a - val
	halfBorrow := a&0x0F < val&0x0F

	c.Reg.SetHL(uint16(int(c.Reg.HL()) + dir))
	bc := c.Reg.BC() - 1
	c.Reg.SetBC(bc)

	f := c.Reg.F() & cMask
	f |= nMask
	if halfBorrow {
		f |= hMask
	}
	if result == 0 {
		f |= zMask
	}
	f |= result & sMask
	if bc != 0 {
		f |= vMask
	}
	n := result
	if halfBorrow {
		n--
	}
	if (n>>1)&1 != 0 {
		f |= yMask
	}
	if n&xMask != 0 {
		f |= xMask
	}
	c.Reg.SetF(f)
}

func opCPI(cpu *CPU) { cpu.cpiCore(1) }
func opCPD(cpu *CPU) { cpu.cpiCore(-1) }

func opCPIR(cpu *CPU) {
	for {
		cpu.cpiCore(1)
		if cpu.Reg.BC() == 0 || cpu.Reg.Test("z") {
			break
		}
	}
}

func opCPDR(cpu *CPU) {
	for {
		cpu.cpiCore(-1)
		if cpu.Reg.BC() == 0 || cpu.Reg.Test("z") {
			break
		}
	}
}

// ioBlockFlags computes the approximate documented-and-undocumented
// flag set shared by INI/IND/OUTI/OUTD, following the community-
// standard formula built from the transferred byte, the post-transfer
// B, and k: C+1/C-1 for INI/IND, the already-updated L for OUTI/OUTD.
func (c *CPU) ioBlockFlags(val byte, k byte) {
	b := c.Reg.B()
	f := sz[b]
	if val&sMask != 0 {
		f |= nMask
	}
	temp := int(val) + int(k)
	if temp > 0xFF {
		f |= hMask | cMask
	}
	if parity8(byte(temp&0x07) ^ b) {
		f |= vMask
	}
	c.Reg.SetF(f)
}

func (c *CPU) iniCore(dir int) {
	val := c.IO.In(c.Reg.C(), c.Reg.A())
	c.Mem.SetByte(c.Reg.HL(), val)
	c.Reg.SetHL(uint16(int(c.Reg.HL()) + dir))
	c.Reg.SetB(c.Reg.B() - 1)
	c.ioBlockFlags(val, byte(int(c.Reg.C())+dir))
}

func opINI(cpu *CPU) { cpu.iniCore(1) }
func opIND(cpu *CPU) { cpu.iniCore(-1) }

func opINIR(cpu *CPU) {
	for {
		cpu.iniCore(1)
		if cpu.Reg.B() == 0 {
			break
		}
	}
}

func opINDR(cpu *CPU) {
	for {
		cpu.iniCore(-1)
		if cpu.Reg.B() == 0 {
			break
		}
	}
}

func (c *CPU) outiCore(dir int) {
	val := c.Mem.GetByte(c.Reg.HL())
	c.Reg.SetB(c.Reg.B() - 1)
	c.IO.Out(c.Reg.C(), val)
	c.Reg.SetHL(uint16(int(c.Reg.HL()) + dir))
	c.ioBlockFlags(val, c.Reg.L())
}

func opOUTI(cpu *CPU) { cpu.outiCore(1) }
func opOUTD(cpu *CPU) { cpu.outiCore(-1) }

func opOTIR(cpu *CPU) {
	for {
		cpu.outiCore(1)
		if cpu.Reg.B() == 0 {
			break
		}
	}
}

func opOTDR(cpu *CPU) {
	for {
		cpu.outiCore(-1)
		if cpu.Reg.B() == 0 {
			break
		}
	}
}
