package z80

// dispatch_ed.go builds the 0xED-prefixed dispatch table: masked
// 16-bit ADC/SBC/LD(nn) families, the named single opcodes, the
// block move/compare/IO families, the IN/OUT (C) family, LD A,R /
// LD R,A / LD I,A, IM 0/1/2 as no-ops (interrupts are unimplemented),
// and RETN/RETI treated as a plain RET since there is no interrupt
// state to restore.

func (c *CPU) initEDOps() {
	for op := 0; op < 256; op++ {
		c.ed[op] = nil
	}

	for rr := 0; rr < 4; rr++ {
		rrCopy := rr
		c.ed[0x4A|rr<<4] = func(cpu *CPU) { cpu.adc16(cpu.getRR(rrCopy)) }
		c.ed[0x42|rr<<4] = func(cpu *CPU) { cpu.sbc16(cpu.getRR(rrCopy)) }
		c.ed[0x43|rr<<4] = func(cpu *CPU) {
			addr := cpu.fetchWord()
			cpu.Mem.SetWord(addr, cpu.getRR(rrCopy))
		}
		c.ed[0x4B|rr<<4] = func(cpu *CPU) {
			addr := cpu.fetchWord()
			cpu.setRR(rrCopy, cpu.Mem.GetWord(addr))
		}
	}

	for _, op := range []int{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		c.ed[op] = func(cpu *CPU) {
			old := cpu.Reg.A()
			cpu.Reg.SetA(0)
			cpu.subA(old, false, false)
		}
	}
	for _, op := range []int{0x45, 0x4D, 0x55, 0x5D, 0x65, 0x6D, 0x75, 0x7D} {
		c.ed[op] = opRET
	}
	for _, op := range []int{0x46, 0x4E, 0x56, 0x5E, 0x66, 0x6E, 0x76, 0x7E} {
		c.ed[op] = func(*CPU) {} // IM 0/1/2: interrupts unimplemented, no-op
	}

	c.ed[0x47] = func(cpu *CPU) { cpu.Reg.SetI(cpu.Reg.A()) }
	c.ed[0x4F] = func(cpu *CPU) { cpu.Reg.SetR(cpu.Reg.A()) }
	c.ed[0x57] = func(cpu *CPU) {
		cpu.Reg.SetA(cpu.Reg.I())
		cpu.Reg.SetF(sz[cpu.Reg.I()] | cpu.Reg.F()&cMask)
	}
	c.ed[0x5F] = func(cpu *CPU) {
		cpu.Reg.SetA(cpu.Reg.R())
		cpu.Reg.SetF(sz[cpu.Reg.R()] | cpu.Reg.F()&cMask)
	}

	c.ed[0x67] = opRRD
	c.ed[0x6F] = opRLD

	c.ed[0x73] = func(cpu *CPU) {
		addr := cpu.fetchWord()
		cpu.Mem.SetWord(addr, cpu.Reg.SP())
	}
	c.ed[0x7B] = func(cpu *CPU) {
		addr := cpu.fetchWord()
		cpu.Reg.SetSP(cpu.Mem.GetWord(addr))
	}

	c.ed[0xA0] = opLDI
	c.ed[0xA8] = opLDD
	c.ed[0xB0] = opLDIR
	c.ed[0xB8] = opLDDR
	c.ed[0xA1] = opCPI
	c.ed[0xA9] = opCPD
	c.ed[0xB1] = opCPIR
	c.ed[0xB9] = opCPDR
	c.ed[0xA2] = opINI
	c.ed[0xAA] = opIND
	c.ed[0xB2] = opINIR
	c.ed[0xBA] = opINDR
	c.ed[0xA3] = opOUTI
	c.ed[0xAB] = opOUTD
	c.ed[0xB3] = opOTIR
	c.ed[0xBB] = opOTDR

	for field := 0; field < 8; field++ {
		fieldCopy := field
		c.ed[0x40|fieldCopy<<3] = func(cpu *CPU) {
			v := cpu.IO.In(cpu.Reg.C(), cpu.Reg.A())
			if fieldCopy != 6 {
				cpu.writeReg8(fieldCopy, v, false)
			}
			f := szp[v] | cpu.Reg.F()&cMask
			cpu.Reg.SetF(f)
		}
		c.ed[0x41|fieldCopy<<3] = func(cpu *CPU) {
			var v byte
			if fieldCopy == 6 {
				v = 0
			} else {
				v = cpu.readReg8(fieldCopy, false)
			}
			cpu.IO.Out(cpu.Reg.C(), v)
		}
	}
}

// opRRD / opRLD rotate a BCD digit between A's low nibble and
// (HL)'s two nibbles.
func opRRD(cpu *CPU) {
	hl := cpu.Mem.GetByte(cpu.Reg.HL())
	a := cpu.Reg.A()
	newA := a&0xF0 | hl&0x0F
	newHL := (a<<4)&0xF0 | hl>>4
	cpu.Reg.SetA(newA)
	cpu.Mem.SetByte(cpu.Reg.HL(), newHL)
	cpu.Reg.SetF(szp[newA] | cpu.Reg.F()&cMask)
}

func opRLD(cpu *CPU) {
	hl := cpu.Mem.GetByte(cpu.Reg.HL())
	a := cpu.Reg.A()
	newA := a&0xF0 | hl>>4
	newHL := (hl<<4)&0xF0 | a&0x0F
	cpu.Reg.SetA(newA)
	cpu.Mem.SetByte(cpu.Reg.HL(), newHL)
	cpu.Reg.SetF(szp[newA] | cpu.Reg.F()&cMask)
}

// opEDPrefix dispatches the second byte of an 0xED-prefixed
// instruction. Unrecognized combinations panic.
func opEDPrefix(cpu *CPU) {
	op := cpu.fetchByte()
	handler := cpu.ed[op]
	if handler == nil {
		panic(&UnimplementedOpcodeError{Bytes: []byte{0xED, op}})
	}
	handler(cpu)
}
