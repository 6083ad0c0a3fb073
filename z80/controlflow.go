package z80

// condTaken evaluates the 3-bit condition-code field: NZ, Z, NC, C,
// PO, PE, P, M in that order.
func (c *CPU) condTaken(cc int) bool {
	switch cc {
	case 0:
		return !c.Reg.Test("z")
	case 1:
		return c.Reg.Test("z")
	case 2:
		return !c.Reg.Test("c")
	case 3:
		return c.Reg.Test("c")
	case 4:
		return !c.Reg.Test("v")
	case 5:
		return c.Reg.Test("v")
	case 6:
		return !c.Reg.Test("s")
	case 7:
		return c.Reg.Test("s")
	}
	panic(&InvalidRegisterPairError{Index: cc})
}

func (c *CPU) jpTaken(addr uint16) {
	if addr == 0 {
		c.Running = false
		return
	}
	c.Reg.SetPC(addr)
}

func opJPNN(cpu *CPU) {
	addr := cpu.fetchWord()
	cpu.jpTaken(addr)
}

func (c *CPU) opJPCond(cc int) func(*CPU) {
	return func(cpu *CPU) {
		addr := cpu.fetchWord()
		if cpu.condTaken(cc) {
			cpu.jpTaken(addr)
		}
	}
}

func opJR(cpu *CPU) {
	d := cpu.fetchByte()
	cpu.Reg.AddPC(signExtend(d))
}

func (c *CPU) opJRCond(cc int) func(*CPU) {
	return func(cpu *CPU) {
		d := cpu.fetchByte()
		if cpu.condTaken(cc) {
			cpu.Reg.AddPC(signExtend(d))
		}
	}
}

func opDJNZ(cpu *CPU) {
	d := cpu.fetchByte()
	cpu.Reg.SetB(cpu.Reg.B() - 1)
	if cpu.Reg.B() != 0 {
		cpu.Reg.AddPC(signExtend(d))
	}
}

func opCALLNN(cpu *CPU) {
	addr := cpu.fetchWord()
	cpu.push(cpu.Reg.PC())
	cpu.jpTaken(addr)
}

func (c *CPU) opCALLCond(cc int) func(*CPU) {
	return func(cpu *CPU) {
		addr := cpu.fetchWord()
		if cpu.condTaken(cc) {
			cpu.push(cpu.Reg.PC())
			cpu.jpTaken(addr)
		}
	}
}

// opRET implements RET, including the CP/M-stub interception when
// returning from address 0x0006 (the byte past the installed RET at
// 0x0005), and the jump-to-zero termination convention.
func opRET(cpu *CPU) {
	if cpu.cpmStub && cpu.Reg.PC() == 0x0006 {
		cpu.bdosCall()
	}
	addr := cpu.pop()
	if addr == 0 {
		cpu.Running = false
		return
	}
	cpu.Reg.SetPC(addr)
}

func (c *CPU) opRETCond(cc int) func(*CPU) {
	return func(cpu *CPU) {
		if !cpu.condTaken(cc) {
			return
		}
		if cpu.cpmStub && cpu.Reg.PC() == 0x0006 {
			cpu.bdosCall()
		}
		addr := cpu.pop()
		if addr == 0 {
			cpu.Running = false
			return
		}
		cpu.Reg.SetPC(addr)
	}
}

// opRST implements RST p; only p=0 is the termination convention,
// the other six vectors are genuine subroutine calls.
func (c *CPU) opRST(p byte) func(*CPU) {
	return func(cpu *CPU) {
		cpu.push(cpu.Reg.PC())
		if p == 0 {
			cpu.Running = false
			return
		}
		cpu.Reg.SetPC(uint16(p))
	}
}

// opJPHL implements JP (HL)/JP (IX)/JP (IY). Unlike JP nn, JP cc,nn,
// and RET, a computed jump landing on address 0 does not clear Running
// itself — it sets PC directly rather than going through jpTaken. The
// PC == 0 check at the start of the next ExecuteInstruction call then
// ends the run.
func opJPHL(cpu *CPU) {
	addr := cpu.Reg.HL()
	if cpu.prefix != PrefixNone {
		addr = cpu.indexReg()
	}
	cpu.Reg.SetPC(addr)
}

func opEXDEHL(cpu *CPU) {
	de, hl := cpu.Reg.DE(), cpu.Reg.HL()
	cpu.Reg.SetDE(hl)
	cpu.Reg.SetHL(de)
}

func opEXSPHL(cpu *CPU) {
	sp := cpu.Reg.SP()
	mem := cpu.Mem.GetWord(sp)
	var reg uint16
	if cpu.prefix == PrefixNone {
		reg = cpu.Reg.HL()
	} else {
		reg = cpu.indexReg()
	}
	cpu.Mem.SetWord(sp, reg)
	if cpu.prefix == PrefixNone {
		cpu.Reg.SetHL(mem)
	} else {
		cpu.setIndexReg(mem)
	}
}

func opEXAF(cpu *CPU) {
	cpu.Reg.ExchangeAF()
}

func opEXX(cpu *CPU) {
	cpu.Reg.Exchange()
}

func opLDSPHL(cpu *CPU) {
	if cpu.prefix == PrefixNone {
		cpu.Reg.SetSP(cpu.Reg.HL())
	} else {
		cpu.Reg.SetSP(cpu.indexReg())
	}
}
