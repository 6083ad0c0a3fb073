package z80

import "fmt"

// Prefix is the small DD/FD prefix state the decoder carries between
// the prefix-absorption step and dispatch.
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixDD
	PrefixFD
)

// CPU is the Z80 fetch-decode-execute core: registers, memory, ports,
// the prefix state machine, and the opcode dispatch tables. CB-prefixed
// opcodes are decoded inline (opCBPrefix/opDDFDCBPrefix) rather than
// through a third table, since their operand layout is regular enough
// not to need one. A flat 64 KiB single-bus memory model, with
// table-driven flag computation rather than inline bit math per
// opcode.
type CPU struct {
	Reg *Registers
	Mem *Memory
	IO  Ports

	Running  bool
	starting bool
	cpmStub  bool

	prefix Prefix

	base [256]func(*CPU)
	ed   [256]func(*CPU)
}

// NewSystem builds a CPU with ramSize bytes of memory, PC set to
// initialPC, and (optionally) the minimal CP/M BDOS stub installed at
// 0x0005.
func NewSystem(ramSize int, initialPC uint16, cpmStub bool) *CPU {
	c := &CPU{
		Reg:      NewRegisters(initialPC),
		Mem:      NewMemory(ramSize),
		IO:       NullPorts{},
		Running:  true,
		starting: true,
		cpmStub:  cpmStub,
	}
	c.initBaseOps()
	c.initEDOps()
	if cpmStub {
		c.installCPMStub()
	}
	return c
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() byte {
	b := c.Mem.GetByte(c.Reg.PC())
	c.Reg.IncPC()
	return b
}

// fetchWord reads a little-endian word at PC and advances PC by two.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// ExecuteInstruction runs exactly one Z80 instruction: the
// termination check, prefix absorption, prefix-applicability check,
// and dispatch, folded into one call since this core has no separate
// "tick" granularity to expose.
func (c *CPU) ExecuteInstruction() {
	if c.Reg.PC() == 0 && !c.starting {
		c.Running = false
		return
	}
	c.starting = false

	c.prefix = PrefixNone
	op := c.fetchByte()
	for op == 0xDD || op == 0xFD {
		if op == 0xDD {
			c.prefix = PrefixDD
		} else {
			c.prefix = PrefixFD
		}
		op = c.fetchByte()
	}

	if c.prefix != PrefixNone && !ddFdPrefixable[op] {
		c.Reg.AddPC(-1)
		c.prefix = PrefixNone
		return
	}

	c.Reg.IncR(1)
	handler := c.base[op]
	if handler == nil {
		panic(&UnimplementedOpcodeError{Bytes: []byte{op}})
	}
	handler(c)
}

// indexReg returns the index register selected by the current prefix
// (IX for DD, IY for FD); callers must not invoke this under
// PrefixNone.
func (c *CPU) indexReg() uint16 {
	if c.prefix == PrefixDD {
		return c.Reg.IX()
	}
	return c.Reg.IY()
}

func (c *CPU) setIndexReg(v uint16) {
	if c.prefix == PrefixDD {
		c.Reg.SetIX(v)
	} else {
		c.Reg.SetIY(v)
	}
}

// indexedAddr computes (indexReg + sign-extend(d)) & 0xFFFF.
func (c *CPU) indexedAddr(d byte) uint16 {
	return uint16(int(c.indexReg()) + signExtend(d))
}

// readReg8 reads the 3-bit register field, honoring the current
// prefix for H/L (-> IXH/IXL/IYH/IYL) and (HL) (-> (IX+d)/(IY+d));
// forcePlain forces H/L resolution even under a prefix, for the "only
// one side may be displaced" rule in LD r,r'.
func (c *CPU) readReg8(field int, forcePlain bool) byte {
	switch field {
	case 0:
		return c.Reg.B()
	case 1:
		return c.Reg.C()
	case 2:
		return c.Reg.D()
	case 3:
		return c.Reg.E()
	case 4:
		if forcePlain || c.prefix == PrefixNone {
			return c.Reg.H()
		}
		if c.prefix == PrefixDD {
			return c.Reg.IXH()
		}
		return c.Reg.IYH()
	case 5:
		if forcePlain || c.prefix == PrefixNone {
			return c.Reg.L()
		}
		if c.prefix == PrefixDD {
			return c.Reg.IXL()
		}
		return c.Reg.IYL()
	case 6:
		if c.prefix == PrefixNone {
			return c.Mem.GetByte(c.Reg.HL())
		}
		d := c.fetchByte()
		return c.Mem.GetByte(c.indexedAddr(d))
	case 7:
		return c.Reg.A()
	}
	panic(&InvalidRegisterPairError{Index: field})
}

// writeReg8 mirrors readReg8 for writes.
func (c *CPU) writeReg8(field int, v byte, forcePlain bool) {
	switch field {
	case 0:
		c.Reg.SetB(v)
	case 1:
		c.Reg.SetC(v)
	case 2:
		c.Reg.SetD(v)
	case 3:
		c.Reg.SetE(v)
	case 4:
		if forcePlain || c.prefix == PrefixNone {
			c.Reg.SetH(v)
		} else if c.prefix == PrefixDD {
			c.Reg.SetIXH(v)
		} else {
			c.Reg.SetIYH(v)
		}
	case 5:
		if forcePlain || c.prefix == PrefixNone {
			c.Reg.SetL(v)
		} else if c.prefix == PrefixDD {
			c.Reg.SetIXL(v)
		} else {
			c.Reg.SetIYL(v)
		}
	case 6:
		if c.prefix == PrefixNone {
			c.Mem.SetByte(c.Reg.HL(), v)
		} else {
			d := c.fetchByte()
			c.Mem.SetByte(c.indexedAddr(d), v)
		}
	case 7:
		c.Reg.SetA(v)
	default:
		panic(&InvalidRegisterPairError{Index: field})
	}
}

// getRR / setRR resolve the 2-bit "rr" register-pair field for the
// LD rr,nn / INC rr / DEC rr / ADD HL,rr families (0=BC,1=DE,2=HL or
// the prefix-selected index register,3=SP).
func (c *CPU) getRR(idx int) uint16 {
	switch idx {
	case 0:
		return c.Reg.BC()
	case 1:
		return c.Reg.DE()
	case 2:
		if c.prefix == PrefixNone {
			return c.Reg.HL()
		}
		return c.indexReg()
	case 3:
		return c.Reg.SP()
	}
	panic(&InvalidRegisterPairError{Index: idx})
}

func (c *CPU) setRR(idx int, v uint16) {
	switch idx {
	case 0:
		c.Reg.SetBC(v)
	case 1:
		c.Reg.SetDE(v)
	case 2:
		if c.prefix == PrefixNone {
			c.Reg.SetHL(v)
		} else {
			c.setIndexReg(v)
		}
	case 3:
		c.Reg.SetSP(v)
	default:
		panic(&InvalidRegisterPairError{Index: idx})
	}
}

// getQQ / setQQ resolve the PUSH qq / POP qq register-pair field,
// where index 3 selects AF rather than SP.
func (c *CPU) getQQ(idx int) uint16 {
	if idx == 3 {
		return c.Reg.AF()
	}
	if idx == 2 && c.prefix != PrefixNone {
		return c.indexReg()
	}
	return c.getRR(idx)
}

func (c *CPU) setQQ(idx int, v uint16) {
	if idx == 3 {
		c.Reg.SetAF(v)
		return
	}
	if idx == 2 && c.prefix != PrefixNone {
		c.setIndexReg(v)
		return
	}
	c.setRR(idx, v)
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IX=%04X IY=%04X",
		c.Reg.PC(), c.Reg.SP(), c.Reg.AF(), c.Reg.BC(), c.Reg.DE(), c.Reg.HL(), c.Reg.IX(), c.Reg.IY())
}
