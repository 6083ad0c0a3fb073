package z80

// gpSet holds one general-purpose register set: A, F, and the three
// 16-bit pairs BC/DE/HL. 8-bit sub-register views (B, C, D, E, H, L)
// are derived from the pairs at access time rather than stored
// redundantly, per the register-file design note this core follows.
type gpSet struct {
	a, f byte
	bc   uint16
	de   uint16
	hl   uint16
}

// Registers is the full Z80 register file: a main and alternate
// general-purpose set, the index registers, stack pointer, program
// counter, and the interrupt/refresh registers, kept as its own type
// so the CPU can depend on it as a narrow collaborator.
type Registers struct {
	main gpSet
	alt  gpSet

	ix, iy uint16
	sp, pc uint16
	i, r   byte
}

// NewRegisters builds a register file in Z80 power-on state as this
// core requires it: PC = initialPC, SP = 0xF800, IX = IY = 0, I = R =
// 0, main AF = 0xFFFF, BC = 0x00FF, DE = 0x03FF, HL = 0x0000, and an
// all-zero alternate set. These values match what ZEXALL expects and
// must be reproduced exactly.
func NewRegisters(initialPC uint16) *Registers {
	return &Registers{
		main: gpSet{a: 0xFF, f: 0xFF, bc: 0x00FF, de: 0x03FF, hl: 0x0000},
		alt:  gpSet{},
		pc:   initialPC,
		sp:   0xF800,
	}
}

func (r *Registers) A() byte { return r.main.a }
func (r *Registers) F() byte { return r.main.f }
func (r *Registers) SetA(v byte) { r.main.a = v }
func (r *Registers) SetF(v byte) { r.main.f = v }

func (r *Registers) AF() uint16      { return uint16(r.main.a)<<8 | uint16(r.main.f) }
func (r *Registers) SetAF(v uint16)  { r.main.a = byte(v >> 8); r.main.f = byte(v) }
func (r *Registers) BC() uint16      { return r.main.bc }
func (r *Registers) SetBC(v uint16)  { r.main.bc = v }
func (r *Registers) DE() uint16      { return r.main.de }
func (r *Registers) SetDE(v uint16)  { r.main.de = v }
func (r *Registers) HL() uint16      { return r.main.hl }
func (r *Registers) SetHL(v uint16)  { r.main.hl = v }

func (r *Registers) B() byte     { return byte(r.main.bc >> 8) }
func (r *Registers) SetB(v byte) { r.main.bc = uint16(v)<<8 | r.main.bc&0x00FF }
func (r *Registers) C() byte     { return byte(r.main.bc) }
func (r *Registers) SetC(v byte) { r.main.bc = r.main.bc&0xFF00 | uint16(v) }
func (r *Registers) D() byte     { return byte(r.main.de >> 8) }
func (r *Registers) SetD(v byte) { r.main.de = uint16(v)<<8 | r.main.de&0x00FF }
func (r *Registers) E() byte     { return byte(r.main.de) }
func (r *Registers) SetE(v byte) { r.main.de = r.main.de&0xFF00 | uint16(v) }
func (r *Registers) H() byte     { return byte(r.main.hl >> 8) }
func (r *Registers) SetH(v byte) { r.main.hl = uint16(v)<<8 | r.main.hl&0x00FF }
func (r *Registers) L() byte     { return byte(r.main.hl) }
func (r *Registers) SetL(v byte) { r.main.hl = r.main.hl&0xFF00 | uint16(v) }

func (r *Registers) IX() uint16     { return r.ix }
func (r *Registers) SetIX(v uint16) { r.ix = v }
func (r *Registers) IY() uint16     { return r.iy }
func (r *Registers) SetIY(v uint16) { r.iy = v }

func (r *Registers) IXH() byte     { return byte(r.ix >> 8) }
func (r *Registers) SetIXH(v byte) { r.ix = uint16(v)<<8 | r.ix&0x00FF }
func (r *Registers) IXL() byte     { return byte(r.ix) }
func (r *Registers) SetIXL(v byte) { r.ix = r.ix&0xFF00 | uint16(v) }
func (r *Registers) IYH() byte     { return byte(r.iy >> 8) }
func (r *Registers) SetIYH(v byte) { r.iy = uint16(v)<<8 | r.iy&0x00FF }
func (r *Registers) IYL() byte     { return byte(r.iy) }
func (r *Registers) SetIYL(v byte) { r.iy = r.iy&0xFF00 | uint16(v) }

func (r *Registers) SP() uint16     { return r.sp }
func (r *Registers) SetSP(v uint16) { r.sp = v }
func (r *Registers) PC() uint16     { return r.pc }
func (r *Registers) SetPC(v uint16) { r.pc = v }
func (r *Registers) I() byte        { return r.i }
func (r *Registers) SetI(v byte)    { r.i = v }
func (r *Registers) R() byte        { return r.r }
func (r *Registers) SetR(v byte)    { r.r = v }

// IncR bumps the memory-refresh register by delta, preserving bit 7
// (which real hardware never touches via refresh cycling).
func (r *Registers) IncR(delta byte) {
	r.r = r.r&0x80 | (r.r+delta)&0x7F
}

// IncPC advances PC by one, wrapping modulo 65536.
func (r *Registers) IncPC() { r.pc++ }

// AddPC adds a signed displacement to PC, wrapping modulo 65536.
func (r *Registers) AddPC(d int) { r.pc = uint16(int(r.pc) + d) }

// IncIncSP advances SP by two, wrapping modulo 65536.
func (r *Registers) IncIncSP() uint16 { r.sp += 2; return r.sp }

// DecDecSP retreats SP by two, wrapping modulo 65536.
func (r *Registers) DecDecSP() uint16 { r.sp -= 2; return r.sp }

// Inc16 increments a 16-bit value modulo 65536 without touching flags.
func Inc16(v uint16) uint16 { return v + 1 }

// Dec16 decrements a 16-bit value modulo 65536 without touching flags.
func Dec16(v uint16) uint16 { return v - 1 }

// Carry returns 1 if the carry flag is set, else 0.
func (r *Registers) Carry() byte {
	if r.main.f&cMask != 0 {
		return 1
	}
	return 0
}

// Test reports whether the named flag bit is set in F.
func (r *Registers) Test(flag string) bool {
	var mask byte
	switch flag {
	case "s":
		mask = sMask
	case "z":
		mask = zMask
	case "y":
		mask = yMask
	case "h":
		mask = hMask
	case "x":
		mask = xMask
	case "v", "p":
		mask = vMask
	case "n":
		mask = nMask
	case "c":
		mask = cMask
	default:
		panic(&UnknownSymbolError{Symbol: flag})
	}
	return r.main.f&mask != 0
}

// Exchange swaps BC, DE, HL with their alternates (the EXX instruction).
func (r *Registers) Exchange() {
	r.main.bc, r.alt.bc = r.alt.bc, r.main.bc
	r.main.de, r.alt.de = r.alt.de, r.main.de
	r.main.hl, r.alt.hl = r.alt.hl, r.main.hl
}

// ExchangeAF swaps AF with its alternate (the EX AF,AF' instruction).
func (r *Registers) ExchangeAF() {
	r.main.a, r.alt.a = r.alt.a, r.main.a
	r.main.f, r.alt.f = r.alt.f, r.main.f
}

// AltA, AltF, AltBC, AltDE, AltHL expose the shadow register set for
// tests and introspection; the CPU core otherwise reaches the shadow
// set only indirectly, through Exchange/ExchangeAF.
func (r *Registers) AltA() byte     { return r.alt.a }
func (r *Registers) AltF() byte     { return r.alt.f }
func (r *Registers) AltBC() uint16  { return r.alt.bc }
func (r *Registers) AltDE() uint16  { return r.alt.de }
func (r *Registers) AltHL() uint16  { return r.alt.hl }

// Get reads a register by its assembly symbol. Unknown symbols panic
// with *UnknownSymbolError, matching the "implementation bug" error
// classification for this boundary.
func (r *Registers) Get(symbol string) uint16 {
	switch symbol {
	case "a":
		return uint16(r.A())
	case "f":
		return uint16(r.F())
	case "b":
		return uint16(r.B())
	case "c":
		return uint16(r.C())
	case "d":
		return uint16(r.D())
	case "e":
		return uint16(r.E())
	case "h":
		return uint16(r.H())
	case "l":
		return uint16(r.L())
	case "af":
		return r.AF()
	case "bc":
		return r.BC()
	case "de":
		return r.DE()
	case "hl":
		return r.HL()
	case "ix":
		return r.IX()
	case "iy":
		return r.IY()
	case "ixh":
		return uint16(r.IXH())
	case "ixl":
		return uint16(r.IXL())
	case "iyh":
		return uint16(r.IYH())
	case "iyl":
		return uint16(r.IYL())
	case "pc":
		return r.PC()
	case "sp":
		return r.SP()
	case "i":
		return uint16(r.I())
	case "r":
		return uint16(r.R())
	default:
		panic(&UnknownSymbolError{Symbol: symbol})
	}
}

// Set writes a register by its assembly symbol. Unknown symbols panic
// with *UnknownSymbolError.
func (r *Registers) Set(symbol string, v uint16) {
	switch symbol {
	case "a":
		r.SetA(byte(v))
	case "f":
		r.SetF(byte(v))
	case "b":
		r.SetB(byte(v))
	case "c":
		r.SetC(byte(v))
	case "d":
		r.SetD(byte(v))
	case "e":
		r.SetE(byte(v))
	case "h":
		r.SetH(byte(v))
	case "l":
		r.SetL(byte(v))
	case "af":
		r.SetAF(v)
	case "bc":
		r.SetBC(v)
	case "de":
		r.SetDE(v)
	case "hl":
		r.SetHL(v)
	case "ix":
		r.SetIX(v)
	case "iy":
		r.SetIY(v)
	case "ixh":
		r.SetIXH(byte(v))
	case "ixl":
		r.SetIXL(byte(v))
	case "iyh":
		r.SetIYH(byte(v))
	case "iyl":
		r.SetIYL(byte(v))
	case "pc":
		r.SetPC(v)
	case "sp":
		r.SetSP(v)
	case "i":
		r.SetI(byte(v))
	case "r":
		r.SetR(byte(v))
	default:
		panic(&UnknownSymbolError{Symbol: symbol})
	}
}
