package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEDNegatesA(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetA(0x01)
	loadAt(c, 0x0000, 0xED, 0x44) // NEG
	c.ExecuteInstruction()
	assert.Equal(byte(0xFF), c.Reg.A())
	assert.True(c.Reg.Test("c"))
	assert.True(c.Reg.Test("n"))
}

func TestEDNegZeroStaysZero(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetA(0x00)
	loadAt(c, 0x0000, 0xED, 0x44)
	c.ExecuteInstruction()
	assert.Equal(byte(0x00), c.Reg.A())
	assert.False(c.Reg.Test("c"))
	assert.True(c.Reg.Test("z"))
}

func TestEDAdcHLSbcHL(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetF(0)
	c.Reg.SetHL(0x0001)
	c.Reg.SetBC(0x0001)
	loadAt(c, 0x0000, 0xED, 0x4A) // ADC HL,BC
	c.ExecuteInstruction()
	assert.Equal(uint16(0x0002), c.Reg.HL())

	loadAt(c, 0x0002, 0xED, 0x42) // SBC HL,BC
	c.ExecuteInstruction()
	assert.Equal(uint16(0x0001), c.Reg.HL())
}

func TestEDLoadStoreIndirectRR(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetBC(0xCAFE)
	loadAt(c, 0x0000, 0xED, 0x43, 0x00, 0x50) // LD (0x5000),BC
	c.ExecuteInstruction()
	assert.Equal(uint16(0xCAFE), c.Mem.GetWord(0x5000))

	loadAt(c, 0x0004, 0xED, 0x4B, 0x00, 0x50) // LD BC,(0x5000)
	c.ExecuteInstruction()
	assert.Equal(uint16(0xCAFE), c.Reg.BC())
}

func TestEDLDAIAndLDAR(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetI(0x28)
	loadAt(c, 0x0000, 0xED, 0x57) // LD A,I
	c.ExecuteInstruction()
	assert.Equal(byte(0x28), c.Reg.A())
	assert.Equal(c.Reg.A()&yMask, c.Reg.F()&yMask)
	assert.Equal(c.Reg.A()&xMask, c.Reg.F()&xMask)

	c.Reg.SetR(0x08)
	loadAt(c, 0x0002, 0xED, 0x5F) // LD A,R
	c.ExecuteInstruction()
	assert.Equal(c.Reg.R(), c.Reg.A())
	assert.Equal(c.Reg.A()&xMask, c.Reg.F()&xMask)
}

func TestEDRRDRLD(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetHL(0x6000)
	c.Reg.SetA(0x7A)
	c.Mem.SetByte(0x6000, 0x31)
	loadAt(c, 0x0000, 0xED, 0x67) // RRD
	c.ExecuteInstruction()
	assert.Equal(byte(0x71), c.Reg.A())
	assert.Equal(byte(0xA3), c.Mem.GetByte(0x6000))

	loadAt(c, 0x0002, 0xED, 0x6F) // RLD undoes the RRD above
	c.ExecuteInstruction()
	assert.Equal(byte(0x7A), c.Reg.A())
	assert.Equal(byte(0x31), c.Mem.GetByte(0x6000))
}

func TestEDINOUTC(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	ports := newRecordingPorts()
	c.IO = ports
	ports.reads[0x01] = 0x77

	c.Reg.SetBC(0x0001)
	loadAt(c, 0x0000, 0xED, 0x40) // IN B,(C)
	c.ExecuteInstruction()
	assert.Equal(byte(0x77), c.Reg.B())

	c.Reg.SetA(0x99)
	loadAt(c, 0x0002, 0xED, 0x79) // OUT (C),A
	c.ExecuteInstruction()
	assert.Len(ports.writes, 1)
	assert.Equal(byte(0x99), ports.writes[0].val)
}
