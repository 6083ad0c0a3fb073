package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPopRoundTrip(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetSP(0xFF00)

	c.push(0x1234)
	assert.Equal(uint16(0xFEFE), c.Reg.SP())
	assert.Equal(uint16(0x1234), c.Mem.GetWord(0xFEFE))

	v := c.pop()
	assert.Equal(uint16(0x1234), v)
	assert.Equal(uint16(0xFF00), c.Reg.SP())
}

func TestPushPopMultiple(t *testing.T) {
	assert := assert.New(t)

	c := NewSystem(0x10000, 0, false)
	c.Reg.SetSP(0xFF00)

	c.push(0xAAAA)
	c.push(0xBBBB)
	assert.Equal(uint16(0xBBBB), c.pop())
	assert.Equal(uint16(0xAAAA), c.pop())
	assert.Equal(uint16(0xFF00), c.Reg.SP())
}
