package z80

// push writes v onto the stack, predecrementing SP by two. Stack
// grows downward; SP wraps modulo 65536.
func (c *CPU) push(v uint16) {
	sp := c.Reg.DecDecSP()
	c.Mem.SetWord(sp, v)
}

// pop reads the word at SP, postincrementing SP by two.
func (c *CPU) pop() uint16 {
	v := c.Mem.GetWord(c.Reg.SP())
	c.Reg.IncIncSP()
	return v
}
