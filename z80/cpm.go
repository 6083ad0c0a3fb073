package z80

import (
	"fmt"
	"os"
)

// installCPMStub installs the minimal CP/M BDOS entry point at
// 0x0005 (a bare RET) plus a pseudo-address marker at 0x0006. This
// lets CALL 0x0005 from a loaded test program land on a RET that
// opRET recognizes and routes to bdosCall before completing the
// return to the real caller.
func (c *CPU) installCPMStub() {
	c.Mem.SetByte(0x0005, 0xC9)
	c.Mem.SetWord(0x0006, 0x06E4)
}

// bdosCall dispatches the minimal BDOS subset this core documents:
// C=2 prints one character from E; C=9 prints a '$'-terminated
// string starting at DE; anything else prints a diagnostic. Output
// goes to the host's standard output, raw 8-bit, no translation.
func (c *CPU) bdosCall() {
	switch c.Reg.C() {
	case 2:
		os.Stdout.Write([]byte{c.Reg.E()})
	case 9:
		addr := c.Reg.DE()
		for {
			b := c.Mem.GetByte(addr)
			if b == '$' {
				break
			}
			os.Stdout.Write([]byte{b})
			addr++
		}
	default:
		fmt.Fprintf(os.Stdout, "Unhandled BDOS call %02X", c.Reg.C())
	}
}
