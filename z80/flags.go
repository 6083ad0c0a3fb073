package z80

// Flag bit masks for the F register, MSB to LSB: S Z Y H X P/V N C.
const (
	sMask = 0x80
	zMask = 0x40
	yMask = 0x20
	hMask = 0x10
	xMask = 0x08
	vMask = 0x04
	nMask = 0x02
	cMask = 0x01
)

// signExtend treats b as a signed 8-bit displacement and widens it to int.
func signExtend(b byte) int {
	return int(int8(b))
}

// parity8 reports whether b has an even number of set bits.
func parity8(b byte) bool {
	n := 0
	for b != 0 {
		n++
		b &= b - 1
	}
	return n%2 == 0
}
