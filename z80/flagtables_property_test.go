package z80

import "testing"

// TestSzhvcAddAgainstIndependentBitMath exhaustively sweeps every
// (carryIn, old, operand) triple and checks the precomputed add table
// against flags derived independently, bit by bit, rather than through
// the same computeAddFlags helper the table itself was built with.
// Kept on plain testing.T rather than testify: a quarter-million-
// iteration loop gains nothing from an assertion library.
func TestSzhvcAddAgainstIndependentBitMath(t *testing.T) {
	for cin := 0; cin < 2; cin++ {
		for old := 0; old < 256; old++ {
			for operand := 0; operand < 256; operand++ {
				nw := (old + operand + cin) & 0xFF
				got := szhvcAdd[addSubIndex(cin, old, nw)]

				wantS := byte(0)
				if nw&0x80 != 0 {
					wantS = sMask
				}
				wantZ := byte(0)
				if nw == 0 {
					wantZ = zMask
				}
				wantH := byte(0)
				if (old&0x0F)+(operand&0x0F)+cin > 0x0F {
					wantH = hMask
				}
				wantC := byte(0)
				if old+operand+cin > 0xFF {
					wantC = cMask
				}
				wantV := byte(0)
				if (old&0x80) == (operand&0x80) && (nw&0x80) != (old&0x80) {
					wantV = vMask
				}
				wantYX := byte(nw) & (yMask | xMask)

				want := wantS | wantZ | wantH | wantC | wantV | wantYX
				if got != want {
					t.Fatalf("add cin=%d old=%02X operand=%02X new=%02X: got %08b want %08b",
						cin, old, operand, nw, got, want)
				}
			}
		}
	}
}

// TestSzhvcSubAgainstIndependentBitMath is the subtraction analog.
func TestSzhvcSubAgainstIndependentBitMath(t *testing.T) {
	for bin := 0; bin < 2; bin++ {
		for old := 0; old < 256; old++ {
			for operand := 0; operand < 256; operand++ {
				nw := (old - operand - bin) & 0xFF
				got := szhvcSub[addSubIndex(bin, old, nw)]

				wantS := byte(0)
				if nw&0x80 != 0 {
					wantS = sMask
				}
				wantZ := byte(0)
				if nw == 0 {
					wantZ = zMask
				}
				wantH := byte(0)
				if (old&0x0F)-(operand&0x0F)-bin < 0 {
					wantH = hMask
				}
				wantC := byte(0)
				if old-operand-bin < 0 {
					wantC = cMask
				}
				wantV := byte(0)
				if (old&0x80) != (operand&0x80) && (nw&0x80) != (old&0x80) {
					wantV = vMask
				}
				wantYX := byte(nw) & (yMask | xMask)

				want := wantS | wantZ | wantH | wantC | wantV | wantYX | nMask
				if got != want {
					t.Fatalf("sub bin=%d old=%02X operand=%02X new=%02X: got %08b want %08b",
						bin, old, operand, nw, got, want)
				}
			}
		}
	}
}

// TestSzpTableParityBit cross-checks szp against parity8 directly,
// independent of the init() loop that built it.
func TestSzpTableParityBit(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := parity8(byte(b))
		got := szp[b]&vMask != 0
		if got != want {
			t.Fatalf("szp[%02X] parity bit = %v, want %v", b, got, want)
		}
	}
}

func TestSzBitTableMarksOnlyZeroAsZero(t *testing.T) {
	if szBit[0]&zMask == 0 {
		t.Fatalf("szBit[0] should have Z set")
	}
	for b := 1; b < 256; b++ {
		if szBit[b]&zMask != 0 {
			t.Fatalf("szBit[%02X] should not have Z set", b)
		}
	}
}
