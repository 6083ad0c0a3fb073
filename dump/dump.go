// Package dump formats a memory region as a hex/ASCII listing, built
// as a small helper that returns a string via strings.Builder rather
// than writing straight to an io.Writer.
package dump

import (
	"fmt"
	"strings"
)

// Format renders data as 16-byte rows: " AAAA: HH HH ... HH  CCC...\n"
// — the row's address (base plus the row's offset into data),
// uppercase space-separated hex bytes, and the raw ASCII rendering
// (non-printable bytes shown as '.'). The first row starts at base;
// rows are not realigned to 16-byte boundaries when base is not a
// multiple of 16, and the last row may be shorter than 16 bytes.
func Format(data []byte, base uint16) string {
	var b strings.Builder
	for offset := 0; offset < len(data); offset += 16 {
		end := offset + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[offset:end]

		fmt.Fprintf(&b, " %04X: ", base+uint16(offset))
		for i, v := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%02X", v)
		}

		b.WriteString("  ")
		for _, v := range row {
			if v >= 0x20 && v < 0x7F {
				b.WriteByte(v)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
