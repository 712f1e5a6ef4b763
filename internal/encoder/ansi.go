package encoder

import (
	"bytes"
	"fmt"

	"github.com/dkovacs/asciivid/internal/ascii"
)

// ANSIEncoder encodes frames as terminal text: cursor home, then one line
// per grid row with 24-bit foreground colors, then an attribute reset.
// Consecutive cells with the same color share one escape sequence.
type ANSIEncoder struct{}

func NewANSIEncoder() *ANSIEncoder {
	return &ANSIEncoder{}
}

func (e *ANSIEncoder) Encode(f *ascii.Frame) []byte {
	var buf bytes.Buffer
	buf.Grow(f.Width*f.Height*4 + 64)
	buf.WriteString("\x1b[H")

	var cur [3]uint8
	haveColor := false
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			cell := f.At(x, y)
			c := [3]uint8{cell.Color.R, cell.Color.G, cell.Color.B}
			if !haveColor || c != cur {
				fmt.Fprintf(&buf, "\x1b[38;2;%d;%d;%dm", c[0], c[1], c[2])
				cur = c
				haveColor = true
			}
			buf.WriteByte(cell.Char)
		}
		buf.WriteString("\r\n")
	}
	buf.WriteString("\x1b[0m")
	return buf.Bytes()
}
