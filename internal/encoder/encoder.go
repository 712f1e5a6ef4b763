package encoder

import "github.com/dkovacs/asciivid/internal/ascii"

// Encoder encodes a converted frame into bytes for the wire.
type Encoder interface {
	Encode(f *ascii.Frame) []byte
}
