package wire

import "encoding/binary"

// EncodeString packs s into the wire's length-prefixed, NUL-terminated,
// 4-byte-padded string representation: a length word (byte count including
// the trailing NUL) followed by the padded body words. It is the inverse of
// the decode step used to walk string arguments off the wire.
func EncodeString(s string) []uint32 {
	n := len(s) + 1
	bodyWords := (n + 3) / 4
	out := make([]uint32, 1+bodyWords)
	out[0] = uint32(n)

	buf := make([]byte, bodyWords*4)
	copy(buf, s)
	for i := 0; i < bodyWords; i++ {
		out[1+i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
	return out
}
