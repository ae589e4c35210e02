package chasm

// buffer is a growable byte vector used by the emitter while building one
// instruction's bytes before it is appended to the caller's output slice.
// Ported from the teacher's buffer.go, trimmed to the handful of append
// primitives the Byte Emitter actually calls.
type buffer struct {
	b []byte
}

func (buf *buffer) byte(v byte) {
	buf.b = append(buf.b, v)
}

func (buf *buffer) bytes(v []byte) {
	buf.b = append(buf.b, v...)
}

func (buf *buffer) int8(v int8) {
	buf.b = append(buf.b, byte(v))
}

func (buf *buffer) int16(v int16) {
	buf.b = append(buf.b, byte(v), byte(v>>8))
}

func (buf *buffer) int32(v int32) {
	buf.b = append(buf.b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func (buf *buffer) int64(v int64) {
	buf.b = append(buf.b,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func (buf *buffer) len() int { return len(buf.b) }

// nopBytes are the canonical multi-byte NOP encodings Intel recommends for
// padding (1..9 bytes), used by Assembler.AlignPC and Assembler.Nop.
var nopBytes = [][]byte{
	{},
	{0x90},
	{0x66, 0x90},
	{0x0F, 0x1F, 0x00},
	{0x0F, 0x1F, 0x40, 0x00},
	{0x0F, 0x1F, 0x44, 0x00, 0x00},
	{0x66, 0x0F, 0x1F, 0x44, 0x00, 0x00},
	{0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00},
	{0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// appendNop appends a single canonical NOP sequence of exactly n bytes
// (1-9) to out. Longer padding is built by repeating 9-byte NOPs.
func appendNop(out []byte, n int) []byte {
	for n > 9 {
		out = append(out, nopBytes[9]...)
		n -= 9
	}
	return append(out, nopBytes[n]...)
}
