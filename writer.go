// Completion: 100% - Buffer writer and numeric formatters complete
package asm2c

// Writer appends text to a caller-owned, fixed-capacity byte buffer.
// It is the single point of truth for overflow safety: every write is
// capacity-checked before a single byte is copied, a failed write leaves
// the buffer untouched, and the buffer is NUL-terminated after every
// successful write. One byte of the buffer is held back for the terminator,
// so a buffer of length n can hold at most n-1 bytes of text.
//
// The Writer never allocates. The numeric formatters assemble their digits
// in fixed scratch arrays and flush them through a single checked write.
type Writer struct {
	buf       []byte
	pos       int
	remaining int
}

// NewWriter wraps buf and writes the initial NUL terminator.
// Fails if buf cannot hold even the terminator.
func NewWriter(buf []byte) (Writer, bool) {
	if len(buf) == 0 {
		return Writer{}, false
	}
	buf[0] = 0
	return Writer{buf: buf, remaining: len(buf) - 1}, true
}

// Len returns the number of text bytes written so far.
func (w *Writer) Len() int {
	return w.pos
}

// String returns the text written so far. This is for tests and diagnostics;
// the translation path itself never calls it.
func (w *Writer) String() string {
	return string(w.buf[:w.pos])
}

// WriteRaw writes text verbatim. Fails without writing anything if text does
// not fit in the remaining capacity.
func (w *Writer) WriteRaw(text string) bool {
	if len(text) > w.remaining {
		return false
	}
	copy(w.buf[w.pos:], text)
	w.pos += len(text)
	w.remaining -= len(text)
	w.buf[w.pos] = 0
	return true
}

func (w *Writer) writeBytes(text []byte) bool {
	if len(text) > w.remaining {
		return false
	}
	copy(w.buf[w.pos:], text)
	w.pos += len(text)
	w.remaining -= len(text)
	w.buf[w.pos] = 0
	return true
}

// WriteUint writes value as its smallest decimal representation, with no
// leading zeros except for the literal "0".
func (w *Writer) WriteUint(value uint64) bool {
	// A uint64 has at most 20 decimal digits.
	var scratch [20]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + value%10)
		value /= 10
		if value == 0 {
			break
		}
	}
	return w.writeBytes(scratch[i:])
}

// WriteHex writes value as uppercase hexadecimal with a "0x" prefix and no
// leading zeros. Zero renders as "0x0".
func (w *Writer) WriteHex(value uint64) bool {
	const digits = "0123456789ABCDEF"
	// "0x" plus at most 16 hex digits.
	var scratch [18]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = digits[value&0xF]
		value >>= 4
		if value == 0 {
			break
		}
	}
	i--
	scratch[i] = 'x'
	i--
	scratch[i] = '0'
	return w.writeBytes(scratch[i:])
}

// WriteInt writes value in decimal, with a leading '-' for negative values.
func (w *Writer) WriteInt(value int64) bool {
	if value < 0 {
		if !w.WriteRaw("-") {
			return false
		}
		return w.WriteUint(uint64(-value))
	}
	return w.WriteUint(uint64(value))
}

// BufferString returns the NUL-terminated text at the start of buf, as left
// behind by a successful TranslateInstruction call.
func BufferString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
