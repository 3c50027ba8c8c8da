// Package buffer provides the growable output buffer shared by the
// compress and decompress drivers. The buffer tracks exactly how many
// bytes the codec produced so the final result carries no trailing
// garbage, and it grows in caller-chosen increments rather than by the
// doubling policy of bytes.Buffer.
package buffer

// Buffer accumulates codec output. The zero value is not usable; create
// one with New.
type Buffer struct {
	buf  []byte
	off  int // bytes produced so far
	step int // growth increment
}

// New returns a Buffer that grows its backing storage in increments of
// step bytes. step must be positive.
func New(step int) *Buffer {
	if step <= 0 {
		step = 1
	}
	return &Buffer{step: step}
}

// Window grows the buffer so that n writable bytes follow the produced
// region and returns that region. The returned slice stays valid until
// the next Window or Write call.
func (b *Buffer) Window(n int) []byte {
	if need := b.off + n; need > len(b.buf) {
		next := make([]byte, need)
		copy(next, b.buf[:b.off])
		b.buf = next
	}
	return b.buf[b.off : b.off+n]
}

// Advance marks n bytes of the current window as produced.
func (b *Buffer) Advance(n int) {
	b.off += n
}

// Write appends p to the produced region, growing storage by whole
// steps. It implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	for b.off+len(p) > len(b.buf) {
		next := make([]byte, len(b.buf)+b.step)
		copy(next, b.buf[:b.off])
		b.buf = next
	}
	copy(b.buf[b.off:], p)
	b.off += len(p)
	return len(p), nil
}

// Len reports the number of produced bytes.
func (b *Buffer) Len() int {
	return b.off
}

// Bytes returns the produced bytes, truncated to the exact produced
// length.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.off]
}
