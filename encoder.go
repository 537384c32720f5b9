package utf8codec

// maxScalar is the highest valid Unicode scalar value.
const maxScalar = 0x10FFFF

// isSurrogate reports whether c falls in the UTF-16 surrogate range,
// which is never a valid scalar value.
func isSurrogate(c rune) bool {
	return c >= 0xD800 && c <= 0xDFFF
}

// isValidScalar reports whether c is a valid Unicode scalar value: in
// [0, 0x10FFFF] and not a surrogate.
func isValidScalar(c rune) bool {
	return c >= 0 && c <= maxScalar && !isSurrogate(c)
}

// Encoder is a streaming scalar-to-UTF-8 encoder. Its zero value is a
// ready-to-use encoder with no pending bytes. An Encoder occupies O(1)
// memory (a 4-byte holding area) and performs no heap allocation.
type Encoder struct {
	pending    [4]byte
	pendingLen uint8
	read       uint8
	invalid    bool
	last       bool
}

// SetLastBuffer declares whether the next output drained from this
// Encoder is for the final buffer of the stream. The encoder has no
// cross-scalar state that depends on this flag; it is carried for
// symmetry with Decoder and for callers that branch on it.
func (e *Encoder) SetLastBuffer(last bool) { e.last = last }

// HasInvalidSequence reports whether any invalid scalar has been
// substituted since the Encoder was created or last cleared.
func (e *Encoder) HasInvalidSequence() bool { return e.invalid }

// ClearInvalidSequence resets the sticky invalid-sequence flag.
func (e *Encoder) ClearInvalidSequence() { e.invalid = false }

// encodeInto writes the canonical UTF-8 encoding of c into dst (which
// must have length >= 4) and returns the number of bytes written.
// Surrogates and out-of-range scalars are not handled here; callers
// must substitute before calling.
func encodeInto(dst []byte, c rune) int {
	switch {
	case c < 0x80:
		dst[0] = byte(c)
		return 1
	case c < 0x800:
		dst[0] = 0xC0 | byte(c>>6)
		dst[1] = 0x80 | byte(c&0x3F)
		return 2
	case c < 0x10000:
		dst[0] = 0xE0 | byte(c>>12)
		dst[1] = 0x80 | byte((c>>6)&0x3F)
		dst[2] = 0x80 | byte(c&0x3F)
		return 3
	default:
		dst[0] = 0xF0 | byte(c>>18)
		dst[1] = 0x80 | byte((c>>12)&0x3F)
		dst[2] = 0x80 | byte((c>>6)&0x3F)
		dst[3] = 0x80 | byte(c&0x3F)
		return 4
	}
}

// load fills the pending buffer with the canonical encoding of c, or
// with U+FFFD's encoding (0xEF 0xBF 0xBD) if c is not a valid scalar,
// and resets the read cursor.
func (e *Encoder) load(c rune) {
	if !isValidScalar(c) {
		e.invalid = true
		c = RuneError
	}
	e.pendingLen = uint8(encodeInto(e.pending[:], c))
	e.read = 0
}

// drained reports whether the pending buffer has been fully read.
func (e *Encoder) drained() bool { return e.read == e.pendingLen }

// Put loads c as the scalar to encode next. The caller must fully drain
// the previous scalar's bytes (via Byte or EncodeRune) before calling
// Put again; Put does not queue scalars.
func (e *Encoder) Put(c rune) { e.load(c) }

// Byte returns the next pending output byte and advances the read
// cursor. ok is false once the pending buffer is fully drained.
func (e *Encoder) Byte() (b byte, ok bool) {
	if e.read >= e.pendingLen {
		return 0, false
	}
	b = e.pending[e.read]
	e.read++
	return b, true
}

// EncodeRune writes as much of c's canonical UTF-8 encoding as fits in
// dst. If c was already partially loaded (a previous call returned
// StatusNeedMore because dst was too small), the in-flight encoding
// continues to drain and c is ignored; pass the same rune again to make
// that explicit at the call site.
//
// It returns the unwritten suffix of dst, the number of bytes written,
// and StatusOK if the whole encoding fit or StatusNeedMore if dst was
// too small to hold the remainder (call again with a fresh dst to
// finish draining).
func (e *Encoder) EncodeRune(dst []byte, c rune) (rest []byte, n int, status Status) {
	if e.drained() {
		e.load(c)
	}
	avail := int(e.pendingLen - e.read)
	if len(dst) < avail {
		copy(dst, e.pending[e.read:e.pendingLen])
		e.read += uint8(len(dst))
		return dst[len(dst):], len(dst), StatusNeedMore
	}
	copy(dst[:avail], e.pending[e.read:e.pendingLen])
	e.read = e.pendingLen
	return dst[avail:], avail, StatusOK
}
